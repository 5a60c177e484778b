package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/domain"
)

type stubUserRepo struct {
	CreateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	ListFunc        func(ctx context.Context, skip, limit int) ([]*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteFunc      func(ctx context.Context, id string) error
	CountFunc       func(ctx context.Context) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.CreateFunc(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.FindByEmailFunc == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.FindByIDFunc(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.ListFunc(ctx, skip, limit)
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.UpdateFunc(ctx, user)
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error {
	return s.DeleteFunc(ctx, id)
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	if s.CountFunc == nil {
		return 1, nil
	}
	return s.CountFunc(ctx)
}

func newAuthService(repo *stubUserRepo) *AuthService {
	issuer := auth.NewIssuer("test-secret", 0)
	verifier := auth.NewVerifier("test-secret", "https://auth.example.com")
	return NewAuthService(repo, issuer, verifier, zerolog.Nop())
}

func TestAuthServiceRegister_FirstUserBecomesAdmin(t *testing.T) {
	repo := &stubUserRepo{
		CountFunc: func(context.Context) (int64, error) { return 0, nil },
		CreateFunc: func(_ context.Context, u *domain.User) (*domain.User, error) {
			u.ID = "u-1"
			return u, nil
		},
	}

	user, err := newAuthService(repo).Register(context.Background(), "first@example.com", "pw1", domain.RoleUser)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin for the first account", user.Role)
	}
	if !user.IsActive {
		t.Errorf("new account must start active")
	}
	if !auth.CheckPassword("pw1", user.PasswordHash) {
		t.Errorf("stored hash must verify against the plaintext")
	}
}

func TestAuthServiceRegister_LaterUsersKeepRequestedRole(t *testing.T) {
	repo := &stubUserRepo{
		CreateFunc: func(_ context.Context, u *domain.User) (*domain.User, error) {
			u.ID = "u-2"
			return u, nil
		},
	}

	user, err := newAuthService(repo).Register(context.Background(), "second@example.com", "pw2", domain.RoleUser)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want user", user.Role)
	}
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	created := false
	repo := &stubUserRepo{
		FindByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Email: email}, nil
		},
		CreateFunc: func(_ context.Context, u *domain.User) (*domain.User, error) {
			created = true
			return u, nil
		},
	}

	_, err := newAuthService(repo).Register(context.Background(), "dup@example.com", "pw", domain.RoleUser)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
	if created {
		t.Errorf("duplicate registration must not touch the repository")
	}
}

func TestAuthServiceRegister_InvalidRole(t *testing.T) {
	_, err := newAuthService(&stubUserRepo{}).Register(context.Background(), "x@example.com", "pw", "root")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestAuthServiceLogin_IssuesScopedToken(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	repo := &stubUserRepo{
		FindByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Email: email, PasswordHash: hash, IsActive: true, Role: domain.RoleAdmin}, nil
		},
	}

	token, err := newAuthService(repo).Login(context.Background(), "admin@example.com", "pw1")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	claims, err := auth.NewVerifier("test-secret", "https://auth.example.com").Verify(token)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if got := claims.SubjectEmail(); got != "admin@example.com" {
		t.Errorf("subject = %q, want admin@example.com", got)
	}
	if len(claims.Scopes) != 2 {
		t.Errorf("scopes = %v, want both admin scopes", claims.Scopes)
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("right")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	repo := &stubUserRepo{
		FindByEmailFunc: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}

	_, err = newAuthService(repo).Login(context.Background(), "x@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceLogin_UnknownEmail(t *testing.T) {
	_, err := newAuthService(&stubUserRepo{}).Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceVerifyExternal_RejectsLocalToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", 0)
	token, err := issuer.Issue("local@example.com", []string{"user"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	_, err = newAuthService(&stubUserRepo{}).VerifyExternal(context.Background(), token)
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/domain"
	"github.com/redmisiones/news-api/internal/core/ports"
)

// AuthService implements registration, login and external token verification.
type AuthService struct {
	repo     ports.UserRepository
	issuer   *auth.Issuer
	verifier *auth.Verifier
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *auth.Issuer, verifier *auth.Verifier, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, verifier: verifier, logger: logger}
}

// Register creates a new account. The first account in an empty directory is
// always promoted to admin; later registrations keep the requested role.
func (s *AuthService) Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token scoped by the user's
// role. Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("email", email).Msg("password verification failed")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Email, user.Role.Scopes())
	if err != nil {
		return "", err
	}

	return token, nil
}

// VerifyExternal validates a token minted by the external identity provider
// and resolves it to a directory account.
func (s *AuthService) VerifyExternal(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.verifier.VerifyExternal(token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("external token verification failed")
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, claims.SubjectEmail())
	if err != nil {
		return nil, err
	}
	return user, nil
}

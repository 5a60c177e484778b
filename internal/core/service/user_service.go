package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/domain"
	"github.com/redmisiones/news-api/internal/core/ports"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

// UserService implements directory administration on top of UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create adds an account with the given role. Unlike registration there is no
// first-user promotion; the route is admin-only.
func (s *UserService) Create(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		Role:         role,
	})
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return s.repo.List(ctx, skip, limit)
}

// Get returns the account with the given id. Non-admin actors may only read
// their own account.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != user.ID {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// Update applies a partial update. Non-admins may only touch their own
// account, and only admins may change roles.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != user.ID {
		return nil, domain.ErrForbidden
	}
	if input.Role != nil && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		if _, err := domain.ParseRole(string(*input.Role)); err != nil {
			return nil, err
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes an account. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.ID == user.ID {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("user deleted")
	return nil
}

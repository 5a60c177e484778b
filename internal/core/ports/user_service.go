package ports

import (
	"context"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update; nil fields are left as-is.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *domain.Role
	IsActive *bool
}

// UserService defines the user directory use cases. Operations taking an
// actor enforce the admin-or-self ownership rule; coarse scope checks happen
// earlier, in the middleware.
type UserService interface {
	Create(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}

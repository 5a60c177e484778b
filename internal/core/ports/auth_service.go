package ports

import (
	"context"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// AuthService covers registration, login and external token verification.
type AuthService interface {
	// Register creates an account. The first account ever created is
	// promoted to admin regardless of the requested role.
	Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	// Login checks credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// VerifyExternal validates an externally issued token and resolves it
	// to the matching directory account.
	VerifyExternal(ctx context.Context, token string) (*domain.User, error)
}

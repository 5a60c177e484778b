package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// RequireScopes enforces that the authenticated account's granted scopes
// cover every required scope. Scopes derive from the stored role, not from
// the token, so a role change takes effect on the next request rather than
// at the next token refresh.
func RequireScopes(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUser).(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			granted := make(map[string]struct{})
			for _, s := range user.Role.Scopes() {
				granted[s] = struct{}{}
			}
			for _, s := range required {
				if _, ok := granted[s]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
				}
			}
			return next(c)
		}
	}
}

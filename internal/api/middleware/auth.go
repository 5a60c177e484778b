package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/api/metrics"
	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/domain"
)

// UserResolver is the slice of the user directory the guard needs.
type UserResolver interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Context keys set by Auth for downstream handlers.
const (
	ContextUser   = "user"
	ContextScopes = "scopes"
)

// challenge marks a 401 response with the bearer challenge header.
func challenge(c echo.Context) {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
}

// Auth authenticates the request and resolves the caller's account. The
// pipeline runs in order and short-circuits on the first failure:
//
//  1. verify the bearer token (signature + expiry) — 401 on failure
//  2. resolve the subject email in the user directory — 401 when absent
//  3. reject inactive accounts — 400, matching the historical contract
//
// On success the *domain.User and the token scopes are stored in the echo
// context. Every request re-runs all steps; nothing is cached.
func Auth(verifier *auth.Verifier, users UserResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				challenge(c)
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrExpiredToken) {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Msg("token rejected")
				challenge(c)
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.SubjectEmail())
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					challenge(c)
					return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
				}
				return err
			}

			if !user.IsActive {
				metrics.TokenRejectionsTotal.WithLabelValues("inactive_user").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, domain.ErrInactiveUser.Error())
			}

			c.Set(ContextUser, user)
			c.Set(ContextScopes, claims.Scopes)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// CurrentUser returns the account resolved by Auth.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(ContextUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/redmisiones/news-api/internal/api/metrics"
	"github.com/redmisiones/news-api/internal/core/domain"
	"github.com/redmisiones/news-api/internal/core/ports"
)

// AuthHandler serves registration, login and token verification.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register. The first account ever registered is
// promoted to admin by the service.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /auth/login. It accepts the classic OAuth2 password
// form (username carries the email) as well as a JSON body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Verify handles GET /auth/verify. The token is checked in external-issuer
// mode: audience and issuer claims are required on top of signature and
// expiry.
func (h *AuthHandler) Verify(c echo.Context) error {
	token, err := bearerFromHeader(c)
	if err != nil {
		return err
	}

	user, err := h.authService.VerifyExternal(c.Request().Context(), token)
	if err != nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}

	return c.JSON(http.StatusOK, verifyResponse{
		Status: "valid",
		User: verifyUserResponse{
			Email:    user.Email,
			Role:     string(user.Role),
			IsActive: user.IsActive,
		},
	})
}

func bearerFromHeader(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return parts[1], nil
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/redmisiones/news-api/internal/core/domain"
)

func runScopeCheck(t *testing.T, user *domain.User, required ...string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(ContextUser, user)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return RequireScopes(required...)(next)(c)
}

func TestRequireScopes_AdminCoversBoth(t *testing.T) {
	admin := &domain.User{ID: "a-1", Role: domain.RoleAdmin}
	if err := runScopeCheck(t, admin, "admin"); err != nil {
		t.Errorf("admin scope denied: %v", err)
	}
	if err := runScopeCheck(t, admin, "user"); err != nil {
		t.Errorf("user scope denied for admin: %v", err)
	}
	if err := runScopeCheck(t, admin, "admin", "user"); err != nil {
		t.Errorf("combined scopes denied for admin: %v", err)
	}
}

func TestRequireScopes_UserDeniedAdmin(t *testing.T) {
	user := &domain.User{ID: "u-1", Role: domain.RoleUser}
	if err := runScopeCheck(t, user, "user"); err != nil {
		t.Errorf("own scope denied: %v", err)
	}

	err := runScopeCheck(t, user, "admin")
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestRequireScopes_MissingUser(t *testing.T) {
	err := runScopeCheck(t, nil, "user")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

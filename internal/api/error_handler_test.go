package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"inactive user", domain.ErrInactiveUser, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"article not found", domain.ErrArticleNotFound, http.StatusNotFound},
		{"unsupported image", domain.ErrUnsupportedImageType, http.StatusBadRequest},
		{"image too large", domain.ErrImageTooLarge, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := renderError(t, tt.err)
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d", rec.Code, tt.code)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if resp.Error == "" {
				t.Errorf("error envelope must carry a message")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("query users"), domain.ErrUserNotFound)
	rec := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for a wrapped domain error", rec.Code)
	}
}

func TestErrorHandler_UnauthorizedChallenge(t *testing.T) {
	rec := renderError(t, domain.ErrInvalidCredentials)
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Errorf("401 responses must carry the bearer challenge")
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want echo's code preserved", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if resp.Error != "short and stout" {
		t.Errorf("message = %q, want echo's message preserved", resp.Error)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := renderError(t, errors.New("pq: relation users does not exist"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() == "" || rec.Body.String() == "pq: relation users does not exist" {
		t.Errorf("internal detail must not leak to the client")
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Errorf("message = %q, want the generic message", resp.Error)
	}
}

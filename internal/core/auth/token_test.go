package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/redmisiones/news-api/internal/core/domain"
)

const testSecret = "unit-test-secret"

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	issuer := NewIssuer(testSecret, 0)
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token, err := issuer.Issue("reader@example.com", []string{"user"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if got := claims.SubjectEmail(); got != "reader@example.com" {
		t.Errorf("subject = %q, want reader@example.com", got)
	}
	if len(claims.Scopes) != 1 || claims.Scopes[0] != "user" {
		t.Errorf("scopes = %v, want [user]", claims.Scopes)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	issuer := NewIssuer(testSecret, -time.Minute)
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token, err := issuer.Issue("late@example.com", nil)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer("other-secret", 0)
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token, err := issuer.Issue("who@example.com", nil)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	verifier := NewVerifier(testSecret, "https://auth.example.com")
	for _, tok := range []string{"", "abc", "a.b.c"} {
		if _, err := verifier.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("token %q: err = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestVerifyExternal_RejectsLocalToken(t *testing.T) {
	issuer := NewIssuer(testSecret, 0)
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token, err := issuer.Issue("local@example.com", []string{"user"})
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	// Local tokens carry no audience or issuer claim, so the external
	// checks must fail even though the signature is valid.
	if _, err := verifier.VerifyExternal(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyExternal_AcceptsProviderToken(t *testing.T) {
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token := signExternal(t, testSecret, Claims{
		Email: "ext@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "provider-user-id",
			Audience:  jwt.ClaimStrings{"authenticated"},
			Issuer:    "https://auth.example.com/auth/v1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := verifier.VerifyExternal(token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if got := claims.SubjectEmail(); got != "ext@example.com" {
		t.Errorf("subject = %q, want the email claim, not the opaque sub", got)
	}
}

func TestVerifyExternal_WrongIssuer(t *testing.T) {
	verifier := NewVerifier(testSecret, "https://auth.example.com")

	token := signExternal(t, testSecret, Claims{
		Email: "ext@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "provider-user-id",
			Audience:  jwt.ClaimStrings{"authenticated"},
			Issuer:    "https://evil.example.com/auth/v1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := verifier.VerifyExternal(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func signExternal(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	return token
}

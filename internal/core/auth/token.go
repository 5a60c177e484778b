package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// externalAudience is the audience claim carried by tokens minted by the
// external identity provider. Locally issued tokens never set it.
const externalAudience = "authenticated"

// Claims is the payload signed into every bearer token.
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	// Email is set on externally issued tokens, where the subject is an
	// opaque provider ID rather than the account email.
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SubjectEmail returns the email identifying the token holder: the email
// claim on external tokens, the sub claim on locally issued ones.
func (c *Claims) SubjectEmail() string {
	if c.Email != "" {
		return c.Email
	}
	return c.RegisteredClaims.Subject
}

// Issuer mints signed, time-bound bearer tokens for local accounts.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subject carrying the given scopes, expiring after
// the configured TTL.
func (i *Issuer) Issue(subject string, scopes []string) (string, error) {
	now := time.Now()
	claims := Claims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verifier checks token signatures and expiry against the process-wide
// secret. It never touches the user directory.
//
// Two mutually exclusive modes exist: Verify accepts locally issued tokens,
// VerifyExternal accepts tokens from the external identity provider and
// additionally pins the audience and issuer claims. A token valid under one
// mode is not implicitly valid under the other.
type Verifier struct {
	secret      []byte
	providerURL string
}

func NewVerifier(secret, providerURL string) *Verifier {
	return &Verifier{secret: []byte(secret), providerURL: providerURL}
}

// Verify parses and validates a locally issued token.
func (v *Verifier) Verify(token string) (*Claims, error) {
	return v.parse(token)
}

// VerifyExternal parses and validates a token issued by the external identity
// provider, requiring its fixed audience and issuer claims.
func (v *Verifier) VerifyExternal(token string) (*Claims, error) {
	return v.parse(token,
		jwt.WithAudience(externalAudience),
		jwt.WithIssuer(v.providerURL+"/auth/v1"),
	)
}

func (v *Verifier) parse(token string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || claims.SubjectEmail() == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrTokenMalformed marks a credential that is not a structurally valid token.
// Gated routes surface it as 422 rather than 401.
var ErrTokenMalformed = errors.New("malformed token")

// ErrTokenInvalid marks a token that failed signature or expiry checks.
var ErrTokenInvalid = errors.New("invalid or expired token")

// TokenService issues and verifies HS256-signed session tokens carrying the
// caller's email as subject and their role as a custom claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue mints a signed token for the given email and role, expiring after the
// service's configured lifetime.
func (s *TokenService) Issue(email, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and returns the embedded
// claims. Structurally broken tokens return ErrTokenMalformed; everything else
// that fails verification returns ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrTokenMalformed
		}
		return nil, ErrTokenInvalid
	}
	if !tok.Valid {
		return nil, ErrTokenInvalid
	}

	c, ok := tok.Claims.(*tokenClaims)
	if !ok || c.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return &Claims{Email: c.Subject, Role: c.Role}, nil
}

// Package auth implements token issuing/verification, password hashing and
// the access gate guarding protected operations.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// Claims carries the registered claims plus the authenticated user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string
}

// TokenManager issues and verifies HS256-signed tokens. The clock is
// injectable so expiry can be tested without sleeping.
type TokenManager struct {
	secret   []byte
	validity time.Duration
	clock    clockwork.Clock
}

func NewTokenManager(secret []byte, validity time.Duration, clock clockwork.Clock) *TokenManager {
	return &TokenManager{secret: secret, validity: validity, clock: clock}
}

// Issue signs a token for email expiring validity from now.
func (m *TokenManager) Issue(email string) (string, error) {
	now := m.clock.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature, then the expiry, and returns the subject
// email. A bad signature or malformed token fails with
// common.ErrInvalidToken; a past expiry fails with common.ErrTokenExpired.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		// signature problems win over expiry
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", common.ErrInvalidToken
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}

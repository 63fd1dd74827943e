// Package common defines shared constants and sentinel errors used across
// client and server layers of Snippr. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Crypto errors (malformed ciphertext or wrong key). Treated as data
	// corruption: surfaced to the caller, never silently swallowed.
	ErrCrypto = errors.New("crypto error")
)

// Package services contains the application services tying repositories,
// crypto and auth together. All invariants live here or below; the HTTP
// binding above only translates errors to status codes.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/server/auth"
	"github.com/dmitrijs2005/snippr/internal/server/models"
	"github.com/dmitrijs2005/snippr/internal/server/repositories/users"
)

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so Login does the same amount of work either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserService struct {
	users  users.Repository
	hasher auth.Hasher
	tokens *auth.TokenManager
}

func NewUserService(users users.Repository, hasher auth.Hasher, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user with a salted password hash. Duplicate emails
// fail with common.ErrorAlreadyExists, empty fields with
// common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a token on success. Bad
// credentials and unknown emails both fail with common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison anyway to keep the code path uniform
			s.hasher.Check(password, dummyHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}

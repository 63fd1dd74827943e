package auth

import (
	"context"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/server/repositories/users"
)

// Gate is the authorization checkpoint in front of protected operations.
// It composes token verification with a credential-store existence check:
// a token whose subject is no longer a known user does not pass.
type Gate struct {
	tokens *TokenManager
	users  users.Repository
}

func NewGate(tokens *TokenManager, users users.Repository) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Authorize validates the bearer token and resolves it to a known user's
// email. Any failure (missing, malformed, expired token, or unknown
// subject) is reported as common.ErrorUnauthorized, so rejected calls
// carry no hint about which check failed.
func (g *Gate) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}

	email, err := g.tokens.Verify(token)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	if _, err := g.users.GetUserByEmail(ctx, email); err != nil {
		return "", common.ErrorUnauthorized
	}

	return email, nil
}

package snippets

import (
	"context"

	"github.com/dmitrijs2005/snippr/internal/server/models"
)

// Repository holds snippets keyed by an auto-incrementing identifier.
// Implementations store ciphertext only; encryption happens in the service
// layer before Insert.
type Repository interface {
	// Insert assigns the next id to the snippet, stores it and returns the
	// stored record. Ids are strictly increasing and never reused.
	Insert(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error)

	// Get returns the snippet with the exact id, or common.ErrorNotFound.
	Get(ctx context.Context, id int64) (*models.Snippet, error)

	// List returns snippets in insertion order. A non-empty languageFilter
	// restricts the result to snippets whose language matches
	// case-insensitively.
	List(ctx context.Context, languageFilter string) ([]*models.Snippet, error)
}

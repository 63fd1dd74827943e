package snippets

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/server/models"
)

// MemoryRepository keeps snippets in process memory for the lifetime of the
// service. The id-assignment-and-append is a single critical section, so
// ids stay unique and strictly increasing under concurrent inserts.
type MemoryRepository struct {
	mu       sync.RWMutex
	snippets []*models.Snippet
	nextID   int64
}

// NewMemoryRepository creates a repository pre-loaded with seed snippets.
// The next assigned id continues from the highest seed id.
func NewMemoryRepository(seed []*models.Snippet) *MemoryRepository {
	var maxID int64
	stored := make([]*models.Snippet, 0, len(seed))
	for _, s := range seed {
		copied := *s
		stored = append(stored, &copied)
		if copied.ID > maxID {
			maxID = copied.ID
		}
	}

	return &MemoryRepository{snippets: stored, nextID: maxID + 1}
}

func (r *MemoryRepository) Insert(ctx context.Context, snippet *models.Snippet) (*models.Snippet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *snippet
	stored.ID = r.nextID
	r.nextID++
	r.snippets = append(r.snippets, &stored)

	result := stored
	return &result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*models.Snippet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.snippets {
		if s.ID == id {
			result := *s
			return &result, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(ctx context.Context, languageFilter string) ([]*models.Snippet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Snippet, 0, len(r.snippets))
	for _, s := range r.snippets {
		if languageFilter != "" && !strings.EqualFold(s.Language, languageFilter) {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}

	return result, nil
}

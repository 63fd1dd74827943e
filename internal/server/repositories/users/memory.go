package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/server/models"
)

// MemoryRepository keeps user records in process memory. The
// existence-check-and-insert in Create is a single critical section.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return common.ErrorAlreadyExists
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[user.Email] = &stored

	return nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}

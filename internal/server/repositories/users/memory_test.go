package users

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/snippr/internal/common"
	"github.com/dmitrijs2005/snippr/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	err := repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "hash"})
	require.NoError(t, err)

	user, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h1"}))

	err := repo.Create(ctx, &models.User{Email: "alice@example.com", PasswordHash: "h2"})
	assert.True(t, errors.Is(err, common.ErrorAlreadyExists))

	// email comparison is case-sensitive, so this is a different user
	err = repo.Create(ctx, &models.User{Email: "Alice@example.com", PasswordHash: "h3"})
	assert.NoError(t, err)
}

func TestGetUserByEmail_Unknown(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCreate_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	const n = 50
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &models.User{Email: "race@example.com", PasswordHash: "h"})
		}()
	}
	wg.Wait()
	close(errs)

	var created int
	for err := range errs {
		if err == nil {
			created++
		} else if !errors.Is(err, common.ErrorAlreadyExists) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
}

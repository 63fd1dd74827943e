package snippets

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

func TestInsert_IDsStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	var prev int64
	for i := 0; i < 5; i++ {
		s, err := repo.Insert(ctx, &models.Snippet{Language: "go", Ciphertext: "aa"})
		require.NoError(t, err)
		assert.Greater(t, s.ID, prev)
		prev = s.ID
	}
	assert.Equal(t, int64(5), prev)
}

func TestInsert_ContinuesFromSeedMax(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := []*models.Snippet{
		{ID: 2, Language: "go", Ciphertext: "aa"},
		{ID: 5, Language: "python", Ciphertext: "bb"},
	}
	repo := NewMemoryRepository(seed)

	s, err := repo.Insert(ctx, &models.Snippet{Language: "ruby", Ciphertext: "cc"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.ID)
}

func TestGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	inserted, err := repo.Insert(ctx, &models.Snippet{Language: "go", Ciphertext: "aa", Description: "demo"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted, got)

	_, err = repo.Get(ctx, 99)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestList_FilterCaseInsensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	_, err := repo.Insert(ctx, &models.Snippet{Language: "Python", Ciphertext: "aa"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &models.Snippet{Language: "go", Ciphertext: "bb"})
	require.NoError(t, err)

	list, err := repo.List(ctx, "python")
	require.NoError(t, err)
	require.Len(t, list, 1)
	// language is stored as provided, filtering is what ignores case
	assert.Equal(t, "Python", list[0].Language)
}

func TestList_NoFilterReturnsAllInInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	langs := []string{"go", "python", "ruby"}
	for _, l := range langs {
		_, err := repo.Insert(ctx, &models.Snippet{Language: l, Ciphertext: "aa"})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, l := range langs {
		assert.Equal(t, l, list[i].Language)
		assert.Equal(t, int64(i+1), list[i].ID)
	}
}

func TestInsert_ConcurrentIDsUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := repo.Insert(ctx, &models.Snippet{Language: "go", Ciphertext: "aa"})
			if err != nil {
				t.Errorf("Insert error: %v", err)
				return
			}
			ids <- s.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMutationsDoNotLeakStoredState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	inserted, err := repo.Insert(ctx, &models.Snippet{Language: "go", Ciphertext: "aa"})
	require.NoError(t, err)

	// mutating the returned record must not change the stored one
	inserted.Language = "mutated"

	got, err := repo.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", got.Language)
}

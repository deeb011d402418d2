package repositories_test

import (
	"sync"
	"testing"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStockRepository_GetAvailable_MissingRowIsZero(t *testing.T) {
	repo := repositories.NewMockStockRepository()

	available, err := repo.GetAvailable("ghost", "M")

	assert.NoError(t, err)
	assert.Equal(t, 0, available)
}

func TestMockStockRepository_TryDecrement(t *testing.T) {
	repo := repositories.NewMockStockRepository()
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p1", Size: "M", Quantity: 5}))

	ok, err := repo.TryDecrement("p1", "M", 3)
	assert.NoError(t, err)
	assert.True(t, ok)

	available, _ := repo.GetAvailable("p1", "M")
	assert.Equal(t, 2, available)

	// More than remains: refused, quantity unchanged.
	ok, err = repo.TryDecrement("p1", "M", 3)
	assert.NoError(t, err)
	assert.False(t, ok)
	available, _ = repo.GetAvailable("p1", "M")
	assert.Equal(t, 2, available)

	// Missing row: refused, not an error.
	ok, err = repo.TryDecrement("ghost", "M", 1)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Non-positive amounts are caller bugs.
	_, err = repo.TryDecrement("p1", "M", 0)
	assert.Error(t, err)
	_, err = repo.TryDecrement("p1", "M", -2)
	assert.Error(t, err)
}

func TestMockStockRepository_ConcurrentDecrementsNeverOversell(t *testing.T) {
	repo := repositories.NewMockStockRepository()
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p1", Size: "M", Quantity: 10}))

	// 50 goroutines each try to take 1 unit of the 10 available.
	const attempts = 50
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.TryDecrement("p1", "M", 1)
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, ok := range results {
		if ok {
			successes++
		}
	}

	// Exactly the available quantity was handed out and the ledger ends at
	// zero, never below.
	assert.Equal(t, 10, successes)
	available, _ := repo.GetAvailable("p1", "M")
	assert.Equal(t, 0, available)
}

func TestMockStockRepository_Increment(t *testing.T) {
	repo := repositories.NewMockStockRepository()
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p1", Size: "M", Quantity: 2}))

	require.NoError(t, repo.Increment("p1", "M", 3))
	available, _ := repo.GetAvailable("p1", "M")
	assert.Equal(t, 5, available)

	// Restoring a row that never existed is an error, not a silent create.
	assert.Error(t, repo.Increment("ghost", "M", 1))
}

func TestMockStockRepository_GetByProductID(t *testing.T) {
	repo := repositories.NewMockStockRepository()
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p1", Size: "S", Quantity: 3}))
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p1", Size: "M", Quantity: 4}))
	require.NoError(t, repo.Upsert(&models.StockEntry{ProductID: "p2", Size: "M", Quantity: 9}))

	entries, err := repo.GetByProductID("p1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "p1", entry.ProductID)
	}
}

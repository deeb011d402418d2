package repositories

import (
	"fmt"
	"sync"

	"clothingshop/internal/models"
)

// MockStockRepository is an in-memory implementation of StockRepository.
// All operations run under one mutex, so TryDecrement is atomic the same
// way the database-backed conditional UPDATE is.
type MockStockRepository struct {
	entries map[string]int
	mu      sync.RWMutex
}

// NewMockStockRepository creates a new instance of MockStockRepository.
func NewMockStockRepository() *MockStockRepository {
	return &MockStockRepository{
		entries: make(map[string]int),
	}
}

func stockKey(productID, size string) string {
	return productID + "|" + size
}

// GetAvailable returns the quantity for a configuration, 0 if absent.
func (r *MockStockRepository) GetAvailable(productID, size string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries[stockKey(productID, size)], nil
}

// TryDecrement subtracts amount only if covered by the current quantity.
func (r *MockStockRepository) TryDecrement(productID, size string, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("decrement amount must be positive, got %d", amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey(productID, size)
	current, ok := r.entries[key]
	if !ok || current < amount {
		return false, nil
	}
	r.entries[key] = current - amount
	return true, nil
}

// Increment adds quantity back to an existing entry.
func (r *MockStockRepository) Increment(productID, size string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("increment amount must be positive, got %d", amount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := stockKey(productID, size)
	if _, ok := r.entries[key]; !ok {
		return fmt.Errorf("stock entry for product %s size %s not found", productID, size)
	}
	r.entries[key] += amount
	return nil
}

// Upsert creates or replaces the quantity for a configuration.
func (r *MockStockRepository) Upsert(entry *models.StockEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[stockKey(entry.ProductID, entry.Size)] = entry.Quantity
	return nil
}

// GetByProductID returns all stock rows of one product.
func (r *MockStockRepository) GetByProductID(productID string) ([]models.StockEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := productID + "|"
	var entries []models.StockEntry
	for key, quantity := range r.entries {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			entries = append(entries, models.StockEntry{
				ProductID: productID,
				Size:      key[len(prefix):],
				Quantity:  quantity,
			})
		}
	}
	return entries, nil
}

package repositories

import (
	"fmt"
	"sync"
	"time"

	"clothingshop/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Lines are kept in insertion order per user.
type MockCartRepository struct {
	lines map[string][]models.CartLine
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		lines: make(map[string][]models.CartLine),
	}
}

// GetByUserID returns the user's cart lines in insertion order.
func (r *MockCartRepository) GetByUserID(userID string) ([]models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]models.CartLine, len(r.lines[userID]))
	copy(lines, r.lines[userID])
	return lines, nil
}

// GetLine returns the user's line for one configuration, (nil, nil) if absent.
func (r *MockCartRepository) GetLine(userID, productID, size string) (*models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, line := range r.lines[userID] {
		if line.ProductID == productID && line.Size == size {
			found := line
			return &found, nil
		}
	}
	return nil, nil
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(line *models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	if line.CreatedAt.IsZero() {
		line.CreatedAt = time.Now()
	}
	r.lines[line.UserID] = append(r.lines[line.UserID], *line)
	return nil
}

// UpdateQuantity sets the quantity of an existing line.
func (r *MockCartRepository) UpdateQuantity(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, lines := range r.lines {
		for i := range lines {
			if lines[i].ID == id {
				r.lines[userID][i].Quantity = quantity
				return nil
			}
		}
	}
	return fmt.Errorf("cart line with ID %s not found", id)
}

// Delete removes one line, scoped to the owning user.
func (r *MockCartRepository) Delete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.lines[userID]
	for i := range lines {
		if lines[i].ID == id {
			r.lines[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart line %s not found for user %s", id, userID)
}

// Clear removes every line of the user.
func (r *MockCartRepository) Clear(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := int64(len(r.lines[userID]))
	delete(r.lines, userID)
	return removed, nil
}

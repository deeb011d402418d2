package repositories

import (
	"clothingshop/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// append-only; Delete exists solely for the compensating-rollback path of a
// failed order attempt.
type OrderRepository interface {
	// Create persists the order header together with its lines.
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// GetByUserID returns the user's orders newest first, lines included.
	GetByUserID(userID string) ([]models.Order, error)
	// Delete removes the order and all its lines.
	Delete(id string) error
}

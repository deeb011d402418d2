package repositories

import (
	"clothingshop/internal/models"
)

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	// GetByUserID returns the user's cart lines in insertion order.
	GetByUserID(userID string) ([]models.CartLine, error)
	// GetLine returns the user's line for one (product, size) configuration,
	// or (nil, nil) when the user has no such line.
	GetLine(userID, productID, size string) (*models.CartLine, error)
	Create(line *models.CartLine) error
	UpdateQuantity(id string, quantity int) error
	// Delete removes one line, scoped to the owning user.
	Delete(id, userID string) error
	// Clear removes every line of the user and reports how many were removed.
	Clear(userID string) (int64, error)
}

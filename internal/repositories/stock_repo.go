package repositories

import (
	"clothingshop/internal/models"
)

// StockRepository is the stock ledger: the authoritative per-(product, size)
// inventory count and its atomic conditional decrement.
type StockRepository interface {
	// GetAvailable returns the quantity on hand for the given configuration.
	// A missing row means the configuration is not sold and reports 0.
	GetAvailable(productID, size string) (int, error)
	// TryDecrement subtracts amount only if the current quantity covers it.
	// The check and the subtraction are a single indivisible operation, so
	// concurrent callers can never drive the quantity below zero. Returns
	// false, without mutating anything, when stock is insufficient or the
	// row does not exist.
	TryDecrement(productID, size string, amount int) (bool, error)
	// Increment adds amount back to an existing row. Used to restore stock
	// when an order attempt is rolled back.
	Increment(productID, size string, amount int) error
	// Upsert creates or replaces the quantity for a configuration.
	Upsert(entry *models.StockEntry) error
	// GetByProductID returns every stock row of one product.
	GetByProductID(productID string) ([]models.StockEntry, error)
}

package repositories

import (
	"errors"
	"fmt"

	"clothingshop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{
		db: db,
	}
}

// GetAvailable returns the quantity for a (product, size) row, or 0 when no
// such row exists.
func (r *GORMStockRepository) GetAvailable(productID, size string) (int, error) {
	var entry models.StockEntry
	err := r.db.First(&entry, "product_id = ? AND size = ?", productID, size).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get stock for product %s size %s: %w", productID, size, err)
	}
	return entry.Quantity, nil
}

// TryDecrement runs a single conditional UPDATE guarded by the current
// quantity. The database applies the WHERE check and the subtraction as one
// row-level operation, which is what makes concurrent checkouts on the same
// configuration safe.
func (r *GORMStockRepository) TryDecrement(productID, size string, amount int) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("decrement amount must be positive, got %d", amount)
	}
	res := r.db.Model(&models.StockEntry{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return false, fmt.Errorf("failed to decrement stock for product %s size %s: %w", productID, size, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Increment adds quantity back to an existing row.
func (r *GORMStockRepository) Increment(productID, size string, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("increment amount must be positive, got %d", amount)
	}
	res := r.db.Model(&models.StockEntry{}).
		Where("product_id = ? AND size = ?", productID, size).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", amount))
	if res.Error != nil {
		return fmt.Errorf("failed to increment stock for product %s size %s: %w", productID, size, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock entry for product %s size %s not found", productID, size)
	}
	return nil
}

// Upsert creates the row or replaces its quantity in one conflict-handling
// INSERT, so concurrent upserts on the same configuration stay atomic the
// same way TryDecrement does.
func (r *GORMStockRepository) Upsert(entry *models.StockEntry) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert stock entry: %w", err)
	}
	return nil
}

// GetByProductID returns all stock rows of one product.
func (r *GORMStockRepository) GetByProductID(productID string) ([]models.StockEntry, error) {
	var entries []models.StockEntry
	if err := r.db.Where("product_id = ?", productID).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get stock for product %s: %w", productID, err)
	}
	return entries, nil
}

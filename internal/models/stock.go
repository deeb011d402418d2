package models

// StockEntry holds the available quantity for one (product, size)
// combination. Absence of a row means the product is not sold in that size.
// Quantity never goes below zero; the decrement boundary enforces it.
type StockEntry struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	ProductID string `json:"product_id" gorm:"type:varchar(50);uniqueIndex:idx_stock_product_size" validate:"required"`
	Size      string `json:"size" gorm:"type:varchar(10);uniqueIndex:idx_stock_product_size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

package models

import "time"

// CartLine is one pending (product, size, quantity) entry in a user's cart.
// Repeat adds of the same configuration accumulate into a single line
// instead of creating duplicates.
type CartLine struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index"`
	ProductID string    `json:"product_id" gorm:"type:varchar(50)"`
	Size      string    `json:"size" gorm:"type:varchar(10)"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
	CreatedAt time.Time `json:"created_at"`
}

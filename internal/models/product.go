package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents one catalog item. Products are created through the
// seeding path and are read-only through this API.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(50)" validate:"required,max=50"`
	Name        string          `json:"name" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Category    string          `json:"category" gorm:"type:varchar(50)" validate:"required,max=50"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	Description string          `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	Image       string          `json:"image" gorm:"type:varchar(255)" validate:"omitempty,url"`
	CreatedAt   time.Time       `json:"created_at"`
}

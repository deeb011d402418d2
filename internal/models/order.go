package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusConfirmed is the status every successfully committed order
// carries. The column is a varchar so richer lifecycles can be added later.
const OrderStatusConfirmed = "confirmed"

// Order is a committed purchase. Orders are immutable once created; the
// total is always the server-computed sum of the lines.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"type:varchar(36);index"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status" gorm:"type:varchar(20)"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text"`
	Lines           []OrderLine     `json:"lines" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderLine captures one purchased configuration with the unit price at the
// time of purchase. Later catalog price changes never alter it.
type OrderLine struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	OrderID   string          `json:"-" gorm:"type:varchar(36);index"`
	ProductID string          `json:"product_id" gorm:"type:varchar(50)"`
	Size      string          `json:"size" gorm:"type:varchar(10)"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

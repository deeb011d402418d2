package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
var ErrEmptyCart = errors.New("cart is empty")

// Shortfall describes one cart line whose requested quantity exceeds the
// currently available stock.
type Shortfall struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// VerificationError reports every shortfall found in a cart, not just the
// first, so a caller can fix the whole cart in one pass.
type VerificationError struct {
	Shortfalls []Shortfall
}

func (e *VerificationError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("insufficient stock for product %s size %s (requested: %d, available: %d)",
			s.ProductID, s.Size, s.Requested, s.Available))
	}
	return strings.Join(parts, ", ")
}

// StockExhaustedError is returned when a stock decrement fails at commit
// time: a concurrent order consumed the remaining units after verification
// had already passed. The whole checkout is safe to retry from the top.
type StockExhaustedError struct {
	ProductID string
	Size      string
	Requested int
}

func (e *StockExhaustedError) Error() string {
	return fmt.Sprintf("stock exhausted for product %s size %s (requested: %d)",
		e.ProductID, e.Size, e.Requested)
}

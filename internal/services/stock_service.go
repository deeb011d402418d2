package services

import (
	"fmt"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"
)

// StockService exposes the stock ledger and performs pre-commit cart
// verification.
type StockService struct {
	stockRepo repositories.StockRepository
}

// NewStockService creates a new StockService.
func NewStockService(stockRepo repositories.StockRepository) *StockService {
	return &StockService{
		stockRepo: stockRepo,
	}
}

// GetAvailable returns the quantity on hand for one configuration.
func (s *StockService) GetAvailable(productID, size string) (int, error) {
	return s.stockRepo.GetAvailable(productID, size)
}

// VerifyCart checks every cart line against current stock and collects all
// shortfalls into one VerificationError. The verdict is advisory: stock can
// change before commit, and the atomic decrement during order creation is
// what actually prevents overselling. Verifying early just gives the caller
// a complete, friendly rejection without attempting a doomed order.
func (s *StockService) VerifyCart(lines []models.CartLine) error {
	var shortfalls []Shortfall
	for _, line := range lines {
		available, err := s.stockRepo.GetAvailable(line.ProductID, line.Size)
		if err != nil {
			return fmt.Errorf("failed to check stock for product %s size %s: %w", line.ProductID, line.Size, err)
		}
		if available < line.Quantity {
			shortfalls = append(shortfalls, Shortfall{
				ProductID: line.ProductID,
				Size:      line.Size,
				Requested: line.Quantity,
				Available: available,
			})
		}
	}
	if len(shortfalls) > 0 {
		return &VerificationError{Shortfalls: shortfalls}
	}
	return nil
}

// SetStock creates or replaces the quantity of one configuration. Used by
// the seeding path.
func (s *StockService) SetStock(entry *models.StockEntry) error {
	return s.stockRepo.Upsert(entry)
}

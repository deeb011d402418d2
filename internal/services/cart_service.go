package services

import (
	"fmt"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService handles shopping cart operations.
type CartService struct {
	cartRepo    repositories.CartRepository
	stockRepo   repositories.StockRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, stockRepo repositories.StockRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// CartLineDetail is a cart line joined with the product's display fields.
type CartLineDetail struct {
	models.CartLine
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// GetCart returns the user's cart lines with product details attached.
func (s *CartService) GetCart(userID string) ([]CartLineDetail, error) {
	lines, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	details := make([]CartLineDetail, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s for cart line %s: %w", line.ProductID, line.ID, err)
		}
		details = append(details, CartLineDetail{
			CartLine: line,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Category: product.Category,
		})
	}
	return details, nil
}

// AddLine adds a (product, size) configuration to the user's cart. A repeat
// add of the same configuration accumulates into the existing line instead
// of creating a duplicate. The combined quantity is checked against current
// stock so the cart never holds a line already known to be unsatisfiable.
func (s *CartService) AddLine(userID, productID, size string, quantity int) (*models.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	available, err := s.stockRepo.GetAvailable(productID, size)
	if err != nil {
		return nil, fmt.Errorf("failed to check stock: %w", err)
	}
	if available == 0 {
		return nil, fmt.Errorf("product %s is not available in size %s", productID, size)
	}

	existing, err := s.cartRepo.GetLine(userID, productID, size)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart line: %w", err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if newQuantity > available {
			return nil, fmt.Errorf("insufficient stock for product %s size %s (available: %d, requested: %d)",
				productID, size, available, newQuantity)
		}
		if err := s.cartRepo.UpdateQuantity(existing.ID, newQuantity); err != nil {
			return nil, err
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	if quantity > available {
		return nil, fmt.Errorf("insufficient stock for product %s size %s (available: %d, requested: %d)",
			productID, size, available, quantity)
	}

	line := &models.CartLine{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateLine sets the quantity of an existing cart line, capped by current
// stock.
func (s *CartService) UpdateLine(userID, lineID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	lines, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	var target *models.CartLine
	for i := range lines {
		if lines[i].ID == lineID {
			target = &lines[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("cart line %s not found for user %s", lineID, userID)
	}

	available, err := s.stockRepo.GetAvailable(target.ProductID, target.Size)
	if err != nil {
		return fmt.Errorf("failed to check stock: %w", err)
	}
	if quantity > available {
		return fmt.Errorf("insufficient stock for product %s size %s (available: %d, requested: %d)",
			target.ProductID, target.Size, available, quantity)
	}

	return s.cartRepo.UpdateQuantity(lineID, quantity)
}

// RemoveLine deletes one cart line owned by the user.
func (s *CartService) RemoveLine(userID, lineID string) error {
	return s.cartRepo.Delete(lineID, userID)
}

// Clear removes every line of the user's cart.
func (s *CartService) Clear(userID string) (int64, error) {
	return s.cartRepo.Clear(userID)
}

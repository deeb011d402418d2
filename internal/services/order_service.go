package services

import (
	"fmt"
	"log"
	"time"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService creates orders and answers order queries. Order creation is
// all-or-nothing across the cart lines: either every line is persisted with
// its stock decremented, or nothing of the attempt survives.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, stockRepo repositories.StockRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// CreateOrder persists an order for the given cart lines and decrements
// stock for every line. The total is always recomputed here from the
// current unit prices; each line stores that price as an immutable
// snapshot. If any decrement fails, every decrement applied so far is
// restored and the order with its lines is removed before the error is
// returned, so a failed attempt never leaves partial state behind.
func (s *OrderService) CreateOrder(userID string, lines []models.CartLine, shippingAddress string) (*models.Order, error) {
	total := decimal.Zero
	orderLines := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", line.ProductID, err)
		}
		orderLines = append(orderLines, models.OrderLine{
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Total:           total,
		Status:          models.OrderStatusConfirmed,
		ShippingAddress: shippingAddress,
		Lines:           orderLines,
		CreatedAt:       time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Decrement stock line by line. Each decrement is a single conditional
	// update, so concurrent orders racing for the same (product, size) can
	// never drive the quantity below zero; the loser of the race observes a
	// failed decrement here, after its verification already passed.
	for i, line := range lines {
		ok, err := s.stockRepo.TryDecrement(line.ProductID, line.Size, line.Quantity)
		if err != nil {
			s.rollback(order.ID, lines, i)
			return nil, fmt.Errorf("failed to decrement stock for product %s size %s: %w", line.ProductID, line.Size, err)
		}
		if !ok {
			s.rollback(order.ID, lines, i)
			return nil, &StockExhaustedError{
				ProductID: line.ProductID,
				Size:      line.Size,
				Requested: line.Quantity,
			}
		}
	}

	return order, nil
}

// rollback restores the first n decrements and removes the order so a
// failed attempt leaves no trace.
func (s *OrderService) rollback(orderID string, lines []models.CartLine, n int) {
	for _, line := range lines[:n] {
		if err := s.stockRepo.Increment(line.ProductID, line.Size, line.Quantity); err != nil {
			log.Printf("Failed to restore stock for product %s size %s during rollback of order %s: %v",
				line.ProductID, line.Size, orderID, err)
		}
	}
	if err := s.orderRepo.Delete(orderID); err != nil {
		log.Printf("Failed to delete order %s during rollback: %v", orderID, err)
	}
}

// GetUserOrders returns the user's orders newest first, lines included.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order with its lines.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

package services

import (
	"fmt"
	"log"

	"clothingshop/internal/models"
	"clothingshop/internal/repositories"
	"clothingshop/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// CheckoutService sequences one checkout attempt: load the cart, verify
// stock, create the order, then clear the cart. Verification failures and
// an empty cart are rejected before any write happens; a stock race at
// commit time surfaces as StockExhaustedError after the order writer has
// already rolled everything back.
type CheckoutService struct {
	cartRepo     repositories.CartRepository
	stockService *StockService
	orderService *OrderService
	mqClient     *rabbitmq.Client
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil, in
// which case no order events are published.
func NewCheckoutService(cartRepo repositories.CartRepository, stockService *StockService, orderService *OrderService, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		stockService: stockService,
		orderService: orderService,
		mqClient:     mqClient,
	}
}

// CheckoutResult carries the committed order plus any non-fatal post-commit
// problems worth reporting to the caller.
type CheckoutResult struct {
	Order   *models.Order
	Warning string
}

// Checkout runs the whole order flow for one user. clientTotal is advisory:
// the persisted total is always the server-computed one, a mismatch only
// earns a log line. Possible failures: ErrEmptyCart, *VerificationError,
// *StockExhaustedError, or a wrapped persistence error.
func (s *CheckoutService) Checkout(userID string, shippingAddress string, clientTotal *decimal.Decimal) (*CheckoutResult, error) {
	lines, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for user %s: %w", userID, err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.stockService.VerifyCart(lines); err != nil {
		return nil, err
	}

	order, err := s.orderService.CreateOrder(userID, lines, shippingAddress)
	if err != nil {
		return nil, err
	}

	if clientTotal != nil && !clientTotal.Equal(order.Total) {
		log.Printf("Client total %s does not match server total %s for order %s", clientTotal, order.Total, order.ID)
	}

	result := &CheckoutResult{Order: order}

	// A cart that fails to clear does not invalidate the purchase: the
	// order is committed and the stock already moved. Report it as a
	// warning and move on.
	if _, err := s.cartRepo.Clear(userID); err != nil {
		log.Printf("Failed to clear cart for user %s after order %s: %v", userID, order.ID, err)
		result.Warning = "order created but cart could not be cleared"
	}

	s.publishOrderCreated(order)

	return result, nil
}

// publishOrderCreated emits an order.created event. Publish failures are
// logged and swallowed; the order stands regardless.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total.String(),
	}
	if err := s.mqClient.PublishOrderCreated(payload); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	}
}

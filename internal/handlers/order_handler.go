package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"clothingshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// OrderHandler handles HTTP requests for checkout and order history. All
// routes require authentication.
type OrderHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
	validate        *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkoutService *services.CheckoutService, orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCheckout)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// ShippingAddress is the structured delivery address of a checkout request.
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required,max=255"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// CheckoutRequest is the body of POST /orders. Total is optional and
// advisory; the server always computes its own.
type CheckoutRequest struct {
	ShippingAddress ShippingAddress  `json:"shipping_address" validate:"required"`
	Total           *decimal.Decimal `json:"total"`
}

// HandleCheckout turns the user's cart into an order. The response names
// one of the distinguishable outcome kinds: EmptyCart, VerificationFailed
// (with itemized shortfalls), StockExhausted (naming the exhausted line),
// or PersistenceFailure.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Shipping address is required",
			"errors":  errorMessages,
		})
	}

	addressJSON, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid shipping address",
			"error":   err.Error(),
		})
	}

	result, err := h.checkoutService.Checkout(userID, string(addressJSON), req.Total)
	if err != nil {
		var verificationErr *services.VerificationError
		var stockErr *services.StockExhaustedError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "EmptyCart",
				"message": "Cart is empty",
			})
		case errors.As(err, &verificationErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      "VerificationFailed",
				"message":    verificationErr.Error(),
				"shortfalls": verificationErr.Shortfalls,
			})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":      "StockExhausted",
				"message":    stockErr.Error(),
				"product_id": stockErr.ProductID,
				"size":       stockErr.Size,
			})
		default:
			log.Printf("Checkout failed for user %s: %v", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "PersistenceFailure",
				"message": "Could not create order",
			})
		}
	}

	response := fiber.Map{
		"order_id": result.Order.ID,
		"total":    result.Order.Total,
		"message":  "Order created successfully",
	}
	if result.Warning != "" {
		response["warning"] = result.Warning
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleGetOrders returns the user's orders newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// HandleGetOrderByID returns one of the user's orders with its lines.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting order %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	// Another user's order reads as not found, never as forbidden.
	if order.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order with ID %s not found", orderID),
		})
	}
	return c.JSON(fiber.Map{"order": order})
}

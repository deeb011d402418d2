package handlers

import (
	"log"
	"strings"

	"clothingshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart. All routes
// require authentication.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddLine)
	cartRoutes.Put("/:id", h.HandleUpdateLine)
	cartRoutes.Delete("/:id", h.HandleRemoveLine)
	cartRoutes.Delete("/", h.HandleClear)
}

// HandleGetCart returns the user's cart with product details.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cart, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"items": cart})
}

// HandleAddLine adds a configuration to the cart, coalescing repeat adds.
func (h *CartHandler) HandleAddLine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req struct {
		ProductID string `json:"product_id" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id and size are required",
		})
	}

	line, err := h.service.AddLine(userID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		log.Printf("Error adding to cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// HandleUpdateLine sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateLine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")

	var req struct {
		Quantity int `json:"quantity" validate:"required,gte=1"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "quantity must be at least 1",
		})
	}

	if err := h.service.UpdateLine(userID, lineID, req.Quantity); err != nil {
		log.Printf("Error updating cart line %s for user %s: %v", lineID, userID, err)
		status := fiber.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "Could not update cart line",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart line updated"})
}

// HandleRemoveLine deletes one cart line.
func (h *CartHandler) HandleRemoveLine(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")

	if err := h.service.RemoveLine(userID, lineID); err != nil {
		log.Printf("Error removing cart line %s for user %s: %v", lineID, userID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cart line not found",
		})
	}
	return c.JSON(fiber.Map{"message": "Cart line removed"})
}

// HandleClear empties the user's cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	removed, err := h.service.Clear(userID)
	if err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
		"removed": removed,
	})
}

package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/models"
	"designstudio/internal/services"
)

// OrderHandler handles the checkout endpoint.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes with the Fiber router.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// HandleCheckout records a cart as a paid order with mock download links.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var payload models.CheckoutRequest
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing checkout body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.Checkout(c.Context(), payload)
	if err != nil {
		log.Printf("Error recording checkout: %v", err)
		return respondError(c, "Order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

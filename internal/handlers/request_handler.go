package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/models"
	"designstudio/internal/services"
)

// RequestHandler handles custom design request submissions.
type RequestHandler struct {
	service *services.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers the custom request routes with the Fiber router.
func (h *RequestHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/request-custom", h.HandleCreateRequest)
}

// HandleCreateRequest records a custom design brief.
func (h *RequestHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var payload models.CustomRequestIn
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing custom request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	request, err := h.service.Create(c.Context(), payload)
	if err != nil {
		log.Printf("Error creating custom request: %v", err)
		return respondError(c, "Custom request", err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

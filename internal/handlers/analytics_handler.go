package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/services"
)

// AnalyticsHandler serves the read-only store statistics endpoint.
type AnalyticsHandler struct {
	service *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// RegisterRoutes registers the analytics route with the Fiber router.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/analytics", h.HandleAnalytics)
}

// HandleAnalytics returns document counts per collection and the top rated products.
func (h *AnalyticsHandler) HandleAnalytics(c *fiber.Ctx) error {
	overview, err := h.service.Overview(c.Context())
	if err != nil {
		log.Printf("Error computing analytics: %v", err)
		return respondError(c, "Analytics", err)
	}
	return c.JSON(overview)
}

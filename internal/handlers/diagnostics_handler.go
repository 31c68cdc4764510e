package handlers

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/repositories"
)

// DiagnosticsHandler serves the store connectivity check. Unlike the API
// handlers it never fails the request: store errors are folded into the
// reported status so the endpoint stays usable when the database is down.
type DiagnosticsHandler struct {
	store  repositories.Store
	dbName string
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler.
func NewDiagnosticsHandler(store repositories.Store, dbName string) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store:  store,
		dbName: dbName,
	}
}

// RegisterRoutes registers the diagnostic route with the Fiber router.
func (h *DiagnosticsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/test", h.HandleTest)
}

// HandleTest reports backend and database status plus configuration presence.
func (h *DiagnosticsHandler) HandleTest(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store == nil {
		return c.JSON(response)
	}

	response["database"] = h.dbName
	response["connection_status"] = "connected"

	collections, err := h.store.Collections(c.Context())
	if err != nil {
		response["database"] = fmt.Sprintf("connected but error: %v", err)
		return c.JSON(response)
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["collections"] = collections
	return c.JSON(response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

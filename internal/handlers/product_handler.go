package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/models"
	"designstudio/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	// Register /featured before /:id so it is not captured as an id.
	productRoutes.Get("/featured", h.HandleFeaturedProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
}

// HandleListProducts lists products with optional category/style/color
// filters and a free-text title query.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Style:    c.Query("style"),
		Color:    c.Query("color"),
		Query:    c.Query("q"),
	}
	limit := int64(c.QueryInt("limit", 24))

	products, err := h.service.List(c.Context(), filter, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return respondError(c, "Product", err)
	}
	return c.JSON(products)
}

// HandleFeaturedProducts lists featured products, best rated first.
func (h *ProductHandler) HandleFeaturedProducts(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 8))

	products, err := h.service.Featured(c.Context(), limit)
	if err != nil {
		log.Printf("Error listing featured products: %v", err)
		return respondError(c, "Product", err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	product, err := h.service.Get(c.Context(), productID)
	if err != nil {
		log.Printf("Error getting product %s: %v", productID, err)
		return respondError(c, "Product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload models.ProductIn
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.Create(c.Context(), payload)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, "Product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

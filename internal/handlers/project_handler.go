package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"designstudio/internal/models"
	"designstudio/internal/services"
)

// ProjectHandler handles the collaborative review workflow endpoints.
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// RegisterRoutes registers the project routes with the Fiber router.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	projectRoutes := router.Group("/projects")
	projectRoutes.Get("/", h.HandleListProjects)
	projectRoutes.Post("/", h.HandleCreateProject)
	projectRoutes.Post("/:id/upload-draft", h.HandleUploadDraft)
	projectRoutes.Post("/:id/comment", h.HandleAddComment)
	projectRoutes.Post("/:id/approve", h.HandleApproveProject)
}

// HandleListProjects lists projects, optionally filtered by exact client
// email and/or status.
func (h *ProjectHandler) HandleListProjects(c *fiber.Ctx) error {
	filter := models.ProjectFilter{
		ClientEmail: c.Query("email"),
		Status:      c.Query("status"),
	}
	limit := int64(c.QueryInt("limit", 50))

	projects, err := h.service.List(c.Context(), filter, limit)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return respondError(c, "Project", err)
	}
	return c.JSON(projects)
}

// HandleCreateProject opens a new review project.
func (h *ProjectHandler) HandleCreateProject(c *fiber.Ctx) error {
	var payload models.ProjectCreateIn
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing project body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	project, err := h.service.Create(c.Context(), payload)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return respondError(c, "Project", err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// HandleUploadDraft appends a draft URL to the project.
func (h *ProjectHandler) HandleUploadDraft(c *fiber.Ctx) error {
	projectID := c.Params("id")
	url := c.Query("url")
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter url is required",
		})
	}

	project, err := h.service.UploadDraft(c.Context(), projectID, url)
	if err != nil {
		log.Printf("Error uploading draft to project %s: %v", projectID, err)
		return respondError(c, "Project", err)
	}
	return c.JSON(project)
}

// HandleAddComment appends a proof comment to the project.
func (h *ProjectHandler) HandleAddComment(c *fiber.Ctx) error {
	projectID := c.Params("id")

	var payload models.CommentIn
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing comment body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	project, err := h.service.AddComment(c.Context(), projectID, payload)
	if err != nil {
		log.Printf("Error commenting on project %s: %v", projectID, err)
		return respondError(c, "Project", err)
	}
	return c.JSON(project)
}

// HandleApproveProject marks the project approved.
func (h *ProjectHandler) HandleApproveProject(c *fiber.Ctx) error {
	projectID := c.Params("id")

	project, err := h.service.Approve(c.Context(), projectID)
	if err != nil {
		log.Printf("Error approving project %s: %v", projectID, err)
		return respondError(c, "Project", err)
	}
	return c.JSON(project)
}

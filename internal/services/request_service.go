package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/serializer"
)

// RequestService records custom design briefs. Requests start in status
// "new" with no revisions; the project_id link stays empty until a designer
// workflow picks the request up (no endpoint populates it today).
type RequestService struct {
	store repositories.Store
}

// NewRequestService creates a new RequestService.
func NewRequestService(store repositories.Store) *RequestService {
	return &RequestService{store: store}
}

// Create validates and stores a custom design request, returning the
// serialized document.
func (s *RequestService) Create(ctx context.Context, in models.CustomRequestIn) (bson.M, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	references := in.References
	if references == nil {
		references = []string{}
	}

	doc := bson.M{
		"name":            in.Name,
		"email":           in.Email,
		"project_type":    in.ProjectType,
		"references":      references,
		"colors":          in.Colors,
		"due_date":        in.DueDate,
		"budget_estimate": in.BudgetEstimate,
		"details":         in.Details,
		"status":          "new",
		"revision_round":  0,
		"project_id":      nil,
	}

	id, err := s.store.InsertOne(ctx, repositories.CollectionRequest, doc)
	if err != nil {
		return nil, fmt.Errorf("create custom request: %w", err)
	}
	saved, err := s.store.FindByID(ctx, repositories.CollectionRequest, id)
	if err != nil {
		return nil, fmt.Errorf("read back custom request %s: %w", id.Hex(), err)
	}
	return serializer.Document(saved), nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/serializer"
)

// ProjectService drives the collaborative review workflow: a project is
// created in_progress, collects drafts and proof comments, and ends approved.
// Drafts and comments are append-only; each append is a single atomic
// document update, so concurrent appends cannot corrupt the sequences.
type ProjectService struct {
	store  repositories.Store
	events EventPublisher
}

// NewProjectService creates a new ProjectService. events may be nil, in
// which case no project.approved events are published.
func NewProjectService(store repositories.Store, events EventPublisher) *ProjectService {
	return &ProjectService{
		store:  store,
		events: events,
	}
}

// Create validates and stores a new review project, returning the serialized
// document. The request_id reference is recorded as given, unvalidated.
func (s *ProjectService) Create(ctx context.Context, in models.ProjectCreateIn) (bson.M, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	var requestID any
	if in.RequestID != "" {
		requestID = in.RequestID
	}

	doc := bson.M{
		"title":        in.Title,
		"client_email": in.ClientEmail,
		"request_id":   requestID,
		"status":       models.ProjectStatusInProgress,
		"drafts":       []bson.M{},
		"comments":     []bson.M{},
		"history":      []bson.M{},
	}

	id, err := s.store.InsertOne(ctx, repositories.CollectionProject, doc)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	saved, err := s.store.FindByID(ctx, repositories.CollectionProject, id)
	if err != nil {
		return nil, fmt.Errorf("read back project %s: %w", id.Hex(), err)
	}
	return serializer.Document(saved), nil
}

// List returns projects matching the optional exact-match filters, serialized.
func (s *ProjectService) List(ctx context.Context, filter models.ProjectFilter, limit int64) ([]bson.M, error) {
	query := bson.M{}
	if filter.ClientEmail != "" {
		query["client_email"] = filter.ClientEmail
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	docs, err := s.store.Find(ctx, repositories.CollectionProject, query, nil, limit)
	if err != nil {
		return nil, err
	}
	return serializer.Documents(docs), nil
}

// UploadDraft appends a draft entry to the project and refreshes updated_at.
// The URL is stored as an opaque string. Returns the serialized project.
func (s *ProjectService) UploadDraft(ctx context.Context, id, url string) (bson.M, error) {
	now := time.Now().UTC()
	return s.mutate(ctx, id, bson.M{
		"$push": bson.M{"drafts": bson.M{"url": url, "uploaded_at": now}},
		"$set":  bson.M{"updated_at": now},
	})
}

// AddComment appends an open proof comment to the project and refreshes
// updated_at. Returns the serialized project.
func (s *ProjectService) AddComment(ctx context.Context, id string, in models.CommentIn) (bson.M, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	comment := bson.M{
		"author":     in.Author,
		"message":    in.Message,
		"x":          in.X,
		"y":          in.Y,
		"created_at": now,
		"status":     "open",
	}
	return s.mutate(ctx, id, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": now},
	})
}

// Approve marks the project approved and stamps approved_at. The update is
// unconditional: approving an already-approved project restamps the time.
// Returns the serialized project.
func (s *ProjectService) Approve(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.mutate(ctx, id, bson.M{
		"$set": bson.M{
			"status":      models.ProjectStatusApproved,
			"approved_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return nil, err
	}
	s.publishApproved(id)
	return doc, nil
}

// mutate applies a targeted update to one project and returns the refreshed,
// serialized document. An unmatched update means the project does not exist.
func (s *ProjectService) mutate(ctx context.Context, id string, update bson.M) (bson.M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	matched, err := s.store.UpdateByID(ctx, repositories.CollectionProject, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	if matched == 0 {
		return nil, repositories.ErrNotFound
	}
	saved, err := s.store.FindByID(ctx, repositories.CollectionProject, oid)
	if err != nil {
		return nil, fmt.Errorf("read back project %s: %w", id, err)
	}
	return serializer.Document(saved), nil
}

func (s *ProjectService) publishApproved(projectID string) {
	if s.events == nil {
		return
	}
	event := map[string]any{
		"event_id":   uuid.New().String(),
		"project_id": projectID,
		"status":     models.ProjectStatusApproved,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal project.approved event for project %s: %v", projectID, err)
		return
	}
	if err := s.events.Publish("project.approved", body); err != nil {
		log.Printf("Warning: failed to publish project.approved event for project %s: %v", projectID, err)
	}
}

package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names. Every entity lives in its own collection; the store is
// the sole persistence between requests.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
	CollectionRequest = "customrequest"
	CollectionProject = "project"
)

// ErrNotFound is returned when a document lookup or targeted update matches nothing.
var ErrNotFound = errors.New("document not found")

// Store defines the document store contract the services are written against.
// All operations are single-document or single-query; there are no
// multi-document transactions.
type Store interface {
	// InsertOne stores a new document and returns its generated identifier.
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	// FindByID returns the document with the given identifier, or ErrNotFound.
	FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
	// Find returns documents matching filter in store order, optionally sorted,
	// capped at limit (limit <= 0 means no cap).
	Find(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64) ([]bson.M, error)
	// UpdateByID applies an update document ($set/$push) to a single document
	// and reports how many documents matched (0 or 1).
	UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, update bson.M) (int64, error)
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	// Collections lists the collection names present in the database.
	// Used by the connectivity diagnostic only.
	Collections(ctx context.Context) ([]string, error)
}

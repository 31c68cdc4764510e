package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path parameter is not a syntactically
// valid document identifier.
var ErrInvalidID = errors.New("invalid document id")

// validate is shared by all services; request structs carry the constraint tags.
var validate = validator.New()

// EventPublisher publishes domain events to the message broker. Services
// treat the publisher as optional: a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// parseID converts a path parameter into an ObjectID, mapping syntax errors
// to ErrInvalidID so handlers can answer with a client error instead of a 404.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

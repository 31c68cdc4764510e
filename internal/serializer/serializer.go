// Package serializer converts raw store documents into their transport form:
// the internal identifier is renamed to a public string "id" field and every
// timestamp is rendered as an RFC 3339 string. The conversion is idempotent,
// so serializing an already-serialized document is a no-op.
package serializer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document serializes a single raw document. Embedded documents and arrays
// (draft and comment entries) are converted too. The input map is not
// modified; a new map is returned. Nil input yields nil.
func Document(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for key, value := range doc {
		if key == "_id" {
			if id, ok := value.(primitive.ObjectID); ok {
				out["id"] = id.Hex()
				continue
			}
		}
		out[key] = convertValue(value)
	}
	return out
}

// Documents serializes a slice of raw documents, preserving order.
func Documents(docs []bson.M) []bson.M {
	out := make([]bson.M, len(docs))
	for i, doc := range docs {
		out[i] = Document(doc)
	}
	return out
}

func convertValue(value any) any {
	switch v := value.(type) {
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case bson.M:
		return Document(v)
	case bson.A:
		out := make(bson.A, len(v))
		for i, item := range v {
			out[i] = convertValue(item)
		}
		return out
	case []bson.M:
		return Documents(v)
	default:
		return value
	}
}

package repositories

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory implementation of Store. It keeps documents in
// insertion order per collection and supports the filter and update subset
// the services use: exact equality, case-insensitive regex, $set and $push.
// Documents go through a BSON round-trip on the way in and out, so values
// come back with the same types a real MongoDB query would produce
// (time.Time becomes primitive.DateTime, slices become bson.A).
type MemStore struct {
	collections map[string][]bson.M
	mu          sync.RWMutex
}

// NewMemStore creates a new empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		collections: make(map[string][]bson.M),
	}
}

// InsertOne stores a new document and returns its generated identifier.
func (s *MemStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id := primitive.NewObjectID()
	normalized["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], normalized)
	return id, nil
}

// FindByID returns the document with the given identifier, or ErrNotFound.
func (s *MemStore) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] == id {
			return copyDoc(doc)
		}
	}
	return nil, ErrNotFound
}

// Find returns documents matching filter in insertion order, optionally
// sorted and limited.
func (s *MemStore) Find(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []bson.M{}
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			copied, err := copyDoc(doc)
			if err != nil {
				return nil, err
			}
			matches = append(matches, copied)
		}
	}
	if sort != nil {
		sortDocs(matches, sort)
	}
	if limit > 0 && int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// UpdateByID applies a $set/$push update document and returns the matched count.
func (s *MemStore) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, update bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc["_id"] != id {
			continue
		}
		if fields, ok := update["$set"].(bson.M); ok {
			for k, v := range fields {
				nv, err := normalizeValue(v)
				if err != nil {
					return 0, err
				}
				doc[k] = nv
			}
		}
		if fields, ok := update["$push"].(bson.M); ok {
			for k, v := range fields {
				nv, err := normalizeValue(v)
				if err != nil {
					return 0, err
				}
				arr, _ := doc[k].(bson.A)
				doc[k] = append(arr, nv)
			}
		}
		return 1, nil
	}
	return 0, nil
}

// Count returns the number of documents matching filter.
func (s *MemStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			n++
		}
	}
	return n, nil
}

// Collections lists collection names that have received at least one document.
func (s *MemStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// normalize round-trips a document through BSON so stored values carry the
// driver's wire types.
func normalize(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func normalizeValue(v any) (any, error) {
	wrapped, err := normalize(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	return wrapped["v"], nil
}

func copyDoc(doc bson.M) (bson.M, error) {
	return normalize(doc)
}

func matchesFilter(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		got := doc[key]
		if rx, ok := want.(primitive.Regex); ok {
			str, ok := got.(string)
			if !ok || !regexMatches(rx, str) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func regexMatches(rx primitive.Regex, s string) bool {
	pattern := rx.Pattern
	if strings.Contains(rx.Options, "i") {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// sortDocs sorts by the first sort key only; that is all the services ask for.
func sortDocs(docs []bson.M, order bson.D) {
	if len(order) == 0 {
		return
	}
	key := order[0].Key
	desc := false
	if dir, ok := toFloat(order[0].Value); ok && dir < 0 {
		desc = true
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if desc {
			return lessValues(docs[j][key], docs[i][key])
		}
		return lessValues(docs[i][key], docs[j][key])
	})
}

func lessValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

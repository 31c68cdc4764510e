package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/repositories"
	"designstudio/internal/serializer"
)

// AnalyticsService aggregates read-only store statistics.
type AnalyticsService struct {
	store repositories.Store
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store repositories.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Overview returns document counts per collection and the top five products
// by rating.
func (s *AnalyticsService) Overview(ctx context.Context) (bson.M, error) {
	counts := bson.M{}
	for name, collection := range map[string]string{
		"products":        repositories.CollectionProduct,
		"orders":          repositories.CollectionOrder,
		"projects":        repositories.CollectionProject,
		"custom_requests": repositories.CollectionRequest,
	} {
		n, err := s.store.Count(ctx, collection, nil)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}

	top, err := s.store.Find(ctx, repositories.CollectionProduct,
		nil, bson.D{{Key: "rating", Value: -1}}, 5)
	if err != nil {
		return nil, err
	}

	return bson.M{
		"counts":       counts,
		"top_products": serializer.Documents(top),
	}, nil
}

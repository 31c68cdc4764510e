package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/services"
)

func TestAnalyticsService_Overview(t *testing.T) {
	store := repositories.NewMemStore()
	ctx := context.Background()

	products := services.NewProductService(store)
	rating := func(r float64) *float64 { return &r }
	titles := []struct {
		title  string
		rating float64
	}{
		{"A", 4.1}, {"B", 4.9}, {"C", 4.5}, {"D", 4.8}, {"E", 4.2}, {"F", 4.7},
	}
	for _, p := range titles {
		_, err := products.Create(ctx, models.ProductIn{
			Title: p.title, Price: 10, Category: "logos", Rating: rating(p.rating),
		})
		require.NoError(t, err)
	}

	orders := services.NewOrderService(store, nil)
	_, err := orders.Checkout(ctx, models.CheckoutRequest{
		Email: "buyer@example.com",
		Items: []models.OrderItem{
			{ProductID: "p1", Title: "A", Price: 10, License: "personal", Quantity: intPtr(1)},
		},
		Subtotal: 10,
	})
	require.NoError(t, err)

	overview, err := services.NewAnalyticsService(store).Overview(ctx)
	require.NoError(t, err)

	counts, ok := overview["counts"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(6), counts["products"])
	assert.Equal(t, int64(1), counts["orders"])
	assert.Equal(t, int64(0), counts["projects"])
	assert.Equal(t, int64(0), counts["custom_requests"])

	top, ok := overview["top_products"].([]bson.M)
	require.True(t, ok)
	require.Len(t, top, 5)
	assert.Equal(t, "B", top[0]["title"])
	assert.Equal(t, "D", top[1]["title"])

	topTitles := make([]string, 0, len(top))
	for _, doc := range top {
		topTitles = append(topTitles, doc["title"].(string))
	}
	assert.NotContains(t, topTitles, "A")
}

package services_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/services"
)

func newProductService() (*services.ProductService, *repositories.MemStore) {
	store := repositories.NewMemStore()
	return services.NewProductService(store), store
}

func TestProductService_CreateAndRoundTrip(t *testing.T) {
	service, _ := newProductService()
	ctx := context.Background()

	created, err := service.Create(ctx, models.ProductIn{
		Title:       "Logo Pack Deluxe",
		Description: "Twelve vector marks",
		Price:       29.0,
		Category:    "logos",
		Style:       "minimal",
		Color:       "black",
		FileTypes:   []string{"ai", "svg"},
		Images:      []string{"https://cdn/logo-pack.png"},
	})
	require.NoError(t, err)

	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.NotContains(t, created, "_id")

	fetched, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Logo Pack Deluxe", fetched["title"])
	assert.Equal(t, 29.0, fetched["price"])
	assert.Equal(t, "logos", fetched["category"])
	assert.Equal(t, bson.A{"ai", "svg"}, fetched["file_types"])
	assert.Equal(t, created, fetched)
}

func TestProductService_CreateAppliesDefaults(t *testing.T) {
	service, _ := newProductService()

	created, err := service.Create(context.Background(), models.ProductIn{
		Title:    "Icon Set",
		Price:    0,
		Category: "icons",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultRating, created["rating"])
	assert.Equal(t, true, created["in_stock"])
	assert.Equal(t, false, created["featured"])
	assert.Equal(t, bson.A{}, created["file_types"])
	assert.Equal(t, bson.A{}, created["images"])
}

func TestProductService_CreateRejectsNegativePrice(t *testing.T) {
	service, store := newProductService()
	ctx := context.Background()

	_, err := service.Create(ctx, models.ProductIn{
		Title:    "Broken",
		Price:    -1,
		Category: "logos",
	})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	// Validation failed before any store call: nothing was created.
	n, err := store.Count(ctx, repositories.CollectionProduct, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestProductService_GetErrors(t *testing.T) {
	service, _ := newProductService()
	ctx := context.Background()

	_, err := service.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, services.ErrInvalidID)

	_, err = service.Get(ctx, "656f00000000000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProductService_ListTitleQuery(t *testing.T) {
	service, _ := newProductService()
	ctx := context.Background()

	seed := []models.ProductIn{
		{Title: "Logo Pack Deluxe", Price: 29, Category: "logos"},
		{Title: "Icon Set", Price: 15, Category: "icons"},
	}
	for _, in := range seed {
		_, err := service.Create(ctx, in)
		require.NoError(t, err)
	}

	docs, err := service.List(ctx, models.ProductFilter{Query: "logo"}, 24)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Logo Pack Deluxe", docs[0]["title"])

	docs, err = service.List(ctx, models.ProductFilter{Category: "icons"}, 24)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Icon Set", docs[0]["title"])

	docs, err = service.List(ctx, models.ProductFilter{}, 24)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestProductService_FeaturedSortedByRating(t *testing.T) {
	service, _ := newProductService()
	ctx := context.Background()

	rating := func(r float64) *float64 { return &r }
	seed := []models.ProductIn{
		{Title: "Mid", Price: 10, Category: "logos", Featured: true, Rating: rating(4.5)},
		{Title: "Best", Price: 10, Category: "logos", Featured: true, Rating: rating(4.9)},
		{Title: "Hidden", Price: 10, Category: "logos", Featured: false, Rating: rating(5.0)},
	}
	for _, in := range seed {
		_, err := service.Create(ctx, in)
		require.NoError(t, err)
	}

	docs, err := service.Featured(ctx, 8)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Best", docs[0]["title"])
	assert.Equal(t, "Mid", docs[1]["title"])
}

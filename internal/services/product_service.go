package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/serializer"
)

// ProductService handles catalog reads and product creation.
type ProductService struct {
	store repositories.Store
}

// NewProductService creates a new ProductService.
func NewProductService(store repositories.Store) *ProductService {
	return &ProductService{store: store}
}

// List returns products matching the optional filters, serialized, in store
// order. The free-text query matches the title as a case-insensitive substring.
func (s *ProductService) List(ctx context.Context, filter models.ProductFilter, limit int64) ([]bson.M, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Style != "" {
		query["style"] = filter.Style
	}
	if filter.Color != "" {
		query["color"] = filter.Color
	}
	if filter.Query != "" {
		query["title"] = primitive.Regex{Pattern: filter.Query, Options: "i"}
	}
	docs, err := s.store.Find(ctx, repositories.CollectionProduct, query, nil, limit)
	if err != nil {
		return nil, err
	}
	return serializer.Documents(docs), nil
}

// Featured returns the featured products sorted by rating descending.
func (s *ProductService) Featured(ctx context.Context, limit int64) ([]bson.M, error) {
	docs, err := s.store.Find(ctx, repositories.CollectionProduct,
		bson.M{"featured": true}, bson.D{{Key: "rating", Value: -1}}, limit)
	if err != nil {
		return nil, err
	}
	return serializer.Documents(docs), nil
}

// Get returns a single product by id. A malformed id yields ErrInvalidID,
// an unknown one repositories.ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id string) (bson.M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.FindByID(ctx, repositories.CollectionProduct, oid)
	if err != nil {
		return nil, err
	}
	return serializer.Document(doc), nil
}

// Create validates and stores a new product, returning the serialized document.
func (s *ProductService) Create(ctx context.Context, in models.ProductIn) (bson.M, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	rating := models.DefaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	fileTypes := in.FileTypes
	if fileTypes == nil {
		fileTypes = []string{}
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	doc := bson.M{
		"title":       in.Title,
		"description": in.Description,
		"price":       in.Price,
		"category":    in.Category,
		"style":       in.Style,
		"color":       in.Color,
		"file_types":  fileTypes,
		"images":      images,
		"featured":    in.Featured,
		"rating":      rating,
		"in_stock":    inStock,
	}

	id, err := s.store.InsertOne(ctx, repositories.CollectionProduct, doc)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	saved, err := s.store.FindByID(ctx, repositories.CollectionProduct, id)
	if err != nil {
		return nil, fmt.Errorf("read back product %s: %w", id.Hex(), err)
	}
	return serializer.Document(saved), nil
}

package models

// ProductIn is the request schema for creating a product.
type ProductIn struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Style       string   `json:"style"`
	Color       string   `json:"color"`
	FileTypes   []string `json:"file_types"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Rating      *float64 `json:"rating"`
	InStock     *bool    `json:"in_stock"`
}

// DefaultRating is applied when a product is created without an explicit rating.
const DefaultRating = 4.8

// ProductFilter holds the optional query filters for the product listing.
type ProductFilter struct {
	Category string
	Style    string
	Color    string
	Query    string // case-insensitive substring match against the title
}

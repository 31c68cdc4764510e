package models

// OrderItem represents a single line of a checkout cart.
// License must be one of "personal" or "commercial". Quantity defaults to 1
// when the cart line omits it; an explicit quantity below 1 is rejected.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price"`
	License   string  `json:"license" bson:"license" validate:"required,oneof=personal commercial"`
	Quantity  *int    `json:"quantity" bson:"quantity" validate:"omitempty,min=1"`
}

// CheckoutRequest is the request schema for the mock checkout endpoint.
// No payment gateway is involved: the resulting order is recorded as paid
// with synthesized download links.
type CheckoutRequest struct {
	Email      string      `json:"email" validate:"required,email"`
	Items      []OrderItem `json:"items" validate:"required,dive"`
	Subtotal   float64     `json:"subtotal"`
	CouponCode *string     `json:"coupon_code"`
	Notes      *string     `json:"notes"`
}

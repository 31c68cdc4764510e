package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"designstudio/internal/models"
	"designstudio/internal/repositories"
	"designstudio/internal/serializer"
)

// OrderService records checkouts. There is no payment gateway: every order
// is stored as already paid, with one mock download link per item. Product
// references, prices and the subtotal are recorded as given, not verified
// against the catalog.
type OrderService struct {
	store  repositories.Store
	events EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil, in which
// case no order.created events are published.
func NewOrderService(store repositories.Store, events EventPublisher) *OrderService {
	return &OrderService{
		store:  store,
		events: events,
	}
}

// Checkout validates the cart and records the resulting order, returning the
// serialized order document.
func (s *OrderService) Checkout(ctx context.Context, req models.CheckoutRequest) (bson.M, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	links := make([]string, 0, len(req.Items))
	items := make([]models.OrderItem, len(req.Items))
	for i, item := range req.Items {
		// Quantity defaults to 1 when a cart line omits it.
		if item.Quantity == nil {
			one := 1
			item.Quantity = &one
		}
		items[i] = item
		links = append(links, fmt.Sprintf("/downloads/%s.zip", item.ProductID))
	}

	doc := bson.M{
		"email":          req.Email,
		"items":          items,
		"subtotal":       req.Subtotal,
		"coupon_code":    req.CouponCode,
		"notes":          req.Notes,
		"status":         "paid",
		"download_links": links,
		"invoice_url":    "/invoices/mock.pdf",
	}

	id, err := s.store.InsertOne(ctx, repositories.CollectionOrder, doc)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	saved, err := s.store.FindByID(ctx, repositories.CollectionOrder, id)
	if err != nil {
		return nil, fmt.Errorf("read back order %s: %w", id.Hex(), err)
	}

	s.publishCreated(id.Hex(), req)

	return serializer.Document(saved), nil
}

// publishCreated emits an order.created event. Publication failures are
// logged, never surfaced: the order is already recorded.
func (s *OrderService) publishCreated(orderID string, req models.CheckoutRequest) {
	if s.events == nil {
		return
	}
	event := map[string]any{
		"event_id": uuid.New().String(),
		"order_id": orderID,
		"email":    req.Email,
		"subtotal": req.Subtotal,
		"status":   "paid",
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order.created event for order %s: %v", orderID, err)
		return
	}
	if err := s.events.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order.created event for order %s: %v", orderID, err)
	}
}

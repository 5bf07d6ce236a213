package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/order"
)

const (
	OrderPlacedEventName    = "OrderPlaced"
	OrderPlacedEventVersion = 1
	OrderPlacedSchemaPath   = "contracts/events/order/OrderPlaced.v1.enveloped.schema.json"
	StorefrontProducer      = "storefront-service"
)

type EventEnvelope struct {
	EventName     string             `json:"eventName"`
	EventVersion  int                `json:"eventVersion"`
	EventID       string             `json:"eventId"`
	CorrelationID string             `json:"correlationId,omitempty"`
	Producer      string             `json:"producer"`
	PartitionKey  string             `json:"partitionKey"`
	OccurredAt    time.Time          `json:"occurredAt"`
	Schema        string             `json:"schema"`
	Payload       OrderPlacedPayload `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID    string            `json:"orderId"`
	UserID     string            `json:"userId"`
	Items      []OrderPlacedItem `json:"items"`
	TotalPrice float64           `json:"totalPrice"`
	Discount   float64           `json:"discount"`
	FinalTotal float64           `json:"finalTotal"`
}

type OrderPlacedItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type EnvelopeOptions struct {
	CorrelationID string
	EventID       string
	OccurredAt    time.Time
}

// BuildOrderPlacedEvent wraps o in the shared event envelope, partitioned by
// user so a consumer sees one user's orders in sequence.
func BuildOrderPlacedEvent(o *order.Order, opts EnvelopeOptions) EventEnvelope {
	eventID := opts.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	occurredAt := opts.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	payload := OrderPlacedPayload{
		OrderID:    o.OrderID,
		UserID:     o.UserID,
		Items:      make([]OrderPlacedItem, 0, len(o.Items)),
		TotalPrice: o.TotalPrice,
		Discount:   o.Discount,
		FinalTotal: o.FinalTotal,
	}
	for _, it := range o.Items {
		payload.Items = append(payload.Items, OrderPlacedItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return EventEnvelope{
		EventName:     OrderPlacedEventName,
		EventVersion:  OrderPlacedEventVersion,
		EventID:       eventID,
		CorrelationID: opts.CorrelationID,
		Producer:      StorefrontProducer,
		PartitionKey:  o.UserID,
		OccurredAt:    occurredAt,
		Schema:        OrderPlacedSchemaPath,
		Payload:       payload,
	}
}

package kafka

import "time"

// OrderLineItem is one order line as carried on the wire.
type OrderLineItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Condition string  `json:"condition"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderPlacedEvent represents an order placement event. Downstream consumers
// use it for fulfilment and for retiring the sold unit records.
type OrderPlacedEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OrderID       uint            `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	UserID        uint            `json:"user_id"`
	Items         []OrderLineItem `json:"items"`
	Amount        float64         `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)

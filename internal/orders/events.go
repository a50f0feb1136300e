package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"

	TopicOrderCreated = "order.created"
)

// Envelope is the wire format for published events.
type Envelope struct {
	EventID      string          `json:"event_id"`      // uuid
	EventType    string          `json:"event_type"`    // EventOrderCreated
	EventVersion int             `json:"event_version"` // 1
	OccurredAt   time.Time       `json:"occurred_at"`   // RFC3339
	Producer     string          `json:"producer"`      // e.g., "courses-api"
	TraceID      string          `json:"trace_id,omitempty"`
	Payload      json.RawMessage `json:"payload"`
}

// OrderCreatedPayload is the order snapshot downstream consumers see.
type OrderCreatedPayload struct {
	OrderID string     `json:"order_id"`
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Courses []LineItem `json:"courses"`
}

// Partition key = order_id, so all events for one order stay ordered.
func PartitionKey(orderID string) []byte { return []byte(orderID) }

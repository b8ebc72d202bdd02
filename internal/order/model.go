package order

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

// Status is the order lifecycle state. The lifecycle is strictly forward:
// pending -> preparing -> ready -> completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type OrderType string

const (
	TypeDelivery OrderType = "delivery"
	TypePickup   OrderType = "pickup"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// LineItem is one product entry within an order. Items are owned exclusively
// by their parent order.
type LineItem struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Price               float64   `json:"price"`
	Quantity            int       `json:"quantity"`
	Modifications       []string  `json:"modifications,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

type Order struct {
	ID            uuid.UUID     `json:"id"`
	OrderNumber   string        `json:"order_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	CustomerEmail string        `json:"customer_email,omitempty"`
	Status        Status        `json:"status"`
	OrderType     OrderType     `json:"order_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Priority      Priority      `json:"priority"`
	BranchID      uuid.UUID     `json:"branch_id,omitempty"`
	Total         float64       `json:"total"`
	DeliveryFee   float64       `json:"delivery_fee,omitempty"`
	Items         []LineItem    `json:"items"`

	SpecialInstructions string `json:"special_instructions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	// Transition stamps are set exactly once, when the status is first
	// entered, and never overwritten.
	PreparingAt *time.Time `json:"preparing_at,omitempty"`
	ReadyAt     *time.Time `json:"ready_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Subtotal is the pre-tax sum over all line items.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Clone returns a deep copy, so callers can never mutate the store's
// authoritative state through a returned snapshot.
func (o *Order) Clone() *Order {
	c := *o
	c.Items = make([]LineItem, len(o.Items))
	for i, it := range o.Items {
		c.Items[i] = it
		if it.Modifications != nil {
			c.Items[i].Modifications = append([]string(nil), it.Modifications...)
		}
	}
	c.PreparingAt = cloneTime(o.PreparingAt)
	c.ReadyAt = cloneTime(o.ReadyAt)
	c.CompletedAt = cloneTime(o.CompletedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingID           = errors.New("order id is required")
	ErrMissingDeliverTo    = errors.New("order deliverTo is required")
	ErrMissingMobileNumber = errors.New("order mobileNumber is required")
	ErrNoDishes            = errors.New("order must include at least one dish")
	ErrInvalidQuantity     = errors.New("dish quantity must be an integer greater than zero")
)

// LineItem is one dish entry of an order. Attributes keeps whatever else the
// client sent with the entry, such as a snapshot of the dish.
type LineItem struct {
	Quantity   int
	Attributes map[string]any
}

// Order is a delivery order referencing dishes by line item.
type Order struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	// Status is stored as supplied on creation and may be empty.
	Status Status
	Dishes []LineItem
}

// NewOrder validates and constructs an Order.
func NewOrder(id, deliverTo, mobileNumber string, status Status, dishes []LineItem) (*Order, error) {
	order := &Order{ID: id}
	if err := order.Apply(deliverTo, mobileNumber, status, dishes); err != nil {
		return nil, err
	}
	return order, nil
}

// Apply overwrites every mutable field, keeping the id. On error the order is
// left unchanged.
func (o *Order) Apply(deliverTo, mobileNumber string, status Status, dishes []LineItem) error {
	next := Order{
		ID:           o.ID,
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Status:       status,
		Dishes:       cloneItems(dishes),
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*o = next
	return nil
}

// Validate enforces the order invariants.
func (o *Order) Validate() error {
	switch {
	case strings.TrimSpace(o.ID) == "":
		return ErrMissingID
	case o.DeliverTo == "":
		return ErrMissingDeliverTo
	case o.MobileNumber == "":
		return ErrMissingMobileNumber
	case len(o.Dishes) == 0:
		return ErrNoDishes
	}
	for i, item := range o.Dishes {
		if item.Quantity <= 0 {
			return fmt.Errorf("dish %d: %w", i, ErrInvalidQuantity)
		}
	}
	return nil
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Dishes = cloneItems(o.Dishes)
	return &clone
}

func cloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Attributes = cloneMap(item.Attributes)
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneMap(value)
	case []any:
		out := make([]any, len(value))
		for i := range value {
			out[i] = cloneAny(value[i])
		}
		return out
	default:
		return value
	}
}

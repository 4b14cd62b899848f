package domain

import "strings"

// Status is an order's position in its delivery lifecycle:
//
//	pending -> preparing -> out-for-delivery -> delivered
//
// Only two transitions are enforced. An update whose requested status is
// delivered is refused, and an order may only be deleted while pending.
// Moving backwards between the first three states is permitted.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"

	// StatusInvalid is a sentinel clients send to exercise validation. It is
	// never stored.
	StatusInvalid Status = "invalid"
)

// Statuses lists the lifecycle states in order.
func Statuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}
}

// StatusList renders the lifecycle states as "a, b, c, d".
func StatusList() string {
	names := make([]string, 0, 4)
	for _, s := range Statuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// IsValid reports whether s is one of the lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsFinal reports whether s ends the lifecycle.
func (s Status) IsFinal() bool {
	return s == StatusDelivered
}

// CanDelete reports whether an order in state s may be removed.
func (s Status) CanDelete() bool {
	return s == StatusPending
}

func (s Status) String() string {
	return string(s)
}

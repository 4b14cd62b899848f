package ports

import (
	"context"
	"errors"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
)

var (
	ErrNotFound    = errors.New("order not found")
	ErrDuplicateID = errors.New("order id already exists")
)

// Repository stores orders in creation order.
type Repository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// Find returns the order with id and its position in the store.
	Find(ctx context.Context, id string) (*domain.Order, int, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// DeleteAt removes the order at position, falling back to a lookup by id
	// when the store has shifted since the position was resolved.
	DeleteAt(ctx context.Context, position int, id string) error
}

// IDGenerator allocates identifiers for new orders.
type IDGenerator interface {
	NewID() string
}

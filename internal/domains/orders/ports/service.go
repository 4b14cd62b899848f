package ports

import (
	"context"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/shared/payload"
)

// Service exposes order use cases to adapters.
type Service interface {
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	CreateOrder(ctx context.Context, data payload.Payload) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, data payload.Payload) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

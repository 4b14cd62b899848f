package memory

import (
	"context"
	"errors"

	"github.com/melvan27/GrubDash/internal/domains/orders/domain"
	"github.com/melvan27/GrubDash/internal/domains/orders/ports"
	"github.com/melvan27/GrubDash/internal/platform/memstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store preserving creation order.
type Repository struct {
	orders *memstore.Collection[*domain.Order]
}

func NewRepository() *Repository {
	return &Repository{
		orders: memstore.New(
			func(o *domain.Order) string { return o.ID },
			(*domain.Order).Clone,
		),
	}
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	return r.orders.All(), nil
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	created, err := r.orders.Append(order)
	if errors.Is(err, memstore.ErrDuplicateID) {
		return nil, ports.ErrDuplicateID
	}
	return created, err
}

func (r *Repository) Find(_ context.Context, id string) (*domain.Order, int, error) {
	order, position, err := r.orders.Find(id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, -1, ports.ErrNotFound
	}
	return order, position, err
}

func (r *Repository) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	updated, err := r.orders.Replace(order)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, ports.ErrNotFound
	}
	return updated, err
}

func (r *Repository) DeleteAt(_ context.Context, position int, id string) error {
	if err := r.orders.RemoveAt(position, id); err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			return ports.ErrNotFound
		}
		return err
	}
	return nil
}

// Reset drops every order.
func (r *Repository) Reset() {
	r.orders.Reset()
}

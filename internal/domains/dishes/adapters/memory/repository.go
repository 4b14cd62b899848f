package memory

import (
	"context"
	"errors"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	"github.com/melvan27/GrubDash/internal/platform/memstore"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory dish store preserving creation order.
type Repository struct {
	dishes *memstore.Collection[*domain.Dish]
}

func NewRepository() *Repository {
	return &Repository{
		dishes: memstore.New(
			func(d *domain.Dish) string { return d.ID },
			(*domain.Dish).Clone,
		),
	}
}

func (r *Repository) List(_ context.Context) ([]*domain.Dish, error) {
	return r.dishes.All(), nil
}

func (r *Repository) Create(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	if err := dish.Validate(); err != nil {
		return nil, err
	}
	created, err := r.dishes.Append(dish)
	if errors.Is(err, memstore.ErrDuplicateID) {
		return nil, ports.ErrDuplicateID
	}
	return created, err
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Dish, error) {
	dish, _, err := r.dishes.Find(id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, ports.ErrNotFound
	}
	return dish, err
}

func (r *Repository) Update(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	if err := dish.Validate(); err != nil {
		return nil, err
	}
	updated, err := r.dishes.Replace(dish)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, ports.ErrNotFound
	}
	return updated, err
}

// Reset drops every dish.
func (r *Repository) Reset() {
	r.dishes.Reset()
}

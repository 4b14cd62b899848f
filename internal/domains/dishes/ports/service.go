package ports

import (
	"context"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/shared/payload"
)

// Service exposes dish use cases to adapters. Mutations take the raw request
// payload because validation is part of the use case.
type Service interface {
	ListDishes(ctx context.Context) ([]*domain.Dish, error)
	CreateDish(ctx context.Context, data payload.Payload) (*domain.Dish, error)
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
	UpdateDish(ctx context.Context, id string, data payload.Payload) (*domain.Dish, error)
}

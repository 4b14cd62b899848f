package ports

import (
	"context"
	"errors"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
)

var (
	ErrNotFound    = errors.New("dish not found")
	ErrDuplicateID = errors.New("dish id already exists")
)

// Repository stores dishes in creation order.
type Repository interface {
	List(ctx context.Context) ([]*domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	GetByID(ctx context.Context, id string) (*domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
}

// IDGenerator allocates identifiers for new dishes.
type IDGenerator interface {
	NewID() string
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	"github.com/melvan27/GrubDash/internal/domains/dishes/ports"
)

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	first, err := domain.NewDish("a", "Soup", "Hot", 5, "soup.png")
	require.NoError(t, err)
	second, err := domain.NewDish("b", "Salad", "Cold", 7, "salad.png")
	require.NoError(t, err)

	_, err = repo.Create(ctx, first)
	require.NoError(t, err)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)
	_, err = repo.Create(ctx, first)
	require.ErrorIs(t, err, ports.ErrDuplicateID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	loaded, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	require.NoError(t, loaded.Apply("Greek salad", "Cold", 9, "salad.png"))
	_, err = repo.Update(ctx, loaded)
	require.NoError(t, err)

	reloaded, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Greek salad", reloaded.Name)
	assert.Equal(t, 9, reloaded.Price)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
	_, err = repo.Update(ctx, &domain.Dish{ID: "missing", Name: "n", Description: "d", Price: 1, ImageURL: "u"})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ReadsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	dish, err := domain.NewDish("a", "Soup", "Hot", 5, "soup.png")
	require.NoError(t, err)
	_, err = repo.Create(ctx, dish)
	require.NoError(t, err)

	dish.Name = "mutated after create"
	loaded, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	loaded.Price = 1000

	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Soup", again.Name)
	assert.Equal(t, 5, again.Price)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	dish, err := NewDish("d1", "Dolcelatte and chickpea spaghetti", "Spaghetti topped with a blend of dolcelatte and fresh chickpeas", 19, "https://images.example/spaghetti.jpg")
	require.NoError(t, err)
	assert.Equal(t, "d1", dish.ID)
	assert.Equal(t, 19, dish.Price)
}

func TestNewDish_Invariants(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Dish, error)
		want  error
	}{
		{"id", func() (*Dish, error) { return NewDish(" ", "n", "d", 1, "u") }, ErrMissingID},
		{"name", func() (*Dish, error) { return NewDish("x", "", "d", 1, "u") }, ErrMissingName},
		{"description", func() (*Dish, error) { return NewDish("x", "n", "", 1, "u") }, ErrMissingDescription},
		{"zero price", func() (*Dish, error) { return NewDish("x", "n", "d", 0, "u") }, ErrInvalidPrice},
		{"negative price", func() (*Dish, error) { return NewDish("x", "n", "d", -4, "u") }, ErrInvalidPrice},
		{"image", func() (*Dish, error) { return NewDish("x", "n", "d", 1, "") }, ErrMissingImageURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApply_PreservesIDAndRejectsInvalid(t *testing.T) {
	dish, err := NewDish("d1", "n", "d", 3, "u")
	require.NoError(t, err)

	require.NoError(t, dish.Apply("n2", "d2", 4, "u2"))
	assert.Equal(t, Dish{ID: "d1", Name: "n2", Description: "d2", Price: 4, ImageURL: "u2"}, *dish)

	require.ErrorIs(t, dish.Apply("n3", "d3", 0, "u3"), ErrInvalidPrice)
	assert.Equal(t, "n2", dish.Name)
}

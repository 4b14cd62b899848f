package ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestRandom_ProducesUniqueHexIDs(t *testing.T) {
	gen := NewRandom()
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		require.Regexp(t, hexID, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSequence(t *testing.T) {
	next := Sequence("dish-")
	assert.Equal(t, "dish-1", next.NewID())
	assert.Equal(t, "dish-2", next.NewID())
}

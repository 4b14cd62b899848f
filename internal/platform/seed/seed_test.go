package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturesYAML = `
dishes:
  - id: 3c637d011d844ebab1205fef8a7e36ea
    name: Century Eggs
    description: Whole eggs preserved in clay and ash for a few months
    price: 17
    image_url: https://images.example/eggs.jpg
orders:
  - id: f6069a542257054114138301947672ba
    deliverTo: 1600 Pennsylvania Avenue NW, Washington, DC 20500
    mobileNumber: (202) 456-1111
    status: out-for-delivery
    dishes:
      - id: 90c3d873684bf381dfab29034b5bba73
        name: Falafel and tahini bagel
        price: 6
        quantity: 1
`

func TestDecode_YAML(t *testing.T) {
	fixtures, err := Decode(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	require.Len(t, fixtures.Dishes, 1)
	assert.Equal(t, "Century Eggs", fixtures.Dishes[0].String("name"))
	price, ok := fixtures.Dishes[0].Int("price")
	require.True(t, ok)
	assert.Equal(t, 17, price)

	require.Len(t, fixtures.Orders, 1)
	items, ok := fixtures.Orders[0].Items("dishes")
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.IsType(t, map[string]any{}, items[0])
}

func TestLoad_JSONAndErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dishes":[{"name":"Soup","price":4}],"orders":[]}`), 0o600))

	fixtures, err := Load(path)
	require.NoError(t, err)
	require.Len(t, fixtures.Dishes, 1)
	assert.Equal(t, "Soup", fixtures.Dishes[0].String("name"))
	assert.Empty(t, fixtures.Orders)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("dishes: [unterminated"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	fixtures, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fixtures.Dishes)
}

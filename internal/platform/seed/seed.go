// Package seed reads dish and order fixtures loaded into the stores at
// start-up.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/melvan27/GrubDash/internal/shared/payload"
)

// Fixtures holds raw entity records keyed like a request's data object.
type Fixtures struct {
	Dishes []payload.Payload `yaml:"dishes"`
	Orders []payload.Payload `yaml:"orders"`
}

// Load reads fixtures from path. JSON files are accepted as well since JSON
// is valid YAML.
func Load(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	fixtures, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return fixtures, nil
}

// Decode parses fixtures from r. An empty document yields empty fixtures.
func Decode(r io.Reader) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.NewDecoder(r).Decode(&fixtures); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &fixtures, nil
}

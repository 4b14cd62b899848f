// Package ids generates entity identifiers.
package ids

import (
	"encoding/hex"
	"strconv"

	"github.com/google/uuid"
)

// Random produces 32-character lowercase hex identifiers backed by UUIDv4
// randomness.
type Random struct{}

// NewRandom returns the default generator.
func NewRandom() Random {
	return Random{}
}

// NewID returns a fresh identifier.
func (Random) NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Func adapts a plain function to the generator contract.
type Func func() string

// NewID calls f.
func (f Func) NewID() string {
	return f()
}

// Sequence returns a deterministic generator yielding prefix1, prefix2, ...
// It is meant for tests and fixtures.
func Sequence(prefix string) Func {
	var n int
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

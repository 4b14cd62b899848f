//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "grubdash-api"
	ConsumerName = "grubdash-web"

	StateMenuBaseline    = "menu baseline"
	StateDishExists      = "dish 90c3d873684bf381dfab29034b5bba73 exists"
	StateDishMissing     = "no dish 00000000000000000000000000000000"
	StatePendingOrder    = "pending order 5a887d326e83d3c5bdcbee398ea32aff exists"
	StateDeliveringOrder = "out-for-delivery order f6069a542257054114138301947672ba exists"
)

const (
	ExistingDishID    = "90c3d873684bf381dfab29034b5bba73"
	MissingDishID     = "00000000000000000000000000000000"
	PendingOrderID    = "5a887d326e83d3c5bdcbee398ea32aff"
	DeliveringOrderID = "f6069a542257054114138301947672ba"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the pact file path for the web consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleDish is the dish the provider seeds for StateDishExists.
func ExampleDish() map[string]any {
	return map[string]any{
		"id":          ExistingDishID,
		"name":        "Falafel and tahini bagel",
		"description": "A warm bagel filled with falafel and tahini",
		"price":       6,
		"image_url":   "https://images.example/bagel.jpg",
	}
}

// ExampleOrder returns an order with the given id and status.
func ExampleOrder(id, status string) map[string]any {
	return map[string]any{
		"id":           id,
		"deliverTo":    "308 Negra Arroyo Lane, Albuquerque, NM",
		"mobileNumber": "(505) 143-3369",
		"status":       status,
		"dishes": []any{
			map[string]any{"id": ExistingDishID, "name": "Falafel and tahini bagel", "quantity": 2},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

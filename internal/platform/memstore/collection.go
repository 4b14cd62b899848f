// Package memstore provides an ordered, process-lifetime entity collection
// that the in-memory repository adapters build on.
package memstore

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no entity carries the requested id.
	ErrNotFound = errors.New("entity not found")
	// ErrDuplicateID is returned when appending an entity whose id is taken.
	ErrDuplicateID = errors.New("entity id already exists")
	// ErrEmptyID is returned when appending an entity without an id.
	ErrEmptyID = errors.New("entity id is empty")
)

// Collection keeps entities in insertion order. Reads hand out clones so
// callers never alias stored state.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
	clone func(T) T
}

// New creates an empty collection. id extracts the identifier of an entity;
// clone copies one.
func New[T any](id func(T) string, clone func(T) T) *Collection[T] {
	return &Collection[T]{id: id, clone: clone}
}

// Append adds item at the end.
func (c *Collection[T]) Append(item T) (T, error) {
	var zero T
	key := c.id(item)
	if key == "" {
		return zero, ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(key) >= 0 {
		return zero, ErrDuplicateID
	}
	c.items = append(c.items, c.clone(item))
	return c.clone(item), nil
}

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.clone(item))
	}
	return out
}

// Find returns the entity with id and its position.
func (c *Collection[T]) Find(id string) (T, int, error) {
	var zero T
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return zero, -1, ErrNotFound
	}
	return c.clone(c.items[idx]), idx, nil
}

// Replace overwrites the stored entity sharing item's id, keeping its position.
func (c *Collection[T]) Replace(item T) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(c.id(item))
	if idx < 0 {
		return zero, ErrNotFound
	}
	c.items[idx] = c.clone(item)
	return c.clone(item), nil
}

// RemoveAt deletes the entity at position index, provided it still carries id.
// A negative index always resolves the entity by id.
func (c *Collection[T]) RemoveAt(index int, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.items) || c.id(c.items[index]) != id {
		// the collection shifted since the position was resolved
		index = c.indexOf(id)
		if index < 0 {
			return ErrNotFound
		}
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Reset drops every entity.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.id(item) == id {
			return i
		}
	}
	return -1
}

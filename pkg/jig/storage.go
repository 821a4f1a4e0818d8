package jig

import "sync"

// Key identifies a value of type T in a Storage. Keys with the same name but
// different types do not collide.
type Key[T any] struct {
	name string
}

// NewKey creates a typed storage key.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the key's name.
func (k Key[T]) Name() string {
	return k.name
}

// Storage is a typed key-value store shared by every command of one run.
// It is safe for concurrent use.
type Storage struct {
	mu     sync.Mutex
	values map[any]any
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{values: make(map[any]any)}
}

// Store saves value under key, replacing any previous value.
func Store[T any](s *Storage, key Key[T], value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Load returns the value stored under key.
func Load[T any](s *Storage, key Key[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true //nolint:forcetypeassert // Key[T] only ever stores T
}

// Delete removes the value stored under key.
func Delete[T any](s *Storage, key Key[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

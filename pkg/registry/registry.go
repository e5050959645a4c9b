package registry

import (
	"fmt"

	"github.com/arthur-debert/picomenu/pkg/errors"
)

// Registry is a generic registry for storing and retrieving items by name.
// Registration order is preserved and capacity never grows.
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// List returns all registered names in registration order
	List() []string

	// Each calls fn for every entry in registration order, stopping at the
	// first error
	Each(fn func(name string, item T) error) error

	// Has checks if an item is registered
	Has(name string) bool

	// Count returns the number of registered items
	Count() int

	// Cap returns the fixed capacity
	Cap() int

	// Freeze rejects any further registration
	Freeze()

	// Frozen reports whether Freeze has been called
	Frozen() bool
}

type entry[T any] struct {
	name string
	item T
}

// registry is the internal implementation of Registry. The entries slice is
// allocated once at its final capacity.
type registry[T any] struct {
	entries []entry[T]
	frozen  bool
}

// New creates a new Registry instance holding at most capacity items
func New[T any](capacity int) Registry[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &registry[T]{
		entries: make([]entry[T], 0, capacity),
	}
}

// Register adds an item to the registry
func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	if r.frozen {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register '%s': registry is frozen", name)
	}

	if r.index(name) >= 0 {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	if len(r.entries) == cap(r.entries) {
		return errors.Newf(errors.ErrRegistryFull, "cannot register '%s': registry is full", name).
			WithDetail("capacity", cap(r.entries))
	}

	r.entries = append(r.entries, entry[T]{name: name, item: item})
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	i := r.index(name)
	if i < 0 {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}
	return r.entries[i].item, nil
}

// List returns all registered names in registration order
func (r *registry[T]) List() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.name)
	}
	return names
}

// Each visits entries in registration order
func (r *registry[T]) Each(fn func(name string, item T) error) error {
	for _, e := range r.entries {
		if err := fn(e.name, e.item); err != nil {
			return err
		}
	}
	return nil
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	return r.index(name) >= 0
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	return len(r.entries)
}

// Cap returns the fixed capacity
func (r *registry[T]) Cap() int {
	return cap(r.entries)
}

// Freeze rejects any further registration
func (r *registry[T]) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called
func (r *registry[T]) Frozen() bool {
	return r.frozen
}

func (r *registry[T]) index(name string) int {
	for i := range r.entries {
		if r.entries[i].name == name {
			return i
		}
	}
	return -1
}

// MustRegister registers an item and panics if registration fails.
// Use it where a failure can only be a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

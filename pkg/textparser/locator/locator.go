package locator

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrNotBound indicates nothing is bound under the requested name.
	ErrNotBound = errors.New("name not bound")

	// ErrWrongType indicates the bound instance is not of the requested type.
	ErrWrongType = errors.New("bound instance has wrong type")
)

// Factory creates an instance for a binding.
type Factory func() any

type binding struct {
	factory Factory
	shared  bool
}

// Locator is a thread-safe mapping from names to factories.
// It uses sync.RWMutex for read-heavy workloads.
type Locator struct {
	mu        sync.RWMutex
	bindings  map[string]binding
	instances map[string]any
}

// New creates an empty Locator.
func New() *Locator {
	return &Locator{
		bindings:  make(map[string]binding),
		instances: make(map[string]any),
	}
}

// Bind registers factory under name. Make calls factory every time.
// Binding an existing name replaces it and drops any shared instance.
func (l *Locator) Bind(name string, factory Factory) {
	l.bind(name, binding{factory: factory})
}

// Singleton registers factory under name. The first Make creates the
// instance; later calls return the same one. factory runs under the
// Locator's lock and must not call back into it.
func (l *Locator) Singleton(name string, factory Factory) {
	l.bind(name, binding{factory: factory, shared: true})
}

func (l *Locator) bind(name string, b binding) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bindings[name] = b
	delete(l.instances, name)
}

// Make returns an instance for name.
func (l *Locator) Make(name string) (any, error) {
	// Fast path: shared instance already created
	l.mu.RLock()
	b, ok := l.bindings[name]
	inst, created := l.instances[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotBound, name)
	}
	if !b.shared {
		return b.factory(), nil
	}
	if created {
		return inst, nil
	}

	// Slow path: create with write lock
	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	b, ok = l.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotBound, name)
	}
	if inst, ok := l.instances[name]; ok {
		return inst, nil
	}
	inst = b.factory()
	if b.shared {
		l.instances[name] = inst
	}
	return inst, nil
}

// MustMake returns an instance for name, panicking if it is not bound.
func (l *Locator) MustMake(name string) any {
	inst, err := l.Make(name)
	if err != nil {
		panic("locator: " + err.Error())
	}
	return inst
}

// Has returns true if name is bound.
func (l *Locator) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.bindings[name]
	return ok
}

// Unbind removes name and any shared instance created for it.
func (l *Locator) Unbind(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.bindings, name)
	delete(l.instances, name)
}

// Names returns all bound names in sorted order.
func (l *Locator) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.bindings))
	for name := range l.bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of bound names.
func (l *Locator) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bindings)
}

// Resolve returns the instance bound under name as a T.
func Resolve[T any](l *Locator, name string) (T, error) {
	var zero T
	inst, err := l.Make(name)
	if err != nil {
		return zero, err
	}
	v, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrWrongType, name, inst)
	}
	return v, nil
}

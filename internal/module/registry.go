package module

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownModule is returned when a configured module name is not registered
	ErrUnknownModule = errors.New("unknown module")
	// ErrDuplicateModule is returned when a name or nickname is registered twice
	ErrDuplicateModule = errors.New("duplicate module")
)

// Builtins returns one instance of every built-in module
func Builtins() []Module {
	return []Module{Categorize{}, Words{}}
}

// Registry holds the modules enabled for a run, in registration order
type Registry struct {
	modules []Module
}

// NewRegistry creates a registry holding mods
func NewRegistry(mods ...Module) (*Registry, error) {
	r := &Registry{}
	for _, m := range mods {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// FromNames builds a registry of built-in modules selected by name or nickname
func FromNames(names []string) (*Registry, error) {
	all, err := NewRegistry(Builtins()...)
	if err != nil {
		return nil, err
	}

	r := &Registry{}
	for _, name := range names {
		m, ok := all.Resolve(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownModule, name, strings.Join(all.Names(), ", "))
		}
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds m. Names and nicknames must be unique across the registry.
func (r *Registry) Register(m Module) error {
	for _, key := range []string{m.Name(), m.Nickname()} {
		if key == "" {
			continue
		}
		if _, ok := r.Resolve(key); ok {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, key)
		}
	}
	r.modules = append(r.modules, m)
	return nil
}

// Resolve finds a module by exact name or nickname
func (r *Registry) Resolve(key string) (Module, bool) {
	if r == nil || key == "" {
		return nil, false
	}
	for _, m := range r.modules {
		if m.Name() == key || m.Nickname() == key {
			return m, true
		}
	}
	return nil, false
}

// Modules returns the registered modules in order
func (r *Registry) Modules() []Module {
	if r == nil {
		return nil
	}
	return append([]Module(nil), r.modules...)
}

// Names returns the registered module names in order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Modules()))
	for _, m := range r.Modules() {
		names = append(names, m.Name())
	}
	return names
}

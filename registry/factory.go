package registry

import (
	"fmt"

	"github.com/vk/churn/paramgen"
)

// Factory maps generator-kind identifiers to constructor functions and
// builds generator instances from kind+configuration pairs.
type Factory struct {
	ctors map[string]paramgen.Ctor
}

// NewFactory creates a Factory seeded with the builtin scalar kinds.
func NewFactory() *Factory {
	return &Factory{ctors: paramgen.Builtins()}
}

// RegisterKind adds a constructor for a new generator kind. The kind
// identifier must be non-empty and not already registered.
func (f *Factory) RegisterKind(kind string, ctor paramgen.Ctor) error {
	if kind == "" {
		return fmt.Errorf("%w: generator kind with empty identifier", ErrDuplicateName)
	}
	if _, exists := f.ctors[kind]; exists {
		return fmt.Errorf("%w: generator kind %q already registered", ErrDuplicateName, kind)
	}
	f.ctors[kind] = ctor
	return nil
}

// Construct builds a fresh generator of the given kind from its
// configuration string. Unknown kinds and constructor failures are reported
// as ErrGeneratorConstruction, the latter wrapping the underlying error for
// diagnostics.
func (f *Factory) Construct(kind, conf string) (paramgen.ValueGenerator, error) {
	ctor, ok := f.ctors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown generator kind %q", ErrGeneratorConstruction, kind)
	}
	gen, err := ctor(conf)
	if err != nil {
		return nil, fmt.Errorf("%w: kind %q with configuration %q: %w", ErrGeneratorConstruction, kind, conf, err)
	}
	return gen, nil
}

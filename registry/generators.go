package registry

import (
	"fmt"

	"github.com/vk/churn/paramgen"
)

// Generators is the registry of named, reusable value generators declared at
// class level. Names are unique within one test definition; every operation
// parameter that resolves to the same name shares the same instance.
type Generators struct {
	named map[string]paramgen.ValueGenerator
}

// NewGenerators creates an empty named-generator registry.
func NewGenerators() *Generators {
	return &Generators{named: make(map[string]paramgen.ValueGenerator)}
}

// Register stores a generator under a non-empty, previously unused name.
func (g *Generators) Register(name string, gen paramgen.ValueGenerator) error {
	if name == "" {
		return fmt.Errorf("%w: named generator with empty name", ErrDuplicateName)
	}
	if _, exists := g.named[name]; exists {
		return fmt.Errorf("%w: named generator %q declared twice", ErrDuplicateName, name)
	}
	g.named[name] = gen
	return nil
}

// Lookup returns the generator registered under name.
func (g *Generators) Lookup(name string) (paramgen.ValueGenerator, error) {
	gen, ok := g.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return gen, nil
}

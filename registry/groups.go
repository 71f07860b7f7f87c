package registry

import (
	"fmt"

	"github.com/vk/churn/plan"
)

// groupEntry accumulates one declared group's members during assembly.
type groupEntry struct {
	name        string
	nonParallel bool
	actors      []*plan.ActorGenerator
}

// Groups is the registry of declared operation groups. Declarations happen
// before any operation is scanned; members are appended as matching
// operations are resolved, and Snapshot freezes the result.
type Groups struct {
	entries map[string]*groupEntry
	order   []string
}

// NewGroups creates an empty group registry.
func NewGroups() *Groups {
	return &Groups{entries: make(map[string]*groupEntry)}
}

// Declare creates an empty group. Redeclaring a name overwrites the earlier
// declaration (last one wins) while keeping the name's position in the
// output order.
func (g *Groups) Declare(name string, nonParallel bool) {
	if _, exists := g.entries[name]; !exists {
		g.order = append(g.order, name)
	}
	g.entries[name] = &groupEntry{name: name, nonParallel: nonParallel}
}

// Declared reports whether a group with the given name exists.
func (g *Groups) Declared(name string) bool {
	_, ok := g.entries[name]
	return ok
}

// Attach appends an actor generator to a declared group's members.
func (g *Groups) Attach(name string, actor *plan.ActorGenerator) error {
	entry, ok := g.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUndeclaredGroup, name)
	}
	entry.actors = append(entry.actors, actor)
	return nil
}

// Snapshot returns the groups as immutable values, in the order their names
// were first declared.
func (g *Groups) Snapshot() []*plan.OperationGroup {
	out := make([]*plan.OperationGroup, 0, len(g.order))
	for _, name := range g.order {
		entry := g.entries[name]
		out = append(out, plan.NewOperationGroup(entry.name, entry.nonParallel, entry.actors))
	}
	return out
}

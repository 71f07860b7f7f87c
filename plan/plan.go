// Package plan defines the immutable output of test-structure assembly: the
// ordered catalog of actor generators and the operation groups that constrain
// their scheduling. A Plan is built once, is read-only afterward, and may be
// shared across goroutines without synchronization.
package plan

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/schema"
)

// Actor is one concrete invocation of a test operation: the operation's
// method name plus the generated argument values.
type Actor struct {
	Method        string
	Arguments     []any
	HandledErrors []string
	RunOnce       bool
}

// ActorGenerator pairs an operation method with the value generators that
// supply its arguments, one generator per formal parameter in declaration
// order. Immutable after construction.
type ActorGenerator struct {
	method        *schema.Method
	gens          []paramgen.ValueGenerator
	handledErrors []string
	runOnce       bool
}

// NewActorGenerator constructs an ActorGenerator. The slices are copied.
func NewActorGenerator(method *schema.Method, gens []paramgen.ValueGenerator, handledErrors []string, runOnce bool) *ActorGenerator {
	return &ActorGenerator{
		method:        method,
		gens:          append([]paramgen.ValueGenerator(nil), gens...),
		handledErrors: append([]string(nil), handledErrors...),
		runOnce:       runOnce,
	}
}

// Method returns the descriptor of the underlying operation method.
func (a *ActorGenerator) Method() *schema.Method { return a.method }

// ArgumentGenerators returns a copy of the per-parameter generators, in
// parameter declaration order.
func (a *ActorGenerator) ArgumentGenerators() []paramgen.ValueGenerator {
	return append([]paramgen.ValueGenerator(nil), a.gens...)
}

// HandledErrors returns a copy of the error kinds the executor should record
// as results instead of propagating.
func (a *ActorGenerator) HandledErrors() []string {
	return append([]string(nil), a.handledErrors...)
}

// RunOnce reports whether the operation may execute at most once per scenario.
func (a *ActorGenerator) RunOnce() bool { return a.runOnce }

// Generate materializes one actor, drawing every argument from its generator
// using the provided random source.
func (a *ActorGenerator) Generate(r *rand.Rand) Actor {
	args := make([]any, len(a.gens))
	for i, gen := range a.gens {
		args[i] = gen.Generate(r)
	}
	return Actor{
		Method:        a.method.Name,
		Arguments:     args,
		HandledErrors: a.HandledErrors(),
		RunOnce:       a.runOnce,
	}
}

func (a *ActorGenerator) String() string {
	return fmt.Sprintf("ActorGenerator{%s/%d}", a.method.Name, len(a.gens))
}

// OperationGroup is a named set of actor generators sharing a scheduling
// constraint. When NonParallel is set, members must never be scheduled to
// run concurrently with one another.
type OperationGroup struct {
	name        string
	nonParallel bool
	actors      []*ActorGenerator
}

// NewOperationGroup constructs an OperationGroup. The member slice is copied.
func NewOperationGroup(name string, nonParallel bool, actors []*ActorGenerator) *OperationGroup {
	return &OperationGroup{
		name:        name,
		nonParallel: nonParallel,
		actors:      append([]*ActorGenerator(nil), actors...),
	}
}

// Name returns the group name.
func (g *OperationGroup) Name() string { return g.name }

// NonParallel reports whether members are mutually exclusive.
func (g *OperationGroup) NonParallel() bool { return g.nonParallel }

// Actors returns a copy of the member list, in the order operations were
// discovered.
func (g *OperationGroup) Actors() []*ActorGenerator {
	return append([]*ActorGenerator(nil), g.actors...)
}

func (g *OperationGroup) String() string {
	members := make([]string, len(g.actors))
	for i, a := range g.actors {
		members[i] = a.method.Name
	}
	return fmt.Sprintf("OperationGroup{name=%s, nonParallel=%t, actors=[%s]}",
		g.name, g.nonParallel, strings.Join(members, ", "))
}

// Plan is the assembled test structure: the flat ordered catalog of actor
// generators plus the populated operation groups.
type Plan struct {
	actors []*ActorGenerator
	groups []*OperationGroup
}

// New constructs a Plan. Both slices are copied.
func New(actors []*ActorGenerator, groups []*OperationGroup) *Plan {
	return &Plan{
		actors: append([]*ActorGenerator(nil), actors...),
		groups: append([]*OperationGroup(nil), groups...),
	}
}

// Actors returns a copy of the actor generator catalog, in method
// declaration order.
func (p *Plan) Actors() []*ActorGenerator {
	return append([]*ActorGenerator(nil), p.actors...)
}

// Groups returns a copy of the operation groups, in the order their names
// were first declared.
func (p *Plan) Groups() []*OperationGroup {
	return append([]*OperationGroup(nil), p.groups...)
}

// Package schema provides the typed, in-memory description of a test
// definition that the builder assembles into an execution plan.
//
// The records here are deliberately plain data. They organize a test
// definition — its operation methods, their parameters, and the class-level
// generator and group declarations — into a predictable structure that can be
// statically validated before anything is resolved or executed. How the
// records are produced is a boundary concern: the introspect package derives
// them from a Go value via reflection, and callers are equally free to
// construct them by hand.
package schema

import "github.com/vk/churn/paramgen"

// --- Class-level declarations ---

// GeneratorDecl declares a named, reusable value generator for the whole
// test definition: a non-empty name, a generator kind identifier, and the
// kind's free-form configuration string.
type GeneratorDecl struct {
	Name string
	Gen  string
	Conf string
}

// GroupDecl declares an operation group. NonParallel marks the group's
// members as mutually exclusive: the scenario executor must never schedule
// two of them concurrently.
type GroupDecl struct {
	Name        string
	NonParallel bool
}

// --- Method descriptors ---

// ParamConfig is the inline generator configuration attached to a single
// parameter. It carries either a reference to a declared generator name or
// an inline kind+configuration pair, never both.
type ParamConfig struct {
	Name string
	Gen  string
	Conf string
}

// Empty reports whether the config carries no information at all; such a
// config is treated as absent.
func (c *ParamConfig) Empty() bool {
	return c == nil || (c.Name == "" && c.Gen == "")
}

// Param describes one formal parameter of an operation method: its declared
// scalar kind, its declared name when the source of the descriptor knows one,
// and an optional inline generator configuration.
type Param struct {
	Name   string
	Kind   paramgen.Kind
	Config *ParamConfig
}

// Operation marks a method as a test operation and carries the method-level
// configuration.
type Operation struct {
	// Params is the optional per-parameter generator-name list. When
	// non-empty it must name exactly one generator per formal parameter.
	Params []string

	// Group is the name of the operation group this operation belongs to,
	// or empty for none. The group must be declared at class level.
	Group string

	// RunOnce marks an operation that may execute at most once per scenario.
	RunOnce bool

	// HandledErrors lists error kinds that the executor should capture as a
	// result value rather than propagate. Recorded verbatim.
	HandledErrors []string
}

// Method describes one method of the test definition. Operation is nil for
// unmarked methods, which the builder skips.
type Method struct {
	Name      string
	Params    []Param
	Operation *Operation
}

// Type is the root descriptor: the full structural description of a test
// definition, in declaration order.
type Type struct {
	Name       string
	Generators []GeneratorDecl
	Groups     []GroupDecl
	Methods    []Method
}

// Package registry provides the lookup tables the builder resolves against.
//
// Three registries cooperate during one assembly pass. The Factory maps
// generator-kind identifiers (e.g. "int32") to constructor functions, so a
// test definition can request a generator declaratively without any dynamic
// construction mechanism. Generators holds the named, reusable generator
// instances declared at class level. Groups holds the declared operation
// groups and accumulates their members as operations are resolved.
//
// Every invariant the registries enforce — unique non-empty generator names,
// constructible kind+configuration pairs, attach-only-to-declared groups —
// is checked eagerly so a misconfigured test definition fails during
// assembly, never while a scenario is running.
package registry

// Package paramgen provides the value generators that supply operation
// arguments at scenario-build time.
//
// A ValueGenerator produces one value per call from a caller-supplied random
// source. Generators are constructed from a free-form configuration string,
// so a test definition can declare them declaratively ("int32" with "1:10")
// without referencing Go constructors. The package ships one builtin
// generator per supported scalar kind; Builtins exposes their constructors as
// a kind-identifier map that the registry seeds its factory from, and
// DefaultFor yields the canonical empty-configuration generator used when a
// parameter carries no explicit configuration at all.
package paramgen

// Package builder assembles a schema.Type — the structural description of a
// test definition — into an immutable plan.Plan.
//
// # Why Builder Exists
//
// The builder is the bridge between a declarative test definition and the
// resolved catalog the scenario executor consumes. It is where all
// configuration is reconciled and validated: every operation parameter ends
// up with exactly one value generator, every group reference points at a
// declared group, and every inconsistency is rejected before a single
// operation could run.
//
// # How It Works
//
// One Build call performs a single synchronous pass:
//
//  1. Register every class-level named-generator declaration, constructing
//     each generator through the kind factory. Duplicate or empty names fail
//     immediately.
//  2. Declare every class-level operation group.
//  3. Scan the methods in declaration order, skipping unmarked ones. Each
//     marked operation is validated, its parameters are resolved to
//     generators, and the resulting actor generator is appended to the flat
//     catalog plus its group, if any.
//  4. Snapshot everything into an immutable plan.Plan.
//
// The pass is fail-fast: the first validation error aborts assembly and no
// partial plan is returned. Each Build constructs fresh registries, so a
// Builder may be reused and called from multiple goroutines.
//
// # Parameter resolution
//
// For each formal parameter, the first matching rule wins:
//
//  1. An inline ParamConfig, carrying either a reference name (resolved like
//     rule 3) or an inline kind+configuration, which constructs a fresh,
//     unshared generator. Carrying both is an error.
//  2. The operation's per-parameter name list, which must match the
//     parameter count exactly when present.
//  3. The name determined above — or, failing those, the parameter's own
//     declared name — looked up among the named generators; a miss is an
//     error.
//  4. With no name available at all, the default generator for the
//     parameter's scalar kind.
//
// A parameter none of the rules cover fails with ErrUnresolvedParameter.
package builder

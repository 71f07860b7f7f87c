package builder

import "errors"

// Resolution errors surfaced during assembly, in addition to the registry
// package's errors. All wrap operation and parameter context at the call
// site; match with errors.Is.
var (
	// ErrConflictingParamConfig reports an inline parameter configuration
	// that specifies both a reference name and an inline generator kind.
	ErrConflictingParamConfig = errors.New("parameter config specifies both name and generator")

	// ErrParameterCountMismatch reports an operation whose per-parameter
	// name list does not match the method's parameter count.
	ErrParameterCountMismatch = errors.New("parameter name count mismatch")

	// ErrUnresolvedParameter reports a parameter no resolution rule covers:
	// no inline config, no name to look up, and no default for its kind.
	ErrUnresolvedParameter = errors.New("no generator for parameter")
)

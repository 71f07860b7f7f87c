package registry

import "errors"

// Configuration errors surfaced during assembly. All wrap additional context
// at the call site; match with errors.Is.
var (
	// ErrDuplicateName reports an empty or already-registered name.
	ErrDuplicateName = errors.New("duplicate generator name")

	// ErrUnknownGenerator reports a lookup of a name that was never
	// registered.
	ErrUnknownGenerator = errors.New("unknown generator name")

	// ErrGeneratorConstruction reports a generator kind that could not be
	// instantiated with its configuration string. It wraps the underlying
	// constructor failure.
	ErrGeneratorConstruction = errors.New("cannot construct generator")

	// ErrUndeclaredGroup reports a reference to an operation group that was
	// never declared at class level.
	ErrUndeclaredGroup = errors.New("undeclared operation group")
)

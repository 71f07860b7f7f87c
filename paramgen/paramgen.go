package paramgen

import "math/rand"

// ValueGenerator produces argument values of a single type from the provided
// random source. Implementations must be safe for reuse across calls; they
// hold configuration only, never draw state.
type ValueGenerator interface {
	Generate(r *rand.Rand) any
}

// Ctor builds a generator from a free-form configuration string. An empty
// string selects the generator's documented defaults.
type Ctor func(conf string) (ValueGenerator, error)

// Kind identifies one of the scalar parameter kinds that have a canonical
// default generator.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
)

// String returns the kind identifier used by the builtin constructor map.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// builtins maps kind identifiers to the constructors of the builtin
// generators.
var builtins = map[string]Ctor{
	KindInt8.String():    NewInt8Gen,
	KindInt16.String():   NewInt16Gen,
	KindInt32.String():   NewInt32Gen,
	KindInt64.String():   NewInt64Gen,
	KindFloat32.String(): NewFloat32Gen,
	KindFloat64.String(): NewFloat64Gen,
	KindString.String():  NewStringGen,
}

// Builtins returns a fresh copy of the builtin kind-identifier → constructor
// map. Callers may extend their copy freely.
func Builtins() map[string]Ctor {
	out := make(map[string]Ctor, len(builtins))
	for kind, ctor := range builtins {
		out[kind] = ctor
	}
	return out
}

// DefaultFor returns a freshly constructed empty-configuration generator for
// the given scalar kind. The second return is false for kinds outside the
// fixed default set.
func DefaultFor(k Kind) (ValueGenerator, bool) {
	ctor, ok := builtins[k.String()]
	if !ok {
		return nil, false
	}
	// Empty configuration is valid for every builtin constructor.
	gen, err := ctor("")
	if err != nil {
		return nil, false
	}
	return gen, true
}

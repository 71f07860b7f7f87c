// Package introspect derives a schema.Type from a live Go value using
// reflection. It is the boundary adapter between Go's runtime metadata and
// the builder's structural records: exported methods become method
// descriptors, parameter kinds are mapped from reflect.Kind, and the typed
// Config supplies everything reflection cannot see — operation marks,
// parameter names, and class-level declarations.
//
// The core never imports this package; callers that already hold a
// schema.Type (or build one by hand) bypass it entirely.
package introspect

import (
	"fmt"
	"reflect"

	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/schema"
)

// Operation marks one method of the described value as a test operation and
// carries its configuration. The zero value marks a method with all defaults.
type Operation struct {
	// Params optionally names the generator for each formal parameter, in
	// order. When non-empty it must cover every parameter.
	Params []string

	// ParamConfigs optionally attaches an inline generator configuration to
	// each formal parameter, in order; nil entries leave a parameter
	// unconfigured. When non-empty it must cover every parameter.
	ParamConfigs []*schema.ParamConfig

	// Group names the operation group, declared in Config.Groups.
	Group string

	// RunOnce marks an operation that may execute at most once per scenario.
	RunOnce bool

	// HandledErrors lists error kinds to record as results.
	HandledErrors []string
}

// Config is the typed configuration for Describe: the class-level
// declarations plus the operation marks, keyed by exported method name.
type Config struct {
	Generators []schema.GeneratorDecl
	Groups     []schema.GroupDecl
	Operations map[string]Operation
}

// Describe builds the structural description of instance's type. Methods are
// enumerated in reflect's order (sorted by name); unexported methods are
// skipped. Every key in cfg.Operations must match an exported method, so a
// typo in a method name fails here instead of silently leaving the operation
// unmarked.
func Describe(instance any, cfg Config) (*schema.Type, error) {
	if instance == nil {
		return nil, fmt.Errorf("introspect: nil instance")
	}
	t := reflect.TypeOf(instance)

	seen := make(map[string]struct{}, t.NumMethod())
	methods := make([]schema.Method, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		seen[m.Name] = struct{}{}

		// Input 0 is the receiver.
		params := make([]schema.Param, 0, m.Type.NumIn()-1)
		for j := 1; j < m.Type.NumIn(); j++ {
			params = append(params, schema.Param{Kind: kindOf(m.Type.In(j))})
		}

		method := schema.Method{Name: m.Name, Params: params}
		if op, marked := cfg.Operations[m.Name]; marked {
			if err := applyOperation(&method, op); err != nil {
				return nil, err
			}
		}
		methods = append(methods, method)
	}

	for name := range cfg.Operations {
		if _, ok := seen[name]; !ok {
			return nil, fmt.Errorf("introspect: operation config references unknown method %q on %s", name, t)
		}
	}

	return &schema.Type{
		Name:       t.String(),
		Generators: append([]schema.GeneratorDecl(nil), cfg.Generators...),
		Groups:     append([]schema.GroupDecl(nil), cfg.Groups...),
		Methods:    methods,
	}, nil
}

func applyOperation(method *schema.Method, op Operation) error {
	if n := len(op.ParamConfigs); n > 0 {
		if n != len(method.Params) {
			return fmt.Errorf("introspect: method %q has %d parameters but %d inline configs", method.Name, len(method.Params), n)
		}
		for i, cfg := range op.ParamConfigs {
			method.Params[i].Config = cfg
		}
	}
	method.Operation = &schema.Operation{
		Params:        append([]string(nil), op.Params...),
		Group:         op.Group,
		RunOnce:       op.RunOnce,
		HandledErrors: append([]string(nil), op.HandledErrors...),
	}
	return nil
}

// kindOf maps a reflect type onto the scalar kinds that have default
// generators. Go's int is platform-sized and maps to the 64-bit kind.
// Anything else is KindInvalid and needs explicit configuration.
func kindOf(t reflect.Type) paramgen.Kind {
	switch t.Kind() {
	case reflect.Int8:
		return paramgen.KindInt8
	case reflect.Int16:
		return paramgen.KindInt16
	case reflect.Int32:
		return paramgen.KindInt32
	case reflect.Int, reflect.Int64:
		return paramgen.KindInt64
	case reflect.Float32:
		return paramgen.KindFloat32
	case reflect.Float64:
		return paramgen.KindFloat64
	case reflect.String:
		return paramgen.KindString
	default:
		return paramgen.KindInvalid
	}
}

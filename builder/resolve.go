package builder

import (
	"fmt"

	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/plan"
	"github.com/vk/churn/registry"
	"github.com/vk/churn/schema"
)

// resolveActor validates a marked operation and resolves one generator per
// formal parameter. Operation-level checks run before any parameter is
// touched, so a structurally broken operation never half-resolves.
func (b *Builder) resolveActor(method *schema.Method, factory *registry.Factory, named *registry.Generators, groups *registry.Groups) (*plan.ActorGenerator, error) {
	op := method.Operation

	if op.Group != "" && !groups.Declared(op.Group) {
		return nil, fmt.Errorf("%w: operation %q references group %q", registry.ErrUndeclaredGroup, method.Name, op.Group)
	}
	if n := len(op.Params); n > 0 && n != len(method.Params) {
		return nil, fmt.Errorf("%w: operation %q lists %d generator names for %d parameters",
			ErrParameterCountMismatch, method.Name, n, len(method.Params))
	}

	gens := make([]paramgen.ValueGenerator, 0, len(method.Params))
	for i := range method.Params {
		nameInOp, hasOpName := "", false
		if len(op.Params) > 0 {
			nameInOp, hasOpName = op.Params[i], true
		}
		gen, err := b.resolveParam(method, i, nameInOp, hasOpName, factory, named)
		if err != nil {
			return nil, err
		}
		gens = append(gens, gen)
	}

	return plan.NewActorGenerator(method, gens, op.HandledErrors, op.RunOnce), nil
}

// resolveParam resolves the generator for a single parameter using the
// precedence documented in the package comment.
func (b *Builder) resolveParam(method *schema.Method, idx int, nameInOp string, hasOpName bool, factory *registry.Factory, named *registry.Generators) (paramgen.ValueGenerator, error) {
	param := &method.Params[idx]

	if cfg := param.Config; !cfg.Empty() {
		if cfg.Name != "" && cfg.Gen != "" {
			return nil, fmt.Errorf("%w: parameter %s of operation %q",
				ErrConflictingParamConfig, paramLabel(param, idx), method.Name)
		}
		if cfg.Name != "" {
			return b.lookupNamed(method, param, idx, cfg.Name, named)
		}
		gen, err := factory.Construct(cfg.Gen, cfg.Conf)
		if err != nil {
			return nil, fmt.Errorf("parameter %s of operation %q: %w", paramLabel(param, idx), method.Name, err)
		}
		return gen, nil
	}

	// Whichever name is available is used: the operation-level list entry
	// first, the parameter's own declared name otherwise.
	if hasOpName {
		return b.lookupNamed(method, param, idx, nameInOp, named)
	}
	if param.Name != "" {
		return b.lookupNamed(method, param, idx, param.Name, named)
	}

	if gen, ok := paramgen.DefaultFor(param.Kind); ok {
		return gen, nil
	}
	return nil, fmt.Errorf("%w: parameter %s of operation %q has kind %q",
		ErrUnresolvedParameter, paramLabel(param, idx), method.Name, param.Kind)
}

func (b *Builder) lookupNamed(method *schema.Method, param *schema.Param, idx int, name string, named *registry.Generators) (paramgen.ValueGenerator, error) {
	gen, err := named.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("parameter %s of operation %q: %w", paramLabel(param, idx), method.Name, err)
	}
	return gen, nil
}

func paramLabel(param *schema.Param, idx int) string {
	if param.Name != "" {
		return fmt.Sprintf("%q", param.Name)
	}
	return fmt.Sprintf("#%d", idx)
}

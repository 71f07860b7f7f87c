package builder

import (
	"context"
	"fmt"

	"github.com/vk/churn/internal/ctxlog"
	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/plan"
	"github.com/vk/churn/registry"
	"github.com/vk/churn/schema"
)

// Builder assembles test definitions into plans. The zero configuration
// knows the builtin generator kinds; options extend it. A Builder holds no
// per-build state and is safe for concurrent use.
type Builder struct {
	kinds map[string]paramgen.Ctor
}

// Option configures a Builder.
type Option func(*Builder)

// WithKind registers an additional generator kind, available to inline
// parameter configurations and class-level declarations of every Build call.
func WithKind(kind string, ctor paramgen.Ctor) Option {
	return func(b *Builder) {
		b.kinds[kind] = ctor
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{kinds: make(map[string]paramgen.Ctor)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles the test definition into an immutable plan. It validates
// the whole definition eagerly and fails on the first inconsistency; on
// error no partial plan is returned.
func (b *Builder) Build(ctx context.Context, def *schema.Type) (*plan.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	factory := registry.NewFactory()
	for kind, ctor := range b.kinds {
		if err := factory.RegisterKind(kind, ctor); err != nil {
			return nil, err
		}
	}

	named := registry.NewGenerators()
	for _, decl := range def.Generators {
		gen, err := factory.Construct(decl.Gen, decl.Conf)
		if err != nil {
			return nil, fmt.Errorf("class-level generator %q: %w", decl.Name, err)
		}
		if err := named.Register(decl.Name, gen); err != nil {
			return nil, err
		}
		logger.Debug("registered named generator", "name", decl.Name, "kind", decl.Gen)
	}

	groups := registry.NewGroups()
	for _, decl := range def.Groups {
		groups.Declare(decl.Name, decl.NonParallel)
		logger.Debug("declared operation group", "name", decl.Name, "non_parallel", decl.NonParallel)
	}

	var actors []*plan.ActorGenerator
	for i := range def.Methods {
		method := &def.Methods[i]
		if method.Operation == nil {
			continue
		}
		actor, err := b.resolveActor(method, factory, named, groups)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
		if group := method.Operation.Group; group != "" {
			if err := groups.Attach(group, actor); err != nil {
				return nil, fmt.Errorf("operation %q: %w", method.Name, err)
			}
		}
		logger.Debug("resolved operation", "method", method.Name, "params", len(method.Params))
	}

	result := plan.New(actors, groups.Snapshot())
	logger.Info("test structure assembled",
		"type", def.Name, "actors", len(actors), "groups", len(def.Groups))
	return result, nil
}

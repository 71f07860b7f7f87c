package plan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/schema"
)

func TestActorGenerator_Generate(t *testing.T) {
	key, err := paramgen.NewInt32Gen("1:10")
	require.NoError(t, err)
	value, err := paramgen.NewStringGen("4:ab")
	require.NoError(t, err)

	method := &schema.Method{Name: "Put", Params: []schema.Param{{Name: "key"}, {Name: "value"}}}
	actorGen := NewActorGenerator(method, []paramgen.ValueGenerator{key, value}, []string{"ErrFull"}, true)

	actor := actorGen.Generate(rand.New(rand.NewSource(1)))
	assert.Equal(t, "Put", actor.Method)
	require.Len(t, actor.Arguments, 2)
	assert.IsType(t, int32(0), actor.Arguments[0])
	assert.IsType(t, "", actor.Arguments[1])
	assert.Equal(t, []string{"ErrFull"}, actor.HandledErrors)
	assert.True(t, actor.RunOnce)
}

func TestActorGenerator_AccessorsCopy(t *testing.T) {
	gen, err := paramgen.NewInt32Gen("")
	require.NoError(t, err)
	actorGen := NewActorGenerator(&schema.Method{Name: "Pop"}, []paramgen.ValueGenerator{gen}, nil, false)

	gens := actorGen.ArgumentGenerators()
	gens[0] = nil
	require.NotNil(t, actorGen.ArgumentGenerators()[0])
}

func TestOperationGroup_MembersCopy(t *testing.T) {
	a := NewActorGenerator(&schema.Method{Name: "Push"}, nil, nil, false)
	group := NewOperationGroup("g", true, []*ActorGenerator{a})

	members := group.Actors()
	members[0] = nil
	require.Len(t, group.Actors(), 1)
	assert.Same(t, a, group.Actors()[0])
}

func TestOperationGroup_String(t *testing.T) {
	a := NewActorGenerator(&schema.Method{Name: "Push"}, nil, nil, false)
	b := NewActorGenerator(&schema.Method{Name: "Pop"}, nil, nil, false)
	group := NewOperationGroup("stack", true, []*ActorGenerator{a, b})

	assert.Equal(t, "OperationGroup{name=stack, nonParallel=true, actors=[Push, Pop]}", group.String())
}

func TestPlan_Snapshots(t *testing.T) {
	a := NewActorGenerator(&schema.Method{Name: "Push"}, nil, nil, false)
	p := New([]*ActorGenerator{a}, []*OperationGroup{NewOperationGroup("g", false, nil)})

	actors := p.Actors()
	actors[0] = nil
	require.Len(t, p.Actors(), 1)
	assert.Same(t, a, p.Actors()[0])
	require.Len(t, p.Groups(), 1)
	assert.Equal(t, "g", p.Groups()[0].Name())
}

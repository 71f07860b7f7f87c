package introspect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/churn/builder"
	"github.com/vk/churn/paramgen"
	"github.com/vk/churn/schema"
)

// counterTest is a sample test definition type.
type counterTest struct{ n int64 }

func (c *counterTest) Add(x int64)            { c.n += x }
func (c *counterTest) AddFloat(x float64)     { _ = x }
func (c *counterTest) Get() int64             { return c.n }
func (c *counterTest) Label(s string, x int8) { _, _ = s, x }

//nolint:unused // exists to prove unexported methods are skipped
func (c *counterTest) reset() { c.n = 0 }

func TestDescribe_MapsKindsAndMarks(t *testing.T) {
	def, err := Describe(&counterTest{}, Config{
		Operations: map[string]Operation{
			"Add": {RunOnce: true},
			"Get": {},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "*introspect.counterTest", def.Name)

	byName := make(map[string]*schema.Method)
	for i := range def.Methods {
		byName[def.Methods[i].Name] = &def.Methods[i]
	}
	require.NotContains(t, byName, "reset")

	add := byName["Add"]
	require.NotNil(t, add)
	require.NotNil(t, add.Operation)
	assert.True(t, add.Operation.RunOnce)
	require.Len(t, add.Params, 1)
	assert.Equal(t, paramgen.KindInt64, add.Params[0].Kind)

	addFloat := byName["AddFloat"]
	require.NotNil(t, addFloat)
	assert.Nil(t, addFloat.Operation, "unmarked methods stay unmarked")
	assert.Equal(t, paramgen.KindFloat64, addFloat.Params[0].Kind)

	label := byName["Label"]
	require.Len(t, label.Params, 2)
	assert.Equal(t, paramgen.KindString, label.Params[0].Kind)
	assert.Equal(t, paramgen.KindInt8, label.Params[1].Kind)
}

func TestDescribe_UnknownMethodInConfig(t *testing.T) {
	_, err := Describe(&counterTest{}, Config{
		Operations: map[string]Operation{"Push": {}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Push")
}

func TestDescribe_ParamConfigCountMismatch(t *testing.T) {
	_, err := Describe(&counterTest{}, Config{
		Operations: map[string]Operation{
			"Label": {ParamConfigs: []*schema.ParamConfig{{Gen: "string"}}},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Label")
}

func TestDescribe_NilInstance(t *testing.T) {
	_, err := Describe(nil, Config{})
	require.Error(t, err)
}

func TestDescribe_FeedsBuilder(t *testing.T) {
	def, err := Describe(&counterTest{}, Config{
		Generators: []schema.GeneratorDecl{{Name: "small", Gen: "int64", Conf: "0:3"}},
		Groups:     []schema.GroupDecl{{Name: "mutators", NonParallel: true}},
		Operations: map[string]Operation{
			"Add": {Params: []string{"small"}, Group: "mutators"},
			"Get": {Group: "mutators"},
		},
	})
	require.NoError(t, err)

	p, err := builder.New().Build(context.Background(), def)
	require.NoError(t, err)
	assert.Len(t, p.Actors(), 2)

	groups := p.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "mutators", groups[0].Name())
	assert.Len(t, groups[0].Actors(), 2)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type node struct {
	id     string
	parent string
}

func (n node) GetParentID() string { return n.parent }

func TestGroupByParent(t *testing.T) {
	items := []node{
		{id: "c1"},
		{id: "c2"},
		{id: "c3", parent: "c1"},
		{id: "c4", parent: "c1"},
		{id: "c5", parent: "c2"},
	}

	g := GroupByParent(items)

	assert.Equal(t, []node{{id: "c1"}, {id: "c2"}}, g.Parents)
	assert.Equal(t, []node{{id: "c3", parent: "c1"}, {id: "c4", parent: "c1"}}, g.Children["c1"])
	assert.Equal(t, []node{{id: "c5", parent: "c2"}}, g.Children["c2"])
	assert.Len(t, g.Children, 2)
}

func TestGroupByParentKeepsInputOrder(t *testing.T) {
	items := []node{
		{id: "r2"},
		{id: "b", parent: "r1"},
		{id: "r1"},
		{id: "a", parent: "r1"},
	}

	g := GroupByParent(items)

	assert.Equal(t, []node{{id: "r2"}, {id: "r1"}}, g.Parents)
	assert.Equal(t, []node{{id: "b", parent: "r1"}, {id: "a", parent: "r1"}}, g.Children["r1"])
}

func TestGroupByParentIsIdempotent(t *testing.T) {
	items := []node{{id: "x"}, {id: "y", parent: "x"}, {id: "z", parent: "missing"}}

	first := GroupByParent(items)
	second := GroupByParent(items)

	assert.Equal(t, first, second)
	assert.Equal(t, []node{{id: "z", parent: "missing"}}, first.Children["missing"])
}

func TestGroupByParentEmpty(t *testing.T) {
	g := GroupByParent[node](nil)
	assert.NotNil(t, g.Parents)
	assert.Empty(t, g.Parents)
	assert.NotNil(t, g.Children)
	assert.Empty(t, g.Children)
}

func TestPointerHelpers(t *testing.T) {
	p := ToPointer("admin")
	assert.Equal(t, "admin", *p)
	assert.Equal(t, "admin", ToValue(p))
	assert.Equal(t, "", ToValue[string](nil))
}

/*
File    : nimble/class/class_test.go
*/
package class

import (
	"testing"

	"github.com/nimblelang/nimble/environment"
	"github.com/nimblelang/nimble/function"
	"github.com/nimblelang/nimble/objects"
	"github.com/stretchr/testify/assert"
)

func TestClass_FindMethodWalksSuperclassChain(t *testing.T) {
	greet := function.New("greet", nil, nil, environment.New(), false)
	base := New("Animal", nil, map[string]*function.Function{"greet": greet})
	derived := New("Dog", base, map[string]*function.Function{})

	m, ok := derived.FindMethod("greet")
	assert.True(t, ok)
	assert.Same(t, greet, m)
}

func TestClass_ArityComesFromInit(t *testing.T) {
	init := function.New("init", nil, nil, environment.New(), true)
	c := New("Point", nil, map[string]*function.Function{"init": init})
	assert.Equal(t, 0, c.Arity())
}

func TestInstance_GetFieldShadowsMethod(t *testing.T) {
	m := function.New("greet", nil, nil, environment.New(), false)
	c := New("Thing", nil, map[string]*function.Function{"greet": m})
	inst := NewInstance(c)
	inst.Set("greet", objects.String("shadowed"))

	v, ok := inst.Get("greet")
	assert.True(t, ok)
	assert.Equal(t, objects.String("shadowed"), v)
}

func TestInstance_GetMethodIsBoundToReceiver(t *testing.T) {
	m := function.New("whoAmI", nil, nil, environment.New(), false)
	c := New("Thing", nil, map[string]*function.Function{"whoAmI": m})
	inst := NewInstance(c)

	v, ok := inst.Get("whoAmI")
	assert.True(t, ok)
	bound := v.(*function.Function)
	this, ok := bound.Closure.Get("this")
	assert.True(t, ok)
	assert.Same(t, inst, this)
}

func TestInstance_GetMissingReturnsFalse(t *testing.T) {
	c := New("Thing", nil, map[string]*function.Function{})
	inst := NewInstance(c)
	_, ok := inst.Get("nope")
	assert.False(t, ok)
}

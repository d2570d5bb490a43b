/*
File    : nimble/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/nimblelang/nimble/environment"
	"github.com/nimblelang/nimble/lexer"
	"github.com/nimblelang/nimble/objects"
	"github.com/stretchr/testify/assert"
)

func TestFunction_StringNamedVsLambda(t *testing.T) {
	f := New("add", nil, nil, environment.New(), false)
	assert.Equal(t, "<func add>", f.String())

	lambda := New("", nil, nil, environment.New(), false)
	assert.Equal(t, "<func lambda>", lambda.String())
}

func TestFunction_Arity(t *testing.T) {
	params := []lexer.Token{
		lexer.NewToken(lexer.IDENTIFIER, "a", 1, 1),
		lexer.NewToken(lexer.IDENTIFIER, "b", 1, 1),
	}
	f := New("add", params, nil, environment.New(), false)
	assert.Equal(t, 2, f.Arity())
}

func TestFunction_BindCreatesChildClosureWithThis(t *testing.T) {
	closure := environment.New()
	f := New("greet", nil, nil, closure, false)

	instance := objects.String("fake-instance")
	bound := f.Bind(instance)

	assert.NotSame(t, closure, bound.Closure)
	this, ok := bound.Closure.Get("this")
	assert.True(t, ok)
	assert.Equal(t, instance, this)

	_, ok = closure.Get("this")
	assert.False(t, ok, "binding must not leak 'this' into the original closure")
}

/*
File    : nimble/resolver/resolver_test.go
*/
package resolver

import (
	"testing"

	"github.com/nimblelang/nimble/parser"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) []parser.Stmt {
	t.Helper()
	p := parser.NewParser(src)
	stmts := p.Parse()
	assert.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return stmts
}

func TestResolver_RecordsBlockShadowDistance(t *testing.T) {
	stmts := parse(t, `var a=1; { var a=2; print(a); } print(a);`)
	r := New()
	r.Resolve(stmts)
	assert.False(t, r.HasErrors())

	block := stmts[1].(*parser.Block)
	innerPrint := block.Statements[1].(*parser.Print)
	innerVar := innerPrint.Expression.(*parser.Variable)
	dist, ok := r.Locals[innerVar]
	assert.True(t, ok)
	assert.Equal(t, 0, dist)

	outerPrint := stmts[2].(*parser.Print)
	outerVar := outerPrint.Expression.(*parser.Variable)
	_, ok = r.Locals[outerVar]
	assert.False(t, ok, "top-level reference to global 'a' should have no recorded distance")
}

func TestResolver_ReturnAtTopLevelIsError(t *testing.T) {
	stmts := parse(t, `return 1;`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't return from top-level code")
}

func TestResolver_ReturnValueFromInitializerIsError(t *testing.T) {
	stmts := parse(t, `class C { init() { return 7; } }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't return a value from an initializer")
}

func TestResolver_ThisOutsideClassIsError(t *testing.T) {
	stmts := parse(t, `print(this);`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't use 'this' outside of a class")
}

func TestResolver_SuperWithoutSuperclassIsError(t *testing.T) {
	stmts := parse(t, `class C { f() { return super.f(); } }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
}

func TestResolver_RedeclareInSameScopeIsError(t *testing.T) {
	stmts := parse(t, `{ var a=1; var a=2; }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Already a variable with this name in this scope")
}

func TestResolver_SelfReferenceInInitializerIsError(t *testing.T) {
	stmts := parse(t, `{ var a = a; }`)
	r := New()
	r.Resolve(stmts)
	assert.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't read local variable in its own initializer")
}

func TestResolver_SuperDistanceIsOneAboveThis(t *testing.T) {
	stmts := parse(t, `class A { f() { return 1; } } class B : A { f() { return super.f(); } }`)
	r := New()
	r.Resolve(stmts)
	assert.False(t, r.HasErrors())

	classB := stmts[1].(*parser.Class)
	method := classB.Methods[0]
	ret := method.Fn.Body[0].(*parser.Return)
	call := ret.Value.(*parser.Call)
	superExpr := call.Callee.(*parser.Super)

	superDist, ok := r.Locals[superExpr]
	assert.True(t, ok)
	assert.Equal(t, 2, superDist)
}

/*
File    : nimble/interp/interp_test.go
*/
package interp

import (
	"bytes"
	"testing"

	"github.com/nimblelang/nimble/parser"
	"github.com/nimblelang/nimble/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.NewParser(src)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	r := resolver.New()
	r.Resolve(stmts)
	require.False(t, r.HasErrors(), "resolve errors: %v", r.GetErrors())

	in := New(r.Locals)
	var out bytes.Buffer
	in.SetOutput(&out)
	in.SetErrorOutput(&out)
	in.Interpret(stmts)
	return out.String()
}

func TestInterp_BlockShadowing(t *testing.T) {
	out := run(t, `var a=1; { var a=2; print(a); } print(a);`)
	assert.Equal(t, "2\n1\n", out)
}

func TestInterp_ClosureCounter(t *testing.T) {
	out := run(t, `fun mk(){var i=0; fun inc(){i=i+1; return i;} return inc;} var c=mk(); print(c()); print(c()); print(c());`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterp_SuperDispatch(t *testing.T) {
	out := run(t, `class A{f(){return "A";}} class B:A{f(){return "B-"+super.f();}} print(B().f());`)
	assert.Equal(t, "B-A\n", out)
}

func TestInterp_ListSubscriptAppendAndOutOfRangeRead(t *testing.T) {
	out := run(t, `var xs=[1,2,3]; xs[3]=4; print(xs[0]); print(xs[3]); print(xs[99]);`)
	assert.Equal(t, "1\n4\nnil\n", out)
}

func TestInterp_BreakExitsLoop(t *testing.T) {
	out := run(t, `for(var i=0;i<3;i=i+1){ if(i==2) break; print(i);}`)
	assert.Equal(t, "0\n1\n", out)
}

func TestInterp_InitializerAlwaysReturnsInstance(t *testing.T) {
	out := run(t, `class C{init(x){this.x=x;} show(){print(this.x);}} C(42).show();`)
	assert.Equal(t, "42\n", out)
}

func TestInterp_NumberPlusStringCoercesToString(t *testing.T) {
	out := run(t, `print(1+"a");`)
	assert.Equal(t, "1a\n", out)
}

func TestInterp_BoolPlusNumberIsRuntimeError(t *testing.T) {
	out := run(t, `print(true+1);`)
	assert.Contains(t, out, "Operands must be 2 numbers, 2 strings, or 1 number and 1 string")
}

func TestInterp_LogicalOperatorsReturnDecidingValue(t *testing.T) {
	out := run(t, `print(nil or "fallback"); print(0 and "reached");`)
	assert.Equal(t, "fallback\nreached\n", out)
}

func TestInterp_ListWriteOutOfRangeIsRuntimeError(t *testing.T) {
	out := run(t, `var xs=[1]; xs[5]=9;`)
	assert.Contains(t, out, "Index out of range")
}

func TestInterp_SubscriptingNonListIsRuntimeError(t *testing.T) {
	out := run(t, `var x=1; print(x[0]);`)
	assert.Contains(t, out, "Only lists can be subscripted")
}

func TestInterp_UndefinedVariableIsRuntimeError(t *testing.T) {
	out := run(t, `print(nope);`)
	assert.Contains(t, out, "Undefined variable 'nope'")
}

func TestInterp_MethodAndSuperShareUnderlyingFunctionBoundToDifferentReceivers(t *testing.T) {
	out := run(t, `
		class A { m() { return "a"; } }
		class B : A { m() { return super.m(); } }
		print(B().m());
		print(A().m());
	`)
	assert.Equal(t, "a\na\n", out)
}

func TestInterp_ExponentRightAssociative(t *testing.T) {
	out := run(t, `print(2 ** 3 ** 2);`)
	assert.Equal(t, "512\n", out)
}

func TestInterp_FloorDivAndLenBuiltins(t *testing.T) {
	out := run(t, `print(floordiv(7,2)); print(len([1,2,3]));`)
	assert.Equal(t, "3\n3\n", out)
}

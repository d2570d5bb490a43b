/*
File    : nimble/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_VarDeclaration(t *testing.T) {
	p := NewParser(`var x = 1 + 2;`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	assert.Len(t, stmts, 1)
	v, ok := stmts[0].(*Var)
	assert.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	bin, ok := v.Initializer.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Operator.Lexeme)
}

func TestParser_PrecedenceLadder(t *testing.T) {
	p := NewParser(`1 + 2 * 3 ** 2;`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	es := stmts[0].(*ExpressionStmt)
	top := es.Expression.(*Binary)
	assert.Equal(t, "**", top.Operator.Lexeme)
	sum := top.Left.(*Binary)
	assert.Equal(t, "+", sum.Operator.Lexeme)
	mul := sum.Right.(*Binary)
	assert.Equal(t, "*", mul.Operator.Lexeme)
}

func TestParser_ExponentRightAssociative(t *testing.T) {
	p := NewParser(`2 ** 3 ** 2;`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	top := stmts[0].(*ExpressionStmt).Expression.(*Binary)
	_, rightIsBinary := top.Right.(*Binary)
	assert.True(t, rightIsBinary, "exponent should be right-associative")
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	p := NewParser(`for (var i=0; i<3; i=i+1) print(i);`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	block, ok := stmts[0].(*Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
	_, isVar := block.Statements[0].(*Var)
	assert.True(t, isVar)
	while, ok := block.Statements[1].(*While)
	assert.True(t, ok)
	assert.NotNil(t, while.Condition)
}

func TestParser_BreakOutsideLoopIsError(t *testing.T) {
	p := NewParser(`break;`)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_BreakInsideLoopIsFine(t *testing.T) {
	p := NewParser(`while (true) { break; }`)
	p.Parse()
	assert.False(t, p.HasErrors())
}

func TestParser_InvalidAssignmentTargetReportsButContinues(t *testing.T) {
	p := NewParser(`1 = 2;`)
	stmts := p.Parse()
	assert.True(t, p.HasErrors())
	assert.Len(t, stmts, 1)
}

func TestParser_ClassWithSuperclass(t *testing.T) {
	p := NewParser(`class B : A { f() { return 1; } }`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	cls := stmts[0].(*Class)
	assert.Equal(t, "B", cls.Name.Lexeme)
	assert.NotNil(t, cls.Superclass)
	assert.Equal(t, "A", cls.Superclass.Name.Lexeme)
	assert.Len(t, cls.Methods, 1)
}

func TestParser_ListLiteralAndSubscript(t *testing.T) {
	p := NewParser(`var xs = [1, 2, 3]; xs[0] = 9;`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	assign := stmts[1].(*ExpressionStmt).Expression.(*Subscript)
	assert.NotNil(t, assign.Value)
}

func TestParser_ReplModeReturnsRawExpression(t *testing.T) {
	p := NewParser(`1 + 2;`)
	stmts, expr := p.ParseREPL()
	assert.Empty(t, stmts)
	assert.NotNil(t, expr)
	_, ok := expr.(*Binary)
	assert.True(t, ok)
}

func TestParser_PanicModeRecoveryCollectsMultipleErrors(t *testing.T) {
	p := NewParser(`var ; var = 1; var y = 1;`)
	p.Parse()
	assert.True(t, p.HasErrors())
	assert.Len(t, p.Errors, 2)
}

func TestParser_SuperMethodCall(t *testing.T) {
	p := NewParser(`class B : A { f() { return super.f(); } }`)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())
	cls := stmts[0].(*Class)
	ret := cls.Methods[0].Fn.Body[0].(*Return)
	call := ret.Value.(*Call)
	_, ok := call.Callee.(*Super)
	assert.True(t, ok)
}

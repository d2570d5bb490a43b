/*
File    : nimble/parser/ast.go
*/

// Package parser builds an AST of expressions and statements from a
// nimble token stream.
package parser

import "github.com/nimblelang/nimble/lexer"

// Expr is any expression AST node. Every concrete Expr is used as a
// pointer, so an Expr value's identity (for the resolver's distance
// table) is Go's ordinary pointer identity, not structural equality.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// Stmt is any statement AST node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExprVisitor dispatches over the expression node kinds.
type ExprVisitor interface {
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
	VisitGetExpr(e *Get) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitSetExpr(e *Set) (interface{}, error)
	VisitSuperExpr(e *Super) (interface{}, error)
	VisitThisExpr(e *This) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
	VisitFunctionExpr(e *FunctionExpr) (interface{}, error)
	VisitListExpr(e *ListExpr) (interface{}, error)
	VisitSubscriptExpr(e *Subscript) (interface{}, error)
}

// StmtVisitor dispatches over the statement node kinds.
type StmtVisitor interface {
	VisitBlockStmt(s *Block) error
	VisitClassStmt(s *Class) error
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitIfStmt(s *If) error
	VisitImportStmt(s *Import) error
	VisitPrintStmt(s *Print) error
	VisitReturnStmt(s *Return) error
	VisitVarStmt(s *Var) error
	VisitWhileStmt(s *While) error
	VisitBreakStmt(s *Break) error
}

// ---- Expressions ----

// Literal is nil, bool, number, or string literal value.
type Literal struct {
	Value interface{}
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Variable is a bare-name reference, resolved via the distance table.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign is `name = value`.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Unary is a prefix operator applied to Right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic/comparison/equality operator.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is `and`/`or`, which short-circuit (unlike Binary).
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Call is `callee(args...)`.
type Call struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// FunctionExpr is an anonymous function literal; a named FunctionStmt
// wraps one of these.
type FunctionExpr struct {
	Params []lexer.Token
	Body   []Stmt
}

func (e *FunctionExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitFunctionExpr(e) }

// Get is `object.name` property/method access.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (e *Get) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// Set is `object.name = value` property assignment.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// This is the `this` keyword reference inside a method body.
type This struct {
	Keyword lexer.Token
}

func (e *This) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// Super is `super.method`.
type Super struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *Super) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }

// ListExpr is a `[a, b, c]` list literal.
type ListExpr struct {
	Elements []Expr
}

func (e *ListExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitListExpr(e) }

// Subscript is `target[index]`, and `target[index] = Value` when Value
// is non-nil.
type Subscript struct {
	Target Expr
	Bracket lexer.Token
	Index  Expr
	Value  Expr
}

func (e *Subscript) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSubscriptExpr(e) }

// ---- Statements ----

// Block is `{ stmts... }`, each executed in a fresh child environment.
type Block struct {
	Statements []Stmt
}

func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// ExpressionStmt evaluates E for its side effects and discards the value.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// Print evaluates E, stringifies, and writes it followed by a newline.
type Print struct {
	Expression Expr
}

func (s *Print) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// Var is `var name = initializer;` (initializer may be nil).
type Var struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *Var) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// If is `if (cond) then else ...` (Else may be nil).
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *If) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// While is `while (cond) body`; desugared `for` loops compile to this.
type While struct {
	Condition Expr
	Body      Stmt
}

func (s *While) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt is a named function declaration.
type FunctionStmt struct {
	Name lexer.Token
	Fn   *FunctionExpr
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// Return is `return value;` (Value may be nil for a bare `return;`).
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *Return) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// Break is `break;`.
type Break struct {
	Keyword lexer.Token
}

func (s *Break) Accept(v StmtVisitor) error { return v.VisitBreakStmt(s) }

// Class is a class declaration: name, optional superclass reference, and
// its methods (each a FunctionStmt; the one named "init" is the
// initializer).
type Class struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *Class) Accept(v StmtVisitor) error { return v.VisitClassStmt(s) }

// Import is `import "path";`.
type Import struct {
	Keyword lexer.Token
	Path    string
}

func (s *Import) Accept(v StmtVisitor) error { return v.VisitImportStmt(s) }

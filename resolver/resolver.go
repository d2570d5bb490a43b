/*
File    : nimble/resolver/resolver.go
*/

// Package resolver implements the static pass that runs between parsing
// and interpretation: for every variable reference it records the
// lexical hop distance to its declaring scope, and it enforces the
// language's compile-time-checkable rules (return/this/super placement,
// redeclaration, self-reference in an initializer).
package resolver

import (
	"fmt"

	"github.com/nimblelang/nimble/parser"
)

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcInitializer
	funcMethod
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Importer drives the lex→parse→resolve pipeline for an `import`
// statement's target file, resolving the body's own variable references
// against the shared Resolver state. Execution of the imported
// statements is deferred to the interpreter (see spec §4.3).
type Importer interface {
	Resolve(path string, r *Resolver) ([]parser.Stmt, error)
}

// Resolver walks an AST, recording scope distances in Locals and
// reporting static errors into Errors.
type Resolver struct {
	scopes []map[string]bool

	currentFunc  functionType
	currentClass classType

	// Locals maps an expression node (by pointer identity) to the number
	// of environment hops from the frame where it's evaluated to the
	// frame that declared the referenced name.
	Locals map[parser.Expr]int

	Errors   []string
	Importer Importer
}

// New creates a Resolver ready to resolve a program's top-level statements.
func New() *Resolver {
	return &Resolver{Locals: make(map[parser.Expr]int)}
}

func (r *Resolver) HasErrors() bool     { return len(r.Errors) > 0 }
func (r *Resolver) GetErrors() []string { return r.Errors }

func (r *Resolver) addError(line int, msg string) {
	r.Errors = append(r.Errors, fmt.Sprintf("[line %d] Error: %s", line, msg))
}

// Resolve resolves a top-level statement list against an empty scope
// stack: globals are never pushed onto the stack, so any name the stack
// doesn't resolve falls through to globals at runtime.
func (r *Resolver) Resolve(stmts []parser.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s parser.Stmt) {
	if s == nil {
		return
	}
	_ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e parser.Expr) {
	if e == nil {
		return
	}
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet defined". Reports
// an error if the name is already declared in that same scope.
func (r *Resolver) declare(name string, line int) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name]; exists {
		r.addError(line, "Already a variable with this name in this scope")
	}
	scope[name] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal scans the scope stack from innermost outward; if found,
// records the distance keyed by node identity.
func (r *Resolver) resolveLocal(node parser.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Locals[node] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: resolves to globals at runtime.
}

func (r *Resolver) resolveFunction(fn *parser.FunctionExpr, kind functionType) {
	enclosingFunc := r.currentFunc
	r.currentFunc = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Lexeme, param.Line)
		r.define(param.Lexeme)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunc = enclosingFunc
}

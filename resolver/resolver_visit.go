/*
File    : nimble/resolver/resolver_visit.go
*/
package resolver

import "github.com/nimblelang/nimble/parser"

// ---- Expressions ----

func (r *Resolver) VisitVariableExpr(e *parser.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.addError(e.Name.Line, "Can't read local variable in its own initializer")
		}
	}
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *parser.Assign) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *parser.Binary) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *parser.Logical) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *parser.Unary) (interface{}, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *parser.Grouping) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *parser.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *parser.Call) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitFunctionExpr(e *parser.FunctionExpr) (interface{}, error) {
	r.resolveFunction(e, funcFunction)
	return nil, nil
}

func (r *Resolver) VisitGetExpr(e *parser.Get) (interface{}, error) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSetExpr(e *parser.Set) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThisExpr(e *parser.This) (interface{}, error) {
	if r.currentClass == classNone {
		r.addError(e.Keyword.Line, "Can't use 'this' outside of a class")
		return nil, nil
	}
	r.resolveLocal(e, "this")
	return nil, nil
}

func (r *Resolver) VisitSuperExpr(e *parser.Super) (interface{}, error) {
	if r.currentClass == classNone {
		r.addError(e.Keyword.Line, "Can't use 'super' outside of a class")
	} else if r.currentClass != classSubclass {
		r.addError(e.Keyword.Line, "Can't use 'super' in a class with no superclass")
	}
	r.resolveLocal(e, "super")
	return nil, nil
}

func (r *Resolver) VisitListExpr(e *parser.ListExpr) (interface{}, error) {
	for _, el := range e.Elements {
		r.resolveExpr(el)
	}
	return nil, nil
}

func (r *Resolver) VisitSubscriptExpr(e *parser.Subscript) (interface{}, error) {
	r.resolveExpr(e.Target)
	r.resolveExpr(e.Index)
	if e.Value != nil {
		r.resolveExpr(e.Value)
	}
	return nil, nil
}

// ---- Statements ----

func (r *Resolver) VisitBlockStmt(s *parser.Block) error {
	r.beginScope()
	r.resolveStmts(s.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitVarStmt(s *parser.Var) error {
	r.declare(s.Name.Lexeme, s.Name.Line)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Lexeme)
	return nil
}

func (r *Resolver) VisitFunctionStmt(s *parser.FunctionStmt) error {
	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)
	r.resolveFunction(s.Fn, funcFunction)
	return nil
}

func (r *Resolver) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitIfStmt(s *parser.If) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(s *parser.Print) error {
	r.resolveExpr(s.Expression)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *parser.Return) error {
	if r.currentFunc == funcNone {
		r.addError(s.Keyword.Line, "Can't return from top-level code")
	}
	if s.Value != nil {
		if r.currentFunc == funcInitializer {
			r.addError(s.Keyword.Line, "Can't return a value from an initializer")
		}
		r.resolveExpr(s.Value)
	}
	return nil
}

func (r *Resolver) VisitBreakStmt(s *parser.Break) error {
	return nil
}

func (r *Resolver) VisitWhileStmt(s *parser.While) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

func (r *Resolver) VisitClassStmt(s *parser.Class) error {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name.Lexeme, s.Name.Line)
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.addError(s.Superclass.Name.Line, "A class can't inherit from itself")
		}
		r.resolveExpr(s.Superclass)
		r.currentClass = classSubclass
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := funcMethod
		if method.Name.Lexeme == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method.Fn, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

func (r *Resolver) VisitImportStmt(s *parser.Import) error {
	if r.Importer == nil {
		return nil
	}
	stmts, err := r.Importer.Resolve(s.Path, r)
	if err != nil {
		r.addError(s.Keyword.Line, err.Error())
		return nil
	}
	r.resolveStmts(stmts)
	return nil
}

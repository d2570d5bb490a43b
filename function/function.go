/*
File    : nimble/function/function.go
*/

// Package function implements nimble's user-defined function value: a
// closure over the environment active at its definition, adapted from
// the teacher's function.Function (name, params, body, captured scope)
// and extended with the is-initializer flag and the closure-rebinding
// Bind needs for method dispatch (spec §4.4).
package function

import (
	"fmt"

	"github.com/nimblelang/nimble/environment"
	"github.com/nimblelang/nimble/lexer"
	"github.com/nimblelang/nimble/objects"
	"github.com/nimblelang/nimble/parser"
)

// Function is a user-defined function, method, or anonymous lambda value.
type Function struct {
	Name          string // empty for an anonymous function literal
	Params        []lexer.Token
	Body          []parser.Stmt
	Closure       *environment.Environment
	IsInitializer bool
}

func New(name string, params []lexer.Token, body []parser.Stmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Name: name, Params: params, Body: body, Closure: closure, IsInitializer: isInitializer}
}

func (*Function) TypeName() string { return "function" }

func (f *Function) String() string {
	if f.Name == "" {
		return "<func lambda>"
	}
	return fmt.Sprintf("<func %s>", f.Name)
}

// Arity is the declared parameter count, checked against call-site
// argument count by the interpreter.
func (f *Function) Arity() int { return len(f.Params) }

// Bind returns a new Function sharing f's body but whose closure is a
// fresh child of f's closure with "this" bound to instance — this is
// what makes `instance.method` produce a callable that knows its
// receiver without mutating the method stored on the class.
func (f *Function) Bind(instance objects.Value) *Function {
	env := environment.NewChild(f.Closure)
	env.Define("this", instance)
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Closure: env, IsInitializer: f.IsInitializer}
}

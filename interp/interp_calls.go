/*
File    : nimble/interp/interp_calls.go
*/
package interp

import (
	"fmt"

	"github.com/nimblelang/nimble/builtin"
	"github.com/nimblelang/nimble/class"
	"github.com/nimblelang/nimble/environment"
	"github.com/nimblelang/nimble/function"
	"github.com/nimblelang/nimble/lexer"
	"github.com/nimblelang/nimble/objects"
)

// callValue dispatches a call expression by type-switching on the
// already-evaluated callee — the concrete-type-per-package design this
// repo uses in place of a shared Callable interface, mirroring the
// teacher's inline dispatch in evalCallExpression (eval/eval_controls.go)
// generalized from a single function kind to three.
func (in *Interpreter) callValue(callee objects.Value, paren lexer.Token, args []objects.Value) (objects.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		return in.callFunction(fn, paren, args)
	case *class.Class:
		return in.instantiate(fn, paren, args)
	case *builtin.Builtin:
		return in.callBuiltin(fn, paren, args)
	default:
		return nil, in.runtimeError(paren, "Can only call functions")
	}
}

func (in *Interpreter) callFunction(fn *function.Function, paren lexer.Token, args []objects.Value) (objects.Value, error) {
	if len(args) != fn.Arity() {
		return nil, in.runtimeError(paren, fmt.Sprintf("Expected %d arguments but got %d", fn.Arity(), len(args)))
	}

	env := environment.NewChild(fn.Closure)
	for i, p := range fn.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := in.executeBlock(fn.Body, env)

	if fn.IsInitializer {
		if err != nil {
			if _, ok := err.(returnSignal); !ok {
				return nil, err
			}
		}
		this, _ := fn.Closure.Get("this")
		return this, nil
	}

	if err != nil {
		if rs, ok := err.(returnSignal); ok {
			return rs.Value, nil
		}
		return nil, err
	}
	return objects.Nil{}, nil
}

func (in *Interpreter) instantiate(c *class.Class, paren lexer.Token, args []objects.Value) (objects.Value, error) {
	if len(args) != c.Arity() {
		return nil, in.runtimeError(paren, fmt.Sprintf("Expected %d arguments but got %d", c.Arity(), len(args)))
	}
	instance := class.NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := in.callFunction(init.Bind(instance), paren, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (in *Interpreter) callBuiltin(b *builtin.Builtin, paren lexer.Token, args []objects.Value) (objects.Value, error) {
	if b.Arity < 0 {
		if len(args) > 1 {
			return nil, in.runtimeError(paren, fmt.Sprintf("Expected 0 or 1 arguments but got %d", len(args)))
		}
	} else if len(args) != b.Arity {
		return nil, in.runtimeError(paren, fmt.Sprintf("Expected %d arguments but got %d", b.Arity, len(args)))
	}

	v, err := b.Call(in.stdout, in.stdin, args)
	if err != nil {
		return nil, in.runtimeError(paren, err.Error())
	}
	return v, nil
}

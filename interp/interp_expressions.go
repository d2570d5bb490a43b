/*
File    : nimble/interp/interp_expressions.go
*/
package interp

import (
	"fmt"
	"math"

	"github.com/nimblelang/nimble/class"
	"github.com/nimblelang/nimble/function"
	"github.com/nimblelang/nimble/lexer"
	"github.com/nimblelang/nimble/objects"
	"github.com/nimblelang/nimble/parser"
)

func (in *Interpreter) VisitLiteralExpr(e *parser.Literal) (interface{}, error) {
	switch v := e.Value.(type) {
	case nil:
		return objects.Nil{}, nil
	case bool:
		return objects.Bool(v), nil
	case float64:
		return objects.Number(v), nil
	case string:
		return objects.String(v), nil
	default:
		return objects.Nil{}, nil
	}
}

func (in *Interpreter) VisitGroupingExpr(e *parser.Grouping) (interface{}, error) {
	return in.evaluate(e.Inner)
}

func (in *Interpreter) VisitVariableExpr(e *parser.Variable) (interface{}, error) {
	return in.lookUpVariable(e.Name, e)
}

// lookUpVariable reads a variable (or this/super) by name: via the
// resolver's recorded distance when present, else from globals — the
// two cases the invariant in spec §3 guarantees are exhaustive.
func (in *Interpreter) lookUpVariable(name lexer.Token, node parser.Expr) (objects.Value, error) {
	if dist, ok := in.locals[node]; ok {
		return in.env.GetAt(dist, name.Lexeme), nil
	}
	v, ok := in.globals.Get(name.Lexeme)
	if !ok {
		return nil, in.runtimeError(name, fmt.Sprintf("Undefined variable '%s'", name.Lexeme))
	}
	return v, nil
}

func (in *Interpreter) VisitAssignExpr(e *parser.Assign) (interface{}, error) {
	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if dist, ok := in.locals[e]; ok {
		in.env.AssignAt(dist, e.Name.Lexeme, val)
		return val, nil
	}
	if !in.globals.Assign(e.Name.Lexeme, val) {
		return nil, in.runtimeError(e.Name, fmt.Sprintf("Undefined variable '%s'", e.Name.Lexeme))
	}
	return val, nil
}

func (in *Interpreter) VisitUnaryExpr(e *parser.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(objects.Number)
		if !ok {
			return nil, in.runtimeError(e.Operator, "Operand must be a number")
		}
		return -n, nil
	case lexer.BANG:
		return objects.Bool(!objects.IsTruthy(right)), nil
	}
	return nil, in.runtimeError(e.Operator, "Unknown unary operator")
}

func (in *Interpreter) VisitBinaryExpr(e *parser.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.EQUAL_EQUAL:
		return objects.Bool(objects.Equal(left, right)), nil
	case lexer.BANG_EQUAL:
		return objects.Bool(!objects.Equal(left, right)), nil

	case lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		ln, lok := left.(objects.Number)
		rn, rok := right.(objects.Number)
		if !lok || !rok {
			return nil, in.runtimeError(e.Operator, "Operands must be numbers")
		}
		switch e.Operator.Type {
		case lexer.GREATER:
			return objects.Bool(ln > rn), nil
		case lexer.GREATER_EQUAL:
			return objects.Bool(ln >= rn), nil
		case lexer.LESS:
			return objects.Bool(ln < rn), nil
		default:
			return objects.Bool(ln <= rn), nil
		}

	case lexer.PLUS:
		if ln, ok := left.(objects.Number); ok {
			if rn, ok := right.(objects.Number); ok {
				return ln + rn, nil
			}
			if rs, ok := right.(objects.String); ok {
				return objects.String(ln.String()) + rs, nil
			}
		}
		if ls, ok := left.(objects.String); ok {
			if rs, ok := right.(objects.String); ok {
				return ls + rs, nil
			}
			if rn, ok := right.(objects.Number); ok {
				return ls + objects.String(rn.String()), nil
			}
		}
		return nil, in.runtimeError(e.Operator, "Operands must be 2 numbers, 2 strings, or 1 number and 1 string")

	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.STAR_STAR:
		ln, lok := left.(objects.Number)
		rn, rok := right.(objects.Number)
		if !lok || !rok {
			return nil, in.runtimeError(e.Operator, "Operands must be 2 numbers, 2 strings, or 1 number and 1 string")
		}
		switch e.Operator.Type {
		case lexer.MINUS:
			return ln - rn, nil
		case lexer.STAR:
			return ln * rn, nil
		case lexer.SLASH:
			return ln / rn, nil
		case lexer.PERCENT:
			return objects.Number(math.Mod(float64(ln), float64(rn))), nil
		default: // STAR_STAR
			return objects.Number(math.Pow(float64(ln), float64(rn))), nil
		}
	}
	return nil, in.runtimeError(e.Operator, "Unknown binary operator")
}

// VisitLogicalExpr short-circuits and yields the deciding value itself,
// not a coerced bool (spec §4.4).
func (in *Interpreter) VisitLogicalExpr(e *parser.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if objects.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !objects.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitCallExpr(e *parser.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]objects.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return in.callValue(callee, e.Paren, args)
}

func (in *Interpreter) VisitFunctionExpr(e *parser.FunctionExpr) (interface{}, error) {
	return function.New("", e.Params, e.Body, in.env, false), nil
}

func (in *Interpreter) VisitGetExpr(e *parser.Get) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*class.Instance)
	if !ok {
		return nil, in.runtimeError(e.Name, "Only instances have properties")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, in.runtimeError(e.Name, fmt.Sprintf("Undefined property '%s'", e.Name.Lexeme))
	}
	return v, nil
}

func (in *Interpreter) VisitSetExpr(e *parser.Set) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*class.Instance)
	if !ok {
		return nil, in.runtimeError(e.Name, "Only instances have fields")
	}
	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, val)
	return val, nil
}

func (in *Interpreter) VisitThisExpr(e *parser.This) (interface{}, error) {
	return in.lookUpVariable(e.Keyword, e)
}

// VisitSuperExpr exploits the resolver's exact scope layering: super's
// distance is one more than this's at the same call site, so the
// receiver sits one frame closer (spec §4.4).
func (in *Interpreter) VisitSuperExpr(e *parser.Super) (interface{}, error) {
	dist, ok := in.locals[e]
	if !ok {
		return nil, in.runtimeError(e.Keyword, "Superclass must be a class")
	}
	superVal := in.env.GetAt(dist, "super")
	superclass, ok := superVal.(*class.Class)
	if !ok {
		return nil, in.runtimeError(e.Keyword, "Superclass must be a class")
	}
	thisVal := in.env.GetAt(dist-1, "this")
	instance, ok := thisVal.(*class.Instance)
	if !ok {
		return nil, in.runtimeError(e.Keyword, "Only instances have properties")
	}
	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, in.runtimeError(e.Method, fmt.Sprintf("Undefined property '%s'", e.Method.Lexeme))
	}
	return method.Bind(instance), nil
}

func (in *Interpreter) VisitListExpr(e *parser.ListExpr) (interface{}, error) {
	elements := make([]objects.Value, len(e.Elements))
	for i, el := range e.Elements {
		v, err := in.evaluate(el)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return objects.NewList(elements), nil
}

func (in *Interpreter) VisitSubscriptExpr(e *parser.Subscript) (interface{}, error) {
	target, err := in.evaluate(e.Target)
	if err != nil {
		return nil, err
	}
	idxVal, err := in.evaluate(e.Index)
	if err != nil {
		return nil, err
	}

	list, ok := target.(*objects.List)
	if !ok {
		return nil, in.runtimeError(e.Bracket, "Only lists can be subscripted")
	}
	idxNum, ok := idxVal.(objects.Number)
	if !ok {
		return nil, in.runtimeError(e.Bracket, "Index should be of type int")
	}
	idx := int(idxNum)

	if e.Value != nil {
		val, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		switch {
		case idx == len(list.Elements):
			list.Elements = append(list.Elements, val)
		case idx >= 0 && idx < len(list.Elements):
			list.Elements[idx] = val
		default:
			return nil, in.runtimeError(e.Bracket, "Index out of range")
		}
		return val, nil
	}

	if idx < 0 || idx >= len(list.Elements) {
		return objects.Nil{}, nil
	}
	return list.Elements[idx], nil
}

/*
File    : nimble/interp/interp_statements.go
*/
package interp

import (
	"fmt"

	"github.com/nimblelang/nimble/class"
	"github.com/nimblelang/nimble/environment"
	"github.com/nimblelang/nimble/function"
	"github.com/nimblelang/nimble/objects"
	"github.com/nimblelang/nimble/parser"
)

func (in *Interpreter) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *parser.Print) error {
	v, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.stdout, v.String())
	return nil
}

func (in *Interpreter) VisitVarStmt(s *parser.Var) error {
	var val objects.Value = objects.Nil{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		val = v
	}
	in.env.Define(s.Name.Lexeme, val)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *parser.Block) error {
	return in.executeBlock(s.Statements, environment.NewChild(in.env))
}

func (in *Interpreter) VisitIfStmt(s *parser.If) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if objects.IsTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

// VisitWhileStmt catches a breakSignal to exit the loop; any other
// error (a RuntimeError or a returnSignal headed for an enclosing
// function activation) propagates untouched.
func (in *Interpreter) VisitWhileStmt(s *parser.While) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !objects.IsTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			return err
		}
	}
}

func (in *Interpreter) VisitBreakStmt(s *parser.Break) error {
	return breakSignal{}
}

func (in *Interpreter) VisitReturnStmt(s *parser.Return) error {
	var val objects.Value = objects.Nil{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		val = v
	}
	return returnSignal{Value: val}
}

func (in *Interpreter) VisitFunctionStmt(s *parser.FunctionStmt) error {
	fn := function.New(s.Name.Lexeme, s.Fn.Params, s.Fn.Body, in.env, false)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitClassStmt(s *parser.Class) error {
	var superclass *class.Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*class.Class)
		if !ok {
			return in.runtimeError(s.Superclass.Name, "Superclass must be a class")
		}
		superclass = sc
	}

	methodEnv := in.env
	if superclass != nil {
		methodEnv = environment.NewChild(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*function.Function, len(s.Methods))
	for _, m := range s.Methods {
		isInit := m.Name.Lexeme == "init"
		methods[m.Name.Lexeme] = function.New(m.Name.Lexeme, m.Fn.Params, m.Fn.Body, methodEnv, isInit)
	}

	in.env.Define(s.Name.Lexeme, class.New(s.Name.Lexeme, superclass, methods))
	return nil
}

func (in *Interpreter) VisitImportStmt(s *parser.Import) error {
	if in.Importer == nil {
		return in.runtimeError(s.Keyword, fmt.Sprintf("cannot import %q: no importer configured", s.Path))
	}
	if err := in.Importer.Load(s.Path, in); err != nil {
		return in.runtimeError(s.Keyword, err.Error())
	}
	return nil
}

/*
File    : nimble/interp/errors.go
*/
package interp

import (
	"github.com/nimblelang/nimble/lexer"
	"github.com/nimblelang/nimble/objects"
)

// RuntimeError is raised by the interpreter for a fault detected during
// execution, pinpointed by the token whose evaluation triggered it.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// returnSignal and breakSignal are the non-local control-flow effects
// (spec §5): statement execution returns one of these as its error
// value instead of panicking; callFunction and the while loop each check
// for the one they're responsible for catching, propagating everything
// else untouched, and executeBlock restores the environment and passes
// every signal on. This realizes the same unwind-and-restore
// contract the teacher's evaluator gets from its ReturnValue wrapper
// (eval/eval_controls.go), just threaded through Go's error return
// instead of a wrapped GoMixObject.
type returnSignal struct{ Value objects.Value }

func (returnSignal) Error() string { return "return" }

type breakSignal struct{}

func (breakSignal) Error() string { return "break" }

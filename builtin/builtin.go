/*
File    : nimble/builtin/builtin.go
*/

// Package builtin implements nimble's native global functions, adapted
// from the teacher's std.Builtin (name + callback struct registered
// globally) and grounded on original_source/src/builtins.cpp's native
// function set: clock, time, input, exit, floordiv, len.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nimblelang/nimble/objects"
)

// CallFunc implements a native function's behavior. It receives the
// already-evaluated argument values and the interpreter's stdout/stdin
// streams, and returns a result value or a Go error (wrapped by the
// caller into a nimble runtime error).
type CallFunc func(out io.Writer, in *bufio.Reader, args []objects.Value) (objects.Value, error)

// Builtin is a native function value registered in globals at
// interpreter construction.
type Builtin struct {
	Name  string
	Arity int
	Call  CallFunc
}

func (*Builtin) TypeName() string { return "builtin" }

func (b *Builtin) String() string { return fmt.Sprintf("<native %s>", b.Name) }

// All returns every native function nimble provides.
func All() []*Builtin {
	return []*Builtin{
		clockBuiltin(),
		timeBuiltin(),
		inputBuiltin(),
		exitBuiltin(),
		floordivBuiltin(),
		lenBuiltin(),
	}
}

func clockBuiltin() *Builtin {
	return &Builtin{Name: "clock", Arity: 0, Call: func(_ io.Writer, _ *bufio.Reader, _ []objects.Value) (objects.Value, error) {
		return objects.Number(float64(time.Now().UnixNano()) / 1e9), nil
	}}
}

func timeBuiltin() *Builtin {
	return &Builtin{Name: "time", Arity: 0, Call: func(_ io.Writer, _ *bufio.Reader, _ []objects.Value) (objects.Value, error) {
		return objects.String(time.Now().Format(time.ANSIC)), nil
	}}
}

// inputBuiltin prints its prompt argument, reads one line, and returns
// it parsed as a Number if it looks like one, else as a String — the
// NativeInput::call behavior of original_source/src/builtins.cpp.
func inputBuiltin() *Builtin {
	return &Builtin{Name: "input", Arity: 1, Call: func(out io.Writer, in *bufio.Reader, args []objects.Value) (objects.Value, error) {
		prompt, ok := args[0].(objects.String)
		if !ok {
			return nil, fmt.Errorf("input: prompt must be a string")
		}
		fmt.Fprint(out, string(prompt))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if f, perr := strconv.ParseFloat(line, 64); perr == nil {
			return objects.Number(f), nil
		}
		return objects.String(line), nil
	}}
}

// exitBuiltin takes 0 or 1 arguments; nimble treats it as arity -1
// (variable) since the interpreter's fixed-arity check would otherwise
// reject one of the two call shapes.
func exitBuiltin() *Builtin {
	return &Builtin{Name: "exit", Arity: -1, Call: func(_ io.Writer, _ *bufio.Reader, args []objects.Value) (objects.Value, error) {
		code := 0
		if len(args) > 0 {
			n, ok := args[0].(objects.Number)
			if !ok {
				return nil, fmt.Errorf("exit: code must be a number")
			}
			code = int(n)
		}
		os.Exit(code)
		return objects.Nil{}, nil
	}}
}

func floordivBuiltin() *Builtin {
	return &Builtin{Name: "floordiv", Arity: 2, Call: func(_ io.Writer, _ *bufio.Reader, args []objects.Value) (objects.Value, error) {
		a, aok := args[0].(objects.Number)
		b, bok := args[1].(objects.Number)
		if !aok || !bok {
			return nil, fmt.Errorf("floordiv: both arguments must be numbers")
		}
		return objects.Number(math.Floor(float64(a) / float64(b))), nil
	}}
}

func lenBuiltin() *Builtin {
	return &Builtin{Name: "len", Arity: 1, Call: func(_ io.Writer, _ *bufio.Reader, args []objects.Value) (objects.Value, error) {
		l, ok := args[0].(*objects.List)
		if !ok {
			return nil, fmt.Errorf("len: argument must be a list")
		}
		return objects.Number(len(l.Elements)), nil
	}}
}

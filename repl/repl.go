/*
File    : nimble/repl/repl.go
*/

// Package repl implements nimble's interactive read-eval-print loop,
// adapted from the teacher's repl.Repl (banner/version/license framing,
// chzyer/readline line editing, fatih/color-painted output) narrowed to
// the language's dual-mode parse: a line that is a single trailing
// expression echoes its value, anything else just runs for effect.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nimblelang/nimble/importer"
	"github.com/nimblelang/nimble/interp"
	"github.com/nimblelang/nimble/parser"
	"github.com/nimblelang/nimble/resolver"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Prompt is the REPL's fixed prompt string (spec §6).
const Prompt = "nimble% "

// Repl is a self-contained interactive session: its Resolver and
// Interpreter persist across lines so declarations in one line are
// visible in the next.
type Repl struct {
	resolver *resolver.Resolver
	interp   *interp.Interpreter
}

func New() *Repl {
	loader := importer.New()
	r := resolver.New()
	r.Importer = loader
	in := interp.New(r.Locals)
	in.Importer = loader
	return &Repl{resolver: r, interp: in}
}

// Start runs the REPL against reader/writer until EOF. Unlike file
// execution, the loop never aborts on an error — it reports and
// continues (spec §6).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	cyanColor.Fprintln(writer, "nimble — type an expression or statement, Ctrl+D to exit")

	rl, err := readline.NewEx(&readline.Config{Prompt: Prompt, Stdin: io.NopCloser(reader), Stdout: writer})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	r.interp.SetOutput(writer)
	r.interp.SetErrorOutput(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or read error
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

// evalLine parses one line in REPL mode and either runs it for effect
// or, for a single trailing expression, prints its value.
func (r *Repl) evalLine(writer io.Writer, line string) {
	p := parser.NewParser(line)
	stmts, expr := p.ParseREPL()
	if p.HasErrors() {
		redColor.Fprintln(writer, "Invalid syntax error")
		for _, e := range p.GetErrors() {
			redColor.Fprintln(writer, e)
		}
		return
	}

	r.resolver.Resolve(stmts)
	if expr != nil {
		wrapped := &parser.ExpressionStmt{Expression: expr}
		r.resolver.Resolve([]parser.Stmt{wrapped})
	}
	if r.resolver.HasErrors() {
		for _, e := range r.resolver.GetErrors() {
			redColor.Fprintln(writer, e)
		}
		r.resolver.Errors = nil
		return
	}

	if r.interp.Interpret(stmts) {
		return
	}
	if expr == nil {
		return
	}
	v, err := r.interp.InterpretExpr(expr)
	if err != nil {
		return
	}
	yellowColor.Fprintln(writer, v.String())
}

/*
File    : nimble/cmd/nimble/cmd/run.go
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nimblelang/nimble/importer"
	"github.com/nimblelang/nimble/interp"
	"github.com/nimblelang/nimble/parser"
	"github.com/nimblelang/nimble/repl"
	"github.com/nimblelang/nimble/resolver"
)

var dumpAST bool

// Exit codes per spec §6.
const (
	exitOK          = 0
	exitUsage       = 1
	exitCompileTime = 2
	exitRuntime     = 3
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a nimble script, or start the REPL with no script given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed statement count before executing")
}

// runScript is the shared RunE for both the root command and the
// explicit `run` subcommand (spec.md's `prog [script]` contract plus
// SPEC_FULL's cobra subcommand layering).
func runScript(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		repl.New().Start(os.Stdin, os.Stdout)
		return nil
	}
	return runFile(args[0])
}

func runFile(path string) error {
	ext := filepath.Ext(path)
	if ext != ".nbl" && ext != ".nimble" {
		return fail(exitUsage, "nimble: %q must end in .nbl or .nimble", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fail(exitUsage, "nimble: could not read %q: %v", path, err)
	}

	p := parser.NewParser(string(src))
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintln(os.Stderr, e)
		}
		ExitCode = exitCompileTime
		return errSilent
	}

	loader := importer.New()
	r := resolver.New()
	r.Importer = loader
	r.Resolve(stmts)
	if r.HasErrors() {
		for _, e := range r.GetErrors() {
			redColor.Fprintln(os.Stderr, e)
		}
		ExitCode = exitCompileTime
		return errSilent
	}

	if dumpAST {
		cyanColor.Fprintf(os.Stderr, "parsed %d top-level statement(s)\n", len(stmts))
	}

	in := interp.New(r.Locals)
	in.Importer = loader
	if in.Interpret(stmts) {
		ExitCode = exitRuntime
		return errSilent
	}
	ExitCode = exitOK
	return nil
}

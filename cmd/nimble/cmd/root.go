/*
File    : nimble/cmd/nimble/cmd/root.go
*/

// Package cmd wires nimble's CLI surface on top of spf13/cobra,
// grounded on the sibling interpreter CLI at
// CWBudde-go-dws/cmd/dwscript/cmd (root command + per-mode
// subcommands, package-level flag vars set up in each file's init).
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is the nimble release string reported by `nimble --version`.
const Version = "0.1.0"

// ExitCode records the process exit code a subcommand wants once
// Execute returns; cobra's own always-1 default doesn't distinguish
// nimble's three error domains (spec §6), so subcommands set this
// explicitly before returning their error.
var ExitCode int

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

var rootCmd = &cobra.Command{
	Use:     "nimble",
	Short:   "nimble is a small dynamically-typed scripting language",
	Version: Version,
	Long: `nimble is a tree-walking interpreter for a small, dynamically-typed,
lexically-scoped scripting language: first-class functions and closures,
single-inheritance classes with super, dynamic lists, and a handful of
built-ins.

Run with no arguments to start the interactive REPL.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runScript,
}

// Execute runs the root command and returns its error, if any. The
// caller reads ExitCode to decide the process exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func fail(code int, format string, args ...interface{}) error {
	ExitCode = code
	redColor.Fprintf(os.Stderr, format+"\n", args...)
	return errSilent
}

// errSilent is returned from RunE after the failure has already been
// printed, so main doesn't print cobra's own "Error: ..." line.
var errSilent = silentError{}

type silentError struct{}

func (silentError) Error() string { return "" }

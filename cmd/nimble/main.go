/*
File    : nimble/cmd/nimble/main.go
*/

// Command nimble is the CLI entry point, translating the cobra command
// tree's result into the process exit codes spec.md §6 specifies (cobra's
// own default is always 1 on error, which doesn't distinguish nimble's
// three error domains).
package main

import (
	"fmt"
	"os"

	"github.com/nimblelang/nimble/cmd/nimble/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if cmd.ExitCode == 0 {
			fmt.Fprintln(os.Stderr, err)
			cmd.ExitCode = 1
		}
		os.Exit(cmd.ExitCode)
	}
	os.Exit(cmd.ExitCode)
}

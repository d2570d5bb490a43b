/*
File    : nimble/cmd/nimble/cmd/run_test.go
*/
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFile_WrongExtensionIsUsageError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	assert.NoError(t, os.WriteFile(path, []byte(`print(1);`), 0644))

	err := runFile(path)
	assert.Error(t, err)
	assert.Equal(t, exitUsage, ExitCode)
}

func TestRunFile_CompileErrorSetsExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.nbl")
	assert.NoError(t, os.WriteFile(path, []byte(`var = ;`), 0644))

	err := runFile(path)
	assert.Error(t, err)
	assert.Equal(t, exitCompileTime, ExitCode)
}

func TestRunFile_RuntimeErrorSetsExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.nbl")
	assert.NoError(t, os.WriteFile(path, []byte(`print(nope);`), 0644))

	err := runFile(path)
	assert.Error(t, err)
	assert.Equal(t, exitRuntime, ExitCode)
}

func TestRunFile_SuccessReturnsNilAndOKExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.nimble")
	assert.NoError(t, os.WriteFile(path, []byte(`print(1+1);`), 0644))

	err := runFile(path)
	assert.NoError(t, err)
	assert.Equal(t, exitOK, ExitCode)
}

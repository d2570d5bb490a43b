/*
File    : nimble/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drive(t *testing.T, lines string) string {
	t.Helper()
	r := New()
	var out bytes.Buffer
	r.Start(strings.NewReader(lines), &out)
	return out.String()
}

func TestRepl_EchoesTrailingExpressionValue(t *testing.T) {
	out := drive(t, "1 + 2\n")
	assert.Contains(t, out, "3")
}

func TestRepl_StatementProducesNoEcho(t *testing.T) {
	out := drive(t, "var x = 5;\n")
	assert.NotContains(t, out, "5")
}

func TestRepl_DeclarationPersistsAcrossLines(t *testing.T) {
	out := drive(t, "var x = 10;\nx + 1\n")
	assert.Contains(t, out, "11")
}

func TestRepl_FunctionDeclaredOnOneLineCallableOnNext(t *testing.T) {
	out := drive(t, "fun sq(n) { return n * n; }\nsq(4)\n")
	assert.Contains(t, out, "16")
}

func TestRepl_ParseErrorDoesNotWedgeSession(t *testing.T) {
	out := drive(t, "var = ;\nvar y = 7;\ny\n")
	assert.Contains(t, out, "7")
}

func TestRepl_ResolveErrorDoesNotWedgeSession(t *testing.T) {
	out := drive(t, "{ var z = z; }\nvar w = 3;\nw\n")
	assert.Contains(t, out, "3")
}

func TestRepl_BlankLinesAreIgnored(t *testing.T) {
	out := drive(t, "\n\nprint(1);\n")
	assert.Contains(t, out, "1")
}

func TestRepl_EOFEndsLoopWithoutPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		drive(t, "")
	})
}

/*
File    : nimble/builtin/builtin_test.go
*/
package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/nimblelang/nimble/objects"
	"github.com/stretchr/testify/assert"
)

func TestAll_RegistersExpectedNames(t *testing.T) {
	names := map[string]bool{}
	for _, b := range All() {
		names[b.Name] = true
	}
	for _, want := range []string{"clock", "time", "input", "exit", "floordiv", "len"} {
		assert.True(t, names[want], "missing builtin %q", want)
	}
}

func TestClock_ReturnsNumber(t *testing.T) {
	b := clockBuiltin()
	v, err := b.Call(nil, nil, nil)
	assert.NoError(t, err)
	_, ok := v.(objects.Number)
	assert.True(t, ok)
}

func TestInput_PrintsPromptAndParsesNumberOrString(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("42\n"))
	b := inputBuiltin()
	v, err := b.Call(&out, in, []objects.Value{objects.String("> ")})
	assert.NoError(t, err)
	assert.Equal(t, "> ", out.String())
	assert.Equal(t, objects.Number(42), v)

	in2 := bufio.NewReader(strings.NewReader("hello\n"))
	v2, err := b.Call(&out, in2, []objects.Value{objects.String("")})
	assert.NoError(t, err)
	assert.Equal(t, objects.String("hello"), v2)
}

func TestFloordiv_FloorsQuotient(t *testing.T) {
	b := floordivBuiltin()
	v, err := b.Call(nil, nil, []objects.Value{objects.Number(7), objects.Number(2)})
	assert.NoError(t, err)
	assert.Equal(t, objects.Number(3), v)
}

func TestLen_RejectsNonList(t *testing.T) {
	b := lenBuiltin()
	_, err := b.Call(nil, nil, []objects.Value{objects.Number(1)})
	assert.Error(t, err)
}

func TestLen_ReturnsElementCount(t *testing.T) {
	b := lenBuiltin()
	list := objects.NewList([]objects.Value{objects.Number(1), objects.Number(2), objects.Number(3)})
	v, err := b.Call(nil, nil, []objects.Value{list})
	assert.NoError(t, err)
	assert.Equal(t, objects.Number(3), v)
}

func TestBuiltin_String(t *testing.T) {
	assert.Equal(t, "<native clock>", clockBuiltin().String())
}

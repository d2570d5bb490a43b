/*
File    : nimble/environment/environment.go
*/

// Package environment implements the lexical scope chain: each
// Environment is a frame of name→value bindings plus an optional parent,
// the same chain-of-maps shape as the teacher's scope package, extended
// with the distance-indexed Ancestor/GetAt/AssignAt operations the
// resolver's side-table requires (spec §4.4).
package environment

import (
	"fmt"

	"github.com/nimblelang/nimble/objects"
)

// Environment is one frame of the scope chain. The root frame (no
// Parent) is the interpreter's globals, populated with built-ins at
// construction.
type Environment struct {
	values map[string]objects.Value
	Parent *Environment
}

// New creates a root environment with no parent (used for globals).
func New() *Environment {
	return &Environment{values: make(map[string]objects.Value)}
}

// NewChild creates a new environment whose parent is e, pushed for each
// block entered and each function activation.
func NewChild(parent *Environment) *Environment {
	return &Environment{values: make(map[string]objects.Value), Parent: parent}
}

// Define unconditionally (re)binds name in this frame.
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get walks the chain outward for name. The second result is false if no
// frame in the chain has the name bound.
func (e *Environment) Get(name string) (objects.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain outward for an existing binding of name and
// overwrites it. Returns false if no frame in the chain has it bound.
func (e *Environment) Assign(name string, value objects.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}

// Ancestor climbs exactly distance parents. Panics if the chain is
// shorter than distance, which would indicate an inconsistency between
// the resolver's recorded distance and the runtime environment chain —
// an invariant violation, not a recoverable nimble-level error.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.Parent == nil {
			panic(fmt.Sprintf("environment: no ancestor at distance %d", distance))
		}
		env = env.Parent
	}
	return env
}

// GetAt reads name from the frame exactly distance parents up.
func (e *Environment) GetAt(distance int, name string) objects.Value {
	v, ok := e.Ancestor(distance).values[name]
	if !ok {
		panic(fmt.Sprintf("environment: %q not bound at distance %d", name, distance))
	}
	return v
}

// AssignAt writes name in the frame exactly distance parents up.
func (e *Environment) AssignAt(distance int, name string, value objects.Value) {
	e.Ancestor(distance).values[name] = value
}

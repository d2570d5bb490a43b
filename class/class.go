/*
File    : nimble/class/class.go
*/

// Package class implements nimble's class and instance values, adapted
// from the teacher's objects.GoMixStruct/GoMixObjectInstance pair
// (struct definition + method table, instance + field map) and
// generalized with a superclass link and method.Bind-based dispatch so
// `super.method` and inherited methods work (spec §4.4).
package class

import (
	"fmt"

	"github.com/nimblelang/nimble/function"
	"github.com/nimblelang/nimble/objects"
)

// Class is a class definition: its own methods plus an optional
// superclass to search when a method isn't found locally.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*function.Function
}

func New(name string, superclass *Class, methods map[string]*function.Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (*Class) TypeName() string { return "class" }

// String is just the class name, per the language's stringification rule.
func (c *Class) String() string { return c.Name }

// FindMethod looks up name on c, then walks the superclass chain.
func (c *Class) FindMethod(name string) (*function.Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the initializer's parameter count, or 0 if the class has
// none (instantiating a class with no init takes no arguments).
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Instance is a live object: a reference back to its class plus its
// own field bindings.
type Instance struct {
	Class  *Class
	Fields map[string]objects.Value
}

func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]objects.Value)}
}

func (*Instance) TypeName() string { return "instance" }

// String is "NAME instance", per the language's stringification rule.
func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get resolves a property access: a field shadows a method of the same
// name; a method found on the class (or an ancestor) is returned bound
// to this instance so calling it later still sees the right receiver.
func (i *Instance) Get(name string) (objects.Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set unconditionally (re)binds a field on the instance.
func (i *Instance) Set(name string, value objects.Value) {
	i.Fields[name] = value
}

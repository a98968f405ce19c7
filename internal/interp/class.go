package interp

import (
	"fmt"

	"github.com/mjhibbs/glox/internal/lexer"
)

// Class is the runtime value produced by a `class` declaration: a fixed
// method table (the table never changes after the class is constructed)
// plus an optional parent for single inheritance.
type Class struct {
	name       string
	superclass *Class
	methods    map[string]*Function
}

// NewClass builds a class value. methods is copied by reference; callers
// should not mutate it afterward.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{name: name, superclass: superclass, methods: methods}
}

func (c *Class) Type() string   { return "CLASS" }
func (c *Class) String() string { return c.name }

// FindMethod walks the class hierarchy starting at c, returning the first
// method named name. Also used for `super.method` lookups.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.methods[name]; ok {
		return m
	}
	if c.superclass != nil {
		return c.superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's arity, or 0 if the class (and its ancestors)
// have none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, binds and invokes `init` if the class (or
// an ancestor) has one, and returns the instance.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object: a reference to its class plus a mutable
// field map. An instance retains its class reference for its whole
// lifetime.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (o *Instance) Type() string   { return "INSTANCE" }
func (o *Instance) String() string { return o.class.name + " instance" }

// Get implements property access: an own field wins over a method of the
// same name; a method lookup that succeeds returns a freshly bound
// callable; otherwise it's an undefined-property error.
func (o *Instance) Get(name lexer.Token) (Value, error) {
	if v, ok := o.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m := o.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(o), nil
	}
	return nil, newRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
}

// Set writes or creates an own field.
func (o *Instance) Set(name lexer.Token, value Value) {
	o.fields[name.Lexeme] = value
}

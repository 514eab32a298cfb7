/*
File    : lox/interpreter/class.go
Package : interpreter

Class and Instance generalize the teacher's std.GoMixStruct /
std.GoMixObjectInstance pair (eval/eval_structs.go) from GoMix's
static-field struct model to lox's single-inheritance class model:
a Class carries only methods (no static fields), an Instance carries
only fields (looked up before falling through to the class's method
chain), and method resolution walks the Superclass link that GoMix's
flat struct model never had.
*/
package interpreter

import "github.com/akashmaji946/lox/loxerr"

// Class is a lox class: its name, optional superclass, and its own
// methods (not including inherited ones, which FindMethod reaches by
// walking Superclass).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then its superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

func (c *Class) String() string { return c.Name }

// Arity is the arity of `init` if the class defines one, else 0: per
// spec.md §4.4, constructing an instance mirrors calling its
// initializer.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if the class (or an ancestor)
// defines `init`, binds and invokes it with args before returning the
// instance; the initializer's own return value is discarded.
func (c *Class) Call(interp *Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a single object: a reference to the class that
// constructed it plus its own field bindings.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads the property called name: fields first, then the
// class's method chain, bound to this instance. Anything else is
// "Undefined property 'name'." per spec.md §7.
func (i *Instance) Get(name string, line int) (interface{}, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), nil
	}
	return nil, &loxerr.RuntimeError{Line: line, Message: "Undefined property '" + name + "'."}
}

// Set creates or overwrites a field on the instance; lox instances
// have no notion of a fixed field set, so any name is accepted.
func (i *Instance) Set(name string, value interface{}) {
	i.Fields[name] = value
}

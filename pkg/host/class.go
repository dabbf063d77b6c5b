package host

import (
	"github.com/google/uuid"
)

// Class is a host constructor with a prototype method table. Instances
// carry one internal field for the wrapped native value.
type Class struct {
	name        string
	constructor NativeFunction
	methods     map[string]NativeFunction
}

// NewClass creates a class with the given constructor.
func NewClass(name string, constructor NativeFunction) *Class {
	return &Class{
		name:        name,
		constructor: constructor,
		methods:     make(map[string]NativeFunction),
	}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// SetMethod installs a prototype method.
func (c *Class) SetMethod(name string, fn NativeFunction) {
	c.methods[name] = fn
}

// New instantiates the class with construct semantics. The constructor
// runs against the fresh instance; a constructor error aborts creation.
func (c *Class) New(args Args) (*Object, error) {
	obj := &Object{
		id:    uuid.NewString(),
		class: c,
		props: make(map[string]Value),
	}
	call := &CallContext{
		This:            obj,
		Args:            args,
		IsConstructCall: true,
	}
	if _, err := c.constructor(call); err != nil {
		return nil, err
	}
	return obj, nil
}

// CallAsFunction invokes the constructor without construct semantics.
// Constructors that require construct calls reject this path.
func (c *Class) CallAsFunction(args Args) (Value, error) {
	return c.constructor(&CallContext{
		Args:            args,
		IsConstructCall: false,
	})
}

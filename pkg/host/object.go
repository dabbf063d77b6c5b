package host

import (
	"sync"

	"github.com/google/uuid"

	"github.com/NahejL/electron/pkg/errors"
	"github.com/NahejL/electron/pkg/events"
)

// NativeFunction is host-callable native code.
type NativeFunction func(call *CallContext) (Value, error)

// CallContext carries one invocation across the host boundary.
type CallContext struct {
	// This is the receiver object, nil for plain function calls.
	This *Object

	// Args are the positional arguments.
	Args Args

	// IsConstructCall is true when the invocation used construct
	// semantics (`new` in the host language).
	IsConstructCall bool
}

// Object is a script-visible object that may wrap one native value in
// its internal field and may act as an event emitter.
type Object struct {
	id    string
	class *Class

	mu       sync.Mutex
	internal any
	props    map[string]Value
	emitter  *events.Emitter
}

// NewObject creates a plain object with no class.
func NewObject() *Object {
	return &Object{
		id:    uuid.NewString(),
		props: make(map[string]Value),
	}
}

// ID returns the object's host identity.
func (o *Object) ID() string {
	return o.id
}

// SetInternal stores the wrapped native value.
func (o *Object) SetInternal(v any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.internal = v
}

// Internal returns the wrapped native value, or nil.
func (o *Object) Internal() any {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.internal
}

// Unwrap extracts the wrapped native value of type T from an object.
// It returns false for a nil object, an empty internal field, or a
// type mismatch.
func Unwrap[T any](o *Object) (T, bool) {
	var zero T
	if o == nil {
		return zero, false
	}
	v, ok := o.Internal().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Set assigns a named property.
func (o *Object) Set(name string, v Value) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.props == nil {
		o.props = make(map[string]Value)
	}
	o.props[name] = v
}

// Get reads a named property, or undefined.
func (o *Object) Get(name string) Value {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.props[name]
}

// Emitter returns the object's event emitter, creating it on first use.
func (o *Object) Emitter() *events.Emitter {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.emitter == nil {
		o.emitter = events.NewEmitter()
	}
	return o.emitter
}

// On registers an event handler on the object.
func (o *Object) On(name string, handler events.Handler) (*events.Subscription, error) {
	return o.Emitter().On(name, handler)
}

// Emit fans an event with a positional value payload out to handlers.
func (o *Object) Emit(name string, values []Value) int {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return o.Emitter().Emit(name, args...)
}

// Invoke calls a class method on the object.
func (o *Object) Invoke(method string, args Args) (Value, error) {
	if o.class == nil {
		return Undefined(), errors.New(errors.ErrCodeInvalidState, "object has no class")
	}
	fn, ok := o.class.methods[method]
	if !ok {
		return Undefined(), errors.New(errors.ErrCodeInvalidState, "no method "+method).
			WithContext("class", o.class.name)
	}
	return fn(&CallContext{This: o, Args: args})
}

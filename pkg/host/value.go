// Package host models the scripting-host side of the dialog bridge:
// dynamically-typed values, argument lists, wrapped native objects with
// construct-call semantics, and the host window object. The bridge
// marshals against this surface instead of binding a script engine
// directly, so any embedding can supply its own.
package host

import "fmt"

// Kind discriminates Value variants.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindString
	KindArray
	KindObject
	KindFunction
	KindClass
)

// String returns the kind name as scripts would see it.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInt:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Value is a dynamically-typed host value. The zero value is undefined.
type Value struct {
	kind Kind
	i    int64
	s    string
	arr  []Value
	obj  *Object
	fn   NativeFunction
	cls  *Class
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array wraps an ordered sequence of values.
func Array(vals ...Value) Value {
	return Value{kind: KindArray, arr: vals}
}

// ObjectValue wraps a host object.
func ObjectValue(o *Object) Value {
	return Value{kind: KindObject, obj: o}
}

// FunctionValue wraps a native function.
func FunctionValue(fn NativeFunction) Value {
	return Value{kind: KindFunction, fn: fn}
}

// ClassValue wraps a constructor class.
func ClassValue(c *Class) Value {
	return Value{kind: KindClass, cls: c}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNumber reports whether the value is an integer.
func (v Value) IsNumber() bool { return v.kind == KindInt }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.kind == KindArray }

// IsObject reports whether the value is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// Int returns the integer payload, or 0 for other kinds.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Str returns the string payload, or "" for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Array returns the array payload, or nil for other kinds.
func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the object payload, or nil for other kinds.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Function returns the function payload, or nil for other kinds.
func (v Value) Function() NativeFunction {
	if v.kind != KindFunction {
		return nil
	}
	return v.fn
}

// Class returns the class payload, or nil for other kinds.
func (v Value) Class() *Class {
	if v.kind != KindClass {
		return nil
	}
	return v.cls
}

// GoString formats the value for diagnostics.
func (v Value) GoString() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		return fmt.Sprintf("array(%d)", len(v.arr))
	default:
		return v.kind.String()
	}
}

// Args is a positional argument list. Out-of-range access yields
// undefined, matching script-engine argument semantics.
type Args []Value

// Get returns the argument at position i, or undefined.
func (a Args) Get(i int) Value {
	if i < 0 || i >= len(a) {
		return Undefined()
	}
	return a[i]
}

// Len returns the argument count.
func (a Args) Len() int {
	return len(a)
}

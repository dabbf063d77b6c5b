package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NahejL/electron/pkg/errors"
	"github.com/NahejL/electron/pkg/events"
)

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Undefined().IsUndefined())
	assert.True(t, Int(7).IsNumber())
	assert.True(t, String("x").IsString())
	assert.True(t, Array(Int(1)).IsArray())
	assert.True(t, ObjectValue(NewObject()).IsObject())

	// Accessors on the wrong kind degrade to zero values.
	assert.Equal(t, int64(0), String("x").Int())
	assert.Equal(t, "", Int(7).Str())
	assert.Nil(t, Int(7).Array())
	assert.Nil(t, Int(7).Object())
}

func TestArgs_OutOfRange(t *testing.T) {
	args := Args{Int(1), String("a")}

	assert.Equal(t, int64(1), args.Get(0).Int())
	assert.True(t, args.Get(2).IsUndefined())
	assert.True(t, args.Get(-1).IsUndefined())
	assert.Equal(t, 2, args.Len())
}

func TestObject_InternalUnwrap(t *testing.T) {
	type bridge struct{ n int }

	obj := NewObject()
	_, ok := Unwrap[*bridge](obj)
	assert.False(t, ok, "empty internal field should not unwrap")

	obj.SetInternal(&bridge{n: 3})
	b, ok := Unwrap[*bridge](obj)
	require.True(t, ok)
	assert.Equal(t, 3, b.n)

	_, ok = Unwrap[*Window](obj)
	assert.False(t, ok, "wrong type should not unwrap")

	_, ok = Unwrap[*bridge](nil)
	assert.False(t, ok, "nil object should not unwrap")
}

func TestObject_EmitValues(t *testing.T) {
	obj := NewObject()

	var got []any
	_, err := obj.On("selected", func(ev events.Event) {
		got = ev.Args
	})
	require.NoError(t, err)

	delivered := obj.Emit("selected", []Value{Int(42), String("/tmp/a.txt")})
	assert.Equal(t, 1, delivered)
	require.Len(t, got, 2)
	assert.Equal(t, int64(42), got[0].(Value).Int())
	assert.Equal(t, "/tmp/a.txt", got[1].(Value).Str())
}

func TestClass_ConstructCall(t *testing.T) {
	type native struct{ constructed bool }

	cls := NewClass("FileDialog", func(call *CallContext) (Value, error) {
		if !call.IsConstructCall {
			return Undefined(), ThrowError("Require constructor call")
		}
		call.This.SetInternal(&native{constructed: true})
		return Undefined(), nil
	})

	obj, err := cls.New(nil)
	require.NoError(t, err)
	n, ok := Unwrap[*native](obj)
	require.True(t, ok)
	assert.True(t, n.constructed)

	_, err = cls.CallAsFunction(nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidState))
	assert.Contains(t, err.Error(), "Require constructor call")
}

func TestClass_MethodDispatch(t *testing.T) {
	cls := NewClass("Counter", func(call *CallContext) (Value, error) {
		count := int64(0)
		call.This.SetInternal(&count)
		return Undefined(), nil
	})
	cls.SetMethod("add", func(call *CallContext) (Value, error) {
		count, ok := Unwrap[*int64](call.This)
		if !ok {
			return Undefined(), ThrowError("The Counter object is corrupted")
		}
		*count += call.Args.Get(0).Int()
		return Int(*count), nil
	})

	obj, err := cls.New(nil)
	require.NoError(t, err)

	v, err := obj.Invoke("add", Args{Int(5)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int())

	_, err = obj.Invoke("missing", nil)
	require.Error(t, err)

	_, err = NewObject().Invoke("add", nil)
	require.Error(t, err, "classless object has no methods")
}

func TestWindow_Lifecycle(t *testing.T) {
	w := NewWindow(0x1234)

	h, ok := w.NativeWindowHandle()
	require.True(t, ok)
	assert.NotZero(t, h)

	w.Destroy()
	_, ok = w.NativeWindowHandle()
	assert.False(t, ok, "destroyed window must not yield a handle")

	_, ok = NewWindow(0).NativeWindowHandle()
	assert.False(t, ok, "zero handle is never valid")
}

func TestWindowObject(t *testing.T) {
	w := NewWindow(0x42)
	obj := WindowObject(w)

	got, ok := Unwrap[*Window](obj)
	require.True(t, ok)
	assert.Same(t, w, got)
}

func TestFilePathFromValue(t *testing.T) {
	assert.EqualValues(t, "/tmp/x", FilePathFromValue(String("/tmp/x")))
	assert.EqualValues(t, "", FilePathFromValue(Int(3)))
	assert.EqualValues(t, "", FilePathFromValue(Undefined()))
}

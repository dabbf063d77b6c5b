package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeBadArgument, "argument 3 is not an array")

	if err == nil {
		t.Fatal("New should return non-nil error")
	}

	if err.Code != ErrCodeBadArgument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeBadArgument)
	}

	if err.Message != "argument 3 is not an array" {
		t.Errorf("Message = %v, want 'argument 3 is not an array'", err.Message)
	}

	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}

	if len(err.Stack) == 0 {
		t.Error("Stack should be captured")
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("display unavailable")
	err := Wrap(underlying, ErrCodeToolkitCreate, "failed to create dialog handle")

	if err == nil {
		t.Fatal("Wrap should return non-nil error")
	}

	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}

	if err.Code != ErrCodeToolkitCreate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeToolkitCreate)
	}

	if !strings.Contains(err.Error(), "display unavailable") {
		t.Error("Error string should include underlying error")
	}
}

func TestWrap_Nil(t *testing.T) {
	err := Wrap(nil, ErrCodeInternal, "test")
	if err != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeInvalidWindow, "Invalid window").
		WithContext("window_id", "w-1").
		WithContext("callback_id", 42)

	if len(err.Context) != 2 {
		t.Errorf("Context size = %d, want 2", len(err.Context))
	}

	msg := err.Error()
	if !strings.Contains(msg, "INVALID_WINDOW") {
		t.Errorf("Error string %q should contain code", msg)
	}
	if !strings.Contains(msg, "window_id") {
		t.Errorf("Error string %q should contain context key", msg)
	}
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := Wrap(underlying, ErrCodeInternal, "wrapped")

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the underlying error")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeNotConstructed, "Require constructor call")

	if !IsCode(err, ErrCodeNotConstructed) {
		t.Error("IsCode should match the error's code")
	}
	if IsCode(err, ErrCodeBadArgument) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(nil, ErrCodeBadArgument) {
		t.Error("IsCode(nil) should be false")
	}
	if IsCode(errors.New("plain"), ErrCodeBadArgument) {
		t.Error("IsCode should be false for non-bridge errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %v, want %v", got, ErrCodeInternal)
	}
	if got := GetCode(New(ErrCodeInvalidState, "x")); got != ErrCodeInvalidState {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeInvalidState)
	}
}

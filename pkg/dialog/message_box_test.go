package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NahejL/electron/pkg/errors"
	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/toolkit/sim"
)

func messageBoxArgs() host.Args {
	return host.Args{
		host.Int(int64(toolkit.MessageBoxInformation)),
		host.Array(host.String("OK"), host.String("Cancel")),
		host.String("T"),
		host.String("M"),
		host.String("D"),
	}
}

func TestShowMessageBox_ReturnsChosenIndex(t *testing.T) {
	tk := sim.New()
	tk.QueueMessageBoxResponse(1) // user clicks "Cancel"

	v, err := ShowMessageBox(tk, messageBoxArgs())
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())

	calls := tk.MessageBoxCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, toolkit.MessageBoxInformation, calls[0].Type)
	assert.Equal(t, []string{"OK", "Cancel"}, calls[0].Buttons)
	assert.Equal(t, "T", calls[0].Title, "title crosses the boundary in wide form")
	assert.Equal(t, "M", calls[0].Message)
	assert.Equal(t, "D", calls[0].Detail)
}

func TestShowMessageBox_DismissalSentinel(t *testing.T) {
	tk := sim.New() // nothing scripted: every box is dismissed

	v, err := ShowMessageBox(tk, messageBoxArgs())
	require.NoError(t, err)
	assert.Equal(t, int64(toolkit.DismissalIndex), v.Int())
}

func TestShowMessageBox_BadArguments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(args host.Args) host.Args
	}{
		{"type not a number", func(a host.Args) host.Args { a[0] = host.String("1"); return a }},
		{"unknown type value", func(a host.Args) host.Args { a[0] = host.Int(99); return a }},
		{"negative type value", func(a host.Args) host.Args { a[0] = host.Int(-1); return a }},
		{"buttons not an array", func(a host.Args) host.Args { a[1] = host.String("OK"); return a }},
		{"empty buttons", func(a host.Args) host.Args { a[1] = host.Array(); return a }},
		{"non-string button", func(a host.Args) host.Args { a[1] = host.Array(host.Int(1)); return a }},
		{"title not a string", func(a host.Args) host.Args { a[2] = host.Int(0); return a }},
		{"message not a string", func(a host.Args) host.Args { a[3] = host.Undefined(); return a }},
		{"detail missing", func(a host.Args) host.Args { return a[:4] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := sim.New()
			_, err := ShowMessageBox(tk, tt.mutate(messageBoxArgs()))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeBadArgument), "want BAD_ARGUMENT, got %v", err)
			assert.Empty(t, tk.MessageBoxCalls(), "failed call must not reach the toolkit")
		})
	}
}

func TestShowMessageBox_SingleButton(t *testing.T) {
	tk := sim.New()
	tk.QueueMessageBoxResponse(0)

	args := messageBoxArgs()
	args[1] = host.Array(host.String("OK"))

	v, err := ShowMessageBox(tk, args)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int())
}

package dialog

import (
	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/wide"
)

// ShowMessageBox marshals host arguments into the toolkit's blocking
// message-box call and returns the chosen button index as a host value.
//
// Argument positions: (type:int, buttons:[string], title, message,
// detail). Any constraint violation yields a bad-argument error and the
// call has no effect. The call blocks the host thread for the dialog's
// lifetime; a dismissal with no default button returns the toolkit's
// dismissal sentinel verbatim.
func ShowMessageBox(tk toolkit.Toolkit, args host.Args) (host.Value, error) {
	if !args.Get(0).IsNumber() || // type
		!args.Get(1).IsArray() || // buttons
		!args.Get(2).IsString() || // title
		!args.Get(3).IsString() || // message
		!args.Get(4).IsString() { // detail
		return host.Undefined(), host.ThrowTypeError("Bad argument")
	}

	boxType := toolkit.MessageBoxType(args.Get(0).Int())
	if !boxType.Valid() {
		return host.Undefined(), host.ThrowTypeError("Bad argument")
	}

	elems := args.Get(1).Array()
	if len(elems) == 0 {
		return host.Undefined(), host.ThrowTypeError("Bad argument")
	}
	buttons := make([]string, len(elems))
	for i, e := range elems {
		if !e.IsString() {
			return host.Undefined(), host.ThrowTypeError("Bad argument")
		}
		buttons[i] = e.Str()
	}

	title := wide.FromUTF8(args.Get(2).Str())
	message := args.Get(3).Str()
	detail := args.Get(4).Str()

	chosen := tk.ShowMessageBox(boxType, buttons, title, message, detail)
	metricMessageBoxesShown.WithLabelValues(boxType.String()).Inc()

	return host.Int(int64(chosen)), nil
}

// Package dialog exposes native message boxes and file-selection
// dialogs to an embedded scripting host. It is the boundary layer
// between host-side calls and the underlying toolkit: synchronous
// marshalling for message boxes, request-plus-event dispatch for file
// dialogs.
package dialog

import (
	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/logging"
	"github.com/NahejL/electron/pkg/toolkit"
)

// Initialize installs the module surface on a host export object:
// the showMessageBox function and the FileDialog constructor. The
// logger may be nil; the bridge then stays silent.
func Initialize(target *host.Object, tk toolkit.Toolkit, log *logging.Logger) {
	target.Set("showMessageBox", host.FunctionValue(func(call *host.CallContext) (host.Value, error) {
		return ShowMessageBox(tk, call.Args)
	}))

	cls := host.NewClass("FileDialog", func(call *host.CallContext) (host.Value, error) {
		if !call.IsConstructCall {
			return host.Undefined(), host.ThrowError("Require constructor call")
		}
		if _, err := NewFileDialog(call.This, tk, log); err != nil {
			return host.Undefined(), err
		}
		return host.Undefined(), nil
	})
	cls.SetMethod("selectFile", func(call *host.CallContext) (host.Value, error) {
		self, ok := host.Unwrap[*FileDialog](call.This)
		if !ok {
			return host.Undefined(), host.ThrowError("The FileDialog object is corrupted")
		}
		return self.SelectFile(call.Args)
	})

	target.Set("FileDialog", host.ClassValue(cls))
}

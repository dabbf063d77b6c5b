package dialog

import (
	"sync/atomic"

	"github.com/NahejL/electron/pkg/errors"
	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/logging"
	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/wide"
)

// Event names emitted on the bridge's wrapper object.
const (
	EventSelected  = "selected"
	EventCancelled = "cancelled"
)

// FileDialog bridges host selectFile calls onto one toolkit dialog
// handle and fans toolkit completion callbacks back out as host
// events. The bridge owns its handle for its entire lifetime and keeps
// no per-request state other than the outstanding-token slab.
type FileDialog struct {
	wrapper *host.Object
	dialog  toolkit.SelectFileDialog
	tokens  *tokenTable
	log     *logging.Logger
	closed  atomic.Bool
}

// NewFileDialog constructs a bridge bound to a fresh wrapper object,
// creating its toolkit dialog handle with the bridge as listener. The
// logger may be nil. The bridge is stored in the wrapper's internal
// field so method dispatch can unwrap it.
func NewFileDialog(wrapper *host.Object, tk toolkit.Toolkit, log *logging.Logger) (*FileDialog, error) {
	d := &FileDialog{
		wrapper: wrapper,
		tokens:  newTokenTable(),
		log:     log,
	}

	dlg, err := tk.CreateSelectFileDialog(d, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeToolkitCreate, "failed to create select file dialog")
	}
	d.dialog = dlg
	wrapper.SetInternal(d)

	return d, nil
}

// SelectFile marshals one file-dialog request into the toolkit and
// returns immediately. Argument positions: (window, type, title,
// default_path, file_types, file_type_index, default_extension,
// callback_id). Completion arrives later as exactly one `selected` or
// `cancelled` event carrying the callback id unchanged.
func (d *FileDialog) SelectFile(args host.Args) (host.Value, error) {
	if d.closed.Load() {
		return host.Undefined(), host.ThrowError("The FileDialog object is corrupted")
	}

	if !args.Get(0).IsObject() || // window
		!args.Get(1).IsNumber() || // type
		!args.Get(2).IsString() || // title
		!args.Get(3).IsString() || // default_path
		!args.Get(4).IsArray() || // file_types
		!args.Get(5).IsNumber() || // file_type_index
		!args.Get(6).IsString() || // default_extension
		!args.Get(7).IsNumber() { // callback_id
		return host.Undefined(), host.ThrowTypeError("Bad argument")
	}

	window, ok := host.Unwrap[*host.Window](args.Get(0).Object())
	if !ok {
		return host.Undefined(), errors.New(errors.ErrCodeInvalidWindow, "Invalid window")
	}
	owningWindow, ok := window.NativeWindowHandle()
	if !ok {
		return host.Undefined(), errors.New(errors.ErrCodeInvalidWindow, "Invalid window").
			WithContext("window_id", window.ID())
	}

	dialogType := toolkit.DialogType(args.Get(1).Int())
	if !dialogType.Valid() {
		return host.Undefined(), host.ThrowTypeError("Bad argument")
	}

	fileTypes, err := fillTypeInfo(args.Get(4).Array())
	if err != nil {
		return host.Undefined(), err
	}

	title := args.Get(2).Str()
	defaultPath := host.FilePathFromValue(args.Get(3))
	fileTypeIndex := int(args.Get(5).Int())
	defaultExtension := args.Get(6).Str()
	callbackID := args.Get(7).Int()

	tok := d.tokens.register(callbackID)
	metricFileRequests.WithLabelValues(dialogType.String()).Inc()
	d.debug("select_file", tok, map[string]any{
		"dialog_type": dialogType.String(),
		"callback_id": callbackID,
	})

	d.dialog.SelectFile(
		dialogType,
		wide.FromUTF8(title),
		defaultPath,
		fileTypes,
		fileTypeIndex,
		defaultExtension,
		owningWindow,
		tok,
	)

	return host.Undefined(), nil
}

// FileSelected implements toolkit.Listener for single selections.
func (d *FileDialog) FileSelected(path toolkit.FilePath, filterIndex int, params any) {
	tok, ok := d.tokens.lookup(params)
	if !ok {
		return
	}

	d.wrapper.Emit(EventSelected, []host.Value{
		host.Int(tok.CallbackID),
		host.String(string(path)),
	})
	metricFileCompletions.WithLabelValues(EventSelected).Inc()
	d.debug("file_selected", tok, map[string]any{"callback_id": tok.CallbackID})

	d.tokens.release(tok)
}

// MultiFilesSelected implements toolkit.Listener for multi selections.
func (d *FileDialog) MultiFilesSelected(paths []toolkit.FilePath, params any) {
	tok, ok := d.tokens.lookup(params)
	if !ok {
		return
	}

	values := make([]host.Value, 0, len(paths)+1)
	values = append(values, host.Int(tok.CallbackID))
	for _, p := range paths {
		values = append(values, host.String(string(p)))
	}

	d.wrapper.Emit(EventSelected, values)
	metricFileCompletions.WithLabelValues(EventSelected).Inc()
	d.debug("multi_files_selected", tok, map[string]any{
		"callback_id": tok.CallbackID,
		"count":       len(paths),
	})

	d.tokens.release(tok)
}

// FileSelectionCanceled implements toolkit.Listener for dismissals and
// for toolkit-level display failures, which surface on the same path.
func (d *FileDialog) FileSelectionCanceled(params any) {
	tok, ok := d.tokens.lookup(params)
	if !ok {
		return
	}

	d.wrapper.Emit(EventCancelled, []host.Value{host.Int(tok.CallbackID)})
	metricFileCompletions.WithLabelValues(EventCancelled).Inc()
	d.debug("file_selection_canceled", tok, map[string]any{"callback_id": tok.CallbackID})

	d.tokens.release(tok)
}

// Close detaches the bridge from its toolkit handle when the host drops
// its reference. Outstanding requests stay toolkit-owned and complete
// through their normal path; the slab slots are cleared so those late
// callbacks are ignored here.
func (d *FileDialog) Close() {
	if d.closed.Swap(true) {
		return
	}
	d.dialog.ListenerDestroyed()
	d.tokens.drain()
}

// OutstandingTokens returns the number of requests awaiting completion.
func (d *FileDialog) OutstandingTokens() int {
	return d.tokens.outstanding()
}

func (d *FileDialog) debug(eventType string, tok *Token, details map[string]any) {
	if d.log == nil {
		return
	}
	_ = d.log.Log(logging.Event{
		Level:     logging.LevelDebug,
		Category:  logging.CategoryFileDialog,
		EventType: eventType,
		RequestID: tok.requestID,
		Details:   details,
	})
}

// fillTypeInfo builds the toolkit filter description from the host
// file_types array. The all-files and drive options are always on. An
// empty array means no filters: the toolkit receives nil.
func fillTypeInfo(entries []host.Value) (*toolkit.FileTypeInfo, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	info := &toolkit.FileTypeInfo{
		IncludeAllFiles: true,
		SupportDrive:    true,
	}

	for _, entry := range entries {
		if !entry.IsObject() {
			return nil, host.ThrowTypeError("Bad argument")
		}
		obj := entry.Object()

		description := obj.Get("description")
		if !description.IsString() {
			return nil, host.ThrowTypeError("Bad argument")
		}

		extensions := obj.Get("extensions")
		if !extensions.IsArray() {
			return nil, host.ThrowTypeError("Bad argument")
		}
		group := make([]string, 0, len(extensions.Array()))
		for _, ext := range extensions.Array() {
			if !ext.IsString() {
				return nil, host.ThrowTypeError("Bad argument")
			}
			group = append(group, ext.Str())
		}

		info.ExtensionDescriptionOverrides = append(
			info.ExtensionDescriptionOverrides, wide.FromUTF8(description.Str()))
		info.Extensions = append(info.Extensions, group)
	}

	return info, nil
}

// FileTypeValue builds one file_types entry as a host value. Extensions
// are raw, without a leading dot.
func FileTypeValue(description string, extensions ...string) host.Value {
	obj := host.NewObject()
	obj.Set("description", host.String(description))

	exts := make([]host.Value, len(extensions))
	for i, e := range extensions {
		exts[i] = host.String(e)
	}
	obj.Set("extensions", host.Array(exts...))

	return host.ObjectValue(obj)
}

// Ensure the bridge implements the toolkit listener surface.
var _ toolkit.Listener = (*FileDialog)(nil)

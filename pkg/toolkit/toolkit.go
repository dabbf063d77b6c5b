// Package toolkit defines the native-UI surface the dialog bridge
// consumes. The real toolkit renders platform dialogs; this package
// only carries the types and interfaces of that boundary, so the
// bridge can be driven by any implementation, including the simulated
// one under toolkit/sim.
package toolkit

import (
	"github.com/NahejL/electron/pkg/wide"
)

// FilePath is the toolkit's native path string type. Paths cross the
// bridge verbatim in this form.
type FilePath string

// NativeWindow is an opaque handle to a toolkit-level top-level window.
// The zero value is never a valid window.
type NativeWindow uintptr

// DismissalIndex is returned by ShowMessageBox when the user dismisses
// the box (window close, escape) and no default button is defined.
const DismissalIndex = -1

// MessageBoxType selects the icon and tone of a message box.
type MessageBoxType int

const (
	MessageBoxNone MessageBoxType = iota
	MessageBoxInformation
	MessageBoxWarning
	MessageBoxError
	MessageBoxQuestion
)

// Valid reports whether the value is a known message box type.
func (t MessageBoxType) Valid() bool {
	return t >= MessageBoxNone && t <= MessageBoxQuestion
}

// String returns the type name.
func (t MessageBoxType) String() string {
	switch t {
	case MessageBoxNone:
		return "none"
	case MessageBoxInformation:
		return "information"
	case MessageBoxWarning:
		return "warning"
	case MessageBoxError:
		return "error"
	case MessageBoxQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// DialogType selects the kind of file-selection dialog.
// The numbering follows the toolkit's select-file convention, where
// zero means no dialog.
type DialogType int

const (
	SelectNone DialogType = iota
	SelectFolder
	SelectSaveFile
	SelectOpenFile
	SelectOpenMultiFile
)

// Valid reports whether the value names an actual dialog kind.
func (t DialogType) Valid() bool {
	return t > SelectNone && t <= SelectOpenMultiFile
}

// String returns the dialog type name.
func (t DialogType) String() string {
	switch t {
	case SelectFolder:
		return "folder"
	case SelectSaveFile:
		return "save"
	case SelectOpenFile:
		return "open"
	case SelectOpenMultiFile:
		return "open-multi"
	default:
		return "unknown"
	}
}

// FileTypeInfo describes the filter groups a file dialog offers.
// Extensions are raw, without a leading dot. The overrides list is
// parallel to Extensions: entry i labels group i.
type FileTypeInfo struct {
	Extensions                    [][]string
	ExtensionDescriptionOverrides []wide.String
	IncludeAllFiles               bool
	SupportDrive                  bool
}

// Listener receives file-dialog completion callbacks. The toolkit
// delivers them on the host's main thread and hands back the opaque
// params value supplied at request time. Exactly one callback fires
// per accepted request.
type Listener interface {
	// FileSelected is called when the user confirms a single file.
	FileSelected(path FilePath, filterIndex int, params any)

	// MultiFilesSelected is called when the user confirms a
	// multi-file selection.
	MultiFilesSelected(paths []FilePath, params any)

	// FileSelectionCanceled is called when the user dismisses the
	// dialog, or when the toolkit could not display it at all.
	FileSelectionCanceled(params any)
}

// SelectFileDialog is one native dialog handle. A handle may service
// many sequential requests; concurrency limits are the toolkit's own.
type SelectFileDialog interface {
	// SelectFile asks the toolkit to display a file dialog. The call
	// returns once the toolkit accepts the request; completion arrives
	// later through the Listener. fileTypes may be nil, meaning no
	// filters. params is carried opaquely to the completion callback.
	SelectFile(
		dialogType DialogType,
		title wide.String,
		defaultPath FilePath,
		fileTypes *FileTypeInfo,
		fileTypeIndex int,
		defaultExtension string,
		owningWindow NativeWindow,
		params any,
	)

	// ListenerDestroyed tells the toolkit its listener is going away.
	// Outstanding requests remain toolkit-owned and complete through
	// their normal path.
	ListenerDestroyed()
}

// SelectFilePolicy lets an embedder veto dialog creation. A nil policy
// allows everything.
type SelectFilePolicy interface {
	CanOpenSelectFileDialog() bool
}

// Toolkit is the full native surface the bridge consumes.
type Toolkit interface {
	// CreateSelectFileDialog creates one dialog handle bound to the
	// given listener for the handle's entire lifetime.
	CreateSelectFileDialog(listener Listener, policy SelectFilePolicy) (SelectFileDialog, error)

	// ShowMessageBox displays a modal message box and blocks until it
	// is dismissed, returning the 0-based index of the chosen button
	// or DismissalIndex.
	ShowMessageBox(boxType MessageBoxType, buttons []string, title wide.String, message, detail string) int
}

// Package sim provides a simulated toolkit for tests and the demo
// binary. Outcomes are scripted ahead of time; completion callbacks are
// queued until Pump, which stands in for the host main loop the real
// toolkit marshals onto.
package sim

import (
	"errors"
	"sync"

	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/wide"
)

// errPolicyDenied is returned when a select-file policy vetoes creation.
var errPolicyDenied = errors.New("select file dialog disallowed by policy")

// OutcomeKind discriminates scripted file-dialog outcomes.
type OutcomeKind int

const (
	// OutcomeCancel dismisses the dialog. It is also the default when
	// nothing is scripted or no display is available.
	OutcomeCancel OutcomeKind = iota

	// OutcomeSingle confirms a single file.
	OutcomeSingle

	// OutcomeMulti confirms a multi-file selection.
	OutcomeMulti
)

// Outcome scripts the completion of one file-dialog request.
type Outcome struct {
	Kind        OutcomeKind
	Path        toolkit.FilePath
	Paths       []toolkit.FilePath
	FilterIndex int
}

// MessageBoxCall records one ShowMessageBox invocation.
type MessageBoxCall struct {
	Type    toolkit.MessageBoxType
	Buttons []string
	Title   string
	Message string
	Detail  string
}

// SelectFileCall records one SelectFile invocation.
type SelectFileCall struct {
	DialogType       toolkit.DialogType
	Title            string
	DefaultPath      toolkit.FilePath
	FileTypes        *toolkit.FileTypeInfo
	FileTypeIndex    int
	DefaultExtension string
	OwningWindow     toolkit.NativeWindow
}

type delivery struct {
	dialog  *Dialog
	outcome Outcome
	params  any
}

// Toolkit is a scriptable in-memory toolkit.
type Toolkit struct {
	mu               sync.Mutex
	fileOutcomes     []Outcome
	boxResponses     []int
	pending          []delivery
	outstanding      int
	displayAvailable bool

	messageBoxCalls []MessageBoxCall
	selectFileCalls []SelectFileCall
	dialogsCreated  int
}

// New creates a simulated toolkit with a display available.
func New() *Toolkit {
	return &Toolkit{displayAvailable: true}
}

// SetDisplayAvailable controls whether dialogs can be shown. Without a
// display every file request completes through the cancellation path.
func (t *Toolkit) SetDisplayAvailable(available bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.displayAvailable = available
}

// QueueFileOutcome scripts the outcome of the next file-dialog request.
func (t *Toolkit) QueueFileOutcome(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fileOutcomes = append(t.fileOutcomes, o)
}

// QueueMessageBoxResponse scripts the chosen index of the next message box.
func (t *Toolkit) QueueMessageBoxResponse(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.boxResponses = append(t.boxResponses, index)
}

// CreateSelectFileDialog creates one dialog handle bound to listener.
func (t *Toolkit) CreateSelectFileDialog(listener toolkit.Listener, policy toolkit.SelectFilePolicy) (toolkit.SelectFileDialog, error) {
	if policy != nil && !policy.CanOpenSelectFileDialog() {
		return nil, errPolicyDenied
	}

	t.mu.Lock()
	t.dialogsCreated++
	t.mu.Unlock()

	return &Dialog{tk: t, listener: listener}, nil
}

// ShowMessageBox pops the next scripted response, or the dismissal
// sentinel when nothing is scripted.
func (t *Toolkit) ShowMessageBox(boxType toolkit.MessageBoxType, buttons []string, title wide.String, message, detail string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.messageBoxCalls = append(t.messageBoxCalls, MessageBoxCall{
		Type:    boxType,
		Buttons: append([]string(nil), buttons...),
		Title:   title.ToUTF8(),
		Message: message,
		Detail:  detail,
	})

	if len(t.boxResponses) == 0 {
		return toolkit.DismissalIndex
	}
	chosen := t.boxResponses[0]
	t.boxResponses = t.boxResponses[1:]
	return chosen
}

// Pump delivers queued completion callbacks on the caller's goroutine,
// in request order, and returns how many were delivered. Deliveries
// whose listener was destroyed are dropped; their tokens still count
// as released by the toolkit.
func (t *Toolkit) Pump() int {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	t.mu.Unlock()

	delivered := 0
	for _, d := range batch {
		if !d.dialog.destroyed() {
			switch d.outcome.Kind {
			case OutcomeSingle:
				d.dialog.listener.FileSelected(d.outcome.Path, d.outcome.FilterIndex, d.params)
			case OutcomeMulti:
				d.dialog.listener.MultiFilesSelected(d.outcome.Paths, d.params)
			default:
				d.dialog.listener.FileSelectionCanceled(d.params)
			}
			delivered++
		}

		t.mu.Lock()
		t.outstanding--
		t.mu.Unlock()
	}
	return delivered
}

// OutstandingTokens returns how many accepted requests have not yet
// completed. Zero after every completion, or a token was leaked.
func (t *Toolkit) OutstandingTokens() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}

// MessageBoxCalls returns the recorded message-box invocations.
func (t *Toolkit) MessageBoxCalls() []MessageBoxCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]MessageBoxCall(nil), t.messageBoxCalls...)
}

// SelectFileCalls returns the recorded file-dialog invocations.
func (t *Toolkit) SelectFileCalls() []SelectFileCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SelectFileCall(nil), t.selectFileCalls...)
}

// DialogsCreated returns how many dialog handles were created.
func (t *Toolkit) DialogsCreated() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dialogsCreated
}

// Dialog is one simulated dialog handle.
type Dialog struct {
	tk       *Toolkit
	listener toolkit.Listener

	mu     sync.Mutex
	closed bool
}

// SelectFile accepts the request, consumes the next scripted outcome
// (cancellation when none is scripted or no display is available), and
// queues the completion for the next Pump.
func (d *Dialog) SelectFile(
	dialogType toolkit.DialogType,
	title wide.String,
	defaultPath toolkit.FilePath,
	fileTypes *toolkit.FileTypeInfo,
	fileTypeIndex int,
	defaultExtension string,
	owningWindow toolkit.NativeWindow,
	params any,
) {
	d.tk.mu.Lock()
	defer d.tk.mu.Unlock()

	d.tk.selectFileCalls = append(d.tk.selectFileCalls, SelectFileCall{
		DialogType:       dialogType,
		Title:            title.ToUTF8(),
		DefaultPath:      defaultPath,
		FileTypes:        fileTypes,
		FileTypeIndex:    fileTypeIndex,
		DefaultExtension: defaultExtension,
		OwningWindow:     owningWindow,
	})

	outcome := Outcome{Kind: OutcomeCancel}
	if d.tk.displayAvailable && len(d.tk.fileOutcomes) > 0 {
		outcome = d.tk.fileOutcomes[0]
		d.tk.fileOutcomes = d.tk.fileOutcomes[1:]
	}

	d.tk.outstanding++
	d.tk.pending = append(d.tk.pending, delivery{dialog: d, outcome: outcome, params: params})
}

// ListenerDestroyed detaches the listener. Queued completions for this
// handle are dropped at Pump; the toolkit still releases their tokens.
func (d *Dialog) ListenerDestroyed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

func (d *Dialog) destroyed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Ensure the simulated types implement the toolkit surface.
var (
	_ toolkit.Toolkit          = (*Toolkit)(nil)
	_ toolkit.SelectFileDialog = (*Dialog)(nil)
)

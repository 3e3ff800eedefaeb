package entity

import (
	"errors"
	"time"
)

// WindowID identifies a browsing context (top-level window or tab).
// The engine owns the format; the bridge only compares values.
type WindowID string

// DialogID uniquely identifies one dialog occurrence.
type DialogID string

// DialogKind is the type of native dialog raised by page script.
type DialogKind string

const (
	DialogAlert        DialogKind = "alert"
	DialogConfirm      DialogKind = "confirm"
	DialogPrompt       DialogKind = "prompt"
	DialogBeforeUnload DialogKind = "beforeunload"
)

// Valid reports whether k is one of the known dialog kinds.
func (k DialogKind) Valid() bool {
	switch k {
	case DialogAlert, DialogConfirm, DialogPrompt, DialogBeforeUnload:
		return true
	default:
		return false
	}
}

// AcceptsText returns true if free text can be typed into the dialog.
func (k DialogKind) AcceptsText() bool {
	return k == DialogPrompt
}

// Resolution records which actor released a dialog.
type Resolution string

const (
	ResolvedByController Resolution = "controller"
	ResolvedByTeardown   Resolution = "teardown"
	ResolvedByAutoAccept Resolution = "auto_accept"
	ResolvedByTimeout    Resolution = "timeout"
	ResolvedByCancel     Resolution = "cancelled"
	ResolvedBySuperseded Resolution = "superseded"
)

var (
	// ErrNoDialogPresent is returned when no dialog is pending for a window.
	ErrNoDialogPresent = errors.New("no alert present")
	// ErrNotInteractable is returned when text is sent to a dialog that has no input field.
	ErrNotInteractable = errors.New("alert is not interactable")
	// ErrInternalConsistency means window focus tracking disagrees with the pending dialog.
	ErrInternalConsistency = errors.New("dialog window mismatch")
	// ErrInvalidDialog is returned for malformed dialog records.
	ErrInvalidDialog = errors.New("invalid dialog")
)

// DialogOutcome is what the suspended engine receives once a dialog is released.
// Accepted is meaningful for alert, confirm and beforeunload. For prompt, HasText=false
// is the script-visible null.
type DialogOutcome struct {
	Accepted bool
	Text     string
	HasText  bool
}

// DefaultOutcome is the browser behavior when nobody is around to answer:
// alerts return, confirms cancel, prompts yield null, unloads proceed.
func DefaultOutcome(kind DialogKind) DialogOutcome {
	switch kind {
	case DialogAlert, DialogBeforeUnload:
		return DialogOutcome{Accepted: true}
	default:
		return DialogOutcome{}
	}
}

// DialogState is one in-flight dialog. It is not safe for concurrent use;
// the bridge guards every access with its own lock.
type DialogState struct {
	ID           DialogID
	Kind         DialogKind
	WindowID     WindowID
	Message      string
	DefaultValue string
	OpenedAt     time.Time

	input    string
	hasInput bool

	accepted   bool
	result     string
	hasResult  bool
	resolved   bool
	resolvedBy Resolution
	closedAt   time.Time
}

// NewDialogState creates an unresolved dialog. DefaultValue is dropped for non-prompt kinds.
func NewDialogState(id DialogID, windowID WindowID, kind DialogKind, message, defaultValue string, now time.Time) *DialogState {
	if !kind.AcceptsText() {
		defaultValue = ""
	}
	return &DialogState{
		ID:           id,
		Kind:         kind,
		WindowID:     windowID,
		Message:      message,
		DefaultValue: defaultValue,
		OpenedAt:     now,
	}
}

// SetInput stages text typed into a prompt before it is accepted.
func (d *DialogState) SetInput(text string) error {
	if !d.Kind.AcceptsText() {
		return ErrNotInteractable
	}
	d.input = text
	d.hasInput = true
	return nil
}

// AcceptWith resolves the dialog as accepted. For prompts an empty text falls back to
// staged input, then to the default value. Returns false if already resolved.
func (d *DialogState) AcceptWith(text string, by Resolution) bool {
	if d.resolved {
		return false
	}
	d.accepted = true
	if d.Kind.AcceptsText() {
		switch {
		case text != "":
			d.result = text
		case d.hasInput:
			d.result = d.input
		default:
			d.result = d.DefaultValue
		}
		d.hasResult = true
	}
	d.markResolved(by)
	return true
}

// Dismiss resolves the dialog as not accepted, with no text.
// Returns false if already resolved.
func (d *DialogState) Dismiss(by Resolution) bool {
	if d.resolved {
		return false
	}
	d.accepted = false
	d.result = ""
	d.hasResult = false
	d.markResolved(by)
	return true
}

// ApplyDefault resolves the dialog with DefaultOutcome for its kind.
func (d *DialogState) ApplyDefault(by Resolution) bool {
	if DefaultOutcome(d.Kind).Accepted {
		return d.AcceptWith("", by)
	}
	return d.Dismiss(by)
}

func (d *DialogState) markResolved(by Resolution) {
	d.resolved = true
	d.resolvedBy = by
	d.closedAt = time.Now()
}

// IsAccepted returns the boolean outcome. Prompt callers should use Outcome().Text.
func (d *DialogState) IsAccepted() bool {
	return d.accepted
}

func (d *DialogState) Resolved() bool {
	return d.resolved
}

func (d *DialogState) ResolvedBy() Resolution {
	return d.resolvedBy
}

// Outcome returns the value handed back to the engine.
func (d *DialogState) Outcome() DialogOutcome {
	return DialogOutcome{
		Accepted: d.accepted,
		Text:     d.result,
		HasText:  d.hasResult,
	}
}

// Snapshot copies the dialog into an immutable value for observers.
func (d *DialogState) Snapshot() DialogSnapshot {
	return DialogSnapshot{
		ID:           d.ID,
		Kind:         d.Kind,
		WindowID:     d.WindowID,
		Message:      d.Message,
		DefaultValue: d.DefaultValue,
		OpenedAt:     d.OpenedAt,
		ClosedAt:     d.closedAt,
		Resolved:     d.resolved,
		ResolvedBy:   d.resolvedBy,
		Outcome:      d.Outcome(),
	}
}

// DialogSnapshot is a read-only copy of a DialogState.
type DialogSnapshot struct {
	ID           DialogID
	Kind         DialogKind
	WindowID     WindowID
	Message      string
	DefaultValue string
	OpenedAt     time.Time
	ClosedAt     time.Time
	Resolved     bool
	ResolvedBy   Resolution
	Outcome      DialogOutcome
}

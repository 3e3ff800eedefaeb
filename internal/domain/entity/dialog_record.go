package entity

import "time"

// DialogRecord is a journal entry for a dialog that has been released.
type DialogRecord struct {
	ID           DialogID
	WindowID     WindowID
	Kind         DialogKind
	Message      string
	DefaultValue string
	Accepted     bool
	Text         string
	HasText      bool
	ResolvedBy   Resolution
	OpenedAt     time.Time
	ClosedAt     time.Time
}

// NewDialogRecord builds a journal entry from a resolved snapshot.
func NewDialogRecord(s DialogSnapshot) *DialogRecord {
	return &DialogRecord{
		ID:           s.ID,
		WindowID:     s.WindowID,
		Kind:         s.Kind,
		Message:      s.Message,
		DefaultValue: s.DefaultValue,
		Accepted:     s.Outcome.Accepted,
		Text:         s.Outcome.Text,
		HasText:      s.Outcome.HasText,
		ResolvedBy:   s.ResolvedBy,
		OpenedAt:     s.OpenedAt,
		ClosedAt:     s.ClosedAt,
	}
}

// Duration is how long the engine stayed suspended.
func (r *DialogRecord) Duration() time.Duration {
	if r.ClosedAt.IsZero() || r.ClosedAt.Before(r.OpenedAt) {
		return 0
	}
	return r.ClosedAt.Sub(r.OpenedAt)
}

func (r *DialogRecord) Validate() error {
	if r == nil || r.ID == "" || r.WindowID == "" || !r.Kind.Valid() {
		return ErrInvalidDialog
	}
	if r.OpenedAt.IsZero() {
		return ErrInvalidDialog
	}
	return nil
}

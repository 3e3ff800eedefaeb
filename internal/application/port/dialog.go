package port

import (
	"context"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
)

//go:generate mockgen -package=script -destination=../../infrastructure/engine/script/mock_notifier_test.go github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port DialogNotifier

// DialogNotifier is the engine-facing side of the dialog bridge.
// Notify blocks the calling goroutine until the dialog is released and never fails.
type DialogNotifier interface {
	Notify(
		ctx context.Context,
		windowID entity.WindowID,
		kind entity.DialogKind,
		message string,
		defaultValue string,
	) entity.DialogOutcome
}

// DialogObserver is told about dialog lifecycle transitions.
// Calls are made outside the bridge lock, from the engine goroutine.
type DialogObserver interface {
	DialogOpened(ctx context.Context, dialog entity.DialogSnapshot)
	DialogClosed(ctx context.Context, dialog entity.DialogSnapshot)
}

// WindowFocus reports the window the controller currently targets.
type WindowFocus interface {
	CurrentWindow() (entity.WindowID, bool)
}

// BrowsingContext is a window owned by an engine.
// Close may run page unload handlers, which can raise a beforeunload dialog.
type BrowsingContext interface {
	ID() entity.WindowID
	Close(ctx context.Context) error
}

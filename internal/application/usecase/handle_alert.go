package usecase

import (
	"context"
	"fmt"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// HandleAlertUseCase is the driver-facing alert API: it answers the dialog of
// whichever window the controller is focused on.
type HandleAlertUseCase struct {
	bridge *DialogBridge
	focus  port.WindowFocus
}

// NewHandleAlertUseCase creates a new alert handling use case.
func NewHandleAlertUseCase(bridge *DialogBridge, focus port.WindowFocus) *HandleAlertUseCase {
	return &HandleAlertUseCase{
		bridge: bridge,
		focus:  focus,
	}
}

func (uc *HandleAlertUseCase) currentWindow() (entity.WindowID, error) {
	windowID, ok := uc.focus.CurrentWindow()
	if !ok {
		return "", fmt.Errorf("no window focused: %w", entity.ErrNoDialogPresent)
	}
	return windowID, nil
}

// Current returns the pending dialog of the focused window.
func (uc *HandleAlertUseCase) Current(ctx context.Context) (entity.DialogSnapshot, error) {
	windowID, err := uc.currentWindow()
	if err != nil {
		return entity.DialogSnapshot{}, err
	}
	return uc.bridge.Describe(ctx, windowID)
}

// GetText returns the message of the focused window's dialog.
func (uc *HandleAlertUseCase) GetText(ctx context.Context) (string, error) {
	windowID, err := uc.currentWindow()
	if err != nil {
		return "", err
	}
	return uc.bridge.Inspect(ctx, windowID)
}

// Accept accepts the focused window's dialog. Prompts use staged or default text.
func (uc *HandleAlertUseCase) Accept(ctx context.Context) error {
	return uc.resolve(ctx, true)
}

// Dismiss dismisses the focused window's dialog.
func (uc *HandleAlertUseCase) Dismiss(ctx context.Context) error {
	return uc.resolve(ctx, false)
}

func (uc *HandleAlertUseCase) resolve(ctx context.Context, accept bool) error {
	windowID, err := uc.currentWindow()
	if err != nil {
		return err
	}
	ctx = logging.WithComponent(ctx, "alert")
	return uc.bridge.Resolve(ctx, windowID, accept, "")
}

// SendKeys types text into the focused window's prompt.
func (uc *HandleAlertUseCase) SendKeys(ctx context.Context, text string) error {
	windowID, err := uc.currentWindow()
	if err != nil {
		return err
	}
	return uc.bridge.SendKeys(ctx, windowID, text)
}

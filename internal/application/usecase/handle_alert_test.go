package usecase_test

import (
	"testing"

	portmocks "github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port/mocks"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/usecase"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAlertUseCase_GetTextAndAccept(t *testing.T) {
	ctx := testContext()
	bridge := usecase.NewDialogBridge()
	focus := portmocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w1"), true)

	uc := usecase.NewHandleAlertUseCase(bridge, focus)

	done := notifyAsync(ctx, bridge, "w1", entity.DialogConfirm, "Proceed?", "")
	waitPending(t, bridge, "w1")

	text, err := uc.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Proceed?", text)

	require.NoError(t, uc.Accept(ctx))
	assert.True(t, receive(t, done).Accepted)

	_, err = uc.GetText(ctx)
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
}

func TestHandleAlertUseCase_SendKeysThenAccept(t *testing.T) {
	ctx := testContext()
	bridge := usecase.NewDialogBridge()
	focus := portmocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w1"), true)

	uc := usecase.NewHandleAlertUseCase(bridge, focus)

	done := notifyAsync(ctx, bridge, "w1", entity.DialogPrompt, "Name?", "Bob")
	waitPending(t, bridge, "w1")

	current, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DialogPrompt, current.Kind)
	assert.Equal(t, "Bob", current.DefaultValue)

	require.NoError(t, uc.SendKeys(ctx, "Alice"))
	require.NoError(t, uc.Accept(ctx))

	out := receive(t, done)
	assert.True(t, out.HasText)
	assert.Equal(t, "Alice", out.Text)
}

func TestHandleAlertUseCase_SendKeysToAlertNotInteractable(t *testing.T) {
	ctx := testContext()
	bridge := usecase.NewDialogBridge()
	focus := portmocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w1"), true)

	uc := usecase.NewHandleAlertUseCase(bridge, focus)

	done := notifyAsync(ctx, bridge, "w1", entity.DialogAlert, "hi", "")
	waitPending(t, bridge, "w1")

	assert.ErrorIs(t, uc.SendKeys(ctx, "nope"), entity.ErrNotInteractable)
	require.NoError(t, uc.Dismiss(ctx))
	receive(t, done)
}

func TestHandleAlertUseCase_OnlySeesFocusedWindow(t *testing.T) {
	ctx := testContext()
	bridge := usecase.NewDialogBridge()
	focus := portmocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w2"), true)

	uc := usecase.NewHandleAlertUseCase(bridge, focus)

	done := notifyAsync(ctx, bridge, "w1", entity.DialogAlert, "hi", "")
	waitPending(t, bridge, "w1")

	_, err := uc.GetText(ctx)
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
	assert.ErrorIs(t, uc.Accept(ctx), entity.ErrNoDialogPresent)

	bridge.Close(ctx, "w1")
	receive(t, done)
}

func TestHandleAlertUseCase_NoFocusedWindow(t *testing.T) {
	ctx := testContext()
	focus := portmocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID(""), false)

	uc := usecase.NewHandleAlertUseCase(usecase.NewDialogBridge(), focus)

	_, err := uc.GetText(ctx)
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
	assert.ErrorIs(t, uc.Dismiss(ctx), entity.ErrNoDialogPresent)
	assert.ErrorIs(t, uc.SendKeys(ctx, "x"), entity.ErrNoDialogPresent)
}

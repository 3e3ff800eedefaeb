package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port/mocks"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/usecase"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// notifyAsync runs Notify on its own goroutine, as the engine would, and
// returns a channel that yields the outcome.
func notifyAsync(
	ctx context.Context,
	b *usecase.DialogBridge,
	windowID entity.WindowID,
	kind entity.DialogKind,
	message, defaultValue string,
) <-chan entity.DialogOutcome {
	out := make(chan entity.DialogOutcome, 1)
	go func() {
		out <- b.Notify(ctx, windowID, kind, message, defaultValue)
	}()
	return out
}

func waitPending(t *testing.T, b *usecase.DialogBridge, windowID entity.WindowID) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, err := b.Inspect(context.Background(), windowID)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond, "dialog never became pending")
}

func receive(t *testing.T, ch <-chan entity.DialogOutcome) entity.DialogOutcome {
	t.Helper()
	select {
	case out := <-ch:
		return out
	case <-time.After(2 * time.Second):
		t.Fatal("Notify did not return")
		return entity.DialogOutcome{}
	}
}

func assertBlocked(t *testing.T, ch <-chan entity.DialogOutcome) {
	t.Helper()
	select {
	case out := <-ch:
		t.Fatalf("Notify returned early with %+v", out)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestDialogBridge_RendezvousConfirm(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "Delete?", "")
	waitPending(t, b, "w1")
	assertBlocked(t, done)

	msg, err := b.Inspect(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Delete?", msg)

	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	out := receive(t, done)
	assert.True(t, out.Accepted)
	assert.False(t, out.HasText)

	_, err = b.Inspect(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
}

func TestDialogBridge_DismissConfirm(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "Delete?", "")
	waitPending(t, b, "w1")

	require.NoError(t, b.Resolve(ctx, "w1", false, ""))
	assert.False(t, receive(t, done).Accepted)
}

func TestDialogBridge_ResolveTwiceFails(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogAlert, "hi", "")
	waitPending(t, b, "w1")

	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	err := b.Resolve(ctx, "w1", true, "")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
	receive(t, done)
}

func TestDialogBridge_PromptOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		accept   bool
		text     string
		wantText string
		wantHas  bool
	}{
		{name: "accept empty uses default", accept: true, text: "", wantText: "Bob", wantHas: true},
		{name: "accept with text", accept: true, text: "Alice", wantText: "Alice", wantHas: true},
		{name: "dismiss yields no value", accept: false, text: "anything", wantText: "", wantHas: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			b := usecase.NewDialogBridge()

			done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "Enter name", "Bob")
			waitPending(t, b, "w1")

			require.NoError(t, b.Resolve(ctx, "w1", tt.accept, tt.text))
			out := receive(t, done)
			assert.Equal(t, tt.accept, out.Accepted)
			assert.Equal(t, tt.wantHas, out.HasText)
			assert.Equal(t, tt.wantText, out.Text)
		})
	}
}

func TestDialogBridge_SendKeysStagesPromptInput(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "Enter name", "Bob")
	waitPending(t, b, "w1")

	require.NoError(t, b.SendKeys(ctx, "w1", "Carol"))
	assertBlocked(t, done)

	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	assert.Equal(t, "Carol", receive(t, done).Text)
}

func TestDialogBridge_NonPromptRejectsText(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogAlert, "hi", "")
	waitPending(t, b, "w1")

	err := b.Resolve(ctx, "w1", true, "text")
	require.ErrorIs(t, err, entity.ErrNotInteractable)
	require.ErrorIs(t, b.SendKeys(ctx, "w1", "text"), entity.ErrNotInteractable)

	// The dialog is still pending after the rejected attempt.
	assertBlocked(t, done)
	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	assert.True(t, receive(t, done).Accepted)
}

func TestDialogBridge_IdleQueriesFail(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	_, err := b.Inspect(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
	assert.ErrorIs(t, b.Resolve(ctx, "w1", false, ""), entity.ErrNoDialogPresent)
	assert.ErrorIs(t, b.SendKeys(ctx, "w1", "x"), entity.ErrNoDialogPresent)
}

func TestDialogBridge_CloseUnblocksAndAutoAccepts(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "Leave?", "")
	waitPending(t, b, "w1")

	b.Close(ctx, "w1")
	out := receive(t, done)
	assert.True(t, out.Accepted)

	_, err := b.Inspect(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)

	// A dialog raised during teardown must not block.
	again := notifyAsync(ctx, b, "w1", entity.DialogBeforeUnload, "Leave page?", "")
	assert.True(t, receive(t, again).Accepted)
}

func TestDialogBridge_ClosePromptUsesDefault(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "Name?", "Bob")
	waitPending(t, b, "w1")

	b.Close(ctx, "w1")
	out := receive(t, done)
	assert.True(t, out.Accepted)
	assert.Equal(t, "Bob", out.Text)
}

func TestDialogBridge_CloseIdleWindowIsNoop(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	b.Close(ctx, "w1")
	b.Close(ctx, "w1")
	assert.Empty(t, b.Pending())
}

func TestDialogBridge_GlobalAutoAccept(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()
	b.SetAutoAccept(true)
	require.True(t, b.AutoAccept())

	assert.Equal(t, entity.DefaultOutcome(entity.DialogAlert), b.Notify(ctx, "w1", entity.DialogAlert, "hi", ""))
	assert.False(t, b.Notify(ctx, "w1", entity.DialogConfirm, "ok?", "").Accepted)
	assert.False(t, b.Notify(ctx, "w1", entity.DialogPrompt, "name?", "Bob").HasText)
	assert.True(t, b.Notify(ctx, "w1", entity.DialogBeforeUnload, "leave?", "").Accepted)

	b.SetAutoAccept(false)
	done := notifyAsync(ctx, b, "w2", entity.DialogAlert, "hi", "")
	waitPending(t, b, "w2")
	require.NoError(t, b.Resolve(ctx, "w2", true, ""))
	receive(t, done)
}

func TestDialogBridge_WindowsAreIndependent(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	first := notifyAsync(ctx, b, "w1", entity.DialogAlert, "one", "")
	waitPending(t, b, "w1")

	second := notifyAsync(ctx, b, "w2", entity.DialogPrompt, "two", "")
	waitPending(t, b, "w2")
	require.NoError(t, b.Resolve(ctx, "w2", true, "done"))
	assert.Equal(t, "done", receive(t, second).Text)

	assertBlocked(t, first)
	msg, err := b.Inspect(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "one", msg)

	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	receive(t, first)
}

func TestDialogBridge_TimeoutDismisses(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge(usecase.WithDialogTimeout(20 * time.Millisecond))

	out := b.Notify(ctx, "w1", entity.DialogConfirm, "Delete?", "")
	assert.False(t, out.Accepted)

	_, err := b.Inspect(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
}

func TestDialogBridge_SetTimeout(t *testing.T) {
	b := usecase.NewDialogBridge()
	assert.Zero(t, b.Timeout())

	b.SetTimeout(time.Second)
	assert.Equal(t, time.Second, b.Timeout())

	b.SetTimeout(-time.Second)
	assert.Zero(t, b.Timeout())
}

func TestDialogBridge_ContextCancelDismisses(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "name?", "Bob")
	waitPending(t, b, "w1")

	cancel()
	out := receive(t, done)
	assert.False(t, out.Accepted)
	assert.False(t, out.HasText)
}

func TestDialogBridge_SecondNotifySupersedesFirst(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	first := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "first", "")
	waitPending(t, b, "w1")

	second := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "second", "")
	assert.False(t, receive(t, first).Accepted)

	require.Eventually(t, func() bool {
		msg, err := b.Inspect(ctx, "w1")
		return err == nil && msg == "second"
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, b.Resolve(ctx, "w1", true, ""))
	assert.True(t, receive(t, second).Accepted)
}

func TestDialogBridge_Pending(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "name?", "Bob")
	waitPending(t, b, "w1")

	pending := b.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, entity.WindowID("w1"), pending[0].WindowID)
	assert.Equal(t, entity.DialogPrompt, pending[0].Kind)
	assert.Equal(t, "Bob", pending[0].DefaultValue)
	assert.False(t, pending[0].Resolved)

	snap, err := b.Describe(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, pending[0].ID, snap.ID)

	b.Close(ctx, "w1")
	receive(t, done)
	assert.Empty(t, b.Pending())
}

// Resolving the instant a dialog is published must never be lost, regardless
// of whether the engine goroutine has started waiting yet.
func TestDialogBridge_NoMissedWakeups(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	const rounds = 200
	for i := 0; i < rounds; i++ {
		done := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "again?", "")
		for {
			err := b.Resolve(ctx, "w1", i%2 == 0, "")
			if err == nil {
				break
			}
			require.True(t, errors.Is(err, entity.ErrNoDialogPresent))
		}
		assert.Equal(t, i%2 == 0, receive(t, done).Accepted)
	}
}

func TestDialogBridge_ConcurrentWindows(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge()

	windows := []entity.WindowID{"a", "b", "c", "d", "e", "f"}
	var wg sync.WaitGroup
	results := make([]entity.DialogOutcome, len(windows))
	for i, w := range windows {
		wg.Add(1)
		go func(i int, w entity.WindowID) {
			defer wg.Done()
			results[i] = b.Notify(ctx, w, entity.DialogPrompt, "name?", "")
		}(i, w)
	}

	for _, w := range windows {
		waitPending(t, b, w)
		require.NoError(t, b.Resolve(ctx, w, true, string(w)+"!"))
	}
	wg.Wait()

	for i, w := range windows {
		assert.Equal(t, string(w)+"!", results[i].Text)
	}
}

func TestDialogBridge_ObserversSeeLifecycle(t *testing.T) {
	ctx := testContext()
	observer := mocks.NewMockDialogObserver(t)
	b := usecase.NewDialogBridge(usecase.WithDialogObserver(observer))

	opened := make(chan entity.DialogSnapshot, 1)
	closed := make(chan entity.DialogSnapshot, 1)
	observer.EXPECT().DialogOpened(mock.Anything, mock.Anything).
		Run(func(_ context.Context, d entity.DialogSnapshot) { opened <- d }).Once()
	observer.EXPECT().DialogClosed(mock.Anything, mock.Anything).
		Run(func(_ context.Context, d entity.DialogSnapshot) { closed <- d }).Once()

	done := notifyAsync(ctx, b, "w1", entity.DialogPrompt, "Enter name", "Bob")
	d := <-opened
	assert.False(t, d.Resolved)
	assert.Equal(t, "Enter name", d.Message)

	require.NoError(t, b.Resolve(ctx, "w1", true, "Alice"))
	receive(t, done)

	c := <-closed
	assert.Equal(t, d.ID, c.ID)
	assert.True(t, c.Resolved)
	assert.Equal(t, entity.ResolvedByController, c.ResolvedBy)
	assert.Equal(t, "Alice", c.Outcome.Text)
	assert.False(t, c.ClosedAt.Before(c.OpenedAt), "closed before opened")
	assert.GreaterOrEqual(t, entity.NewDialogRecord(c).Duration(), time.Duration(0))
}

func TestDialogBridge_AutoAcceptOnlyReportsClose(t *testing.T) {
	ctx := testContext()
	observer := mocks.NewMockDialogObserver(t)
	b := usecase.NewDialogBridge()
	b.AddObserver(observer)
	b.SetAutoAccept(true)

	observer.EXPECT().DialogClosed(mock.Anything, mock.MatchedBy(func(d entity.DialogSnapshot) bool {
		return d.ResolvedBy == entity.ResolvedByAutoAccept && !d.Outcome.Accepted
	})).Once()

	out := b.Notify(ctx, "w1", entity.DialogConfirm, "sure?", "")
	assert.False(t, out.Accepted)
}

func TestDialogBridge_InspectOutsideFocusIsInconsistent(t *testing.T) {
	ctx := testContext()
	focus := mocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w1"), true)
	b := usecase.NewDialogBridge(usecase.WithWindowFocus(focus))

	done := notifyAsync(ctx, b, "w2", entity.DialogAlert, "background tab", "")
	require.Eventually(t, func() bool { return len(b.Pending()) == 1 }, 2*time.Second, 5*time.Millisecond)

	_, err := b.Inspect(ctx, "w2")
	require.ErrorIs(t, err, entity.ErrInternalConsistency)
	assert.NotErrorIs(t, err, entity.ErrNoDialogPresent)

	_, err = b.Inspect(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)

	require.NoError(t, b.Resolve(ctx, "w2", true, ""))
	receive(t, done)
}

func TestDialogBridge_InspectFocusedWindowPasses(t *testing.T) {
	ctx := testContext()
	focus := mocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID("w1"), true)
	b := usecase.NewDialogBridge()
	b.SetWindowFocus(focus)

	done := notifyAsync(ctx, b, "w1", entity.DialogConfirm, "Proceed?", "")
	waitPending(t, b, "w1")

	msg, err := b.Inspect(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Proceed?", msg)

	require.NoError(t, b.Resolve(ctx, "w1", false, ""))
	assert.False(t, receive(t, done).Accepted)
}

func TestDialogBridge_InspectWithoutFocusedWindowIsInconsistent(t *testing.T) {
	ctx := testContext()
	focus := mocks.NewMockWindowFocus(t)
	focus.EXPECT().CurrentWindow().Return(entity.WindowID(""), false)
	b := usecase.NewDialogBridge(usecase.WithWindowFocus(focus))

	done := notifyAsync(ctx, b, "w1", entity.DialogAlert, "hi", "")
	require.Eventually(t, func() bool { return len(b.Pending()) == 1 }, 2*time.Second, 5*time.Millisecond)

	_, err := b.Describe(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrInternalConsistency)

	b.Close(ctx, "w1")
	receive(t, done)
}

func TestDialogBridge_ResolveAfterTimeoutFails(t *testing.T) {
	ctx := testContext()
	b := usecase.NewDialogBridge(usecase.WithDialogTimeout(20 * time.Millisecond))

	out := b.Notify(ctx, "w1", entity.DialogConfirm, "sure?", "")
	assert.False(t, out.Accepted)

	err := b.Resolve(ctx, "w1", true, "")
	assert.ErrorIs(t, err, entity.ErrNoDialogPresent)
	assert.Empty(t, b.Pending())
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// pendingDialog pairs a published dialog with its completion channel.
// done is closed exactly once, under the bridge lock, when state is resolved.
type pendingDialog struct {
	state *entity.DialogState
	done  chan struct{}
}

// DialogBridge is the rendezvous between an engine goroutine suspended on a
// dialog and the controller that answers it. At most one dialog is pending per
// window; windows are independent.
type DialogBridge struct {
	mu         sync.Mutex
	dialogs    map[entity.WindowID]*pendingDialog
	closed     map[entity.WindowID]struct{}
	autoAccept bool
	timeout    time.Duration
	observers  []port.DialogObserver
	focus      port.WindowFocus

	newID func() entity.DialogID
}

var _ port.DialogNotifier = (*DialogBridge)(nil)

// BridgeOption configures a DialogBridge.
type BridgeOption func(*DialogBridge)

// WithDialogTimeout bounds how long Notify waits before dismissing. Zero waits forever.
func WithDialogTimeout(d time.Duration) BridgeOption {
	return func(b *DialogBridge) {
		b.timeout = d
	}
}

// WithDialogObserver registers an observer at construction time.
func WithDialogObserver(o port.DialogObserver) BridgeOption {
	return func(b *DialogBridge) {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// WithWindowFocus makes Inspect verify that a pending dialog belongs to the
// window the controller is focused on.
func WithWindowFocus(f port.WindowFocus) BridgeOption {
	return func(b *DialogBridge) {
		b.focus = f
	}
}

// NewDialogBridge creates an idle bridge.
func NewDialogBridge(opts ...BridgeOption) *DialogBridge {
	b := &DialogBridge{
		dialogs: make(map[entity.WindowID]*pendingDialog),
		closed:  make(map[entity.WindowID]struct{}),
		newID:   func() entity.DialogID { return entity.DialogID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddObserver registers an observer after construction, e.g. once storage is open.
func (b *DialogBridge) AddObserver(o port.DialogObserver) {
	if o == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, o)
}

// SetWindowFocus installs the focus tracker checked by Inspect. Windows are
// usually managed on top of the bridge, so the tracker arrives after construction.
func (b *DialogBridge) SetWindowFocus(f port.WindowFocus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.focus = f
}

// Notify publishes a dialog for windowID and blocks until it is resolved by
// Resolve, Close, the configured timeout or ctx cancellation. Under auto-accept
// it returns the default outcome without blocking. It never fails.
func (b *DialogBridge) Notify(
	ctx context.Context,
	windowID entity.WindowID,
	kind entity.DialogKind,
	message string,
	defaultValue string,
) entity.DialogOutcome {
	log := logging.FromContext(ctx).With().
		Str("component", "dialog-bridge").
		Str("window_id", string(windowID)).
		Str("kind", string(kind)).
		Logger()

	state := entity.NewDialogState(b.newID(), windowID, kind, message, defaultValue, time.Now())

	b.mu.Lock()
	if b.autoAcceptLocked(windowID) {
		state.ApplyDefault(entity.ResolvedByAutoAccept)
		observers := b.observers
		b.mu.Unlock()

		log.Debug().Msg("dialog auto-accepted")
		closed := state.Snapshot()
		for _, o := range observers {
			o.DialogClosed(ctx, closed)
		}
		return state.Outcome()
	}

	p := &pendingDialog{state: state, done: make(chan struct{})}
	if prev, ok := b.dialogs[windowID]; ok {
		log.Warn().Str("previous_id", string(prev.state.ID)).Msg("dialog superseded by a newer one")
		b.resolveLocked(prev, false, "", entity.ResolvedBySuperseded)
	}
	b.dialogs[windowID] = p
	timeout := b.timeout
	observers := b.observers
	opened := state.Snapshot()
	b.mu.Unlock()

	log.Debug().Str("dialog_id", string(state.ID)).Msg("dialog opened, suspending engine")
	for _, o := range observers {
		o.DialogOpened(ctx, opened)
	}

	b.wait(ctx, p, timeout)

	b.mu.Lock()
	if cur, ok := b.dialogs[windowID]; ok && cur == p {
		delete(b.dialogs, windowID)
	}
	closed := state.Snapshot()
	observers = b.observers
	b.mu.Unlock()

	ev := log.Debug()
	if closed.ResolvedBy == entity.ResolvedByTimeout {
		ev = log.Warn()
	}
	ev.Str("dialog_id", string(state.ID)).
		Str("resolved_by", string(closed.ResolvedBy)).
		Bool("accepted", closed.Outcome.Accepted).
		Msg("dialog closed, resuming engine")
	for _, o := range observers {
		o.DialogClosed(ctx, closed)
	}
	return closed.Outcome
}

// wait blocks until p is resolved. A timeout or cancelled ctx dismisses the dialog.
func (b *DialogBridge) wait(ctx context.Context, p *pendingDialog, timeout time.Duration) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-p.done:
		return
	case <-expired:
		b.release(p, entity.ResolvedByTimeout)
	case <-ctx.Done():
		b.release(p, entity.ResolvedByCancel)
	}
}

// release dismisses p and unpublishes it in the same critical section, so a
// controller can never answer a dialog the engine has already given up on.
func (b *DialogBridge) release(p *pendingDialog, by entity.Resolution) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resolveLocked(p, false, "", by)
	if cur, ok := b.dialogs[p.state.WindowID]; ok && cur == p {
		delete(b.dialogs, p.state.WindowID)
	}
}

// resolveLocked resolves p and wakes its waiter. Must be called with b.mu held.
func (b *DialogBridge) resolveLocked(p *pendingDialog, accept bool, text string, by entity.Resolution) bool {
	var ok bool
	if accept {
		ok = p.state.AcceptWith(text, by)
	} else {
		ok = p.state.Dismiss(by)
	}
	if ok {
		close(p.done)
	}
	return ok
}

func (b *DialogBridge) autoAcceptLocked(windowID entity.WindowID) bool {
	if b.autoAccept {
		return true
	}
	_, closed := b.closed[windowID]
	return closed
}

// Inspect returns the message of the dialog pending for windowID.
func (b *DialogBridge) Inspect(ctx context.Context, windowID entity.WindowID) (string, error) {
	snap, err := b.Describe(ctx, windowID)
	if err != nil {
		return "", err
	}
	return snap.Message, nil
}

// Describe returns a snapshot of the dialog pending for windowID. When a focus
// tracker is installed, a pending dialog outside the focused window is reported
// as ErrInternalConsistency: focus tracking and the caller disagree.
func (b *DialogBridge) Describe(_ context.Context, windowID entity.WindowID) (entity.DialogSnapshot, error) {
	b.mu.Lock()
	focus := b.focus
	b.mu.Unlock()

	// Read focus outside b.mu; the window manager calls into the bridge.
	var focused entity.WindowID
	hasFocus := false
	if focus != nil {
		focused, hasFocus = focus.CurrentWindow()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.pendingLocked(windowID)
	if err != nil {
		return entity.DialogSnapshot{}, err
	}
	if focus != nil && (!hasFocus || focused != p.state.WindowID) {
		return entity.DialogSnapshot{}, fmt.Errorf("%w: dialog of window %s inspected while focused on %q",
			entity.ErrInternalConsistency, p.state.WindowID, focused)
	}
	return p.state.Snapshot(), nil
}

func (b *DialogBridge) pendingLocked(windowID entity.WindowID) (*pendingDialog, error) {
	p, ok := b.dialogs[windowID]
	if !ok || p.state.Resolved() {
		return nil, entity.ErrNoDialogPresent
	}
	return p, nil
}

// Resolve answers the dialog pending for windowID and releases the engine.
// Non-empty text is only allowed for prompts.
func (b *DialogBridge) Resolve(ctx context.Context, windowID entity.WindowID, accept bool, text string) error {
	log := logging.FromContext(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.pendingLocked(windowID)
	if err != nil {
		return err
	}
	if text != "" && !p.state.Kind.AcceptsText() {
		return fmt.Errorf("send text to %s: %w", p.state.Kind, entity.ErrNotInteractable)
	}

	if !b.resolveLocked(p, accept, text, entity.ResolvedByController) {
		return entity.ErrNoDialogPresent
	}
	delete(b.dialogs, windowID)

	log.Debug().
		Str("window_id", string(windowID)).
		Str("dialog_id", string(p.state.ID)).
		Bool("accept", accept).
		Msg("dialog resolved by controller")
	return nil
}

// SendKeys stages text for the prompt pending on windowID without closing it.
func (b *DialogBridge) SendKeys(_ context.Context, windowID entity.WindowID, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.pendingLocked(windowID)
	if err != nil {
		return err
	}
	if err := p.state.SetInput(text); err != nil {
		return fmt.Errorf("send text to %s: %w", p.state.Kind, err)
	}
	return nil
}

// Close tears down dialog handling for windowID: a pending dialog is accepted
// with no text, and later dialogs for the window are auto-accepted.
func (b *DialogBridge) Close(ctx context.Context, windowID entity.WindowID) {
	log := logging.FromContext(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed[windowID] = struct{}{}
	p, ok := b.dialogs[windowID]
	if !ok {
		return
	}
	b.resolveLocked(p, true, "", entity.ResolvedByTeardown)
	delete(b.dialogs, windowID)

	log.Debug().
		Str("window_id", string(windowID)).
		Str("dialog_id", string(p.state.ID)).
		Msg("pending dialog released by window teardown")
}

// SetAutoAccept toggles the process-wide auto-accept mode.
func (b *DialogBridge) SetAutoAccept(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoAccept = enabled
}

func (b *DialogBridge) AutoAccept() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.autoAccept
}

// SetTimeout changes the bounded wait for dialogs opened from now on.
func (b *DialogBridge) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timeout = d
}

func (b *DialogBridge) Timeout() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timeout
}

// Pending lists outstanding dialogs, oldest first.
func (b *DialogBridge) Pending() []entity.DialogSnapshot {
	b.mu.Lock()
	out := make([]entity.DialogSnapshot, 0, len(b.dialogs))
	for _, p := range b.dialogs {
		out = append(out, p.state.Snapshot())
	}
	b.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].OpenedAt.Before(out[j].OpenedAt)
	})
	return out
}

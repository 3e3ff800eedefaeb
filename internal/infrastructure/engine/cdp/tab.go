// Package cdp routes JavaScript dialogs of a Chrome tab driven over the
// DevTools protocol through the dialog bridge.
package cdp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// Tab is a chromedp target whose dialogs block until the controller answers.
type Tab struct {
	ctx      context.Context
	id       entity.WindowID
	notifier port.DialogNotifier
	log      zerolog.Logger
}

var _ port.BrowsingContext = (*Tab)(nil)

// LaunchOptions controls the browser started by Launch.
type LaunchOptions struct {
	// ExecPath overrides chromedp's browser lookup.
	ExecPath string
	Headful  bool
}

// Launch starts a local Chrome and attaches to its first tab. The returned
// cancel func stops the browser; it is safe to call after Close.
func Launch(ctx context.Context, notifier port.DialogNotifier, opts LaunchOptions) (*Tab, context.CancelFunc, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.Headful {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		tabCancel()
		allocCancel()
	}

	tab, err := Attach(tabCtx, notifier)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("launch chrome: %w", err)
	}
	return tab, cancel, nil
}

// Attach allocates the target behind ctx, which must come from chromedp.NewContext,
// and starts listening for dialogs.
func Attach(ctx context.Context, notifier port.DialogNotifier) (*Tab, error) {
	if err := chromedp.Run(ctx, page.Enable()); err != nil {
		return nil, fmt.Errorf("attach tab: %w", err)
	}
	c := chromedp.FromContext(ctx)
	if c == nil || c.Target == nil {
		return nil, errors.New("attach tab: no target in context")
	}

	t := &Tab{
		ctx:      ctx,
		id:       entity.WindowID(c.Target.TargetID),
		notifier: notifier,
	}
	t.log = logging.FromContext(ctx).With().
		Str("component", "cdp-engine").
		Str("window_id", string(t.id)).
		Logger()

	chromedp.ListenTarget(ctx, func(ev any) {
		if e, ok := ev.(*page.EventJavascriptDialogOpening); ok {
			// The listener runs on the event loop; answering inline would deadlock.
			go t.handle(e)
		}
	})
	return t, nil
}

func (t *Tab) ID() entity.WindowID {
	return t.id
}

// Run executes chromedp actions against the tab.
func (t *Tab) Run(actions ...chromedp.Action) error {
	return chromedp.Run(t.ctx, actions...)
}

// Navigate loads url and waits for the load event. Dialogs raised while the
// page loads hold the navigation until they are answered.
func (t *Tab) Navigate(_ context.Context, url string) error {
	if err := chromedp.Run(t.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Eval evaluates src in the page and returns its JSON value. undefined maps to nil.
func (t *Tab) Eval(_ context.Context, src string) (any, error) {
	var obj *runtime.RemoteObject
	if err := chromedp.Run(t.ctx, chromedp.Evaluate(src, &obj)); err != nil {
		return nil, err
	}
	return remoteValue(obj)
}

// Close cancels the tab context, closing the target.
func (t *Tab) Close(_ context.Context) error {
	return chromedp.Cancel(t.ctx)
}

func (t *Tab) handle(e *page.EventJavascriptDialogOpening) {
	kind := dialogKind(e.Type)
	out := t.notifier.Notify(t.ctx, t.id, kind, e.Message, e.DefaultPrompt)

	if err := chromedp.Run(t.ctx, dialogResponse(out)); err != nil {
		t.log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to answer dialog")
	}
}

func dialogKind(typ page.DialogType) entity.DialogKind {
	switch typ {
	case page.DialogTypeConfirm:
		return entity.DialogConfirm
	case page.DialogTypePrompt:
		return entity.DialogPrompt
	case page.DialogTypeBeforeunload:
		return entity.DialogBeforeUnload
	default:
		return entity.DialogAlert
	}
}

func dialogResponse(out entity.DialogOutcome) *page.HandleJavaScriptDialogParams {
	action := page.HandleJavaScriptDialog(out.Accepted)
	if out.HasText {
		action = action.WithPromptText(out.Text)
	}
	return action
}

func remoteValue(obj *runtime.RemoteObject) (any, error) {
	if obj == nil || obj.Type == runtime.TypeUndefined || len(obj.Value) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(obj.Value, &v); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", obj.Type, err)
	}
	return v, nil
}

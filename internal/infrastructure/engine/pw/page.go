// Package pw routes dialogs of a Playwright page through the dialog bridge.
package pw

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// Page is a Playwright page whose dialogs block until the controller answers.
type Page struct {
	ctx      context.Context
	id       entity.WindowID
	page     playwright.Page
	notifier port.DialogNotifier
	log      zerolog.Logger
}

var _ port.BrowsingContext = (*Page)(nil)

// LaunchOptions controls the browser started by Launch.
type LaunchOptions struct {
	Headful bool
}

// Launch starts the Playwright driver and a Chromium browser, and attaches to
// a fresh page. The returned stop func closes the browser and the driver.
func Launch(ctx context.Context, id entity.WindowID, notifier port.DialogNotifier, opts LaunchOptions) (*Page, func(), error) {
	runner, err := playwright.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := runner.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!opts.Headful),
	})
	if err != nil {
		_ = runner.Stop()
		return nil, nil, fmt.Errorf("launch chromium: %w", err)
	}

	p, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = runner.Stop()
		return nil, nil, fmt.Errorf("open page: %w", err)
	}

	pg := Attach(ctx, id, p, notifier)
	stop := func() {
		if err := browser.Close(); err != nil {
			pg.log.Debug().Err(err).Msg("browser close")
		}
		if err := runner.Stop(); err != nil {
			pg.log.Debug().Err(err).Msg("playwright stop")
		}
	}
	return pg, stop, nil
}

// Attach registers a dialog handler on p. Dialogs are answered from ctx's
// lifetime; cancelling ctx dismisses anything still pending.
func Attach(ctx context.Context, id entity.WindowID, p playwright.Page, notifier port.DialogNotifier) *Page {
	pg := &Page{
		ctx:      ctx,
		id:       id,
		page:     p,
		notifier: notifier,
		log: logging.FromContext(ctx).With().
			Str("component", "playwright-engine").
			Str("window_id", string(id)).
			Logger(),
	}

	p.OnDialog(func(d playwright.Dialog) {
		// Playwright dispatches events on one goroutine; keep it free while we wait.
		go pg.handle(d)
	})
	return pg
}

func (pg *Page) ID() entity.WindowID {
	return pg.id
}

// Playwright exposes the wrapped page for navigation and evaluation.
func (pg *Page) Playwright() playwright.Page {
	return pg.page
}

// Navigate loads url. Dialogs raised while the page loads hold the
// navigation until they are answered.
func (pg *Page) Navigate(_ context.Context, url string) error {
	if _, err := pg.page.Goto(url); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// Eval evaluates src in the page and returns its value.
func (pg *Page) Eval(_ context.Context, src string) (any, error) {
	return pg.page.Evaluate(src)
}

// Close closes the page, running beforeunload handlers.
func (pg *Page) Close(_ context.Context) error {
	return pg.page.Close(playwright.PageCloseOptions{
		RunBeforeUnload: playwright.Bool(true),
	})
}

func (pg *Page) handle(d playwright.Dialog) {
	kind := dialogKind(d.Type())
	out := pg.notifier.Notify(pg.ctx, pg.id, kind, d.Message(), d.DefaultValue())

	var err error
	switch {
	case !out.Accepted:
		err = d.Dismiss()
	case out.HasText:
		err = d.Accept(out.Text)
	default:
		err = d.Accept()
	}
	if err != nil {
		pg.log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to answer dialog")
	}
}

func dialogKind(typ string) entity.DialogKind {
	switch kind := entity.DialogKind(typ); kind {
	case entity.DialogConfirm, entity.DialogPrompt, entity.DialogBeforeUnload:
		return kind
	default:
		return entity.DialogAlert
	}
}

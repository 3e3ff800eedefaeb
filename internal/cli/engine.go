package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/engine/cdp"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/engine/pw"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/infrastructure/engine/script"
)

// Engines the run command can drive.
const (
	EngineScript     = "script"
	EngineCDP        = "cdp"
	EnginePlaywright = "playwright"
)

// Page is a browsing context that evaluates script.
type Page interface {
	port.BrowsingContext
	Eval(ctx context.Context, src string) (any, error)
}

// Navigator is implemented by pages backed by a real browser.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

// PageOptions selects and configures the engine behind a page.
type PageOptions struct {
	Engine   string
	WindowID entity.WindowID
	// BrowserPath overrides the Chrome binary for the cdp engine.
	BrowserPath string
	Headful     bool
}

// OpenPage starts the selected engine and returns its page, wired to the
// bridge. release stops whatever process backs the page and must be called
// after the page has been closed.
func (a *App) OpenPage(ctx context.Context, opts PageOptions) (Page, func(), error) {
	switch opts.Engine {
	case "", EngineScript:
		return script.NewWindow(ctx, opts.WindowID, a.Bridge), func() {}, nil
	case EngineCDP:
		tab, cancel, err := cdp.Launch(ctx, a.Bridge, cdp.LaunchOptions{
			ExecPath: opts.BrowserPath,
			Headful:  opts.Headful,
		})
		if err != nil {
			return nil, nil, err
		}
		return tab, func() { cancel() }, nil
	case EnginePlaywright:
		page, stop, err := pw.Launch(ctx, opts.WindowID, a.Bridge, pw.LaunchOptions{Headful: opts.Headful})
		if err != nil {
			return nil, nil, err
		}
		return page, stop, nil
	default:
		return nil, nil, fmt.Errorf("unknown engine %q (want %s, %s or %s)",
			opts.Engine, EngineScript, EngineCDP, EnginePlaywright)
	}
}

// PageURL turns a URL or local file path into something a browser can load.
func PageURL(target string) (string, error) {
	if u, err := url.Parse(target); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return target, nil
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", target, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("open %s: %w", target, err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

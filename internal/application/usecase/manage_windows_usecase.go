package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

var (
	// ErrUnknownWindow is returned when a window id is not tracked.
	ErrUnknownWindow = errors.New("no such window")
	// ErrWindowExists is returned when opening a window id twice.
	ErrWindowExists = errors.New("window already open")
)

// ManageWindowsUseCase tracks open browsing contexts and the controller's
// focused window, and drives dialog teardown on close and quit.
type ManageWindowsUseCase struct {
	bridge *DialogBridge

	mu      sync.RWMutex
	windows map[entity.WindowID]port.BrowsingContext
	current entity.WindowID
	quit    bool
}

var _ port.WindowFocus = (*ManageWindowsUseCase)(nil)

// NewManageWindowsUseCase creates a window manager bound to bridge.
func NewManageWindowsUseCase(bridge *DialogBridge) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{
		bridge:  bridge,
		windows: make(map[entity.WindowID]port.BrowsingContext),
	}
}

// Open starts tracking bc. The first window opened receives focus.
func (uc *ManageWindowsUseCase) Open(ctx context.Context, bc port.BrowsingContext) error {
	id := bc.ID()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.quit {
		return fmt.Errorf("open window %s: session is quitting", id)
	}
	if _, ok := uc.windows[id]; ok {
		return fmt.Errorf("open window %s: %w", id, ErrWindowExists)
	}
	uc.windows[id] = bc
	if uc.current == "" {
		uc.current = id
	}

	logging.FromContext(ctx).Debug().Str("window_id", string(id)).Msg("window opened")
	return nil
}

// SwitchTo moves controller focus to id.
func (uc *ManageWindowsUseCase) SwitchTo(id entity.WindowID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.windows[id]; !ok {
		return fmt.Errorf("switch to %s: %w", id, ErrUnknownWindow)
	}
	uc.current = id
	return nil
}

// CurrentWindow implements port.WindowFocus.
func (uc *ManageWindowsUseCase) CurrentWindow() (entity.WindowID, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current, uc.current != ""
}

// Windows returns the ids of all open windows in sorted order.
func (uc *ManageWindowsUseCase) Windows() []entity.WindowID {
	uc.mu.RLock()
	ids := make([]entity.WindowID, 0, len(uc.windows))
	for id := range uc.windows {
		ids = append(ids, id)
	}
	uc.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CloseWindow releases any pending dialog of id, switches the window to
// auto-accept and closes the browsing context. Dialogs raised while the
// context unloads return immediately.
func (uc *ManageWindowsUseCase) CloseWindow(ctx context.Context, id entity.WindowID) error {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	bc, ok := uc.windows[id]
	if ok {
		delete(uc.windows, id)
		if uc.current == id {
			uc.current = ""
		}
	}
	uc.mu.Unlock()

	if !ok {
		return fmt.Errorf("close window %s: %w", id, ErrUnknownWindow)
	}

	uc.bridge.Close(ctx, id)
	if err := bc.Close(ctx); err != nil {
		log.Warn().Err(err).Str("window_id", string(id)).Msg("failed to close window")
		return fmt.Errorf("close window %s: %w", id, err)
	}

	log.Debug().Str("window_id", string(id)).Msg("window closed")
	return nil
}

// Quit enables auto-accept so nothing can block shutdown, then closes every
// window concurrently.
func (uc *ManageWindowsUseCase) Quit(ctx context.Context) error {
	uc.bridge.SetAutoAccept(true)

	uc.mu.Lock()
	uc.quit = true
	uc.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range uc.Windows() {
		g.Go(func() error {
			err := uc.CloseWindow(gctx, id)
			if errors.Is(err, ErrUnknownWindow) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("quit session: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("session quit")
	return nil
}

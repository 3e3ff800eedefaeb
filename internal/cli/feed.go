package cli

import (
	"context"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/application/port"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// DialogEvent is a dialog lifecycle transition seen by the terminal.
type DialogEvent struct {
	Dialog entity.DialogSnapshot
	Closed bool
}

// DialogFeed forwards bridge notifications to the terminal controller.
// Events are dropped rather than blocking the engine when nobody reads.
type DialogFeed struct {
	events chan DialogEvent
}

var _ port.DialogObserver = (*DialogFeed)(nil)

// NewDialogFeed creates a feed holding up to buffer undelivered events.
func NewDialogFeed(buffer int) *DialogFeed {
	return &DialogFeed{events: make(chan DialogEvent, buffer)}
}

// Events returns the receive side of the feed.
func (f *DialogFeed) Events() <-chan DialogEvent {
	return f.events
}

func (f *DialogFeed) DialogOpened(ctx context.Context, d entity.DialogSnapshot) {
	f.publish(ctx, DialogEvent{Dialog: d})
}

func (f *DialogFeed) DialogClosed(ctx context.Context, d entity.DialogSnapshot) {
	f.publish(ctx, DialogEvent{Dialog: d, Closed: true})
}

func (f *DialogFeed) publish(ctx context.Context, ev DialogEvent) {
	select {
	case f.events <- ev:
	default:
		logging.FromContext(ctx).Warn().
			Str("dialog_id", string(ev.Dialog.ID)).
			Bool("closed", ev.Closed).
			Msg("dialog feed full, dropping event")
	}
}

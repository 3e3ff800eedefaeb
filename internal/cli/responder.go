package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

// AlertController answers the dialog of the focused window.
type AlertController interface {
	Accept(ctx context.Context) error
	Dismiss(ctx context.Context) error
	SendKeys(ctx context.Context, text string) error
}

// AnswerPolicy is a fixed answer given to every dialog.
type AnswerPolicy struct {
	Accept bool
	// Text is typed into prompts when HasText is set.
	Text    string
	HasText bool
}

// Responder answers dialogs without user interaction.
type Responder struct {
	alerts AlertController
	policy AnswerPolicy
	theme  *styles.Theme
	out    io.Writer
}

// NewResponder creates a responder printing outcomes to out.
func NewResponder(alerts AlertController, policy AnswerPolicy, theme *styles.Theme, out io.Writer) *Responder {
	return &Responder{alerts: alerts, policy: policy, theme: theme, out: out}
}

// Run answers opened dialogs until events is closed or ctx is done.
func (r *Responder) Run(ctx context.Context, events <-chan DialogEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Closed {
				_, _ = fmt.Fprintln(r.out, r.theme.RenderOutcome(ev.Dialog))
				continue
			}
			if err := r.answer(ctx, ev.Dialog); err != nil {
				return err
			}
		}
	}
}

func (r *Responder) answer(ctx context.Context, d entity.DialogSnapshot) error {
	log := logging.FromContext(ctx)

	var err error
	switch {
	case !r.policy.Accept:
		err = r.alerts.Dismiss(ctx)
	case d.Kind.AcceptsText() && r.policy.HasText:
		if err = r.alerts.SendKeys(ctx, r.policy.Text); err == nil {
			err = r.alerts.Accept(ctx)
		}
	default:
		err = r.alerts.Accept(ctx)
	}

	// The dialog may already be gone: timed out, torn down or superseded.
	if errors.Is(err, entity.ErrNoDialogPresent) {
		log.Debug().Str("dialog_id", string(d.ID)).Msg("dialog released before it could be answered")
		return nil
	}
	if err != nil {
		return fmt.Errorf("answer %s: %w", d.Kind, err)
	}
	return nil
}

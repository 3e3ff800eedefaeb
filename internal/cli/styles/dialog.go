package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
)

// DialogKeyMap defines keybindings for answering a dialog.
type DialogKeyMap struct {
	Accept  key.Binding
	Dismiss key.Binding
	Yes     key.Binding
	No      key.Binding
	Quit    key.Binding
}

// DefaultDialogKeyMap returns the default keybindings. y/n are disabled while
// a prompt has focus so they can be typed.
func DefaultDialogKeyMap(prompt bool) DialogKeyMap {
	km := DialogKeyMap{
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "accept")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
	km.Yes.SetEnabled(!prompt)
	km.No.SetEnabled(!prompt)
	return km
}

// KindIcon returns the icon shown for a dialog kind.
func KindIcon(kind entity.DialogKind) string {
	switch kind {
	case entity.DialogConfirm:
		return IconConfirm
	case entity.DialogPrompt:
		return IconPrompt
	case entity.DialogBeforeUnload:
		return IconBeforeUnload
	default:
		return IconAlert
	}
}

// KindBadge renders a dialog kind as a badge.
func (t *Theme) KindBadge(kind entity.DialogKind) string {
	return t.Badge.Render(string(kind))
}

// RenderDialog renders a pending dialog box. input is the rendered prompt
// field, ignored for other kinds.
func (t *Theme) RenderDialog(d entity.DialogSnapshot, input string) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Highlight.Render(KindIcon(d.Kind)), " ", t.KindBadge(d.Kind), " ", t.Subtle.Render(string(d.WindowID)))

	message := d.Message
	if message == "" {
		message = t.Subtle.Render("(no message)")
	}

	rows := []string{header, "", t.Title.Render(message), ""}
	if d.Kind.AcceptsText() {
		rows = append(rows, input, "")
	}
	rows = append(rows, t.renderHelp(DefaultDialogKeyMap(d.Kind.AcceptsText())))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (t *Theme) renderHelp(km DialogKeyMap) string {
	var parts []string
	for _, b := range []key.Binding{km.Accept, km.Dismiss, km.Yes, km.No, km.Quit} {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, t.HelpKey.Render(h.Key)+" "+t.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, t.Subtle.Render(" • "))
}

// RenderOutcome renders a one-line summary of a released dialog.
func (t *Theme) RenderOutcome(d entity.DialogSnapshot) string {
	icon, style := IconCheck, t.SuccessStyle
	if !d.Outcome.Accepted {
		icon, style = IconX, t.WarningStyle
	}

	line := fmt.Sprintf("%s %s %q", style.Render(icon), t.KindBadge(d.Kind), d.Message)
	if d.Outcome.HasText {
		line += " " + t.Highlight.Render(fmt.Sprintf("→ %q", d.Outcome.Text))
	}
	if d.ResolvedBy != entity.ResolvedByController {
		line += " " + t.Subtle.Render("("+string(d.ResolvedBy)+")")
	}
	return line
}

// RenderJournal renders journal records as a table.
func (t *Theme) RenderJournal(records []*entity.DialogRecord) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("Closed", "Window", "Kind", "Message", "Result", "By", "Waited").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		})

	for _, r := range records {
		tbl.Row(
			r.ClosedAt.Local().Format(time.DateTime),
			string(r.WindowID),
			string(r.Kind),
			truncate(r.Message, 40),
			recordResult(r),
			string(r.ResolvedBy),
			r.Duration().Round(time.Millisecond).String(),
		)
	}
	return tbl.Render()
}

func recordResult(r *entity.DialogRecord) string {
	switch {
	case r.HasText:
		return fmt.Sprintf("%q", r.Text)
	case r.Kind == entity.DialogPrompt:
		return "null"
	case r.Accepted:
		return "accepted"
	default:
		return "dismissed"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

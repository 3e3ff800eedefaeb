// Package model holds Bubble Tea models for interactive commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
)

// ScriptDoneMsg reports that the script finished running.
type ScriptDoneMsg struct {
	Value any
	Err   error
}

type dialogEventMsg cli.DialogEvent

type answeredMsg struct {
	dialog entity.DialogSnapshot
	err    error
}

// ControllerModel lets the user answer dialogs raised by a running script.
type ControllerModel struct {
	ctx    context.Context
	theme  *styles.Theme
	alerts cli.AlertController
	events <-chan cli.DialogEvent
	done   <-chan ScriptDoneMsg

	current *entity.DialogSnapshot
	input   textinput.Model
	spinner spinner.Model
	log     []string

	Result      *ScriptDoneMsg
	Interrupted bool
	err         error
}

// NewController creates a controller model.
func NewController(
	ctx context.Context,
	theme *styles.Theme,
	alerts cli.AlertController,
	events <-chan cli.DialogEvent,
	done <-chan ScriptDoneMsg,
) ControllerModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 1024
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Highlight

	return ControllerModel{
		ctx:     ctx,
		theme:   theme,
		alerts:  alerts,
		events:  events,
		done:    done,
		input:   ti,
		spinner: sp,
	}
}

func waitForEvent(events <-chan cli.DialogEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return dialogEventMsg(ev)
	}
}

func waitForScript(done <-chan ScriptDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-done
	}
}

// Init implements tea.Model.
func (m ControllerModel) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForScript(m.done), m.spinner.Tick)
}

// Update implements tea.Model.
func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dialogEventMsg:
		return m.handleEvent(cli.DialogEvent(msg))

	case answeredMsg:
		if msg.err != nil && !errors.Is(msg.err, entity.ErrNoDialogPresent) {
			m.err = msg.err
		}
		return m, nil

	case ScriptDoneMsg:
		m.Result = &msg
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ControllerModel) handleEvent(ev cli.DialogEvent) (tea.Model, tea.Cmd) {
	next := waitForEvent(m.events)

	if ev.Closed {
		m.log = append(m.log, m.theme.RenderOutcome(ev.Dialog))
		if m.current != nil && m.current.ID == ev.Dialog.ID {
			m.current = nil
			m.input.Blur()
		}
		return m, next
	}

	d := ev.Dialog
	m.current = &d
	m.err = nil
	if d.Kind.AcceptsText() {
		m.input.SetValue(d.DefaultValue)
		m.input.CursorEnd()
		return m, tea.Batch(next, m.input.Focus())
	}
	m.input.Blur()
	return m, next
}

func (m ControllerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prompt := m.current != nil && m.current.Kind.AcceptsText()
	keys := styles.DefaultDialogKeyMap(prompt)

	if key.Matches(msg, keys.Quit) {
		m.Interrupted = true
		return m, tea.Quit
	}
	if m.current == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Accept), key.Matches(msg, keys.Yes):
		return m.answer(true)
	case key.Matches(msg, keys.Dismiss), key.Matches(msg, keys.No):
		return m.answer(false)
	}

	if prompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// answer resolves the current dialog off the UI goroutine.
func (m ControllerModel) answer(accept bool) (tea.Model, tea.Cmd) {
	d := *m.current
	text := m.input.Value()
	m.current = nil
	m.input.Blur()

	ctx, alerts := m.ctx, m.alerts
	return m, func() tea.Msg {
		var err error
		switch {
		case !accept:
			err = alerts.Dismiss(ctx)
		case d.Kind.AcceptsText():
			if err = alerts.SendKeys(ctx, text); err == nil {
				err = alerts.Accept(ctx)
			}
		default:
			err = alerts.Accept(ctx)
		}
		return answeredMsg{dialog: d, err: err}
	}
}

// View implements tea.Model.
func (m ControllerModel) View() string {
	t := m.theme
	var b strings.Builder

	for _, line := range m.log {
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch {
	case m.Result != nil:
		return b.String()
	case m.current != nil:
		b.WriteString(t.RenderDialog(*m.current, m.inputView()))
	default:
		b.WriteString(m.spinner.View() + " " + t.Subtle.Render("script running…"))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ControllerModel) inputView() string {
	if m.input.Focused() {
		return m.theme.InputFocused.Render(m.input.View())
	}
	return m.theme.Input.Render(m.input.View())
}

package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// command runs fn off the update loop. The driver may be waiting for the
// program to accept a hook message.
func command(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return tea.Batch(tea.ClearScreen, tea.Quit)

	case key.Matches(msg, defaultKeymap.togglePlay):
		if m.snap.Status.Counting() {
			return command(m.ctrl.Pause)
		}

		return command(m.ctrl.Start)

	case key.Matches(msg, defaultKeymap.reset):
		return command(m.ctrl.Reset)

	case key.Matches(msg, defaultKeymap.tag):
		if m.snap.Status != models.Idle && m.snap.Status != models.Finished {
			return nil
		}

		t, ok := m.nextTag()
		if !ok {
			return nil
		}

		m.snap.SelectedTagID = t.ID

		if m.opts.OnTagChange != nil {
			m.opts.OnTagChange(t)
		}

		return command(func() {
			m.ctrl.SelectTag(t.ID)
		})
	}

	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case countersMsg:
		m.snap.SessionSecondsRemaining = msg.session
		m.snap.BellSecondsRemaining = msg.bell

	case statusMsg:
		m.snap.Status = models.Status(msg)

	case bellMsg:
		m.bells++

	case microBreakMsg:
		m.microBreak = bool(msg)

	case sessionEndedMsg:
		// the status has already moved on from Running
		if m.snap.Status == models.Break ||
			(m.snap.Status == models.Finished && !m.settings.ShowBreakCountdown) {
			m.sessions++
		}

		m.microBreak = false

	case SettingsMsg:
		m.settings = models.Settings(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

	default:
		slog.Debug(spew.Sdump(msg))
	}

	return m, nil
}

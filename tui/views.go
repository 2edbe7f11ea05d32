package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

func (m *Model) timeFormat() string {
	if m.opts.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func (m *Model) headerView() string {
	var s strings.Builder

	status := m.snap.Status

	s.WriteString(
		m.style.Status(status).SetString("[" + status.Label() + "]").String(),
	)

	if status.Counting() {
		end := m.now().
			Add(time.Duration(m.snap.SessionSecondsRemaining) * time.Second)

		s.WriteString(
			strings.TrimSpace(
				m.style.Hint.SetString("until " + end.Format(m.timeFormat())).
					String(),
			),
		)
	}

	if t, ok := m.tag(); ok {
		s.WriteString(" >>> ")
		s.WriteString(m.style.Tag(t).SetString(t.Name).String())
	}

	return s.String()
}

func (m *Model) bellView() string {
	if m.microBreak {
		return m.style.Banner.SetString("Breathe. Notice where your attention is.").
			String()
	}

	switch m.snap.Status {
	case models.Running:
		return m.style.Hint.SetString(
			fmt.Sprintf(
				"next bell in %s (%d rung)",
				timeutil.Clock(m.snap.BellSecondsRemaining),
				m.bells,
			),
		).String()
	case models.Idle:
		return m.style.Secondary.SetString("Press space to begin").String()
	case models.Finished:
		return m.style.Secondary.SetString(
			fmt.Sprintf("Sessions completed: %d", m.sessions),
		).String()
	}

	return ""
}

func (m *Model) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
	}

	if m.snap.Status == models.Idle || m.snap.Status == models.Finished {
		bindings = append(bindings, defaultKeymap.tag)
	}

	bindings = append(bindings, defaultKeymap.quit)

	return m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n\n")
	s.WriteString(
		m.style.Main.SetString(timeutil.Clock(m.snap.SessionSecondsRemaining)).
			String(),
	)
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(1 - m.percent()))

	if bell := m.bellView(); bell != "" {
		s.WriteString("\n\n" + bell)
	}

	s.WriteString("\n\n" + m.helpView())

	return m.style.Base.Render(s.String())
}

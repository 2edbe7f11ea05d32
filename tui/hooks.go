package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/timer"
)

type (
	countersMsg struct {
		session, bell int
	}

	statusMsg models.Status

	bellMsg struct{}

	sessionEndedMsg struct{}

	microBreakMsg bool

	// SettingsMsg tells the model that the timer settings changed.
	SettingsMsg models.Settings
)

// hooks forwards timer events to a running program.
type hooks struct {
	send func(tea.Msg)
}

// NewHooks returns timer hooks that deliver events through send, usually
// (*tea.Program).Send.
func NewHooks(send func(tea.Msg)) timer.Hooks {
	return hooks{send: send}
}

func (h hooks) OnBellFired()       { h.send(bellMsg{}) }
func (h hooks) OnSessionEnded()    { h.send(sessionEndedMsg{}) }
func (h hooks) OnMicroBreakStart() { h.send(microBreakMsg(true)) }
func (h hooks) OnMicroBreakEnd()   { h.send(microBreakMsg(false)) }

func (h hooks) OnStatusChanged(s models.Status) {
	h.send(statusMsg(s))
}

func (h hooks) OnTick(session, bell int) {
	h.send(countersMsg{session: session, bell: bell})
}

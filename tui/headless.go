package tui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/timer"
)

// Headless prints timer events as log lines when no interface is shown. The
// countdown is printed once a minute.
type Headless struct {
	timer.NopHooks
}

func (Headless) OnStatusChanged(s models.Status) {
	pterm.Info.Printfln("[%s]", s.Label())
}

func (Headless) OnTick(session, _ int) {
	if session > 0 && session%60 == 0 {
		pterm.Println(timeutil.Clock(session) + " remaining")
	}
}

func (Headless) OnBellFired() {
	pterm.Info.Println("Bell. Take a breath.")
}

func (Headless) OnSessionEnded() {
	pterm.Success.Println("Session complete")
}

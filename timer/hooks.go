package timer

import "github.com/ayoisaiah/focusflow/internal/models"

// Hooks receives the events of a Machine. Hooks are called synchronously from
// the goroutine that drives the machine and must not call back into it.
type Hooks interface {
	OnBellFired()
	OnSessionEnded()
	OnMicroBreakStart()
	OnMicroBreakEnd()
	OnStatusChanged(status models.Status)
	// OnTick reports the counters after every tick and every command that
	// changes them.
	OnTick(sessionSecondsRemaining, bellSecondsRemaining int)
}

// NopHooks ignores every event. Embed it to implement a subset of Hooks.
type NopHooks struct{}

func (NopHooks) OnBellFired()                  {}
func (NopHooks) OnSessionEnded()               {}
func (NopHooks) OnMicroBreakStart()            {}
func (NopHooks) OnMicroBreakEnd()              {}
func (NopHooks) OnStatusChanged(models.Status) {}
func (NopHooks) OnTick(int, int)               {}

// MultiHooks forwards every event to each of its members in order.
type MultiHooks []Hooks

func (m MultiHooks) OnBellFired() {
	for _, h := range m {
		h.OnBellFired()
	}
}

func (m MultiHooks) OnSessionEnded() {
	for _, h := range m {
		h.OnSessionEnded()
	}
}

func (m MultiHooks) OnMicroBreakStart() {
	for _, h := range m {
		h.OnMicroBreakStart()
	}
}

func (m MultiHooks) OnMicroBreakEnd() {
	for _, h := range m {
		h.OnMicroBreakEnd()
	}
}

func (m MultiHooks) OnStatusChanged(status models.Status) {
	for _, h := range m {
		h.OnStatusChanged(status)
	}
}

func (m MultiHooks) OnTick(session, bell int) {
	for _, h := range m {
		h.OnTick(session, bell)
	}
}

// Package timer implements the focus session state machine, the recovery of
// interrupted sessions and the goroutine that drives them
package timer

import (
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// Store is the persistence the machine writes to.
type Store interface {
	HistoryAppender
	SaveSnapshot(b []byte) error
}

// Scheduler runs fn once after d. The returned function cancels the call if
// it has not happened yet.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// Option configures a Machine.
type Option func(m *Machine)

// WithHooks sets the receiver of machine events.
func WithHooks(h Hooks) Option {
	return func(m *Machine) {
		m.hooks = h
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithGenerator sets the source of bell intervals.
func WithGenerator(g *IntervalGenerator) Option {
	return func(m *Machine) {
		m.gen = g
	}
}

// WithScheduler sets how the end of a micro-break is scheduled. Without one,
// micro-breaks last until EndMicroBreak is called.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) {
		m.sched = s
	}
}

// Machine is the focus timer. It is not safe for concurrent use; a Driver
// serializes access to it.
type Machine struct {
	db       Store
	hooks    Hooks
	gen      *IntervalGenerator
	recorder *Recorder
	sched    Scheduler
	now      func() time.Time

	settings models.Settings
	snap     models.Snapshot
	tags     []models.Tag

	microBreak    bool
	microID       uint64
	cancelMicro   func()
	ticking       bool
	runID         uint64
	recordedRunID uint64
}

// NewMachine returns a machine that starts from r.
func NewMachine(
	db Store,
	r Restored,
	tags []models.Tag,
	opts ...Option,
) *Machine {
	m := &Machine{
		db:       db,
		hooks:    NopHooks{},
		now:      time.Now,
		settings: r.Settings,
		snap:     r.Snapshot,
		tags:     slices.Clone(tags),
		// a restored session has not been recorded yet
		runID: 1,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.gen == nil {
		m.gen = NewIntervalGenerator(nil)
	}

	m.recorder = NewRecorder(db)

	return m
}

// Snapshot returns the current counters.
func (m *Machine) Snapshot() models.Snapshot {
	return m.snap
}

// Settings returns the settings in use.
func (m *Machine) Settings() models.Settings {
	return m.settings
}

// Status returns the current status.
func (m *Machine) Status() models.Status {
	return m.snap.Status
}

// MicroBreak reports whether a micro-break is in progress.
func (m *Machine) MicroBreak() bool {
	return m.microBreak
}

// Tags returns the tag catalog used to name records.
func (m *Machine) Tags() []models.Tag {
	return slices.Clone(m.tags)
}

// persist writes the current state to the store. Failures are logged so that
// the timer keeps running.
func (m *Machine) persist() {
	m.snap.LastPersistedAt = m.now().UnixMilli()

	if m.db == nil {
		return
	}

	b, err := json.Marshal(models.PersistedState{
		Settings: m.settings,
		Snapshot: m.snap,
	})
	if err != nil {
		slog.Error("unable to encode timer state", slog.Any("error", err))
		return
	}

	err = m.db.SaveSnapshot(b)
	if err != nil {
		slog.Error("unable to save timer state", slog.Any("error", err))
	}
}

func (m *Machine) setStatus(s models.Status) {
	if m.snap.Status == s {
		return
	}

	m.snap.Status = s
	m.hooks.OnStatusChanged(s)
}

func (m *Machine) reportCounters() {
	m.hooks.OnTick(m.snap.SessionSecondsRemaining, m.snap.BellSecondsRemaining)
}

func (m *Machine) drawBell() int {
	return m.gen.Next(
		m.settings.MinBellIntervalSeconds,
		m.settings.MaxBellIntervalSeconds,
	)
}

// Tick advances the countdowns by one second. It does nothing unless the
// timer is running or on a break, and a tick that arrives while another is
// being handled is dropped.
func (m *Machine) Tick() {
	if m.ticking || !m.snap.Status.Counting() {
		return
	}

	m.ticking = true
	defer func() {
		m.ticking = false
	}()

	if m.snap.Status == models.Running {
		m.tickFocus()
	} else {
		m.tickBreak()
	}

	m.persist()
	m.reportCounters()
}

func (m *Machine) tickFocus() {
	if m.snap.SessionSecondsRemaining > 0 {
		m.snap.SessionSecondsRemaining--
	}

	if m.snap.SessionSecondsRemaining == 0 {
		m.completeFocus()
		return
	}

	if m.snap.BellSecondsRemaining > 0 {
		m.snap.BellSecondsRemaining--
	}

	if m.snap.BellSecondsRemaining == 0 {
		m.ringBell()
	}
}

func (m *Machine) tickBreak() {
	if m.snap.SessionSecondsRemaining > 0 {
		m.snap.SessionSecondsRemaining--
	}

	if m.snap.SessionSecondsRemaining > 0 {
		return
	}

	m.setStatus(models.Finished)
	m.hooks.OnSessionEnded()
}

// completeFocus ends the focus countdown. The status changes before the
// recorder runs and each run is recorded once.
func (m *Machine) completeFocus() {
	completedAt := m.now()

	m.snap.BellSecondsRemaining = 0

	if m.settings.ShowBreakCountdown {
		m.snap.SessionSecondsRemaining = m.settings.LongBreakDurationSeconds
		m.setStatus(models.Break)
	} else {
		m.snap.SessionSecondsRemaining = 0
		m.setStatus(models.Finished)
	}

	if m.recordedRunID != m.runID {
		m.recordedRunID = m.runID
		m.recorder.Record(m.settings, m.snap.SelectedTagID, m.tags, completedAt)
	}

	m.hooks.OnSessionEnded()
}

func (m *Machine) ringBell() {
	m.hooks.OnBellFired()
	m.startMicroBreak()

	m.snap.BellSecondsRemaining = m.drawBell()
}

func (m *Machine) startMicroBreak() {
	m.stopMicroBreakTimer()

	m.microID++
	m.microBreak = true
	m.hooks.OnMicroBreakStart()

	if m.sched != nil {
		id := m.microID
		d := time.Duration(m.settings.MicroBreakSeconds) * time.Second
		m.cancelMicro = m.sched.Schedule(d, func() {
			m.expireMicroBreak(id)
		})
	}
}

// expireMicroBreak ends micro-break id. A clear that fires after a later bell
// has started a new micro-break is ignored.
func (m *Machine) expireMicroBreak(id uint64) {
	if id != m.microID {
		return
	}

	m.EndMicroBreak()
}

func (m *Machine) stopMicroBreakTimer() {
	if m.cancelMicro != nil {
		m.cancelMicro()
		m.cancelMicro = nil
	}
}

// EndMicroBreak clears the micro-break. Calling it when no micro-break is in
// progress does nothing.
func (m *Machine) EndMicroBreak() {
	m.stopMicroBreakTimer()

	if !m.microBreak {
		return
	}

	m.microBreak = false
	m.hooks.OnMicroBreakEnd()
}

// Start begins a new focus session from Idle or Finished and resumes a paused
// session or break.
func (m *Machine) Start() {
	switch m.snap.Status {
	case models.Idle, models.Finished:
		m.runID++
		m.snap.SessionSecondsRemaining = m.settings.FocusDurationSeconds
		m.snap.BellSecondsRemaining = m.drawBell()
		m.setStatus(models.Running)
	case models.Paused:
		m.setStatus(models.Running)
	case models.BreakPaused:
		m.setStatus(models.Break)
	default:
		return
	}

	m.persist()
	m.reportCounters()
}

// Pause freezes a running session or break.
func (m *Machine) Pause() {
	switch m.snap.Status {
	case models.Running:
		m.setStatus(models.Paused)
	case models.Break:
		m.setStatus(models.BreakPaused)
	default:
		return
	}

	m.persist()
}

// Reset returns the timer to Idle with a full focus countdown.
func (m *Machine) Reset() {
	m.EndMicroBreak()

	m.snap.SessionSecondsRemaining = m.settings.FocusDurationSeconds
	m.snap.BellSecondsRemaining = 0
	m.setStatus(models.Idle)

	m.persist()
	m.reportCounters()
}

// UpdateSettings replaces the settings. The session countdown only follows
// the new focus duration while the timer is idle.
func (m *Machine) UpdateSettings(s models.Settings) {
	m.settings = applySettings(&m.snap, s)

	m.persist()
	m.reportCounters()
}

// SelectTag sets the tag of the next recorded session.
func (m *Machine) SelectTag(id string) {
	if m.snap.SelectedTagID == id {
		return
	}

	m.snap.SelectedTagID = id
	m.persist()
}

// Close cancels the pending micro-break clear and writes the final state.
func (m *Machine) Close() {
	m.stopMicroBreakTimer()
	m.persist()
}

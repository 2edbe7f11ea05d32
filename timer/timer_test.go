package timer

import (
	"math/rand/v2"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
)

var epoch = time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC)

type memStore struct {
	snapshot []byte
	saves    int
	history  []models.FocusRecord
	tags     []models.Tag
	err      error
}

func (s *memStore) SaveSnapshot(b []byte) error {
	if s.err != nil {
		return s.err
	}

	s.snapshot = b
	s.saves++

	return nil
}

func (s *memStore) AppendHistory(r models.FocusRecord) error {
	if s.err != nil {
		return s.err
	}

	s.history = append(s.history, r)

	return nil
}

func (s *memStore) LoadSnapshot() ([]byte, error) {
	return s.snapshot, s.err
}

func (s *memStore) LoadTags() ([]models.Tag, error) {
	return s.tags, s.err
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

type scheduled struct {
	after     time.Duration
	fn        func()
	cancelled bool
}

type manualScheduler struct {
	calls []*scheduled
}

func (s *manualScheduler) Schedule(d time.Duration, fn func()) func() {
	call := &scheduled{after: d, fn: fn}
	s.calls = append(s.calls, call)

	return func() {
		call.cancelled = true
	}
}

type recordingHooks struct {
	NopHooks
	bells, ended, microStart, microEnd, ticks int
	statuses                                  []models.Status
	onEnded                                   func()
}

func (h *recordingHooks) OnBellFired()       { h.bells++ }
func (h *recordingHooks) OnMicroBreakStart() { h.microStart++ }
func (h *recordingHooks) OnMicroBreakEnd()   { h.microEnd++ }
func (h *recordingHooks) OnTick(int, int)    { h.ticks++ }

func (h *recordingHooks) OnStatusChanged(s models.Status) {
	h.statuses = append(h.statuses, s)
}

func (h *recordingHooks) OnSessionEnded() {
	h.ended++

	if h.onEnded != nil {
		h.onEnded()
	}
}

type fixture struct {
	m     *Machine
	db    *memStore
	hooks *recordingHooks
	sched *manualScheduler
	clock *clock
}

func newFixture(settings models.Settings) *fixture {
	f := &fixture{
		db:    &memStore{},
		hooks: &recordingHooks{},
		sched: &manualScheduler{},
		clock: &clock{t: epoch},
	}

	r := Restored{
		Settings: settings,
		Snapshot: models.Snapshot{
			Status:                  models.Idle,
			SelectedTagID:           "1",
			SessionSecondsRemaining: settings.FocusDurationSeconds,
		},
	}

	f.m = NewMachine(
		f.db,
		r,
		models.DefaultTags(),
		WithHooks(f.hooks),
		WithClock(f.clock.now),
		WithScheduler(f.sched),
		WithGenerator(NewIntervalGenerator(rand.NewPCG(1, 2))),
	)

	return f
}

// advance ticks the machine n times, moving the clock along with it.
func (f *fixture) advance(n int) {
	for range n {
		f.clock.t = f.clock.t.Add(time.Second)
		f.m.Tick()
	}
}

func smallSettings() models.Settings {
	return models.Settings{
		FocusDurationSeconds:     60,
		MinBellIntervalSeconds:   10,
		MaxBellIntervalSeconds:   20,
		MicroBreakSeconds:        3,
		LongBreakDurationSeconds: 30,
		ShowBreakCountdown:       true,
	}
}

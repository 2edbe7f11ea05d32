package timer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ayoisaiah/focusflow/internal/models"
)

func TestStartFromIdle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(1, 600).Draw(t, "min")
		s := models.Settings{
			FocusDurationSeconds:     rapid.IntRange(1, 4*3600).Draw(t, "focus"),
			MinBellIntervalSeconds:   lo,
			MaxBellIntervalSeconds:   rapid.IntRange(lo, 1200).Draw(t, "max"),
			MicroBreakSeconds:        10,
			LongBreakDurationSeconds: 60,
		}

		f := newFixture(s)
		f.m.Start()

		snap := f.m.Snapshot()
		if snap.Status != models.Running {
			t.Fatalf("status = %s, want running", snap.Status)
		}

		if snap.SessionSecondsRemaining != s.FocusDurationSeconds {
			t.Fatalf(
				"session = %d, want %d",
				snap.SessionSecondsRemaining,
				s.FocusDurationSeconds,
			)
		}

		if snap.BellSecondsRemaining < s.MinBellIntervalSeconds ||
			snap.BellSecondsRemaining > s.MaxBellIntervalSeconds {
			t.Fatalf("bell = %d, want [%d, %d]",
				snap.BellSecondsRemaining,
				s.MinBellIntervalSeconds,
				s.MaxBellIntervalSeconds,
			)
		}
	})
}

func TestSessionCountdownNeverIncreases(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := smallSettings()
		s.FocusDurationSeconds = rapid.IntRange(1, 120).Draw(t, "focus")
		s.LongBreakDurationSeconds = rapid.IntRange(0, 60).Draw(t, "break")
		s.ShowBreakCountdown = rapid.Bool().Draw(t, "show_break")

		f := newFixture(s)
		f.m.Start()

		actions := rapid.SliceOfN(rapid.IntRange(0, 9), 1, 300).Draw(t, "actions")

		for _, a := range actions {
			before := f.m.Snapshot()

			switch a {
			case 0:
				f.m.Pause()
			case 1:
				f.m.Start()
			default:
				f.advance(1)
			}

			after := f.m.Snapshot()

			if after.SessionSecondsRemaining < 0 || after.BellSecondsRemaining < 0 {
				t.Fatalf("negative counters: %+v", after)
			}

			if before.Status == after.Status && before.Status.Counting() &&
				after.SessionSecondsRemaining > before.SessionSecondsRemaining {
				t.Fatalf(
					"session went from %d to %d while %s",
					before.SessionSecondsRemaining,
					after.SessionSecondsRemaining,
					after.Status,
				)
			}
		}
	})
}

func TestPauseResumeDoesNotDrift(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newFixture(smallSettings())
		f.m.Start()
		f.advance(rapid.IntRange(0, 40).Draw(t, "ticks"))

		before := f.m.Snapshot()

		for range rapid.IntRange(1, 50).Draw(t, "cycles") {
			f.m.Pause()
			f.clock.t = f.clock.t.Add(time.Minute)
			f.m.Tick()
			f.m.Start()
		}

		after := f.m.Snapshot()

		if after.SessionSecondsRemaining != before.SessionSecondsRemaining ||
			after.BellSecondsRemaining != before.BellSecondsRemaining ||
			after.Status != before.Status {
			t.Fatalf("before %+v, after %+v", before, after)
		}
	})
}

func TestFocusCompletionStartsBreak(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 5

	f := newFixture(s)
	f.m.Start()
	f.advance(5)

	snap := f.m.Snapshot()
	assert.Equal(t, models.Break, snap.Status)
	assert.Equal(t, s.LongBreakDurationSeconds, snap.SessionSecondsRemaining)
	assert.Equal(t, 0, snap.BellSecondsRemaining)
	assert.Equal(t, 1, f.hooks.ended)

	require.Len(t, f.db.history, 1)

	rec := f.db.history[0]
	assert.Equal(t, 5, rec.DurationSeconds)
	assert.Equal(t, "1", rec.TagID)
	assert.Equal(t, "Work", rec.TagName)
	assert.Equal(t, epoch.Add(5*time.Second).UnixMilli(), rec.EndTime)
	assert.Equal(t, epoch.UnixMilli(), rec.StartTime)

	f.advance(s.LongBreakDurationSeconds)

	assert.Equal(t, models.Finished, f.m.Status())
	assert.Equal(t, 0, f.m.Snapshot().SessionSecondsRemaining)
	assert.Equal(t, 2, f.hooks.ended)
	assert.Len(t, f.db.history, 1, "the break is not recorded")

	assert.Equal(
		t,
		[]models.Status{models.Running, models.Break, models.Finished},
		f.hooks.statuses,
	)
}

func TestFocusCompletionWithoutBreak(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 3
	s.ShowBreakCountdown = false

	f := newFixture(s)
	f.m.Start()
	f.advance(3)

	assert.Equal(t, models.Finished, f.m.Status())
	assert.Equal(t, 0, f.m.Snapshot().SessionSecondsRemaining)

	// duplicate ticks after expiry
	f.advance(10)

	assert.Len(t, f.db.history, 1)
	assert.Equal(t, 1, f.hooks.ended)
}

func TestRecordCapturesTagAtCompletion(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 4

	f := newFixture(s)
	f.m.Start()
	f.advance(2)
	f.m.SelectTag("3")
	f.advance(2)

	require.Len(t, f.db.history, 1)
	assert.Equal(t, "3", f.db.history[0].TagID)
	assert.Equal(t, "Reading", f.db.history[0].TagName)
}

func TestRestartRecordsEachRun(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 2
	s.ShowBreakCountdown = false

	f := newFixture(s)

	for range 3 {
		f.m.Start()
		f.advance(2)
	}

	assert.Len(t, f.db.history, 3)
}

func TestTickDuringTickIsDropped(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 2

	f := newFixture(s)
	f.hooks.onEnded = f.m.Tick

	f.m.Start()
	f.advance(2)

	assert.Equal(t, models.Break, f.m.Status())
	assert.Equal(t, s.LongBreakDurationSeconds, f.m.Snapshot().SessionSecondsRemaining)
	assert.Len(t, f.db.history, 1)
}

func TestCompletionSupersedesBell(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 10
	s.MinBellIntervalSeconds = 10
	s.MaxBellIntervalSeconds = 10

	f := newFixture(s)
	f.m.Start()
	f.advance(10)

	assert.Equal(t, 0, f.hooks.bells)
	assert.Equal(t, models.Break, f.m.Status())
	assert.Len(t, f.db.history, 1)
}

func TestBellStartsMicroBreak(t *testing.T) {
	s := smallSettings()
	s.MinBellIntervalSeconds = 4
	s.MaxBellIntervalSeconds = 4

	f := newFixture(s)
	f.m.Start()
	f.advance(4)

	assert.Equal(t, 1, f.hooks.bells)
	assert.Equal(t, 1, f.hooks.microStart)
	assert.True(t, f.m.MicroBreak())
	assert.Equal(t, 4, f.m.Snapshot().BellSecondsRemaining, "a new bell is drawn")
	assert.Equal(t, models.Running, f.m.Status())

	require.Len(t, f.sched.calls, 1)
	assert.Equal(t, 3*time.Second, f.sched.calls[0].after)

	f.sched.calls[0].fn()
	assert.False(t, f.m.MicroBreak())
	assert.Equal(t, 1, f.hooks.microEnd)

	// a stale clear is harmless
	f.m.EndMicroBreak()
	assert.Equal(t, 1, f.hooks.microEnd)
}

func TestOverlappingMicroBreaks(t *testing.T) {
	s := smallSettings()
	s.MinBellIntervalSeconds = 2
	s.MaxBellIntervalSeconds = 2
	s.MicroBreakSeconds = 10

	f := newFixture(s)
	f.m.Start()
	f.advance(4)

	require.Equal(t, 2, f.hooks.bells)
	require.Len(t, f.sched.calls, 2)
	assert.True(t, f.sched.calls[0].cancelled)

	// the first clear was already on its way when the second bell rang
	f.sched.calls[0].fn()
	assert.True(t, f.m.MicroBreak())
	assert.Equal(t, 0, f.hooks.microEnd)
	assert.False(t, f.sched.calls[1].cancelled)

	f.sched.calls[1].fn()
	assert.False(t, f.m.MicroBreak())
	assert.Equal(t, 1, f.hooks.microEnd)
}

func TestResetCancelsMicroBreak(t *testing.T) {
	s := smallSettings()
	s.MinBellIntervalSeconds = 2
	s.MaxBellIntervalSeconds = 2

	f := newFixture(s)
	f.m.Start()
	f.advance(2)

	require.True(t, f.m.MicroBreak())
	require.Len(t, f.sched.calls, 1)

	f.m.Reset()

	assert.True(t, f.sched.calls[0].cancelled)
	assert.False(t, f.m.MicroBreak())
	assert.Equal(t, 1, f.hooks.microEnd)

	snap := f.m.Snapshot()
	assert.Equal(t, models.Idle, snap.Status)
	assert.Equal(t, s.FocusDurationSeconds, snap.SessionSecondsRemaining)
	assert.Equal(t, 0, snap.BellSecondsRemaining)
}

func TestStartTransitions(t *testing.T) {
	testCases := []struct {
		from models.Status
		want models.Status
	}{
		{models.Idle, models.Running},
		{models.Finished, models.Running},
		{models.Paused, models.Running},
		{models.BreakPaused, models.Break},
		{models.Running, models.Running},
		{models.Break, models.Break},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from), func(t *testing.T) {
			f := newFixture(smallSettings())
			f.m.snap.Status = tc.from
			f.m.snap.SessionSecondsRemaining = 7
			f.m.snap.BellSecondsRemaining = 3

			f.m.Start()

			assert.Equal(t, tc.want, f.m.Status())

			if tc.from == models.Idle || tc.from == models.Finished {
				assert.Equal(t, 60, f.m.Snapshot().SessionSecondsRemaining)
			} else {
				assert.Equal(t, 7, f.m.Snapshot().SessionSecondsRemaining)
				assert.Equal(t, 3, f.m.Snapshot().BellSecondsRemaining)
			}
		})
	}
}

func TestPauseTransitions(t *testing.T) {
	testCases := []struct {
		from models.Status
		want models.Status
	}{
		{models.Running, models.Paused},
		{models.Break, models.BreakPaused},
		{models.Idle, models.Idle},
		{models.Paused, models.Paused},
		{models.BreakPaused, models.BreakPaused},
		{models.Finished, models.Finished},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from), func(t *testing.T) {
			f := newFixture(smallSettings())
			f.m.snap.Status = tc.from

			f.m.Pause()

			assert.Equal(t, tc.want, f.m.Status())
		})
	}
}

func TestTickIsNoopUnlessCounting(t *testing.T) {
	for _, status := range []models.Status{
		models.Idle,
		models.Paused,
		models.BreakPaused,
		models.Finished,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(smallSettings())
			f.m.snap.Status = status
			f.m.snap.SessionSecondsRemaining = 9
			f.m.snap.BellSecondsRemaining = 1

			f.advance(5)

			assert.Equal(t, 9, f.m.Snapshot().SessionSecondsRemaining)
			assert.Equal(t, 1, f.m.Snapshot().BellSecondsRemaining)
			assert.Zero(t, f.hooks.ticks)
			assert.Zero(t, f.db.saves)
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(smallSettings())

	s := smallSettings()
	s.FocusDurationSeconds = 1500
	f.m.UpdateSettings(s)

	assert.Equal(t, 1500, f.m.Snapshot().SessionSecondsRemaining)

	f.m.Start()
	f.advance(10)

	s.FocusDurationSeconds = 30
	f.m.UpdateSettings(s)

	assert.Equal(t, 1490, f.m.Snapshot().SessionSecondsRemaining)
	assert.Equal(t, 30, f.m.Settings().FocusDurationSeconds)

	f.m.Pause()
	f.m.UpdateSettings(smallSettings())

	assert.Equal(t, 1490, f.m.Snapshot().SessionSecondsRemaining)
}

func TestEveryMutationIsPersisted(t *testing.T) {
	f := newFixture(smallSettings())

	steps := []func(){
		f.m.Start,
		func() { f.advance(1) },
		func() { f.m.SelectTag("2") },
		f.m.Pause,
		f.m.Start,
		f.m.Reset,
		func() { f.m.UpdateSettings(smallSettings()) },
	}

	for i, step := range steps {
		saves := f.db.saves

		step()

		assert.Equal(t, saves+1, f.db.saves, "step %d", i)
	}

	var state models.PersistedState

	require.NoError(t, json.Unmarshal(f.db.snapshot, &state))
	assert.Equal(t, f.m.Snapshot(), state.Snapshot)
	assert.Equal(t, f.clock.t.UnixMilli(), state.LastPersistedAt)
	assert.Equal(t, "2", state.SelectedTagID)
}

func TestPersistenceFailureDoesNotStopTimer(t *testing.T) {
	s := smallSettings()
	s.FocusDurationSeconds = 3

	f := newFixture(s)
	f.db.err = errors.New("disk full")

	f.m.Start()
	f.advance(3)

	assert.Equal(t, models.Break, f.m.Status())
	assert.Empty(t, f.db.history)
}

func TestRestoredRunningSessionIsRecorded(t *testing.T) {
	db := &memStore{}

	r := Restored{
		Settings: smallSettings(),
		Snapshot: models.Snapshot{
			Status:                  models.Running,
			SelectedTagID:           "gone",
			SessionSecondsRemaining: 2,
			BellSecondsRemaining:    5,
		},
		Found: true,
	}

	m := NewMachine(db, r, models.DefaultTags(), WithClock(func() time.Time {
		return epoch
	}))

	m.Tick()
	m.Tick()

	require.Len(t, db.history, 1)
	assert.Equal(t, models.Uncategorized, db.history[0].TagName)
	assert.Equal(t, "gone", db.history[0].TagID)
}

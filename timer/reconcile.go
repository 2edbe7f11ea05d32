package timer

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// BellRearmSeconds is the bell countdown given to a running session whose
// bell came due while the process was not running.
const BellRearmSeconds = 5

// Restored is the state the timer starts from.
type Restored struct {
	Settings models.Settings
	Snapshot models.Snapshot
	// Found is false when there was no usable persisted state.
	Found bool
	// Expired reports that the session ran out while the process was not
	// running. No history record is written for it.
	Expired bool
}

func initialState(defaults models.Settings) Restored {
	return Restored{
		Settings: defaults,
		Snapshot: models.Snapshot{
			Status:                  models.Idle,
			SessionSecondsRemaining: defaults.FocusDurationSeconds,
		},
	}
}

// Reconcile rebuilds the timer state from the last persisted snapshot,
// applying the wall-clock time that passed since it was written.
func Reconcile(raw []byte, now time.Time, defaults models.Settings) Restored {
	if len(raw) == 0 {
		return initialState(defaults)
	}

	state := models.PersistedState{
		Settings: defaults,
	}

	err := json.Unmarshal(raw, &state)
	if err != nil {
		slog.Warn("discarding corrupt timer state", slog.Any("error", err))

		return initialState(defaults)
	}

	r := Restored{
		Settings: state.Settings.MergeDefaults(defaults),
		Snapshot: state.Snapshot,
		Found:    true,
	}

	snap := &r.Snapshot

	if !snap.Status.Valid() {
		snap.Status = models.Idle
	}

	snap.SessionSecondsRemaining = max(snap.SessionSecondsRemaining, 0)
	snap.BellSecondsRemaining = max(snap.BellSecondsRemaining, 0)

	if !snap.Status.Counting() {
		return r
	}

	elapsed := max((now.UnixMilli()-snap.LastPersistedAt)/1000, 0)

	snap.SessionSecondsRemaining -= int(elapsed)

	if snap.Status == models.Running {
		snap.BellSecondsRemaining -= int(elapsed)
		if snap.BellSecondsRemaining <= 0 {
			snap.BellSecondsRemaining = BellRearmSeconds
		}
	}

	if snap.SessionSecondsRemaining <= 0 {
		slog.Info(
			"session expired while away",
			slog.String("status", string(snap.Status)),
			slog.Int64("elapsed_seconds", elapsed),
		)

		snap.Status = models.Finished
		snap.SessionSecondsRemaining = 0
		snap.BellSecondsRemaining = 0
		r.Expired = true

		return r
	}

	slog.Info(
		"resumed timer",
		slog.String("status", string(snap.Status)),
		slog.Int64("elapsed_seconds", elapsed),
		slog.Int("session_seconds_remaining", snap.SessionSecondsRemaining),
	)

	return r
}

// applySettings merges s with the defaults and restarts an idle countdown
// with the new focus duration.
func applySettings(snap *models.Snapshot, s models.Settings) models.Settings {
	s = s.MergeDefaults(models.DefaultSettings())

	if snap.Status == models.Idle {
		snap.SessionSecondsRemaining = s.FocusDurationSeconds
	}

	return s
}

// WithSettings returns r running with s instead of the persisted settings.
func (r Restored) WithSettings(s models.Settings) Restored {
	r.Settings = applySettings(&r.Snapshot, s)
	return r
}

// Package models defines the data shared between the timer, the store and
// the presentation layers
package models

import (
	"encoding/json"
	"time"
)

// Status is the state of the focus timer.
type Status string

const (
	Idle        Status = "idle"
	Running     Status = "running"
	Paused      Status = "paused"
	Break       Status = "break"
	BreakPaused Status = "break_paused"
	Finished    Status = "finished"
)

// Uncategorized is the tag name recorded when the selected tag no longer
// exists.
const Uncategorized = "uncategorized"

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case Idle, Running, Paused, Break, BreakPaused, Finished:
		return true
	}

	return false
}

// Counting reports whether the session countdown advances in this status.
func (s Status) Counting() bool {
	return s == Running || s == Break
}

// Label is the human readable form of the status.
func (s Status) Label() string {
	switch s {
	case Running:
		return "Focusing"
	case Paused:
		return "Paused"
	case Break:
		return "Break"
	case BreakPaused:
		return "Break paused"
	case Finished:
		return "Finished"
	default:
		return "Ready"
	}
}

// UnmarshalJSON decodes unknown statuses as Idle.
func (s *Status) UnmarshalJSON(b []byte) error {
	var str string

	err := json.Unmarshal(b, &str)
	if err != nil {
		return err
	}

	*s = Status(str)
	if !s.Valid() {
		*s = Idle
	}

	return nil
}

// Settings holds the timer durations, all in seconds.
type Settings struct {
	FocusDurationSeconds     int  `json:"focusDurationSeconds"`
	MinBellIntervalSeconds   int  `json:"minBellIntervalSeconds"`
	MaxBellIntervalSeconds   int  `json:"maxBellIntervalSeconds"`
	MicroBreakSeconds        int  `json:"microBreakSeconds"`
	LongBreakDurationSeconds int  `json:"longBreakDurationSeconds"`
	ShowBreakCountdown       bool `json:"showBreakCountdown"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		FocusDurationSeconds:     90 * 60,
		MinBellIntervalSeconds:   2 * 60,
		MaxBellIntervalSeconds:   5 * 60,
		MicroBreakSeconds:        10,
		LongBreakDurationSeconds: 20 * 60,
		ShowBreakCountdown:       true,
	}
}

// MergeDefaults fills zero-valued durations from defaults.
func (s Settings) MergeDefaults(defaults Settings) Settings {
	if s.FocusDurationSeconds <= 0 {
		s.FocusDurationSeconds = defaults.FocusDurationSeconds
	}

	if s.MinBellIntervalSeconds <= 0 {
		s.MinBellIntervalSeconds = defaults.MinBellIntervalSeconds
	}

	if s.MaxBellIntervalSeconds <= 0 {
		s.MaxBellIntervalSeconds = defaults.MaxBellIntervalSeconds
	}

	if s.MicroBreakSeconds <= 0 {
		s.MicroBreakSeconds = defaults.MicroBreakSeconds
	}

	if s.LongBreakDurationSeconds <= 0 {
		s.LongBreakDurationSeconds = defaults.LongBreakDurationSeconds
	}

	return s
}

// Snapshot is the live timer state.
type Snapshot struct {
	Status                  Status `json:"status"`
	SelectedTagID           string `json:"selectedTagId"`
	SessionSecondsRemaining int    `json:"sessionSecondsRemaining"`
	BellSecondsRemaining    int    `json:"bellSecondsRemaining"`
	// LastPersistedAt is the wall-clock time of the last write in Unix
	// milliseconds.
	LastPersistedAt int64 `json:"lastPersistedAtEpochMs"`
}

// PersistedState is the record written to the store after every mutation.
type PersistedState struct {
	Settings Settings `json:"settings"`
	Snapshot
}

// FocusRecord is a completed focus session. Times are Unix milliseconds.
type FocusRecord struct {
	ID              string `json:"id"`
	TagID           string `json:"tagId"`
	TagName         string `json:"tagName"`
	StartTime       int64  `json:"startTime"`
	EndTime         int64  `json:"endTime"`
	DurationSeconds int    `json:"durationSeconds"`
}

// Start returns the start time of the record.
func (r FocusRecord) Start() time.Time {
	return time.UnixMilli(r.StartTime)
}

// End returns the end time of the record.
func (r FocusRecord) End() time.Time {
	return time.UnixMilli(r.EndTime)
}

// Tag is an activity category.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultTags is the catalog used when no tags have been saved.
func DefaultTags() []Tag {
	return []Tag{
		{ID: "1", Name: "Work", Color: "#6366f1"},
		{ID: "2", Name: "Study", Color: "#10b981"},
		{ID: "3", Name: "Reading", Color: "#f59e0b"},
		{ID: "4", Name: "Writing", Color: "#ef4444"},
	}
}

// FindTag returns the tag with the given id.
func FindTag(tags []Tag, id string) (Tag, bool) {
	for _, t := range tags {
		if t.ID == id {
			return t, true
		}
	}

	return Tag{}, false
}

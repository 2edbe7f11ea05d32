package notify

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/timer"
)

// Status is the content of the status file.
type Status struct {
	UpdatedAt               time.Time     `json:"updated_at"`
	Status                  models.Status `json:"status"`
	Tag                     string        `json:"tag"`
	SessionSecondsRemaining int           `json:"session_seconds_remaining"`
	BellSecondsRemaining    int           `json:"bell_seconds_remaining"`
}

// Remaining returns the session seconds left at now, counting the time since
// the file was written when the timer is counting down.
func (s *Status) Remaining(now time.Time) int {
	if !s.Status.Counting() {
		return s.SessionSecondsRemaining
	}

	elapsed := int(now.Sub(s.UpdatedAt) / time.Second)

	return max(s.SessionSecondsRemaining-max(elapsed, 0), 0)
}

// StatusWriter keeps the status file in sync with the timer so that other
// processes can report on it.
type StatusWriter struct {
	timer.NopHooks

	path string
	now  func() time.Time

	mu     sync.Mutex
	status Status
}

// NewStatusWriter returns a writer for path starting from snap.
func NewStatusWriter(path, tag string, snap models.Snapshot) *StatusWriter {
	return &StatusWriter{
		path: path,
		now:  time.Now,
		status: Status{
			Status:                  snap.Status,
			Tag:                     tag,
			SessionSecondsRemaining: snap.SessionSecondsRemaining,
			BellSecondsRemaining:    snap.BellSecondsRemaining,
		},
	}
}

func (w *StatusWriter) OnStatusChanged(s models.Status) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.Status = s
	w.write()
}

func (w *StatusWriter) OnTick(session, bell int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.SessionSecondsRemaining = session
	w.status.BellSecondsRemaining = bell
	w.write()
}

// SetTag changes the tag name reported in the file.
func (w *StatusWriter) SetTag(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.Tag = name
	w.write()
}

// Write saves the current status to the file.
func (w *StatusWriter) Write() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.save()
}

func (w *StatusWriter) write() {
	err := w.save()
	if err != nil {
		slog.Error("unable to write status file", slog.Any("error", err))
	}
}

func (w *StatusWriter) save() (err error) {
	w.status.UpdatedAt = w.now()

	b, err := json.Marshal(w.status)
	if err != nil {
		return err
	}

	statusFile, err := os.Create(w.path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// Remove deletes the status file.
func (w *StatusWriter) Remove() error {
	err := os.Remove(w.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// ReadStatus reads the status file at path. A missing file yields nil.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadStatus.Wrap(err)
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	return &s, nil
}

// FormatStatus renders s as a single line, e.g. "[Focusing]: 42:10 (bell in
// 03:12) >>> Work".
func FormatStatus(s *Status, now time.Time) string {
	label := "[" + s.Status.Label() + "]"

	switch s.Status {
	case models.Running:
		label = ui.Green(label)
	case models.Break, models.BreakPaused:
		label = ui.Blue(label)
	default:
		label = ui.Yellow(label)
	}

	text := fmt.Sprintf("%s: %s", label, timeutil.Clock(s.Remaining(now)))

	if s.Status == models.Running {
		elapsed := max(int(now.Sub(s.UpdatedAt)/time.Second), 0)
		bell := max(s.BellSecondsRemaining-elapsed, 0)
		text += fmt.Sprintf(" (bell in %s)", timeutil.Clock(bell))
	}

	if s.Tag != "" {
		text += " >>> " + s.Tag
	}

	return text
}

// ReportStatus prints the status of the running timer. Nothing is printed
// when no status file exists.
func ReportStatus(path string, now time.Time) error {
	s, err := ReadStatus(path)
	if err != nil || s == nil {
		return err
	}

	pterm.Println(FormatStatus(s, now))

	return nil
}

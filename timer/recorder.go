package timer

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// HistoryAppender persists completed focus sessions.
type HistoryAppender interface {
	AppendHistory(r models.FocusRecord) error
}

// Recorder turns completed focus sessions into history records.
type Recorder struct {
	db    HistoryAppender
	newID func() string
}

// NewRecorder returns a recorder that appends to db.
func NewRecorder(db HistoryAppender) *Recorder {
	return &Recorder{
		db:    db,
		newID: uuid.NewString,
	}
}

// Record appends a record for a focus session of settings.FocusDurationSeconds
// that completed at completedAt. The tag name is captured from tags so later
// edits to the catalog leave the record untouched.
func (r *Recorder) Record(
	settings models.Settings,
	tagID string,
	tags []models.Tag,
	completedAt time.Time,
) models.FocusRecord {
	name := models.Uncategorized
	if tag, ok := models.FindTag(tags, tagID); ok {
		name = tag.Name
	}

	end := completedAt.UnixMilli()

	rec := models.FocusRecord{
		ID:              r.newID(),
		TagID:           tagID,
		TagName:         name,
		StartTime:       end - int64(settings.FocusDurationSeconds)*1000,
		EndTime:         end,
		DurationSeconds: settings.FocusDurationSeconds,
	}

	if r.db == nil {
		return rec
	}

	err := r.db.AppendHistory(rec)
	if err != nil {
		slog.Error(
			"unable to save focus session",
			slog.String("id", rec.ID),
			slog.Any("error", err),
		)

		return rec
	}

	slog.Info(
		"focus session recorded",
		slog.String("id", rec.ID),
		slog.String("tag", rec.TagName),
		slog.Int("duration_seconds", rec.DurationSeconds),
	)

	return rec
}

package timer

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// StateLoader reads the persisted timer state and tag catalog.
type StateLoader interface {
	LoadSnapshot() ([]byte, error)
	LoadTags() ([]models.Tag, error)
}

// Load restores the timer state and the tag catalog from db. Read failures
// fall back to the defaults so that a timer can always be shown.
func Load(
	db StateLoader,
	now time.Time,
	defaults models.Settings,
) (Restored, []models.Tag) {
	raw, err := db.LoadSnapshot()
	if err != nil {
		slog.Warn("unable to read timer state", slog.Any("error", err))

		raw = nil
	}

	r := Reconcile(raw, now, defaults)

	tags, err := db.LoadTags()
	if err != nil {
		slog.Warn("unable to read tags", slog.Any("error", err))

		tags = nil
	}

	if tags == nil {
		tags = models.DefaultTags()
	}

	if _, ok := models.FindTag(tags, r.Snapshot.SelectedTagID); !ok &&
		len(tags) > 0 {
		r.Snapshot.SelectedTagID = tags[0].ID
	}

	return r, tags
}

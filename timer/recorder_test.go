package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusflow/internal/models"
)

func TestRecorder(t *testing.T) {
	testCases := []struct {
		name     string
		tagID    string
		wantName string
	}{
		{"known tag", "2", "Study"},
		{"deleted tag", "99", models.Uncategorized},
		{"no tag", "", models.Uncategorized},
	}

	completedAt := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)

	settings := models.DefaultSettings()
	settings.FocusDurationSeconds = 1500

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := &memStore{}
			r := NewRecorder(db)

			got := r.Record(settings, tc.tagID, models.DefaultTags(), completedAt)

			require.Len(t, db.history, 1)
			assert.Equal(t, got, db.history[0])
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tc.tagID, got.TagID)
			assert.Equal(t, tc.wantName, got.TagName)
			assert.Equal(t, 1500, got.DurationSeconds)
			assert.Equal(t, completedAt.UnixMilli(), got.EndTime)
			assert.Equal(
				t,
				completedAt.Add(-25*time.Minute).UnixMilli(),
				got.StartTime,
			)
		})
	}
}

func TestRecorderUniqueIDs(t *testing.T) {
	db := &memStore{}
	r := NewRecorder(db)

	for range 3 {
		r.Record(models.DefaultSettings(), "1", nil, epoch)
	}

	ids := map[string]bool{}
	for _, rec := range db.history {
		ids[rec.ID] = true
	}

	assert.Len(t, ids, 3)
}

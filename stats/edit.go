package stats

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// Retag moves records to tag after confirmation. Records keep their ids and
// times.
func Retag(
	w io.Writer,
	r io.Reader,
	db HistoryStore,
	records []models.FocusRecord,
	tags []models.Tag,
	tag models.Tag,
) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	updated := make([]models.FocusRecord, len(records))

	for i := range records {
		updated[i] = records[i]
		updated[i].TagID = tag.ID
		updated[i].TagName = tag.Name
	}

	printRecordsTable(w, updated, tags)

	err := confirm(w, r, "The sessions above will be updated. Press ENTER to proceed")
	if err != nil {
		return err
	}

	return db.ReplaceHistory(updated)
}

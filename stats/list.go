package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
	"github.com/ayoisaiah/focusflow/internal/ui"
)

const (
	recordTimeLayout = "January 02, 2006 03:04 PM"
	noRecordsMsg     = "No focus sessions found for the specified filters"
)

// HistoryStore is the part of the store the history commands change.
type HistoryStore interface {
	DeleteHistory(ids []string) error
	ReplaceHistory(records []models.FocusRecord) error
}

func printRecordsTable(
	w io.Writer,
	records []models.FocusRecord,
	tags []models.Tag,
) {
	data := [][]string{
		{"#", "START DATE", "END DATE", "DURATION", "TAG"},
	}

	for i := range records {
		r := &records[i]

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			r.Start().Format(recordTimeLayout),
			r.End().Format(recordTimeLayout),
			timeutil.HoursAndMins(r.DurationSeconds),
			ui.Hex(tagColor(tags, r.TagName), r.TagName),
		})
	}

	ui.PrintTable(data, w)
}

// List prints a table of records.
func List(w io.Writer, records []models.FocusRecord, tags []models.Tag) {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	printRecordsTable(w, records, tags)
}

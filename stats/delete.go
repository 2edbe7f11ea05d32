package stats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// confirm blocks until the user presses ENTER. Input that ends before a
// newline is read counts as a refusal.
func confirm(w io.Writer, r io.Reader, msg string) error {
	fmt.Fprint(w, pterm.Warning.Sprint(msg))

	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		fmt.Fprintln(w)
		return errNotConfirmed.Wrap(err)
	}

	return nil
}

func recordIDs(records []models.FocusRecord) []string {
	ids := make([]string, 0, len(records))

	for i := range records {
		ids = append(ids, records[i].ID)
	}

	return ids
}

// Delete shows the records and removes them permanently once the user
// confirms. Interrupting the prompt leaves the history untouched.
func Delete(
	w io.Writer,
	r io.Reader,
	db HistoryStore,
	records []models.FocusRecord,
	tags []models.Tag,
) error {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(w, records, tags)

	err := confirm(
		w,
		r,
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)
	if err != nil {
		return err
	}

	return db.DeleteHistory(recordIDs(records))
}

// Package report prints errors to the terminal
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/apperr"
)

// Error prints err. The cause of an application error is printed on its own
// line.
func Error(err error) {
	var appErr *apperr.Error

	if errors.As(err, &appErr) && appErr.Cause != nil {
		pterm.Error.Println(appErr.Message)
		pterm.Println(pterm.Gray(appErr.Cause.Error()))

		return
	}

	pterm.Error.Println(err)
}

// Quit prints err and exits with status 1.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}

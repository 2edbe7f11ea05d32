package store

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errFocusRunning = &apperr.Error{
		Message: "is FocusFlow already running? Only one instance can be active at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s (expected bolt or sqlite)",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the data store",
	}

	errCorruptRecord = &apperr.Error{
		Message: "corrupt history record %s",
	}
)

package notify

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errSessionCmd = &apperr.Error{
		Message: "session command %q failed",
	}

	errSpeakerClosed = &apperr.Error{
		Message: "speaker is closed",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read the timer status",
	}
)

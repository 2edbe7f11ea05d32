package stats

import "github.com/ayoisaiah/focusflow/internal/apperr"

var errNotConfirmed = &apperr.Error{
	Message: "no confirmation received, nothing was changed",
}

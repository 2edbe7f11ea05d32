package app

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errUnknownTag = &apperr.Error{
		Message: "no tag named %q",
	}

	errTagExists = &apperr.Error{
		Message: "a tag named %q already exists",
	}

	errInvalidColor = &apperr.Error{
		Message: "invalid colour %q: expected #rrggbb",
	}

	errTagNameRequired = &apperr.Error{
		Message: "a tag name is required",
	}

	errInitPaths = &apperr.Error{
		Message: "unable to set up the FocusFlow directories",
	}
)

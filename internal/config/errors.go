package config

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidConfigDuration = &apperr.Error{
		Message: "invalid duration for %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration for --%s",
	}

	errBellRange = &apperr.Error{
		Message: "bell min interval (%v) must not exceed the max interval (%v)",
	}

	errMicroBreakTooLong = &apperr.Error{
		Message: "micro-break (%v) must be shorter than the bell min interval (%v)",
	}

	errInvalidDriver = &apperr.Error{
		Message: "unknown storage driver: %q (expected bolt or sqlite)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q (expected debug, info, warn or error)",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
)

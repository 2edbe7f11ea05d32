package config

import (
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/focusflow/store"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	validDrivers   = []string{store.DriverBolt, store.DriverSQLite}
	validLogLevels = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration("focus", c.Focus.Duration); err != nil {
		return err
	}

	if err := c.validateBell(); err != nil {
		return err
	}

	if c.Break.ShowCountdown {
		if err := validateDuration("break", c.Break.Duration); err != nil {
			return err
		}
	}

	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return errInvalidDriver.Fmt(c.Storage.Driver)
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(validLogLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func validateDuration(name string, d time.Duration) error {
	if d < minSessionDuration || d > maxSessionDuration {
		return errInvalidDuration.Fmt(name, minSessionDuration, maxSessionDuration)
	}

	return nil
}

// validateBell checks the bell interval range and the micro-break that
// follows each bell.
func (c *Config) validateBell() error {
	if err := validateDuration("bell min interval", c.Bell.MinInterval); err != nil {
		return err
	}

	if err := validateDuration("bell max interval", c.Bell.MaxInterval); err != nil {
		return err
	}

	if c.Bell.MinInterval > c.Bell.MaxInterval {
		return errBellRange.Fmt(c.Bell.MinInterval, c.Bell.MaxInterval)
	}

	if err := validateDuration("micro-break", c.Bell.MicroBreak); err != nil {
		return err
	}

	if c.Bell.MicroBreak >= c.Bell.MinInterval {
		return errMicroBreakTooLong.Fmt(c.Bell.MicroBreak, c.Bell.MinInterval)
	}

	return nil
}

// Package config loads FocusFlow settings from the config file, command-line
// flags and the first-run prompt
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/store"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus         FocusConfig
		Bell          BellConfig
		Break         BreakConfig
		Notifications NotificationConfig
		Sound         SoundConfig
		Settings      SettingsConfig
		Display       DisplayConfig
		Storage       StorageConfig
		Log           LogConfig
		CLI           CLIConfig
	}

	// FocusConfig holds the focus session settings.
	FocusConfig struct {
		Duration time.Duration
	}

	// BellConfig holds the mindfulness bell settings.
	BellConfig struct {
		MinInterval time.Duration
		MaxInterval time.Duration
		MicroBreak  time.Duration
	}

	// BreakConfig holds the rest period settings.
	BreakConfig struct {
		Duration      time.Duration
		ShowCountdown bool
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
		Bell    bool
	}

	// SoundConfig holds sound settings.
	SoundConfig struct {
		Enabled bool
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd            string
		TwentyFourHour bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool
	}

	// StorageConfig selects the database driver.
	StorageConfig struct {
		Driver string
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string
	}

	// CLIConfig holds options that only exist on the command line.
	CLIConfig struct {
		// Tag is the name or id of the tag to select.
		Tag      string
		Headless bool

		// overrides are re-applied on top of the file when it is reloaded.
		overrides *CLIOptions
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	s := models.DefaultSettings()

	return &Config{
		Focus: FocusConfig{
			Duration: seconds(s.FocusDurationSeconds),
		},
		Bell: BellConfig{
			MinInterval: seconds(s.MinBellIntervalSeconds),
			MaxInterval: seconds(s.MaxBellIntervalSeconds),
			MicroBreak:  seconds(s.MicroBreakSeconds),
		},
		Break: BreakConfig{
			Duration:      seconds(s.LongBreakDurationSeconds),
			ShowCountdown: s.ShowBreakCountdown,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Bell:    true,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Storage: StorageConfig{
			Driver: store.DriverBolt,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// TimerSettings converts the configuration to the settings the timer runs
// with.
func (c *Config) TimerSettings() models.Settings {
	return models.Settings{
		FocusDurationSeconds:     int(c.Focus.Duration / time.Second),
		MinBellIntervalSeconds:   int(c.Bell.MinInterval / time.Second),
		MaxBellIntervalSeconds:   int(c.Bell.MaxInterval / time.Second),
		MicroBreakSeconds:        int(c.Bell.MicroBreak / time.Second),
		LongBreakDurationSeconds: int(c.Break.Duration / time.Second),
		ShowBreakCountdown:       c.Break.ShowCountdown,
	}
}

// New creates a new Config with default values, applies opts in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Defaults()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

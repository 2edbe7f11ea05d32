package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyFocusDuration        = "focus.duration"
	keyBellMinInterval      = "bell.min_interval"
	keyBellMaxInterval      = "bell.max_interval"
	keyBellMicroBreak       = "bell.micro_break"
	keyBreakDuration        = "break.duration"
	keyBreakShowCountdown   = "break.show_countdown"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsBell    = "notifications.bell"
	keySoundEnabled         = "sound.enabled"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyStorageDriver        = "storage.driver"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with the current values when it
// does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func newViper(configPath string, c *Config) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setupViper(v, c)

	return v
}

// setupViper registers the values already in c as defaults, so that prompt
// answers end up in a freshly written file.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyFocusDuration, c.Focus.Duration.String())
	v.SetDefault(keyBellMinInterval, c.Bell.MinInterval.String())
	v.SetDefault(keyBellMaxInterval, c.Bell.MaxInterval.String())
	v.SetDefault(keyBellMicroBreak, c.Bell.MicroBreak.String())
	v.SetDefault(keyBreakDuration, c.Break.Duration.String())
	v.SetDefault(keyBreakShowCountdown, c.Break.ShowCountdown)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyNotificationsBell, c.Notifications.Bell)
	v.SetDefault(keySoundEnabled, c.Sound.Enabled)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyTwentyFourHour, c.Settings.TwentyFourHour)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyStorageDriver, c.Storage.Driver)
	v.SetDefault(keyLogLevel, c.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := loadDurations(v, c); err != nil {
		return err
	}

	c.Break.ShowCountdown = v.GetBool(keyBreakShowCountdown)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Notifications.Bell = v.GetBool(keyNotificationsBell)
	c.Sound.Enabled = v.GetBool(keySoundEnabled)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Settings.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Storage.Driver = v.GetString(keyStorageDriver)
	c.Log.Level = v.GetString(keyLogLevel)

	return nil
}

// loadDurations handles parsing duration strings from Viper.
func loadDurations(v *viper.Viper, c *Config) error {
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{keyFocusDuration, &c.Focus.Duration},
		{keyBellMinInterval, &c.Bell.MinInterval},
		{keyBellMaxInterval, &c.Bell.MaxInterval},
		{keyBellMicroBreak, &c.Bell.MicroBreak},
		{keyBreakDuration, &c.Break.Duration},
	}

	for _, d := range durations {
		dur, err := parseDuration(v.GetString(d.key))
		if err != nil {
			return errInvalidConfigDuration.Fmt(d.key).Wrap(err)
		}

		*d.dst = dur
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers of minutes.
func parseDuration(s string) (time.Duration, error) {
	// Try parsing as duration string first
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	// Try parsing as minutes in case duration unit is absent
	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %q", s)
	}

	return mins, nil
}

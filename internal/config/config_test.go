package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
)

func cliContext(t *testing.T, flags map[string]string, bools ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("focusflow", flag.ContinueOnError)

	for k, v := range flags {
		_ = set.String(k, "", "")
		require.NoError(t, set.Set(k, v))
	}

	for _, b := range bools {
		_ = set.Bool(b, false, "")
		require.NoError(t, set.Set(b, "true"))
	}

	return cli.NewContext(&cli.App{}, set, nil)
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), cfg)
	assert.Equal(t, models.DefaultSettings(), cfg.TimerSettings())

	_, err = os.Stat(configPath)
	require.NoError(t, err, "the default config is written on first run")

	// a second load reads the written file back
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("testdata", "modified_config.yml"))
	require.NoError(t, err)

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, b, 0o600))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Focus: config.FocusConfig{Duration: 50 * time.Minute},
		Bell: config.BellConfig{
			MinInterval: 3 * time.Minute,
			MaxInterval: 8 * time.Minute,
			MicroBreak:  15 * time.Second,
		},
		Break: config.BreakConfig{
			Duration:      10 * time.Minute,
			ShowCountdown: false,
		},
		Notifications: config.NotificationConfig{Enabled: true, Bell: false},
		Sound:         config.SoundConfig{Enabled: false},
		Settings: config.SettingsConfig{
			Cmd:            "notify-send done",
			TwentyFourHour: true,
		},
		Display: config.DisplayConfig{DarkTheme: false},
		Storage: config.StorageConfig{Driver: "sqlite"},
		Log:     config.LogConfig{Level: "debug"},
	}

	assert.Equal(t, want, cfg)
}

func TestViperPartialConfigKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("focus:\n  duration: 45\n"), 0o600))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := config.Defaults()
	want.Focus.Duration = 45 * time.Minute

	assert.Equal(t, want, cfg)
}

func TestViperInvalidDuration(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("bell:\n  min_interval: soon\n"), 0o600))

	_, err := config.New(config.WithViperConfig(configPath))
	assert.ErrorContains(t, err, "invalid duration for bell.min_interval")
}

func TestCLIConfigOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	ctx := cliContext(t, map[string]string{
		"focus":       "25m",
		"bell-min":    "1m",
		"bell-max":    "2",
		"session-cmd": "echo hi",
		"tag":         " Study ",
		"storage":     "SQLite",
	}, "no-break", "mute", "headless")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, 25*time.Minute, cfg.Focus.Duration)
	assert.Equal(t, time.Minute, cfg.Bell.MinInterval)
	assert.Equal(t, 2*time.Minute, cfg.Bell.MaxInterval)
	assert.False(t, cfg.Break.ShowCountdown)
	assert.False(t, cfg.Sound.Enabled)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "echo hi", cfg.Settings.Cmd)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "Study", cfg.CLI.Tag)
	assert.True(t, cfg.CLI.Headless)
}

func TestCLIConfigInvalidDuration(t *testing.T) {
	ctx := cliContext(t, map[string]string{"break": "forever"})

	_, err := config.New(config.WithCLIConfig(ctx))
	assert.ErrorContains(t, err, "invalid duration for --break")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *config.Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(*config.Config) {},
		},
		{
			name:    "zero focus",
			modify:  func(c *config.Config) { c.Focus.Duration = 0 },
			wantErr: "focus duration must be between",
		},
		{
			name:    "focus too long",
			modify:  func(c *config.Config) { c.Focus.Duration = 13 * time.Hour },
			wantErr: "focus duration must be between",
		},
		{
			name: "inverted bell range",
			modify: func(c *config.Config) {
				c.Bell.MinInterval = 10 * time.Minute
				c.Bell.MaxInterval = 5 * time.Minute
			},
			wantErr: "must not exceed the max interval",
		},
		{
			name: "equal bell range",
			modify: func(c *config.Config) {
				c.Bell.MinInterval = 3 * time.Minute
				c.Bell.MaxInterval = 3 * time.Minute
			},
		},
		{
			name:    "micro-break as long as the bell",
			modify:  func(c *config.Config) { c.Bell.MicroBreak = 2 * time.Minute },
			wantErr: "must be shorter than the bell min interval",
		},
		{
			name:    "zero break with countdown",
			modify:  func(c *config.Config) { c.Break.Duration = 0 },
			wantErr: "break duration must be between",
		},
		{
			name: "zero break without countdown",
			modify: func(c *config.Config) {
				c.Break.Duration = 0
				c.Break.ShowCountdown = false
			},
		},
		{
			name:    "unknown driver",
			modify:  func(c *config.Config) { c.Storage.Driver = "postgres" },
			wantErr: `unknown storage driver: "postgres"`,
		},
		{
			name:    "unknown log level",
			modify:  func(c *config.Config) { c.Log.Level = "loud" },
			wantErr: `unknown log level: "loud"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Defaults()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFilter(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

	record := func(tagID, tagName string, end time.Time) models.FocusRecord {
		return models.FocusRecord{
			ID:      end.Format(time.RFC3339),
			TagID:   tagID,
			TagName: tagName,
			EndTime: end.UnixMilli(),
		}
	}

	records := []models.FocusRecord{
		record("1", "Work", now.AddDate(0, 0, -40)),
		record("2", "Study", now.AddDate(0, 0, -1)),
		record("1", "Work", now.Add(-2*time.Hour)),
		record("3", "Reading", now.Add(-time.Hour)),
	}

	testCases := []struct {
		name    string
		flags   map[string]string
		want    []int
		wantErr string
	}{
		{name: "no flags", want: []int{0, 1, 2, 3}},
		{name: "today", flags: map[string]string{"period": "today"}, want: []int{2, 3}},
		{name: "yesterday", flags: map[string]string{"period": "yesterday"}, want: []int{1}},
		{name: "7 days", flags: map[string]string{"period": "7days"}, want: []int{1, 2, 3}},
		{
			name:  "tag by name or id",
			flags: map[string]string{"tag": "work, 3"},
			want:  []int{0, 2, 3},
		},
		{
			name:  "since and until",
			flags: map[string]string{"since": "2 days ago", "until": "3 hours ago"},
			want:  []int{1},
		},
		{
			name:    "unknown period",
			flags:   map[string]string{"period": "fortnight"},
			wantErr: "valid time period",
		},
		{
			name:    "inverted range",
			flags:   map[string]string{"since": "1 hour ago", "until": "2 days ago"},
			wantErr: "start time must be earlier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := config.NewFilter(cliContext(t, tc.flags), now)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			var want []models.FocusRecord
			for _, i := range tc.want {
				want = append(want, records[i])
			}

			assert.Equal(t, want, f.Apply(records))
		})
	}
}

package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus         string
	BellMin       string
	BellMax       string
	MicroBreak    string
	Break         string
	SessionCmd    string
	Tag           string
	Storage       string
	NoBreak       bool
	DisableNotify bool
	Mute          bool
	Headless      bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:         ctx.String("focus"),
			BellMin:       ctx.String("bell-min"),
			BellMax:       ctx.String("bell-max"),
			MicroBreak:    ctx.String("micro-break"),
			Break:         ctx.String("break"),
			SessionCmd:    ctx.String("session-cmd"),
			Tag:           ctx.String("tag"),
			Storage:       ctx.String("storage"),
			NoBreak:       ctx.Bool("no-break"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
			Headless:      ctx.Bool("headless"),
		}

		if err := applyCLIOptions(c, opts); err != nil {
			return err
		}

		c.CLI.overrides = &opts

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.NoBreak {
		c.Break.ShowCountdown = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Sound.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Storage != "" {
		c.Storage.Driver = strings.ToLower(strings.TrimSpace(opts.Storage))
	}

	c.CLI.Tag = strings.TrimSpace(opts.Tag)
	c.CLI.Headless = opts.Headless

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := []struct {
		flag  string
		value string
		dst   *time.Duration
	}{
		{"focus", opts.Focus, &c.Focus.Duration},
		{"bell-min", opts.BellMin, &c.Bell.MinInterval},
		{"bell-max", opts.BellMax, &c.Bell.MaxInterval},
		{"micro-break", opts.MicroBreak, &c.Bell.MicroBreak},
		{"break", opts.Break, &c.Break.Duration},
	}

	for _, d := range durations {
		if d.value == "" {
			continue
		}

		dur, err := parseDuration(d.value)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.flag).Wrap(err)
		}

		*d.dst = dur
	}

	return nil
}

package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the reloaded configuration every time the file at
// configPath changes. Invalid edits are logged and skipped. The command-line
// only options of base are carried over.
func Watch(configPath string, base *Config, fn func(*Config)) {
	v := newViper(configPath, Defaults())

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg := Defaults()
		cfg.CLI = base.CLI

		err := loadViperConfig(v, cfg)
		if err == nil && base.CLI.overrides != nil {
			err = applyCLIOptions(cfg, *base.CLI.overrides)
		}

		if err == nil {
			err = cfg.Validate()
		}

		if err != nil {
			slog.Warn(
				"ignoring invalid config change",
				slog.String("path", e.Name),
				slog.Any("error", err),
			)

			return
		}

		slog.Info("config reloaded", slog.String("path", e.Name))

		fn(cfg)
	})

	v.WatchConfig()
}

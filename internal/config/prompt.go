package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███████╗ ██████╗  ██████╗██╗   ██╗███████╗███████╗██╗      ██████╗ ██╗    ██╗
██╔════╝██╔═══██╗██╔════╝██║   ██║██╔════╝██╔════╝██║     ██╔═══██╗██║    ██║
█████╗  ██║   ██║██║     ██║   ██║███████╗█████╗  ██║     ██║   ██║██║ █╗ ██║
██╔══╝  ██║   ██║██║     ██║   ██║╚════██║██╔══╝  ██║     ██║   ██║██║███╗██║
██║     ╚██████╔╝╚██████╗╚██████╔╝███████║██║     ███████╗╚██████╔╝╚███╔███╔╝
╚═╝      ╚═════╝  ╚═════╝ ╚═════╝ ╚══════╝╚═╝     ╚══════╝ ╚═════╝  ╚══╝╚══╝`

// bellRange is a choice of minimum and maximum bell intervals in minutes.
type bellRange struct {
	min, max int
}

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusDuration int
	BreakDuration int
	Bell          bellRange
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure FocusFlow for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'focusflow edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90).Selected(true),
					huh.NewOption("120 minutes", 120),
				).
				Value(&opts.FocusDuration),
		),
		huh.NewGroup(
			huh.NewSelect[bellRange]().
				Title("Time between mindfulness bells").
				Options(
					huh.NewOption("1 to 3 minutes", bellRange{1, 3}),
					huh.NewOption("2 to 5 minutes", bellRange{2, 5}).Selected(true),
					huh.NewOption("5 to 10 minutes", bellRange{5, 10}),
					huh.NewOption("10 to 20 minutes", bellRange{10, 20}),
				).
				Value(&opts.Bell),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Rest after a focus session").
				Options(
					huh.NewOption("No rest countdown", 0),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("20 minutes", 20).Selected(true),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.BreakDuration),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Focus.Duration = time.Duration(opts.FocusDuration) * time.Minute
	c.Bell.MinInterval = time.Duration(opts.Bell.min) * time.Minute
	c.Bell.MaxInterval = time.Duration(opts.Bell.max) * time.Minute

	if opts.BreakDuration == 0 {
		c.Break.ShowCountdown = false
		return nil
	}

	c.Break.ShowCountdown = true
	c.Break.Duration = time.Duration(opts.BreakDuration) * time.Minute

	return nil
}

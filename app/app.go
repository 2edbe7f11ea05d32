// Package app defines the focusflow command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List completed focus sessions",
		Flags: append(filterFlags(), jsonFlag),
		Subcommands: []*cli.Command{
			{
				Name:   "delete",
				Usage:  "Permanently delete the sessions that match the filters",
				Flags:  filterFlags(),
				Action: deleteHistoryAction,
			},
			{
				Name:   "edit",
				Usage:  "Move the sessions that match the filters to another tag",
				Flags:  append(filterFlags(), toTagFlag),
				Action: editHistoryAction,
			},
		},
		Action: historyAction,
	}
}

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "Manage the tags focus sessions are recorded under",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all tags",
				Flags:  []cli.Flag{jsonFlag},
				Action: tagsListAction,
			},
			{
				Name:      "add",
				Usage:     "Add a tag",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{colorFlag},
				Action:    tagsAddAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a tag. Recorded sessions keep its name",
				ArgsUsage: "<name or id>",
				Action:    tagsDeleteAction,
			},
			{
				Name:      "select",
				Usage:     "Select the tag of the next focus session",
				ArgsUsage: "<name or id>",
				Action:    tagsSelectAction,
			},
		},
		Action: tagsListAction,
	}
}

// Get retrieves the focusflow app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusflow",
		Usage: `
		FocusFlow is a focus timer for the command-line. Long focus sessions are
		punctuated by randomly timed mindfulness bells, each followed by a short
		pause, and end with a rest period.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			historyCommand(),
			{
				Name:   "reset",
				Usage:  "Reset the timer to the start of a focus session",
				Action: resetAction,
			},
			{
				Name:   "stats",
				Usage:  "Summarise your focus history",
				Flags:  append(filterFlags(), jsonFlag, serveFlag, statsPortFlag),
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			tagsCommand(),
		},
		Flags: []cli.Flag{
			focusFlag,
			bellMinFlag,
			bellMaxFlag,
			microBreakFlag,
			breakFlag,
			noBreakFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			muteFlag,
			headlessFlag,
			storageFlag,
			timerTagFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}

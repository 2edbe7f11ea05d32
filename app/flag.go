package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus session length, e.g. 90m or 90 (default: 90 minutes)",
	}

	bellMinFlag = &cli.StringFlag{
		Name:  "bell-min",
		Usage: "Shortest gap between two mindfulness bells (default: 2 minutes)",
	}

	bellMaxFlag = &cli.StringFlag{
		Name:  "bell-max",
		Usage: "Longest gap between two mindfulness bells (default: 5 minutes)",
	}

	microBreakFlag = &cli.StringFlag{
		Name:  "micro-break",
		Usage: "Length of the pause after each bell, e.g. 10s (default: 10 seconds)",
	}

	breakFlag = &cli.StringFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Rest period after a focus session (default: 20 minutes)",
	}

	noBreakFlag = &cli.BoolFlag{
		Name:  "no-break",
		Usage: "Finish right after the focus session instead of counting down a break",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each focus session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play the bell and end of session sounds",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Start the timer right away and print events instead of showing the interface",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Storage driver: bolt or sqlite (default: bolt)",
	}

	timerTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Name or id of the tag for the next focus session",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Named time range: today, yesterday, 7days, 30days, 365days or all-time",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions that ended after this date (e.g. '2 weeks ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions that ended before this date",
	}

	filterTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Comma-delimited tag names or ids to filter by",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the statistics over HTTP",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}

	toTagFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "Name or id of the tag to move the sessions to",
		Required: true,
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Tag colour as #rrggbb (default: a colour from the palette)",
	}
)

func filterFlags() []cli.Flag {
	return []cli.Flag{periodFlag, sinceFlag, untilFlag, filterTagFlag}
}

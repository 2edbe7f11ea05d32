package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/logging"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/notify"
	"github.com/ayoisaiah/focusflow/internal/pathutil"
	"github.com/ayoisaiah/focusflow/internal/static"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/stats"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
	"github.com/ayoisaiah/focusflow/tui"
)

const (
	envUpdateNotifier = "FOCUS_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envFocusNoColor   = "FOCUS_NO_COLOR"
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of FocusFlow from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/focusflow/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/focusflow/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of focusflow is available: %s at %s", version, resp.Request.URL.String())
	}
}

// loadConfig reads the configuration and starts logging with the configured
// level. The first-run prompt is only shown when prompt is set.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	if logCloser != nil {
		_ = logCloser.Close()
	}

	logCloser = logging.Init(pathutil.LogFilePath(), cfg.Log.Level)
	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func openStore(cfg *config.Config) (store.DB, error) {
	return store.Open(cfg.Storage.Driver, pathutil.DBFilePath())
}

// timerSetup is everything the timer needs before it starts running.
type timerSetup struct {
	cfg      *config.Config
	db       store.DB
	restored timer.Restored
	tags     []models.Tag
}

// prepareTimer restores the timer and applies the configured settings and
// the --tag flag to it.
func prepareTimer(ctx *cli.Context, prompt bool) (*timerSetup, error) {
	cfg, err := loadConfig(ctx, prompt)
	if err != nil {
		return nil, err
	}

	db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	restored, tags := timer.Load(db, time.Now(), cfg.TimerSettings())

	slog.Debug(
		"timer state loaded",
		slog.Bool("found", restored.Found),
		slog.Bool("expired", restored.Expired),
		slog.String("status", string(restored.Snapshot.Status)),
	)

	if restored.Expired {
		pterm.Info.Println("Your last session ended while FocusFlow was closed")
	}

	restored = restored.WithSettings(cfg.TimerSettings())

	if cfg.CLI.Tag != "" {
		t, ok := findTag(tags, cfg.CLI.Tag)
		if !ok {
			_ = db.Close()
			return nil, errUnknownTag.Fmt(cfg.CLI.Tag)
		}

		restored.Snapshot.SelectedTagID = t.ID
	}

	return &timerSetup{
		cfg:      cfg,
		db:       db,
		restored: restored,
		tags:     tags,
	}, nil
}

func tagName(tags []models.Tag, id string) string {
	if t, ok := models.FindTag(tags, id); ok {
		return t.Name
	}

	return models.Uncategorized
}

// defaultAction runs the focus timer.
func defaultAction(ctx *cli.Context) error {
	setup, err := prepareTimer(ctx, true)
	if err != nil {
		return err
	}

	defer setup.db.Close()

	cfg := setup.cfg
	snap := setup.restored.Snapshot

	iconPath, err := static.Install(pathutil.DataDir())
	if err != nil {
		slog.Warn("unable to install notification icon", slog.Any("error", err))
	}

	notifier := notify.New(notify.Options{
		SessionCmd:  cfg.Settings.Cmd,
		IconPath:    iconPath,
		Desktop:     cfg.Notifications.Enabled,
		BellDesktop: cfg.Notifications.Enabled && cfg.Notifications.Bell,
		Sound:       cfg.Sound.Enabled,
	}, snap.Status)
	defer notifier.Close()

	statusWriter := notify.NewStatusWriter(
		pathutil.StatusFilePath(),
		tagName(setup.tags, snap.SelectedTagID),
		snap,
	)

	err = statusWriter.Write()
	if err != nil {
		slog.Warn("unable to write status file", slog.Any("error", err))
	}

	defer func() {
		_ = statusWriter.Remove()
	}()

	var program *tea.Program

	hooks := timer.MultiHooks{notifier, statusWriter}

	if cfg.CLI.Headless {
		hooks = append(hooks, tui.Headless{})
	} else {
		// hooks only fire once the driver runs, after program is set
		hooks = append(hooks, tui.NewHooks(func(msg tea.Msg) {
			program.Send(msg)
		}))
	}

	m := timer.NewMachine(setup.db, setup.restored, setup.tags, timer.WithHooks(hooks))
	driver := timer.NewDriver(m)

	if !cfg.CLI.Headless {
		model := tui.New(
			driver,
			m.Settings(),
			m.Snapshot(),
			m.Tags(),
			tui.Opts{
				TwentyFourHour: cfg.Settings.TwentyFourHour,
				DarkTheme:      cfg.Display.DarkTheme,
				OnTagChange: func(t models.Tag) {
					statusWriter.SetTag(t.Name)
				},
			},
		)

		program = tea.NewProgram(model)
	}

	runCtx, cancel := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	done := make(chan struct{})

	go func() {
		defer close(done)
		driver.Run(runCtx)
	}()

	if program != nil {
		go func() {
			<-runCtx.Done()
			program.Quit()
		}()
	}

	config.Watch(pathutil.ConfigFilePath(), cfg, func(c *config.Config) {
		s := c.TimerSettings()
		driver.UpdateSettings(s)

		if program != nil {
			program.Send(tui.SettingsMsg(s))
		}
	})

	slog.InfoContext(
		ctx.Context,
		"timer started",
		slog.String("status", string(snap.Status)),
		slog.Bool("headless", cfg.CLI.Headless),
	)

	if cfg.CLI.Headless {
		driver.Start()
		<-runCtx.Done()
	} else {
		_, err = program.Run()
	}

	cancel()
	<-done

	return err
}

// statusAction prints the status of the running timer.
func statusAction(_ *cli.Context) error {
	return notify.ReportStatus(pathutil.StatusFilePath(), time.Now())
}

// resetAction returns the persisted timer to Idle.
func resetAction(ctx *cli.Context) error {
	setup, err := prepareTimer(ctx, false)
	if err != nil {
		return err
	}

	defer setup.db.Close()

	m := timer.NewMachine(setup.db, setup.restored, setup.tags)
	m.Reset()
	m.Close()

	pterm.Success.Println("Timer reset")

	return nil
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the default file on first use
	_, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// historyRecords loads the records that match the filter flags.
func historyRecords(
	ctx *cli.Context,
) (store.DB, []models.FocusRecord, []models.Tag, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, nil, err
	}

	filter, err := config.NewFilter(ctx, time.Now())
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	records, err := db.LoadHistory()
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	tags, err := db.LoadTags()
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	if tags == nil {
		tags = models.DefaultTags()
	}

	return db, filter.Apply(records), tags, nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, string(b))

	return nil
}

// historyAction prints the focus sessions that match the filters.
func historyAction(ctx *cli.Context) error {
	db, records, tags, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		if records == nil {
			records = []models.FocusRecord{}
		}

		return printJSON(records)
	}

	stats.List(config.Stdout, records, tags)

	return nil
}

// deleteHistoryAction deletes the matching sessions after confirmation.
func deleteHistoryAction(ctx *cli.Context) error {
	db, records, tags, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Delete(config.Stdout, config.Stdin, db, records, tags)
}

// editHistoryAction moves the matching sessions to another tag.
func editHistoryAction(ctx *cli.Context) error {
	db, records, tags, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	t, ok := findTag(tags, ctx.String("to"))
	if !ok {
		return errUnknownTag.Fmt(ctx.String("to"))
	}

	return stats.Retag(config.Stdout, config.Stdin, db, records, tags, t)
}

// statsAction prints, exports or serves the statistics.
func statsAction(ctx *cli.Context) error {
	db, records, tags, err := historyRecords(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("serve") {
		serveCtx, cancel := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer cancel()

		return stats.Serve(serveCtx, db, ctx.Uint("port"))
	}

	report := stats.Compute(records, tags, time.Now())

	if ctx.Bool("json") {
		b, err := report.JSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	stats.Print(config.Stdout, report)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/focusflow/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FOCUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envFocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return errInitPaths.Wrap(err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focusflow")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}

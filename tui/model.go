// Package tui renders the focus timer in the terminal
package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusflow/internal/models"
)

// Controller is the part of the timer driver the interface sends commands
// to. Its methods must not block.
type Controller interface {
	Start()
	Pause()
	Reset()
	SelectTag(id string)
}

// Opts configures the model.
type Opts struct {
	TwentyFourHour bool
	DarkTheme      bool
	// OnTagChange is called with the newly selected tag.
	OnTagChange func(models.Tag)
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	ctrl     Controller
	opts     Opts
	style    style
	help     help.Model
	progress progress.Model
	now      func() time.Time

	settings   models.Settings
	snap       models.Snapshot
	tags       []models.Tag
	microBreak bool
	bells      int
	sessions   int
}

// New returns a model showing the given initial state. The state must be
// read before the driver starts so that hook messages arrive in order.
func New(
	ctrl Controller,
	settings models.Settings,
	snap models.Snapshot,
	tags []models.Tag,
	opts Opts,
) *Model {
	return &Model{
		ctrl:     ctrl,
		opts:     opts,
		style:    newStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		now:      time.Now,
		settings: settings,
		snap:     snap,
		tags:     slices.Clone(tags),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tag() (models.Tag, bool) {
	return models.FindTag(m.tags, m.snap.SelectedTagID)
}

// nextTag returns the tag after the selected one, wrapping around.
func (m *Model) nextTag() (models.Tag, bool) {
	if len(m.tags) == 0 {
		return models.Tag{}, false
	}

	i := slices.IndexFunc(m.tags, func(t models.Tag) bool {
		return t.ID == m.snap.SelectedTagID
	})

	return m.tags[(i+1)%len(m.tags)], true
}

// total is the length of the countdown being shown.
func (m *Model) total() int {
	switch m.snap.Status {
	case models.Break, models.BreakPaused:
		return m.settings.LongBreakDurationSeconds
	default:
		return m.settings.FocusDurationSeconds
	}
}

// percent is the share of the current countdown that is still left.
func (m *Model) percent() float64 {
	total := m.total()
	if total <= 0 || m.snap.Status == models.Finished {
		return 0
	}

	return min(float64(m.snap.SessionSecondsRemaining)/float64(total), 1)
}

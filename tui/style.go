package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusflow/internal/models"
)

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Banner    lipgloss.Style
	status    map[models.Status]lipgloss.Style
}

func newStyle(darkTheme bool) style {
	fg := lipgloss.Color("#1a1a1a")
	hint := lipgloss.Color("#6b6b6b")

	if darkTheme {
		fg = lipgloss.Color("#f5f5f5")
		hint = lipgloss.Color("#8a8a8a")
	}

	label := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			MarginRight(1)
	}

	return style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10b981")),
		status: map[models.Status]lipgloss.Style{
			models.Idle:        label("#8a8a8a"),
			models.Running:     label("#b0db43"),
			models.Paused:      label("#f59e0b"),
			models.Break:       label("#12eaea"),
			models.BreakPaused: label("#f59e0b"),
			models.Finished:    label("#c492b1"),
		},
	}
}

func (s style) Status(status models.Status) lipgloss.Style {
	st, ok := s.status[status]
	if !ok {
		return s.Secondary
	}

	return st
}

func (s style) Tag(t models.Tag) lipgloss.Style {
	if t.Color == "" {
		return s.Secondary
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
}

package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No focus sessions recorded yet"
)

// heatmapChars are indexed by level.
var heatmapChars = [...]string{"·", "░", "▒", "▓", "█"}

func humanize(seconds int) string {
	d := time.Duration(seconds) * time.Second

	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d).LimitToUnit("hours").LimitFirstN(2).String()
}

func summaryView(r *Report) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	today := fmt.Sprintf(
		"Today: %s in %s sessions\n",
		ui.Green(humanize(r.TodaySeconds)),
		ui.Green(r.TodaySessions),
	)

	total := fmt.Sprintf(
		"All time: %s in %s sessions\n",
		ui.Green(humanize(r.TotalSeconds)),
		ui.Green(r.TotalSessions),
	)

	return header + today + total
}

func tagsView(title string, totals []TagTotal) string {
	if len(totals) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue(title)))

	for _, t := range totals {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			ui.Hex(t.Color, t.Name),
			ui.Green(humanize(t.Seconds)),
		))
	}

	return builder.String()
}

func bestHoursView(hours []HourTotal) string {
	bars := make(pterm.Bars, 0, len(hours))

	for _, h := range hours {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%02d:00", h.Hour),
			Value: h.Minutes,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue("\nBest hours (minutes)") + chart
}

// heatmapView prints one row per month.
func heatmapView(days []HeatmapDay) string {
	if len(days) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s", ui.Blue("This year")))

	month := ""

	for _, d := range days {
		if m := d.Date[:7]; m != month {
			month = m

			t, _ := time.Parse("2006-01", m)
			builder.WriteString(fmt.Sprintf("\n%s ", t.Format("Jan")))
		}

		builder.WriteString(heatmapChars[d.Level])
	}

	return builder.String() + "\n"
}

// Print writes a readable form of r to w.
func Print(w io.Writer, r *Report) {
	if r.TotalSessions == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Focus statistics: %s", r.GeneratedAt.Format("January 02, 2006"))

	output := fmt.Sprint(
		header,
		summaryView(r),
		tagsView("Today", r.Distribution.Day),
		tagsView("Last 7 days", r.Distribution.Week),
		tagsView("Last 30 days", r.Distribution.Month),
		bestHoursView(r.BestHours),
		heatmapView(r.Heatmap),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

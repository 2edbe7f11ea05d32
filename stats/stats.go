// Package stats reports on completed focus sessions
package stats

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

const (
	firstHour    = 6
	lastHour     = 23
	recentCount  = 3
	defaultColor = "#94a3b8"
	dateLayout   = "2006-01-02"
)

// heatmapThresholds are the daily focus seconds a day must exceed to reach
// levels 1 through 4.
var heatmapThresholds = [...]int{0, 30 * 60, 120 * 60, 240 * 60}

// TagTotal is the focus time recorded under one tag name.
type TagTotal struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Seconds int    `json:"seconds"`
}

// Distribution splits focus time by tag over three windows ending now.
type Distribution struct {
	Day   []TagTotal `json:"day"`
	Week  []TagTotal `json:"week"`
	Month []TagTotal `json:"month"`
}

// HourTotal is the focus time of sessions that started in Hour.
type HourTotal struct {
	Hour    int `json:"hour"`
	Minutes int `json:"minutes"`
}

// HeatmapDay is the intensity of one calendar day.
type HeatmapDay struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
	Level   int    `json:"level"`
}

// Report is the summary of the focus history at GeneratedAt.
type Report struct {
	GeneratedAt   time.Time            `json:"generatedAt"`
	TodaySeconds  int                  `json:"todaySeconds"`
	TodaySessions int                  `json:"todaySessions"`
	TotalSeconds  int                  `json:"totalSeconds"`
	TotalSessions int                  `json:"totalSessions"`
	Distribution  Distribution         `json:"distribution"`
	BestHours     []HourTotal          `json:"bestHours"`
	Heatmap       []HeatmapDay         `json:"heatmap"`
	Recent        []models.FocusRecord `json:"recent"`
}

// JSON returns the indented JSON form of the report.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// level maps the focus seconds of a day to a heatmap level.
func level(seconds int) int {
	l := 0

	for i, threshold := range heatmapThresholds {
		if seconds > threshold {
			l = i + 1
		}
	}

	return l
}

func tagColor(tags []models.Tag, name string) string {
	for _, t := range tags {
		if t.Name == name {
			return t.Color
		}
	}

	return defaultColor
}

// distribution totals the records that ended at or after since by tag name,
// largest first.
func distribution(
	records []models.FocusRecord,
	tags []models.Tag,
	since time.Time,
) []TagTotal {
	totals := make(map[string]int)

	for i := range records {
		if records[i].End().Before(since) {
			continue
		}

		name := records[i].TagName
		if name == "" {
			name = models.Uncategorized
		}

		totals[name] += records[i].DurationSeconds
	}

	out := make([]TagTotal, 0, len(totals))

	for name, secs := range totals {
		out = append(out, TagTotal{
			Name:    name,
			Color:   tagColor(tags, name),
			Seconds: secs,
		})
	}

	slices.SortFunc(out, func(a, b TagTotal) int {
		if c := cmp.Compare(b.Seconds, a.Seconds); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

func bestHours(records []models.FocusRecord, loc *time.Location) []HourTotal {
	var seconds [24]int

	for i := range records {
		seconds[records[i].Start().In(loc).Hour()] += records[i].DurationSeconds
	}

	out := make([]HourTotal, 0, lastHour-firstHour+1)

	for h := firstHour; h <= lastHour; h++ {
		out = append(out, HourTotal{
			Hour:    h,
			Minutes: timeutil.Round(float64(seconds[h]) / 60),
		})
	}

	return out
}

// heatmap covers every day from the start of the year up to now.
func heatmap(records []models.FocusRecord, now time.Time) []HeatmapDay {
	loc := now.Location()
	perDay := make(map[string]int)

	for i := range records {
		perDay[records[i].End().In(loc).Format(dateLayout)] += records[i].DurationSeconds
	}

	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	end := timeutil.RoundToStart(now)

	var out []HeatmapDay

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)

		out = append(out, HeatmapDay{
			Date:    key,
			Seconds: perDay[key],
			Level:   level(perDay[key]),
		})
	}

	return out
}

// Compute builds the report of records at now. Day boundaries and hours are
// taken in the location of now.
func Compute(
	records []models.FocusRecord,
	tags []models.Tag,
	now time.Time,
) *Report {
	today := timeutil.RoundToStart(now)

	r := &Report{
		GeneratedAt:   now,
		TotalSessions: len(records),
		Distribution: Distribution{
			Day:   distribution(records, tags, today),
			Week:  distribution(records, tags, now.AddDate(0, 0, -7)),
			Month: distribution(records, tags, now.AddDate(0, 0, -30)),
		},
		BestHours: bestHours(records, now.Location()),
		Heatmap:   heatmap(records, now),
		Recent:    []models.FocusRecord{},
	}

	for i := range records {
		r.TotalSeconds += records[i].DurationSeconds

		if !records[i].End().Before(today) {
			r.TodaySeconds += records[i].DurationSeconds
			r.TodaySessions++
		}
	}

	for i := len(records) - 1; i >= 0 && len(r.Recent) < recentCount; i-- {
		r.Recent = append(r.Recent, records[i])
	}

	return r
}

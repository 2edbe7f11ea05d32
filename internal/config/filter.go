package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/timeutil"
)

// Period is a named time range for filtering history.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period30Days    Period = "30days"
	Period365Days   Period = "365days"
	PeriodAllTime   Period = "all-time"
)

// Periods lists the accepted values of --period.
var Periods = []Period{
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period30Days,
	Period365Days,
	PeriodAllTime,
}

var periodDays = map[Period]int{
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period30Days:    -29,
	Period365Days:   -364,
}

// Filter selects focus records by end time and tag.
type Filter struct {
	Since time.Time
	Until time.Time
	// Tags holds tag names or ids. An empty list matches every record.
	Tags []string
}

// timeRange returns the start and end time of period relative to now.
func timeRange(period Period, now time.Time) (start, end time.Time) {
	start = timeutil.RoundToStart(now)
	end = timeutil.RoundToEnd(now)

	switch period {
	case PeriodToday:
	case PeriodYesterday:
		start = timeutil.RoundToStart(now.AddDate(0, 0, periodDays[period]))
		end = timeutil.RoundToEnd(start)
	case PeriodAllTime:
		start = time.Time{}
	default:
		start = timeutil.RoundToStart(now.AddDate(0, 0, periodDays[period]))
	}

	return start, end
}

// NewFilter builds a Filter from the --period, --since, --until and --tag
// flags. Without flags it matches everything up to now.
func NewFilter(ctx *cli.Context, now time.Time) (*Filter, error) {
	f := &Filter{
		Until: now,
	}

	if tags := ctx.String("tag"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}

	period := Period(strings.TrimSpace(ctx.String("period")))
	if period != "" {
		if !slices.Contains(Periods, period) {
			return nil, errInvalidPeriod.Fmt(period)
		}

		f.Since, f.Until = timeRange(period, now)

		return f, nil
	}

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(since).Wrap(err)
		}

		f.Since = t
	}

	if until := ctx.String("until"); until != "" {
		t, err := timeutil.FromStr(until, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(until).Wrap(err)
		}

		f.Until = t
	}

	if f.Until.Before(f.Since) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

// Match reports whether r ended inside the filter range with one of its tags.
func (f *Filter) Match(r *models.FocusRecord) bool {
	end := r.End()

	if end.Before(f.Since) || end.After(f.Until) {
		return false
	}

	if len(f.Tags) == 0 {
		return true
	}

	return slices.ContainsFunc(f.Tags, func(t string) bool {
		return t == r.TagID || strings.EqualFold(t, r.TagName)
	})
}

// Apply returns the records that match f, in their original order.
func (f *Filter) Apply(records []models.FocusRecord) []models.FocusRecord {
	var out []models.FocusRecord

	for i := range records {
		if f.Match(&records[i]) {
			out = append(out, records[i])
		}
	}

	return out
}

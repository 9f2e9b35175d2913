// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a tz database

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

const (
	// apiInstantLayout is the zone-less wall-clock format the metrics backend expects.
	apiInstantLayout = "2006-01-02T15:04:00"
	// periodDateLayout renders preset period dates (MM/DD/YYYY).
	periodDateLayout = "01/02/2006"
	// lastWeekDays is how far back the last-week preset reaches.
	lastWeekDays = 7
)

// timezoneAliases maps the short codes used by the dashboard to IANA names.
var timezoneAliases = map[string]string{
	"PST": "America/Los_Angeles",
	"EST": "America/New_York",
}

// ToAPIInstant formats t as YYYY-MM-DDTHH:MM:00 using t's own wall clock.
// The timezone travels separately in the query, never in this string.
func ToAPIInstant(t time.Time) string {
	return t.Format(apiInstantLayout)
}

// ToAPIMidnight formats the start of t's calendar day as YYYY-MM-DDT00:00:00.
func ToAPIMidnight(t time.Time) string {
	return startOfDay(t).Format(apiInstantLayout)
}

// ResolveTimezone maps PST and EST to their IANA names. Any other value is
// assumed to already be an IANA name and is returned unchanged.
func ResolveTimezone(code string) string {
	code = strings.TrimSpace(code)
	if name, ok := timezoneAliases[code]; ok {
		return name
	}
	return code
}

// LoadTimezone resolves code and loads the matching location.
func LoadTimezone(code string) (*time.Location, error) {
	name := ResolveTimezone(code)
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeUnknownTimezone,
			fmt.Sprintf("unknown timezone %q", code),
			domainerror.ErrUnknownTimezone,
		)
	}
	return loc, nil
}

// DefaultPeriodSet computes the preset KPI periods on the calendar of the
// given timezone: today, yesterday, the last seven days and the custom anchor.
func DefaultPeriodSet(now time.Time, timezone string) (entity.PeriodSet, error) {
	loc, err := LoadTimezone(timezone)
	if err != nil {
		return entity.PeriodSet{}, err
	}

	today := startOfDay(now.In(loc))
	weekAgo := today.AddDate(0, 0, -lastWeekDays)

	return entity.PeriodSet{
		Today:     today.Format(periodDateLayout),
		Yesterday: today.AddDate(0, 0, -1).Format(periodDateLayout),
		LastWeek: entity.DateRange{
			From: weekAgo.Format(periodDateLayout),
			To:   today.Format(periodDateLayout),
		},
		Custom: weekAgo.Format(periodDateLayout),
	}, nil
}

// BuildKPIQuery parses the from/to inputs and turns them into the window sent
// to the metrics backend. from is widened to the start of its day.
func BuildKPIQuery(from, to, timezone string, now time.Time) entity.KPIQuery {
	return entity.KPIQuery{
		From:     ToAPIMidnight(ParseDate(from, now)),
		To:       ToAPIInstant(ParseDate(to, now)),
		Timezone: ResolveTimezone(timezone),
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Package window parses the report tool's time-window expressions, e.g.
// "1.week" or "3.months", into concrete date ranges.
package window

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultSpec is used when no window is given or the given one cannot be
// parsed.
const DefaultSpec = "1.week"

// Window is a caller-specified span bounding which commits are considered.
type Window struct {
	Spec  string
	Since time.Time
	Until time.Time
}

// Parse interprets a spec of the form "N.unit" relative to now. Units are
// day, week, month (30 days) and year (365 days), singular or plural.
//
// Invalid specs fall back to the last 7 days, matching the tool's historical
// forgiving behavior, but the error is returned so callers can warn.
func Parse(spec string, now time.Time) (Window, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = DefaultSpec
	}

	days, err := specDays(spec)
	if err != nil {
		return Window{
			Spec:  spec,
			Since: now.AddDate(0, 0, -7),
			Until: now,
		}, err
	}

	return Window{
		Spec:  spec,
		Since: now.AddDate(0, 0, -days),
		Until: now,
	}, nil
}

func specDays(spec string) (int, error) {
	num, unit, ok := strings.Cut(spec, ".")
	if !ok {
		return 0, fmt.Errorf("invalid time range %q: expected N.unit, e.g. 2.weeks", spec)
	}

	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid time range %q: count must be a positive integer", spec)
	}

	switch strings.ToLower(unit) {
	case "day", "days":
		return n, nil
	case "week", "weeks":
		return n * 7, nil
	case "month", "months":
		return n * 30, nil
	case "year", "years":
		return n * 365, nil
	default:
		return 0, fmt.Errorf("invalid time range %q: unknown unit %q", spec, unit)
	}
}

// knownDescriptions maps common specs to the wording used in report headers.
var knownDescriptions = map[string]string{
	"1.week":   "Last 7 days",
	"2.weeks":  "Last 14 days",
	"1.month":  "Last 30 days",
	"2.months": "Last 60 days",
	"3.months": "Last 90 days",
	"6.months": "Last 180 days",
	"1.year":   "Last 365 days",
}

// Description returns a human-readable label for the window.
func (w Window) Description() string {
	if desc, ok := knownDescriptions[w.Spec]; ok {
		return desc
	}
	if days, err := specDays(w.Spec); err == nil {
		return fmt.Sprintf("Last %d days", days)
	}
	return fmt.Sprintf("Since %s", w.Spec)
}

// FilenameToken returns the spec with the dot removed, for use in output
// file names ("2.weeks" -> "2weeks").
func (w Window) FilenameToken() string {
	return strings.ReplaceAll(w.Spec, ".", "")
}

// SinceDate returns the ISO date of the window start, the form GitHub
// search qualifiers expect.
func (w Window) SinceDate() string {
	return w.Since.Format("2006-01-02")
}

// Package experience computes career-length figures from work-history records.
package experience

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/resume-forge/internal/types"
)

// Present is the sentinel date value meaning "still employed".
const Present = "present"

// dateLayouts are the formats accepted for experience dates, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"01/2006",
	"2006",
}

// Years returns the candidate's total years of experience: the span from the
// earliest start date to now, divided by 365 days and rounded to the nearest
// integer. An empty record set yields 0.
func Years(records []types.ExperienceRecord) int {
	return YearsAt(records, time.Now())
}

// YearsAt is Years with an explicit reference instant, for testability.
func YearsAt(records []types.ExperienceRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	earliest := now
	for _, rec := range records {
		start := parseDate(rec.StartDate, now)
		if start.Before(earliest) {
			earliest = start
		}
	}

	days := now.Sub(earliest).Hours() / 24
	return int(math.Round(days / 365))
}

// parseDate parses an experience date string. The sentinel "present" (any
// case) maps to the reference instant; unparseable values do too, so a
// malformed date can never become the earliest start.
func parseDate(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, Present) {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

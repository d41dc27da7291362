package experience

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/job-ranker/internal/types"
)

// CandidateYears estimates total years of experience from dated entries.
// Each entry spans from its start date to its end date, or to now when the role
// is current or has no end date. Entries whose start date, or non-empty end date,
// does not parse are skipped.
// The summed months are divided by 12 and rounded.
func CandidateYears(entries []types.ExperienceEntry, now time.Time) int {
	totalMonths := 0
	for _, entry := range entries {
		totalMonths += entryMonths(entry, now)
	}
	if totalMonths <= 0 {
		return 0
	}
	return int(math.Round(float64(totalMonths) / 12))
}

// entryMonths returns the whole-month span of a single entry (never negative)
func entryMonths(entry types.ExperienceEntry, now time.Time) int {
	if entry.StartDate == "" {
		return 0
	}
	start, err := ParseDate(entry.StartDate)
	if err != nil {
		return 0
	}

	// Only a current flag, an empty end date or an ongoing marker extend the span
	// to now; an end date that does not parse drops the entry.
	end := now
	if !entry.Current && strings.TrimSpace(entry.EndDate) != "" && !IsOngoing(entry.EndDate) {
		parsed, err := ParseDate(entry.EndDate)
		if err != nil {
			return 0
		}
		end = parsed
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

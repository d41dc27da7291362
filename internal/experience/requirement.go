package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// Policy holds the years assumed for seniority keywords without an explicit number
type Policy struct {
	SeniorYears int `json:"senior_years"`
	MidYears    int `json:"mid_years"`
}

// DefaultPolicy returns senior/lead = 5 years, mid = 2 years.
func DefaultPolicy() Policy {
	return Policy{SeniorYears: 5, MidYears: 2}
}

var digitsPattern = regexp.MustCompile(`\d+`)

// ParseRequiredExperience derives the years of experience a job asks for.
// Checks run in a fixed order: entry/fresher/junior wording means 0, then the
// first number in the text, then senior/lead, then mid. Anything else is 0.
func ParseRequiredExperience(text string, p Policy) int {
	lower := strings.ToLower(text)
	if lower == "" {
		return 0
	}

	if strings.Contains(lower, "entry") || strings.Contains(lower, "fresher") || strings.Contains(lower, "junior") {
		return 0
	}

	if digits := digitsPattern.FindString(lower); digits != "" {
		if years, err := strconv.Atoi(digits); err == nil {
			return years
		}
	}

	if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") {
		return p.SeniorYears
	}
	if strings.Contains(lower, "mid") {
		return p.MidYears
	}
	return 0
}

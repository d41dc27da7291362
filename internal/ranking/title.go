package ranking

import (
	"math"
	"strings"
	"unicode"
)

// titleStopWords carry no meaning when comparing job titles
var titleStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "for": true, "in": true,
	"of": true, "or": true, "the": true, "to": true, "with": true,
	"&": true, "-": true, "/": true, "|": true,
}

// TitleRelevance scores how well a candidate's target title fits a job title.
// Exact case-insensitive matches score 100, a missing title scores p.TitleMissing,
// and otherwise the score grows from p.TitleBase by p.TitleSpan times the share
// of candidate title words that overlap some job title word.
func TitleRelevance(candidateTitle, jobTitle string, p Policy) int {
	candidateTitle = strings.TrimSpace(candidateTitle)
	jobTitle = strings.TrimSpace(jobTitle)
	if candidateTitle == "" || jobTitle == "" {
		return p.TitleMissing
	}
	if strings.EqualFold(candidateTitle, jobTitle) {
		return maxScore
	}

	candidateWords := titleWords(candidateTitle)
	if len(candidateWords) == 0 {
		return p.TitleMissing
	}
	jobWords := titleWords(jobTitle)

	overlap := 0
	for _, cw := range candidateWords {
		for _, jw := range jobWords {
			if strings.Contains(jw, cw) || strings.Contains(cw, jw) {
				overlap++
				break
			}
		}
	}

	ratio := float64(overlap) / float64(len(candidateWords))
	return int(math.Round(p.TitleBase + ratio*p.TitleSpan))
}

func titleWords(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '(' || r == ')' || r == ';'
	})

	words := fields[:0]
	for _, field := range fields {
		if titleStopWords[field] {
			continue
		}
		words = append(words, field)
	}
	return words
}

package skills

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// termMatcher finds every occurrence of every vocabulary term, overlapping ones
// included, in a single pass over lowercase input.
type termMatcher struct {
	patterns []string
	ac       *ahocorasick.AhoCorasick // nil when there are no patterns
}

// match is a pattern occurrence spanning text[Start:End]
type match struct {
	Pattern int
	Start   int
	End     int
}

func newTermMatcher(patterns []string) *termMatcher {
	m := &termMatcher{patterns: patterns}
	if len(patterns) == 0 {
		return m
	}

	// Standard semantics is required for overlapping iteration; word boundaries
	// are checked by the caller so terms like "c++" keep their own rules.
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.StandardMatch,
		DFA:       true,
	})
	ac := builder.Build(patterns)
	m.ac = &ac
	return m
}

// findAll returns every pattern occurrence in text.
func (m *termMatcher) findAll(text string) []match {
	if m.ac == nil || text == "" {
		return nil
	}

	var matches []match
	iter := m.ac.IterOverlapping(text)
	for next := iter.Next(); next != nil; next = iter.Next() {
		matches = append(matches, match{
			Pattern: next.Pattern(),
			Start:   next.Start(),
			End:     next.End(),
		})
	}
	return matches
}

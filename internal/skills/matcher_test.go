package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermMatcher_FindAllOverlapping(t *testing.T) {
	m := newTermMatcher([]string{"he", "she", "his", "hers"})

	matches := m.findAll("ushers")

	found := make(map[string][]int)
	for _, hit := range matches {
		found[m.patterns[hit.Pattern]] = []int{hit.Start, hit.End}
	}

	assert.Equal(t, map[string][]int{
		"she":  {1, 4},
		"he":   {2, 4},
		"hers": {2, 6},
	}, found)
}

func TestTermMatcher_NestedTerms(t *testing.T) {
	m := newTermMatcher([]string{"machine learning", "learning"})

	var terms []string
	for _, hit := range m.findAll("machine learning") {
		terms = append(terms, m.patterns[hit.Pattern])
	}

	assert.ElementsMatch(t, []string{"machine learning", "learning"}, terms)
}

func TestTermMatcher_RepeatedPattern(t *testing.T) {
	m := newTermMatcher([]string{"sql"})
	matches := m.findAll("sql and sql")
	assert.Len(t, matches, 2)
	assert.Equal(t, 8, matches[1].Start)
	assert.Equal(t, 11, matches[1].End)
}

func TestTermMatcher_NoPatterns(t *testing.T) {
	m := newTermMatcher(nil)
	assert.Empty(t, m.findAll("anything"))
}

package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Go and SQL", "Go and SQL"},
		{"comparison is not markup", "experience < 5 years", "experience < 5 years"},
		{"list items separated", "<ul><li>Go</li><li>SQL</li></ul>", "Go SQL"},
		{"paragraphs separated", "<p>Build APIs</p><p>Own services</p>", "Build APIs Own services"},
		{"scripts dropped", "<div>Python<script>var x = 1;</script></div>", "Python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collapseWhitespace(PlainText(tt.input)))
		})
	}
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "resume cafe", FoldText("résumé café"))
	assert.Equal(t, "Sao Paulo", FoldText("São Paulo"))
	assert.Equal(t, "plain", FoldText("plain"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "", CleanText("   "))
	assert.Equal(t, "Senior Developer - Munchen", CleanText("<h1>Senior  Developer</h1> - München"))
}

package experience

import (
	"testing"
	"time"

	"github.com/jonathan/job-ranker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestCandidateYears(t *testing.T) {
	tests := []struct {
		name     string
		entries  []types.ExperienceEntry
		expected int
	}{
		{
			name:     "no entries",
			entries:  nil,
			expected: 0,
		},
		{
			name: "closed plus current role",
			entries: []types.ExperienceEntry{
				{StartDate: "2018-01", EndDate: "2020-01"},
				{StartDate: "2020-01", Current: true},
			},
			expected: 5,
		},
		{
			name: "missing end date runs to now",
			entries: []types.ExperienceEntry{
				{StartDate: "2021-01"},
			},
			expected: 2,
		},
		{
			name: "present keyword runs to now",
			entries: []types.ExperienceEntry{
				{StartDate: "Jan 2020", EndDate: "Present"},
			},
			expected: 3,
		},
		{
			name: "eighteen months rounds up",
			entries: []types.ExperienceEntry{
				{StartDate: "2019-01-01", EndDate: "2020-07-01"},
			},
			expected: 2,
		},
		{
			name: "unparseable end date skips the entry",
			entries: []types.ExperienceEntry{
				{StartDate: "2010-01", EndDate: "garbage"},
				{StartDate: "2022-01", EndDate: "2023-01"},
			},
			expected: 1,
		},
		{
			name: "current flag ignores the end date",
			entries: []types.ExperienceEntry{
				{StartDate: "2020-01", EndDate: "garbage", Current: true},
			},
			expected: 3,
		},
		{
			name: "entries without start date are skipped",
			entries: []types.ExperienceEntry{
				{Title: "Consultant", EndDate: "2020-01"},
				{StartDate: "not a date", EndDate: "2020-01"},
				{StartDate: "2022-01", EndDate: "2023-01"},
			},
			expected: 1,
		},
		{
			name: "end before start contributes nothing",
			entries: []types.ExperienceEntry{
				{StartDate: "2022-01", EndDate: "2020-01"},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CandidateYears(tt.entries, fixedNow))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
	}{
		{"2021-03", 2021, time.March},
		{"2021-03-15", 2021, time.March},
		{"Mar 2021", 2021, time.March},
		{"March 2021", 2021, time.March},
		{"03/2021", 2021, time.March},
		{"2021", 2021, time.January},
		{"2021-03-15T10:00:00Z", 2021, time.March},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.year, parsed.Year())
			assert.Equal(t, tt.month, parsed.Month())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("")
	var dateErr *DateError
	require.ErrorAs(t, err, &dateErr)

	_, err = ParseDate("sometime last spring")
	require.ErrorAs(t, err, &dateErr)
	assert.Contains(t, err.Error(), "sometime last spring")
}

func TestIsOngoing(t *testing.T) {
	assert.True(t, IsOngoing("Current"))
	assert.True(t, IsOngoing(" present "))
	assert.False(t, IsOngoing("2020-01"))
	assert.False(t, IsOngoing(""))
}

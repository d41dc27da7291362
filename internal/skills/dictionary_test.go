package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_WordBoundaries(t *testing.T) {
	found := ExtractSkills("I know Python and React")

	assert.Contains(t, found, "python")
	assert.Contains(t, found, "react")
	assert.NotContains(t, found, "javascript")
	assert.NotContains(t, found, "java")
}

func TestDictionary_Extract(t *testing.T) {
	d := Default()

	tests := []struct {
		name     string
		text     string
		expected []string
		absent   []string
	}{
		{
			name:     "substring inside a word is ignored",
			text:     "JavaScript developer",
			expected: []string{"javascript"},
			absent:   []string{"java"},
		},
		{
			name:     "multi-word phrase across line breaks",
			text:     "Built MACHINE\nlearning pipelines",
			expected: []string{"machine learning"},
		},
		{
			name:     "terms with symbols",
			text:     "Shipped C++ and C# services on .NET",
			expected: []string{"c++", "c#", ".net"},
		},
		{
			name:     "sql is not found inside postgresql",
			text:     "PostgreSQL tuning",
			expected: []string{"postgresql"},
			absent:   []string{"sql"},
		},
		{
			name:     "punctuation counts as a boundary",
			text:     "(docker), kubernetes; terraform.",
			expected: []string{"docker", "kubernetes", "terraform"},
		},
		{
			name:   "empty text",
			text:   "",
			absent: []string{"python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := d.Extract(tt.text)
			for _, skill := range tt.expected {
				assert.True(t, found.Has(skill), "expected %q", skill)
			}
			for _, skill := range tt.absent {
				assert.False(t, found.Has(skill), "did not expect %q", skill)
			}
		})
	}
}

func TestDictionary_ExtractIsDeterministic(t *testing.T) {
	text := "Python, SQL, Tableau, Excel, communication and leadership; AWS + Docker"
	first := ExtractSkills(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ExtractSkills(text))
	}
	assert.Equal(t, Default().Extract(text), NewSet(first...))
}

func TestDictionary_Vocabulary(t *testing.T) {
	d := Default()
	assert.GreaterOrEqual(t, d.Len(), 150)
	assert.Equal(t, "languages", d.Category("Python"))
	assert.Equal(t, "soft_skills", d.Category("communication"))
	assert.Equal(t, "", d.Category("basket weaving"))
	assert.Equal(t, "cloud_devops", d.Category("K8s"))
}

func TestNewDictionary_Dedupes(t *testing.T) {
	d := NewDictionary([]string{"Go Kit", "go  kit", "", "grpc"})
	assert.Equal(t, []string{"go kit", "grpc"}, d.Terms())
	assert.True(t, d.Extract("built with go kit").Has("go kit"))
}

func TestParseDictionary_Errors(t *testing.T) {
	_, err := ParseDictionary([]byte("categories: [not, a, map"))
	var dictErr *DictionaryError
	require.ErrorAs(t, err, &dictErr)
	assert.Contains(t, err.Error(), "failed to parse vocabulary YAML")

	_, err = ParseDictionary([]byte("categories: {}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terms")
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := "categories:\n  custom:\n    - elm\n    - ocaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"elm", "ocaml"}, d.Extract("OCaml and Elm").Sorted())

	_, err = LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read vocabulary file")
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "")
	s.Union(NewSet("c"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(""))
}

// Package skills detects known skill terms in free text using a curated vocabulary.
package skills

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/job-ranker/internal/parsing"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// vocabularyFile is the on-disk layout of a vocabulary: category name -> terms
type vocabularyFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// Dictionary is an immutable skill vocabulary with a precompiled matcher.
// It is safe for concurrent use.
type Dictionary struct {
	terms      []string
	categories map[string]string
	matcher    *termMatcher
}

// NewDictionary builds a dictionary from a flat term list.
// Terms are lowercased, whitespace-collapsed and deduplicated.
func NewDictionary(terms []string) *Dictionary {
	return newDictionary(map[string][]string{"": terms})
}

func newDictionary(categories map[string][]string) *Dictionary {
	d := &Dictionary{categories: make(map[string]string)}

	// Sorted category names keep term order independent of map iteration
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, term := range categories[name] {
			normalized := normalizeTerm(term)
			if normalized == "" {
				continue
			}
			if _, exists := d.categories[normalized]; exists {
				continue
			}
			d.categories[normalized] = name
			d.terms = append(d.terms, normalized)
		}
	}

	d.matcher = newTermMatcher(d.terms)
	return d
}

// ParseDictionary parses a YAML vocabulary document.
func ParseDictionary(data []byte) (*Dictionary, error) {
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &DictionaryError{Message: "failed to parse vocabulary YAML", Cause: err}
	}

	d := newDictionary(file.Categories)
	if len(d.terms) == 0 {
		return nil, &DictionaryError{Message: "vocabulary contains no terms"}
	}
	return d, nil
}

// LoadDictionary loads a YAML vocabulary from a file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DictionaryError{
			Message: fmt.Sprintf("failed to read vocabulary file %s", path),
			Cause:   err,
		}
	}
	return ParseDictionary(data)
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	d, err := ParseDictionary(defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("embedded skill vocabulary is invalid: %v", err))
	}
	return d
})

// Default returns the dictionary built from the embedded vocabulary.
func Default() *Dictionary {
	return defaultDictionary()
}

// Len returns the number of distinct terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// Terms returns a copy of the vocabulary terms.
func (d *Dictionary) Terms() []string {
	return append([]string(nil), d.terms...)
}

// Category returns the vocabulary category of a term, or "" if unknown.
// A term missing from the vocabulary is retried under its canonical alias, so "k8s"
// reports the category of "kubernetes".
func (d *Dictionary) Category(term string) string {
	if category, ok := d.categories[normalizeTerm(term)]; ok {
		return category
	}
	return d.categories[parsing.NormalizeSkillName(term)]
}

// Extract returns the set of vocabulary terms present in text.
// Matching is case-insensitive and respects word boundaries on every side
// where the term itself starts or ends with a word character.
func (d *Dictionary) Extract(text string) Set {
	found := make(Set)
	if d == nil || text == "" {
		return found
	}

	haystack := normalizeTerm(text)
	for _, m := range d.matcher.findAll(haystack) {
		term := d.terms[m.Pattern]
		if !boundaryBefore(haystack, m.Start, term) || !boundaryAfter(haystack, m.End, term) {
			continue
		}
		found.Add(term)
	}
	return found
}

// ExtractSkills returns the sorted skill terms from the default vocabulary found in text.
func ExtractSkills(text string) []string {
	return Default().Extract(text).Sorted()
}

func boundaryBefore(text string, start int, term string) bool {
	if !isWordByte(term[0]) || start == 0 {
		return true
	}
	return !isWordByte(text[start-1])
}

func boundaryAfter(text string, end int, term string) bool {
	if !isWordByte(term[len(term)-1]) || end == len(text) {
		return true
	}
	return !isWordByte(text[end])
}

// isWordByte mirrors the regexp \w class: ASCII letters, digits and underscore
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

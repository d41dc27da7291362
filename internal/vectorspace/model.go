// Package vectorspace builds a TF-IDF model over the documents of a single
// ranking request and compares documents by cosine similarity.
//
// A Model is built from exactly the documents it is given; nothing is shared
// between models, so each request gets its own corpus statistics.
package vectorspace

import (
	"math"
	"sort"
)

// TermWeight is a term and its tf-idf weight within one document
type TermWeight struct {
	Term  string  `json:"term"`
	TFIDF float64 `json:"tfidf"`
}

// Model holds term counts and document frequencies for one document set.
// It is read-only after BuildModel returns.
type Model struct {
	counts []map[string]int
	df     map[string]int
}

// BuildModel counts terms in every document. By convention documents[0] is the
// candidate document and the rest are job documents.
func BuildModel(documents []string) *Model {
	m := &Model{
		counts: make([]map[string]int, len(documents)),
		df:     make(map[string]int),
	}

	for i, doc := range documents {
		counts := make(map[string]int)
		for _, token := range Tokenize(doc) {
			counts[token]++
		}
		m.counts[i] = counts

		for term := range counts {
			m.df[term]++
		}
	}

	return m
}

// Len returns the number of documents in the model.
func (m *Model) Len() int {
	return len(m.counts)
}

// VocabularySize returns the number of distinct terms across all documents.
func (m *Model) VocabularySize() int {
	return len(m.df)
}

// IDF returns 1 + ln(N / (1 + df)) for a term.
func (m *Model) IDF(term string) float64 {
	return 1 + math.Log(float64(len(m.counts))/float64(1+m.df[term]))
}

// TFIDF returns the weight of term in document docIndex, or 0 if absent.
func (m *Model) TFIDF(term string, docIndex int) float64 {
	if docIndex < 0 || docIndex >= len(m.counts) {
		return 0
	}
	tf := m.counts[docIndex][term]
	if tf == 0 {
		return 0
	}
	return float64(tf) * m.IDF(term)
}

// ListTerms returns every term of a document with its tf-idf weight,
// heaviest first (ties broken alphabetically). Out-of-range indices return nil.
func (m *Model) ListTerms(docIndex int) []TermWeight {
	if docIndex < 0 || docIndex >= len(m.counts) {
		return nil
	}

	terms := make([]TermWeight, 0, len(m.counts[docIndex]))
	for term := range m.counts[docIndex] {
		terms = append(terms, TermWeight{Term: term, TFIDF: m.TFIDF(term, docIndex)})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].TFIDF != terms[j].TFIDF {
			return terms[i].TFIDF > terms[j].TFIDF
		}
		return terms[i].Term < terms[j].Term
	})

	return terms
}

package vectorspace

import (
	"math"
	"sort"
)

// CosineSimilarity compares documents i and j of the model.
// Terms missing from one side weigh 0 on that side. The result is in [0, 1];
// it is exactly 0 when either document has no weighted terms.
func CosineSimilarity(m *Model, i, j int) float64 {
	if m == nil {
		return 0
	}

	left := weightMap(m.ListTerms(i))
	right := weightMap(m.ListTerms(j))

	// Sorted union keeps floating-point summation order stable across calls
	union := make([]string, 0, len(left)+len(right))
	for term := range left {
		union = append(union, term)
	}
	for term := range right {
		if _, seen := left[term]; !seen {
			union = append(union, term)
		}
	}
	sort.Strings(union)

	var dot, magLeft, magRight float64
	for _, term := range union {
		a, b := left[term], right[term]
		dot += a * b
		magLeft += a * a
		magRight += b * b
	}

	if magLeft == 0 || magRight == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(magLeft) * math.Sqrt(magRight))
	return math.Max(0, math.Min(1, similarity))
}

func weightMap(terms []TermWeight) map[string]float64 {
	weights := make(map[string]float64, len(terms))
	for _, tw := range terms {
		weights[tw.Term] = tw.TFIDF
	}
	return weights
}

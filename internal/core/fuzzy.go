package core

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FuzzyThreshold is the fixed dissimilarity cutoff: 0.0 is an exact
// match, 1.0 matches anything. Records scoring at or above the
// threshold are dropped.
const FuzzyThreshold = 0.4

// FuzzySearch returns the subset of records whose best per-field
// similarity to term beats the threshold, ordered best-match-first.
// Matching is case-insensitive, position-independent and spans the
// whole record: the fields considered are the field names of the first
// record, each coerced to a string. An empty term or empty input is an
// identity passthrough.
func FuzzySearch(records []Record, term string) []Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(records) == 0 {
		return records
	}

	fields := records[0].Fields()

	type scored struct {
		rec   Record
		score float64
	}
	matches := make([]scored, 0, len(records))
	for _, r := range records {
		best := 1.0
		for _, f := range fields {
			if s := fieldScore(term, r.String(f)); s < best {
				best = s
			}
		}
		if best < FuzzyThreshold {
			matches = append(matches, scored{rec: r, score: best})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	out := make([]Record, len(matches))
	for i, m := range matches {
		out[i] = m.rec
	}
	return out
}

// fieldScore is the dissimilarity of term against one field value: 0
// for a substring hit regardless of position, otherwise the best
// normalized Levenshtein distance against the value's tokens and the
// whole value.
func fieldScore(term, value string) float64 {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 1
	}
	if strings.Contains(v, term) {
		return 0
	}
	best := normalizedDistance(term, v)
	for _, tok := range strings.Fields(v) {
		if s := normalizedDistance(term, tok); s < best {
			best = s
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 1
	}
	return float64(fuzzy.LevenshteinDistance(a, b)) / float64(n)
}

package rag

import (
	"slices"
	"unicode/utf8"
)

// NormalizeLimit clamps a requested limit into [1, maxLimit].
// Non-positive values become DefaultLimit (itself capped by maxLimit).
func NormalizeLimit(n, maxLimit int) int {
	if n <= 0 {
		n = DefaultLimit
	}
	if maxLimit > 0 && n > maxLimit {
		n = maxLimit
	}
	return n
}

// Rank keeps eligible records with a positive score and enough content,
// orders them by score (ties keep input order) and returns at most limit of them.
func Rank(scored []ScoredRecord, limit, minContentLength int) []ScoredRecord {
	kept := make([]ScoredRecord, 0, len(scored))
	for _, r := range scored {
		if !r.CategoryEligible || r.Score <= 0 || !hasContent(r, minContentLength) {
			continue
		}
		kept = append(kept, r)
	}

	slices.SortStableFunc(kept, func(a, b ScoredRecord) int {
		return b.Score - a.Score
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func hasContent(r ScoredRecord, minContentLength int) bool {
	if r.Content == "" {
		return false
	}
	return utf8.RuneCountInString(r.Content) >= minContentLength
}

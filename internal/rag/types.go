package rag

import (
	"errors"

	"momgyeot-ai/internal/storage"
)

// ErrInvalidQuery is returned when neither a query nor a category filter was supplied.
var ErrInvalidQuery = errors.New("query or categoryId required")

// DefaultLimit is used when a caller supplies a non-positive limit.
const DefaultLimit = 5

// SearchRequest represents a retrieval request.
type SearchRequest struct {
	// Query is the raw user query. It is normalized before matching.
	Query string
	// Persona is a persona name or alias. Unknown values search the full corpus.
	Persona string
	// Category restricts retrieval to records with exactly this category.
	Category string
	// Limit caps the number of results. Non-positive values use DefaultLimit.
	Limit int
	// MinContentLength drops records whose content has fewer runes.
	MinContentLength int
}

// ScoredRecord is a knowledge record with its computed relevance.
type ScoredRecord struct {
	storage.KnowledgeRecord
	// Score is the lexical score plus any persona bonus.
	Score int `json:"score"`
	// CategoryEligible reports whether the record passed the category gate.
	CategoryEligible bool `json:"-"`
}

// SearchResult is the outcome of a retrieval.
type SearchResult struct {
	// Records are ranked best first.
	Records []ScoredRecord `json:"records"`
	// Query is the normalized query.
	Query string `json:"query"`
	// ExpandedKeywords lists the query followed by every matched expansion term.
	ExpandedKeywords []string `json:"expandedKeywords"`
	// PriorityKeywords are the first three terms of the first matching trigger.
	PriorityKeywords []string `json:"priorityKeywords"`
	// Degraded is set when the record store could not be read and the result is empty because of it.
	Degraded bool `json:"degraded,omitempty"`
}

// Titles returns the titles of records[from:to], clamped to the available range.
func (r SearchResult) Titles(from, to int) []string {
	titles := []string{}
	for i := from; i < to && i < len(r.Records); i++ {
		if i < 0 {
			continue
		}
		titles = append(titles, r.Records[i].Title)
	}
	return titles
}

// Top returns at most n records.
func (r SearchResult) Top(n int) []ScoredRecord {
	if n >= len(r.Records) {
		return r.Records
	}
	return r.Records[:n]
}

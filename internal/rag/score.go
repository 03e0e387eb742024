package rag

import (
	"slices"
	"strings"

	"momgyeot-ai/internal/storage"
)

// Lexical weights per field.
const (
	exactTitleWeight    = 15
	exactContentWeight  = 8
	exactKeywordsWeight = 12

	priorityTitleWeight    = 10
	priorityContentWeight  = 6
	priorityKeywordsWeight = 8

	expansionTitleWeight    = 2
	expansionContentWeight  = 1
	expansionKeywordsWeight = 2

	urgencyImmediateBonus = 3
	urgencyWithinDayBonus = 2
)

// Score computes the lexical relevance of rec for a normalized query.
// Every field is tested independently, so one term can score in title, content and keywords.
func Score(rec storage.KnowledgeRecord, query string, exp Expansion) int {
	title := strings.ToLower(rec.Title)
	content := strings.ToLower(rec.Content)
	keywords := strings.ToLower(strings.Join(rec.Keywords, " "))

	score := 0
	if query != "" {
		score += fieldScore(query, title, content, keywords, exactTitleWeight, exactContentWeight, exactKeywordsWeight)
	}

	for _, term := range exp.Priority {
		score += fieldScore(term, title, content, keywords, priorityTitleWeight, priorityContentWeight, priorityKeywordsWeight)
	}

	for _, term := range exp.Terms {
		if slices.Contains(exp.Priority, term) {
			continue
		}
		score += fieldScore(term, title, content, keywords, expansionTitleWeight, expansionContentWeight, expansionKeywordsWeight)
	}

	switch rec.Urgency {
	case storage.UrgencyImmediate:
		score += urgencyImmediateBonus
	case storage.UrgencyWithinDay:
		score += urgencyWithinDayBonus
	}

	return score
}

func fieldScore(term, title, content, keywords string, titleW, contentW, keywordsW int) int {
	if term == "" {
		return 0
	}
	s := 0
	if strings.Contains(title, term) {
		s += titleW
	}
	if strings.Contains(content, term) {
		s += contentW
	}
	if strings.Contains(keywords, term) {
		s += keywordsW
	}
	return s
}

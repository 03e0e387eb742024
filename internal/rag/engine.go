package rag

import (
	"context"
	"strings"
	"time"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/storage"
)

// KnowledgeSource is the read side of the record store used by the Engine.
type KnowledgeSource interface {
	ListKnowledge(ctx context.Context, category string) ([]storage.KnowledgeRecord, error)
}

// Engine runs keyword retrieval over the knowledge base.
// It holds only immutable tables and is safe for concurrent use.
type Engine struct {
	source       KnowledgeSource
	expander     *Expander
	gate         *Gate
	storeTimeout time.Duration
	maxLimit     int
}

// NewEngine creates a new Engine. A nil source yields empty results.
// storeTimeout bounds each knowledge fetch; zero disables the bound.
func NewEngine(source KnowledgeSource, tables *Tables, storeTimeout time.Duration, maxLimit int) *Engine {
	return &Engine{
		source:       source,
		expander:     NewExpander(tables.Expansions),
		gate:         NewGate(tables.Personas),
		storeTimeout: storeTimeout,
		maxLimit:     maxLimit,
	}
}

// PersonaPrompt returns the prompt descriptor for a persona name or alias.
func (e *Engine) PersonaPrompt(persona string) string {
	return e.gate.Prompt(persona)
}

// ResolvePersona maps a persona name or alias to its canonical name, or "".
func (e *Engine) ResolvePersona(persona string) string {
	return e.gate.ResolvePersona(persona)
}

// Search returns the best matching records for req.
// The only error is ErrInvalidQuery. A failed or timed out store read yields
// an empty, Degraded result.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query := Normalize(req.Query)
	category := strings.TrimSpace(req.Category)
	if err := ValidateQuery(query, category); err != nil {
		return SearchResult{}, err
	}

	persona := e.gate.ResolvePersona(req.Persona)
	exp := e.expander.Expand(query)
	limit := NormalizeLimit(req.Limit, e.maxLimit)

	result := SearchResult{
		Records:          []ScoredRecord{},
		Query:            query,
		ExpandedKeywords: nonNil(exp.Terms),
		PriorityKeywords: nonNil(exp.Priority),
	}

	if e.source == nil {
		return result, nil
	}

	fetchCtx := ctx
	if e.storeTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, e.storeTimeout)
		defer cancel()
	}

	start := time.Now()
	records, err := e.source.ListKnowledge(fetchCtx, category)
	if err != nil {
		logger.WarnContext(ctx, "knowledge fetch failed, returning empty results",
			"error", err,
			"category", category,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		result.Degraded = true
		return result, nil
	}

	scored := make([]ScoredRecord, 0, len(records))
	for _, rec := range records {
		eligible, bonus := e.gate.Eligible(rec, persona, category)
		s := 0
		if query != "" {
			s = Score(rec, query, exp)
			if eligible && s > 0 {
				s += bonus
			}
		}
		scored = append(scored, ScoredRecord{KnowledgeRecord: rec, Score: s, CategoryEligible: eligible})
	}

	if query == "" {
		result.Records = browse(scored, limit, req.MinContentLength)
	} else {
		result.Records = Rank(scored, limit, req.MinContentLength)
	}

	logger.DebugContext(ctx, "knowledge search completed",
		"query", query,
		"persona", persona,
		"category", category,
		"candidates", len(records),
		"results", len(result.Records),
		"priority", result.PriorityKeywords,
	)

	return result, nil
}

// browse keeps eligible records with content in store order.
func browse(scored []ScoredRecord, limit, minContentLength int) []ScoredRecord {
	kept := make([]ScoredRecord, 0, limit)
	for _, r := range scored {
		if len(kept) == limit {
			break
		}
		if r.CategoryEligible && hasContent(r, minContentLength) {
			kept = append(kept, r)
		}
	}
	return kept
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package rag

import "strings"

// priorityTermCount is how many terms of the first matching trigger become priority terms.
const priorityTermCount = 3

// Expansion is the result of expanding a normalized query.
type Expansion struct {
	// Terms starts with the query and holds each matched term once, in first-seen order.
	Terms []string
	// Priority holds up to three terms of the first matching entry.
	Priority []string
}

// Expander looks up expansion terms for a query.
type Expander struct {
	entries []ExpansionEntry
}

// NewExpander creates an Expander over entries, matched in slice order.
func NewExpander(entries []ExpansionEntry) *Expander {
	return &Expander{entries: entries}
}

// Expand collects the terms of every entry whose trigger occurs in query.
func (e *Expander) Expand(query string) Expansion {
	var exp Expansion
	seen := make(map[string]bool)
	add := func(term string) {
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		exp.Terms = append(exp.Terms, term)
	}

	add(query)
	if query == "" {
		return exp
	}

	for _, entry := range e.entries {
		if !strings.Contains(query, entry.Trigger) {
			continue
		}
		if len(exp.Priority) == 0 {
			n := min(priorityTermCount, len(entry.Terms))
			exp.Priority = append([]string{}, entry.Terms[:n]...)
		}
		for _, term := range entry.Terms {
			add(term)
		}
	}

	return exp
}

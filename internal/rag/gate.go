package rag

import (
	"strings"

	"momgyeot-ai/internal/storage"
)

// PersonaBonus is added to the score of records admitted by a persona prefix.
const PersonaBonus = 20

// Gate decides which records a request may see.
type Gate struct {
	personas map[string]PersonaEntry
}

// NewGate indexes personas by name and alias.
func NewGate(personas []PersonaEntry) *Gate {
	g := &Gate{personas: make(map[string]PersonaEntry)}
	for _, p := range personas {
		g.personas[p.Name] = p
		for _, alias := range p.Aliases {
			g.personas[alias] = p
		}
	}
	return g
}

// ResolvePersona maps a name or alias to its canonical persona name.
// Unknown or empty values resolve to "".
func (g *Gate) ResolvePersona(raw string) string {
	p, ok := g.personas[Normalize(raw)]
	if !ok {
		return ""
	}
	return p.Name
}

// Prompt returns the prompt descriptor of a persona name or alias, or "".
func (g *Gate) Prompt(persona string) string {
	return g.personas[Normalize(persona)].Prompt
}

// Eligible reports whether rec may be returned and the bonus it earns.
// An explicit category is an exact match on rec.Category and earns nothing.
// Otherwise a persona with prefixes admits records whose id starts with one of them.
// Without either, every record is eligible.
func (g *Gate) Eligible(rec storage.KnowledgeRecord, persona, explicitCategory string) (bool, int) {
	if explicitCategory != "" {
		return rec.Category == explicitCategory, 0
	}

	p, ok := g.personas[Normalize(persona)]
	if !ok || len(p.Prefixes) == 0 {
		return true, 0
	}

	for _, prefix := range p.Prefixes {
		if strings.HasPrefix(rec.ID, prefix) {
			return true, PersonaBonus
		}
	}
	return false, 0
}

package rag

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// ExpansionEntry maps a trigger substring to its expansion terms.
type ExpansionEntry struct {
	Trigger string   `yaml:"trigger"`
	Terms   []string `yaml:"terms"`
}

// PersonaEntry describes one audience segment.
type PersonaEntry struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	Prefixes []string `yaml:"prefixes"`
	Prompt   string   `yaml:"prompt"`
}

// Tables holds the static lookup data for retrieval. It is never mutated after loading.
type Tables struct {
	Expansions []ExpansionEntry `yaml:"expansions"`
	Personas   []PersonaEntry   `yaml:"personas"`
}

// LoadTables parses and validates a tables document.
// Triggers and terms are lowercased so they compare against normalized queries.
func LoadTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}

	for i := range t.Expansions {
		e := &t.Expansions[i]
		e.Trigger = Normalize(e.Trigger)
		if e.Trigger == "" {
			return nil, fmt.Errorf("expansion entry %d has an empty trigger", i)
		}
		for j, term := range e.Terms {
			e.Terms[j] = Normalize(term)
		}
	}

	seen := make(map[string]bool)
	for i := range t.Personas {
		p := &t.Personas[i]
		p.Name = Normalize(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("persona entry %d has an empty name", i)
		}
		for _, key := range append([]string{p.Name}, p.Aliases...) {
			key = Normalize(key)
			if seen[key] {
				return nil, fmt.Errorf("persona name or alias %q is declared twice", key)
			}
			seen[key] = true
		}
		for j, a := range p.Aliases {
			p.Aliases[j] = Normalize(a)
		}
		for j, prefix := range p.Prefixes {
			p.Prefixes[j] = strings.TrimSpace(prefix)
		}
	}

	return &t, nil
}

var defaultTables = sync.OnceValues(func() (*Tables, error) {
	return LoadTables(defaultTablesYAML)
})

// DefaultTables returns the embedded tables, parsed once per process.
func DefaultTables() (*Tables, error) {
	return defaultTables()
}

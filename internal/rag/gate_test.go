package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momgyeot-ai/internal/storage"
)

func defaultGate(t *testing.T) *Gate {
	t.Helper()
	tables, err := DefaultTables()
	require.NoError(t, err)
	return NewGate(tables.Personas)
}

func TestGate_Eligible(t *testing.T) {
	g := defaultGate(t)

	tests := []struct {
		name         string
		rec          storage.KnowledgeRecord
		persona      string
		category     string
		wantEligible bool
		wantBonus    int
	}{
		{
			name:         "explicit category match",
			rec:          storage.KnowledgeRecord{ID: "A-001", Category: "breastfeeding"},
			category:     "breastfeeding",
			wantEligible: true,
		},
		{
			name:         "explicit category mismatch ignores persona",
			rec:          storage.KnowledgeRecord{ID: "PREG-001", Category: "pregnancy"},
			persona:      "pregnant",
			category:     "breastfeeding",
			wantEligible: false,
		},
		{
			name:         "persona prefix match earns bonus",
			rec:          storage.KnowledgeRecord{ID: "PREG-001"},
			persona:      "pregnant",
			wantEligible: true,
			wantBonus:    PersonaBonus,
		},
		{
			name:         "preparing persona excludes pregnancy records",
			rec:          storage.KnowledgeRecord{ID: "PREG-001"},
			persona:      "preparing",
			wantEligible: false,
		},
		{
			name:         "alias resolves",
			rec:          storage.KnowledgeRecord{ID: "B-014"},
			persona:      "AGI",
			wantEligible: true,
			wantBonus:    PersonaBonus,
		},
		{
			name:         "newborn excludes prep records",
			rec:          storage.KnowledgeRecord{ID: "PREP-003"},
			persona:      "newborn",
			wantEligible: false,
		},
		{
			name:         "unknown persona sees everything",
			rec:          storage.KnowledgeRecord{ID: "PREG-001"},
			persona:      "grandparent",
			wantEligible: true,
		},
		{
			name:         "no persona sees everything",
			rec:          storage.KnowledgeRecord{ID: "Z-001"},
			wantEligible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eligible, bonus := g.Eligible(tt.rec, tt.persona, tt.category)
			assert.Equal(t, tt.wantEligible, eligible)
			assert.Equal(t, tt.wantBonus, bonus)
		})
	}
}

func TestGate_ResolvePersona(t *testing.T) {
	g := defaultGate(t)

	assert.Equal(t, "preparing", g.ResolvePersona("saessak"))
	assert.Equal(t, "pregnant", g.ResolvePersona(" Yebi "))
	assert.Equal(t, "newborn", g.ResolvePersona("newborn"))
	assert.Equal(t, "", g.ResolvePersona("default"))
	assert.Equal(t, "", g.ResolvePersona(""))
}

func TestGate_Prompt(t *testing.T) {
	g := defaultGate(t)

	assert.Contains(t, g.Prompt("agi"), "초보맘곁 모드")
	assert.Contains(t, g.Prompt("pregnant"), "임신맘곁 모드")
	assert.Empty(t, g.Prompt("default"))
}

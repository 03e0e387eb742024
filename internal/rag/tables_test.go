package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables, err := DefaultTables()
	require.NoError(t, err)

	require.NotEmpty(t, tables.Expansions)
	assert.Equal(t, "안물", tables.Expansions[0].Trigger)
	assert.Equal(t, "언어", tables.Expansions[len(tables.Expansions)-1].Trigger)

	names := make([]string, 0, len(tables.Personas))
	for _, p := range tables.Personas {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Prompt, "persona %s should carry a prompt", p.Name)
	}
	assert.Equal(t, []string{"preparing", "pregnant", "newborn"}, names)

	again, err := DefaultTables()
	require.NoError(t, err)
	assert.Same(t, tables, again)
}

func TestLoadTables(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, tables *Tables)
	}{
		{
			name: "lowercases triggers and aliases",
			doc: `
expansions:
  - trigger: " Latch "
    terms: [Latch, Position]
personas:
  - name: Newborn
    aliases: [AGI]
    prefixes: [A]
`,
			check: func(t *testing.T, tables *Tables) {
				assert.Equal(t, "latch", tables.Expansions[0].Trigger)
				assert.Equal(t, []string{"latch", "position"}, tables.Expansions[0].Terms)
				assert.Equal(t, "newborn", tables.Personas[0].Name)
				assert.Equal(t, []string{"agi"}, tables.Personas[0].Aliases)
			},
		},
		{
			name:    "empty trigger",
			doc:     "expansions:\n  - trigger: ''\n    terms: [a]\n",
			wantErr: true,
		},
		{
			name:    "duplicate alias",
			doc:     "personas:\n  - name: a\n  - name: b\n    aliases: [A]\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			doc:     "expansions: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, err := LoadTables([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, tables)
			}
		})
	}
}

package render

import (
	"strings"
	"testing"
)

func TestMarkdown_ToHTML(t *testing.T) {
	m := NewMarkdown()

	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:     "bold title and paragraph",
			in:       "**젖몸살 대처법**\n\n따뜻한 찜질을 해 주세요.",
			contains: []string{"<strong>젖몸살 대처법</strong>", "<p>따뜻한 찜질을 해 주세요.</p>"},
		},
		{
			name:     "list",
			in:       "- 수분 섭취\n- 충분한 휴식",
			contains: []string{"<ul>", "<li>수분 섭취</li>"},
		},
		{
			name:     "hard wraps",
			in:       "첫 줄\n둘째 줄",
			contains: []string{"<br"},
		},
		{
			name:        "raw html dropped",
			in:          "<script>alert(1)</script>\n\n안전",
			notContains: []string{"<script>"},
			contains:    []string{"안전"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ToHTML(tt.in)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML() = %q, want it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("ToHTML() = %q, should not contain %q", got, unwanted)
				}
			}
		})
	}
}

package storage

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestRecordID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    RecordID
		wantErr bool
	}{
		{`"b0f7"`, "b0f7", false},
		{`42`, "42", false},
		{`null`, "", false},
		{`{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id RecordID
			err := json.Unmarshal([]byte(tt.in), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && id != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, id, tt.want)
			}
		})
	}
}

func TestKnowledgeRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    KnowledgeRecord
		wantErr bool
	}{
		{
			name: "well formed",
			in:   `{"id":"A-001","title":"t","content":"c","keywords":["울혈"],"category":"A","urgency":"즉시대응필요"}`,
			want: KnowledgeRecord{ID: "A-001", Title: "t", Content: "c", Keywords: []string{"울혈"}, Category: "A", Urgency: UrgencyImmediate},
		},
		{
			name: "keywords as text",
			in:   `{"id":"A-001","keywords":"젖몸살, 울혈"}`,
			want: KnowledgeRecord{ID: "A-001", Keywords: []string{}},
		},
		{
			name: "numeric id and category",
			in:   `{"id":17,"category":3,"keywords":null}`,
			want: KnowledgeRecord{ID: "17", Category: "3", Keywords: []string{}},
		},
		{
			name: "object title",
			in:   `{"id":"A-001","title":{"ko":"t"}}`,
			want: KnowledgeRecord{ID: "A-001", Keywords: []string{}},
		},
		{
			name:    "not an object",
			in:      `["A-001"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec KnowledgeRecord
			err := json.Unmarshal([]byte(tt.in), &rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(rec, tt.want) {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, rec, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2025-03-01T09:30:00Z",
		"2025-03-01T18:30:00+09:00",
		"2025-03-01T09:30:00",
		"2025-03-01 09:30:00+00",
		"2025-03-01 09:30:00",
	} {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) error = %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("ParseTimestamp(yesterday) expected error")
	}
}

package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Urgency levels used by knowledge records.
const (
	UrgencyImmediate = "즉시대응필요"
	UrgencyWithinDay = "24시간내확인"
)

// DefaultMateType is stored when a conversation has no mate type.
const DefaultMateType = "default"

// KnowledgeRecord is one unit of the curated knowledge base.
type KnowledgeRecord struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"content"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Category string   `json:"category" yaml:"category"`
	Urgency  string   `json:"urgency,omitempty" yaml:"urgency,omitempty"`
}

// UnmarshalJSON decodes a stored row without failing on loosely typed columns.
// Scalar fields accept strings or numbers; keywords that are not an array decode as empty.
func (r *KnowledgeRecord) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID       RecordID        `json:"id"`
		Title    json.RawMessage `json:"title"`
		Content  json.RawMessage `json:"content"`
		Keywords json.RawMessage `json:"keywords"`
		Category json.RawMessage `json:"category"`
		Urgency  json.RawMessage `json:"urgency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = KnowledgeRecord{
		ID:       string(aux.ID),
		Title:    looseString(aux.Title),
		Content:  looseString(aux.Content),
		Keywords: looseStrings(aux.Keywords),
		Category: looseString(aux.Category),
		Urgency:  looseString(aux.Urgency),
	}
	return nil
}

// looseString returns the text of a JSON string or number, and "" for anything else.
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var id RecordID
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return string(id)
}

// looseStrings keeps the non-empty scalar elements of a JSON array.
func looseStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := looseString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RecordID is a row id that may arrive as a JSON string or number.
type RecordID string

// UnmarshalJSON accepts both "abc" and 42.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid record id %s: %w", data, err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("invalid record id %s: %w", data, err)
	}
	*id = RecordID(n.String())
	return nil
}

// Conversation is one persisted question/answer exchange or transcript entry.
type Conversation struct {
	ID        RecordID  `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	MateType  string    `json:"mate_type"`
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Role      string    `json:"role,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp shapes produced by the record stores.
// Values without a zone are taken as UTC.
func ParseTimestamp(v string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", v)
}

// UnmarshalJSON accepts created_at with or without a zone offset.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	type alias Conversation
	aux := struct {
		*alias
		CreatedAt string `json:"created_at"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.CreatedAt == "" {
		c.CreatedAt = time.Time{}
		return nil
	}
	t, err := ParseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	c.CreatedAt = t
	return nil
}

// ConversationQuery selects conversations, newest first.
// An empty UserID matches every user.
type ConversationQuery struct {
	UserID   string
	MateType string
	Limit    int
	Offset   int
}

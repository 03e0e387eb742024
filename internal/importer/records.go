package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"momgyeot-ai/internal/storage"
)

// recordFile is the wrapped form of a record list: {records: [...]}.
type recordFile struct {
	Records []storage.KnowledgeRecord `yaml:"records"`
}

// ParseRecords decodes a YAML or JSON record list. Both a bare list and
// a document with a top-level records key are accepted.
func ParseRecords(data []byte) ([]storage.KnowledgeRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []storage.KnowledgeRecord{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	if len(node.Content) == 0 {
		return []storage.KnowledgeRecord{}, nil
	}

	var records []storage.KnowledgeRecord
	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		if err := node.Content[0].Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode record list: %w", err)
		}
	case yaml.MappingNode:
		var wrapped recordFile
		if err := node.Content[0].Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode record document: %w", err)
		}
		records = wrapped.Records
	default:
		return nil, errors.New("records must be a list or a document with a records key")
	}

	for i := range records {
		if err := normalizeRecord(&records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	if records == nil {
		records = []storage.KnowledgeRecord{}
	}
	return records, nil
}

func normalizeRecord(r *storage.KnowledgeRecord) error {
	r.ID = strings.TrimSpace(r.ID)
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	r.Urgency = strings.TrimSpace(r.Urgency)
	if r.ID == "" {
		return errors.New("id is required")
	}
	if r.Title == "" {
		return fmt.Errorf("%s: title is required", r.ID)
	}
	kept := r.Keywords[:0]
	for _, kw := range r.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			kept = append(kept, kw)
		}
	}
	if kept == nil {
		kept = []string{}
	}
	r.Keywords = kept
	return nil
}

package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	knowledgeTable    = "knowledge_units"
	conversationTable = "conversations"
)

// StatusError is returned when the record store answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("record store returned status %d: %s", e.StatusCode, e.Body)
}

// PostgRESTStore talks to a PostgREST (Supabase) endpoint.
// It implements the Store interface.
type PostgRESTStore struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewPostgRESTStore creates a new PostgRESTStore. baseURL is the project URL without /rest/v1.
func NewPostgRESTStore(baseURL, apiKey string) *PostgRESTStore {
	return &PostgRESTStore{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		client:  http.DefaultClient,
	}
}

// ListKnowledge fetches knowledge_units, filtered by category when it is non-empty.
func (s *PostgRESTStore) ListKnowledge(ctx context.Context, category string) ([]KnowledgeRecord, error) {
	q := url.Values{}
	q.Set("select", "*")
	if category != "" {
		q.Set("category", "eq."+category)
	}

	var records []KnowledgeRecord
	if _, err := s.do(ctx, http.MethodGet, knowledgeTable, q, nil, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list knowledge: %w", err)
	}
	if records == nil {
		records = []KnowledgeRecord{}
	}
	return records, nil
}

// UpsertKnowledge posts records with merge-duplicates resolution.
func (s *PostgRESTStore) UpsertKnowledge(ctx context.Context, records []KnowledgeRecord) error {
	if len(records) == 0 {
		return nil
	}
	headers := http.Header{}
	headers.Set("Prefer", "resolution=merge-duplicates,return=minimal")
	q := url.Values{}
	q.Set("on_conflict", "id")

	if _, err := s.do(ctx, http.MethodPost, knowledgeTable, q, headers, records, nil); err != nil {
		return fmt.Errorf("failed to upsert knowledge: %w", err)
	}
	return nil
}

// CountKnowledge counts knowledge_units rows.
func (s *PostgRESTStore) CountKnowledge(ctx context.Context) (int, error) {
	n, err := s.count(ctx, knowledgeTable, url.Values{})
	if err != nil {
		return 0, fmt.Errorf("failed to count knowledge: %w", err)
	}
	return n, nil
}

// AppendConversation posts conv to the conversations table.
func (s *PostgRESTStore) AppendConversation(ctx context.Context, conv *Conversation, returnRecord bool) error {
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	if conv.MateType == "" {
		conv.MateType = DefaultMateType
	}

	headers := http.Header{}
	if !returnRecord {
		headers.Set("Prefer", "return=minimal")
		if _, err := s.do(ctx, http.MethodPost, conversationTable, nil, headers, conv, nil); err != nil {
			return fmt.Errorf("failed to append conversation: %w", err)
		}
		return nil
	}

	headers.Set("Prefer", "return=representation")
	var rows []Conversation
	if _, err := s.do(ctx, http.MethodPost, conversationTable, nil, headers, conv, &rows); err != nil {
		return fmt.Errorf("failed to append conversation: %w", err)
	}
	if len(rows) > 0 {
		*conv = rows[0]
	}
	return nil
}

// ListConversations fetches conversations ordered by created_at descending.
func (s *PostgRESTStore) ListConversations(ctx context.Context, cq ConversationQuery) ([]Conversation, error) {
	q := url.Values{}
	q.Set("select", "*")
	if cq.UserID != "" {
		q.Set("user_id", "eq."+cq.UserID)
	}
	if cq.MateType != "" {
		q.Set("mate_type", "eq."+cq.MateType)
	}
	q.Set("order", "created_at.desc")
	if cq.Limit > 0 {
		q.Set("limit", strconv.Itoa(cq.Limit))
	}
	if cq.Offset > 0 {
		q.Set("offset", strconv.Itoa(cq.Offset))
	}

	var convs []Conversation
	if _, err := s.do(ctx, http.MethodGet, conversationTable, q, nil, nil, &convs); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	if convs == nil {
		convs = []Conversation{}
	}
	return convs, nil
}

// CountConversations counts conversations created at or after since.
func (s *PostgRESTStore) CountConversations(ctx context.Context, since time.Time) (int, error) {
	q := url.Values{}
	if !since.IsZero() {
		q.Set("created_at", "gte."+since.UTC().Format(time.RFC3339))
	}
	n, err := s.count(ctx, conversationTable, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count conversations: %w", err)
	}
	return n, nil
}

// Ping reads a single knowledge id.
func (s *PostgRESTStore) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")
	if _, err := s.do(ctx, http.MethodGet, knowledgeTable, q, nil, nil, nil); err != nil {
		return fmt.Errorf("record store unreachable: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no connections of its own.
func (s *PostgRESTStore) Close() error {
	return nil
}

// count selects ids with an exact count. The Content-Range total is used when present,
// otherwise the number of returned rows.
func (s *PostgRESTStore) count(ctx context.Context, table string, q url.Values) (int, error) {
	q.Set("select", "id")
	headers := http.Header{}
	headers.Set("Prefer", "count=exact")

	var rows []json.RawMessage
	respHeaders, err := s.do(ctx, http.MethodGet, table, q, headers, nil, &rows)
	if err != nil {
		return 0, err
	}
	if total, ok := parseContentRangeTotal(respHeaders.Get("Content-Range")); ok {
		return total, nil
	}
	return len(rows), nil
}

// parseContentRangeTotal reads the total from "0-24/3573" or "*/0".
func parseContentRangeTotal(v string) (int, bool) {
	i := strings.LastIndex(v, "/")
	if i < 0 || i == len(v)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(v[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *PostgRESTStore) do(ctx context.Context, method, table string, q url.Values, headers http.Header, in, out any) (http.Header, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", s.BaseURL, table)
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.APIKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.APIKey))
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.Header, nil
}

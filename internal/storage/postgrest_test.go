package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgRESTStore_ListKnowledge(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		serverResp func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantIDs    []string
		wantStatus int
	}{
		{
			name:     "all records",
			category: "",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rest/v1/knowledge_units", r.URL.Path)
				assert.Equal(t, "*", r.URL.Query().Get("select"))
				assert.Empty(t, r.URL.Query().Get("category"))
				assert.Equal(t, "anon-key", r.Header.Get("apikey"))
				assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(`[{"id":"A-001","title":"젖몸살","content":"c","keywords":["울혈"],"category":"A"},{"id":"B-001","title":"t","content":"c","keywords":null,"category":"B"}]`))
			},
			wantIDs: []string{"A-001", "B-001"},
		},
		{
			name:     "category filter",
			category: "A",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "eq.A", r.URL.Query().Get("category"))
				_, _ = w.Write([]byte(`[{"id":"A-001","title":"t","content":"c","category":"A"}]`))
			},
			wantIDs: []string{"A-001"},
		},
		{
			name: "empty store",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
			wantIDs: []string{},
		},
		{
			name: "loosely typed rows",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"id":"A-001","title":"젖몸살","content":"c","keywords":"젖몸살, 울혈","category":"A"},{"id":"A-002","title":"t","content":"c","keywords":["a"],"category":"A"},{"id":17,"title":"t","content":"c","keywords":["b"],"category":3}]`))
			},
			wantIDs: []string{"A-001", "A-002", "17"},
		},
		{
			name: "upstream failure",
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"boom"}`))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.serverResp(t, w, r)
			}))
			defer server.Close()

			store := NewPostgRESTStore(server.URL+"/", "anon-key")
			records, err := store.ListKnowledge(context.Background(), tt.category)

			if tt.wantStatus != 0 {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr), "expected StatusError, got %v", err)
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestPostgRESTStore_ListKnowledge_LooseColumns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"A-001","title":"젖몸살","content":"c","keywords":"젖몸살, 울혈","category":"A"},{"id":17,"title":"t","content":"c","keywords":["b",2,null],"category":3,"urgency":null}]`))
	}))
	defer server.Close()

	store := NewPostgRESTStore(server.URL+"/", "anon-key")
	records, err := store.ListKnowledge(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "A-001", records[0].ID)
	assert.Equal(t, "젖몸살", records[0].Title)
	assert.Empty(t, records[0].Keywords)

	assert.Equal(t, "17", records[1].ID)
	assert.Equal(t, "3", records[1].Category)
	assert.Equal(t, []string{"b", "2"}, records[1].Keywords)
	assert.Empty(t, records[1].Urgency)
}

func TestPostgRESTStore_AppendConversation(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/conversations", r.URL.Path)
			assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		store := NewPostgRESTStore(server.URL, "k")
		conv := &Conversation{UserID: "u1", Question: "q", Answer: "a"}
		require.NoError(t, store.AppendConversation(context.Background(), conv, false))

		assert.Equal(t, "u1", got["user_id"])
		assert.Equal(t, DefaultMateType, got["mate_type"])
		assert.Equal(t, "q", got["question"])
		assert.NotEmpty(t, got["created_at"])
		assert.NotContains(t, got, "id")
	})

	t.Run("representation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`[{"id":42,"user_id":"u1","mate_type":"agi","role":"user","content":"hi","created_at":"2025-03-01T10:00:00.123456"}]`))
		}))
		defer server.Close()

		store := NewPostgRESTStore(server.URL, "k")
		conv := &Conversation{UserID: "u1", MateType: "agi", Role: "user", Content: "hi"}
		require.NoError(t, store.AppendConversation(context.Background(), conv, true))

		assert.Equal(t, RecordID("42"), conv.ID)
		assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC), conv.CreatedAt)
	})

	t.Run("failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		store := NewPostgRESTStore(server.URL, "k")
		err := store.AppendConversation(context.Background(), &Conversation{UserID: "u1"}, false)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	})
}

func TestPostgRESTStore_ListConversations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.u1", q.Get("user_id"))
		assert.Equal(t, "eq.yebi", q.Get("mate_type"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "", q.Get("offset"))
		_, _ = w.Write([]byte(`[{"id":"c2","user_id":"u1","mate_type":"yebi","question":"q2","answer":"a2","created_at":"2025-03-02T09:00:00+00:00"},{"id":"c1","user_id":"u1","mate_type":"yebi","question":"q1","answer":"a1","created_at":"2025-03-01T09:00:00+00:00"}]`))
	}))
	defer server.Close()

	store := NewPostgRESTStore(server.URL, "k")
	convs, err := store.ListConversations(context.Background(), ConversationQuery{UserID: "u1", MateType: "yebi", Limit: 20})
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, RecordID("c2"), convs[0].ID)
	assert.Equal(t, "q2", convs[0].Question)
	assert.True(t, convs[0].CreatedAt.After(convs[1].CreatedAt))
}

func TestPostgRESTStore_Counts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id", r.URL.Query().Get("select"))
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		switch r.URL.Path {
		case "/rest/v1/knowledge_units":
			w.Header().Set("Content-Range", "0-1/120")
			_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
		case "/rest/v1/conversations":
			if r.URL.Query().Get("created_at") != "" {
				assert.Equal(t, "gte.2025-03-01T00:00:00Z", r.URL.Query().Get("created_at"))
			}
			_, _ = w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
		}
	}))
	defer server.Close()

	store := NewPostgRESTStore(server.URL, "k")

	n, err := store.CountKnowledge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, n)

	n, err = store.CountConversations(context.Background(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPostgRESTStore_UpsertKnowledge(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "resolution=merge-duplicates,return=minimal", r.Header.Get("Prefer"))
		assert.Equal(t, "id", r.URL.Query().Get("on_conflict"))
		var body []KnowledgeRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 2)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	store := NewPostgRESTStore(server.URL, "k")
	require.NoError(t, store.UpsertKnowledge(context.Background(), nil))
	require.NoError(t, store.UpsertKnowledge(context.Background(), []KnowledgeRecord{{ID: "A-001"}, {ID: "A-002"}}))
	assert.Equal(t, 1, calls)
}

func TestPostgRESTStore_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	store := NewPostgRESTStore(server.URL, "k")
	assert.Error(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

func TestParseContentRangeTotal(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"0-24/3573", 3573, true},
		{"*/0", 0, true},
		{"0-24/*", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseContentRangeTotal(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

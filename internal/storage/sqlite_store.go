package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore is the local file-backed Store.
type SQLiteStore struct {
	db            *sql.DB
	knowledge     *KnowledgeRepo
	conversations *ConversationRepo
}

// OpenSQLite opens the database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:            db,
		knowledge:     NewKnowledgeRepo(db),
		conversations: NewConversationRepo(db),
	}
}

func (s *SQLiteStore) ListKnowledge(ctx context.Context, category string) ([]KnowledgeRecord, error) {
	return s.knowledge.List(ctx, category)
}

func (s *SQLiteStore) UpsertKnowledge(ctx context.Context, records []KnowledgeRecord) error {
	return s.knowledge.Upsert(ctx, records)
}

func (s *SQLiteStore) CountKnowledge(ctx context.Context) (int, error) {
	return s.knowledge.Count(ctx)
}

// AppendConversation always fills in conv's id, so returnRecord has no extra effect.
func (s *SQLiteStore) AppendConversation(ctx context.Context, conv *Conversation, returnRecord bool) error {
	return s.conversations.Insert(ctx, conv)
}

func (s *SQLiteStore) ListConversations(ctx context.Context, q ConversationQuery) ([]Conversation, error) {
	return s.conversations.List(ctx, q)
}

func (s *SQLiteStore) CountConversations(ctx context.Context, since time.Time) (int, error) {
	return s.conversations.Count(ctx, since)
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

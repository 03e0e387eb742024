// Package postgres implements the record store on PostgreSQL using pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"momgyeot-ai/internal/storage"
)

// Store implements storage.Store on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL, verifies the connection and returns a Store.
// Migrations are not run; call Migrate first.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListKnowledge(ctx context.Context, category string) ([]storage.KnowledgeRecord, error) {
	query := `SELECT id, title, content, keywords, category, urgency FROM knowledge_units`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY seq`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge: %w", err)
	}
	defer rows.Close()

	records := []storage.KnowledgeRecord{}
	for rows.Next() {
		var rec storage.KnowledgeRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.Keywords, &rec.Category, &rec.Urgency); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate knowledge: %w", err)
	}
	return records, nil
}

func (s *Store) UpsertKnowledge(ctx context.Context, records []storage.KnowledgeRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		keywords := rec.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		batch.Queue(
			`INSERT INTO knowledge_units (id, title, content, keywords, category, urgency, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, now())
			 ON CONFLICT (id) DO UPDATE SET
			 title = EXCLUDED.title, content = EXCLUDED.content, keywords = EXCLUDED.keywords,
			 category = EXCLUDED.category, urgency = EXCLUDED.urgency, updated_at = now()`,
			rec.ID, rec.Title, rec.Content, keywords, rec.Category, rec.Urgency,
		)
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for _, rec := range records {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("failed to upsert knowledge %s: %w", rec.ID, err)
			}
		}
		return br.Close()
	})
}

func (s *Store) CountKnowledge(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM knowledge_units`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count knowledge: %w", err)
	}
	return n, nil
}

// AppendConversation inserts conv. The generated id and timestamp are always written back.
func (s *Store) AppendConversation(ctx context.Context, conv *storage.Conversation, returnRecord bool) error {
	if conv.ID == "" {
		conv.ID = storage.RecordID(uuid.New().String())
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}
	if conv.MateType == "" {
		conv.MateType = storage.DefaultMateType
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO conversations (id, user_id, mate_type, question, answer, role, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(conv.ID), conv.UserID, conv.MateType, conv.Question, conv.Answer, conv.Role, conv.Content, conv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}

func (s *Store) ListConversations(ctx context.Context, q storage.ConversationQuery) ([]storage.Conversation, error) {
	query := `SELECT id::text, user_id, mate_type, question, answer, role, content, created_at
		FROM conversations
		WHERE ($1 = '' OR user_id = $1) AND ($2 = '' OR mate_type = $2)
		ORDER BY created_at DESC`
	args := []any{q.UserID, q.MateType}
	if q.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, q.Limit)
	}
	if q.Offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, q.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	convs := []storage.Conversation{}
	for rows.Next() {
		var c storage.Conversation
		var id string
		if err := rows.Scan(&id, &c.UserID, &c.MateType, &c.Question, &c.Answer, &c.Role, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		c.ID = storage.RecordID(id)
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}
	return convs, nil
}

func (s *Store) CountConversations(ctx context.Context, since time.Time) (int, error) {
	var n int
	var err error
	if since.IsZero() {
		err = s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM conversations`).Scan(&n)
	} else {
		err = s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM conversations WHERE created_at >= $1`, since).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count conversations: %w", err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

var _ storage.Store = (*Store)(nil)

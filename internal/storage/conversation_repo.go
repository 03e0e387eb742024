package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConversationRepo provides conversations operations on SQLite.
type ConversationRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewConversationRepo creates a new ConversationRepo.
func NewConversationRepo(db *sql.DB) *ConversationRepo {
	return &ConversationRepo{db: db, now: time.Now}
}

// Insert stores conv, generating a UUID and timestamp when they are empty.
func (r *ConversationRepo) Insert(ctx context.Context, conv *Conversation) error {
	if conv.ID == "" {
		conv.ID = RecordID(uuid.New().String())
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = r.now()
	}
	conv.CreatedAt = conv.CreatedAt.UTC()
	if conv.MateType == "" {
		conv.MateType = DefaultMateType
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, mate_type, question, answer, role, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(conv.ID), conv.UserID, conv.MateType, conv.Question, conv.Answer, conv.Role, conv.Content,
		conv.CreatedAt.Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}

// List returns conversations newest first.
func (r *ConversationRepo) List(ctx context.Context, q ConversationQuery) ([]Conversation, error) {
	query := "SELECT id, user_id, mate_type, question, answer, role, content, created_at FROM conversations WHERE 1 = 1"
	var args []any
	if q.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, q.UserID)
	}
	if q.MateType != "" {
		query += " AND mate_type = ?"
		args = append(args, q.MateType)
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, max(q.Offset, 0))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	convs := []Conversation{}
	for rows.Next() {
		var c Conversation
		var id, createdAt string
		if err := rows.Scan(&id, &c.UserID, &c.MateType, &c.Question, &c.Answer, &c.Role, &c.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		c.ID = RecordID(id)
		c.CreatedAt, err = ParseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}

	return convs, nil
}

// Count counts conversations created at or after since. A zero since counts everything.
func (r *ConversationRepo) Count(ctx context.Context, since time.Time) (int, error) {
	var n int
	var err error
	if since.IsZero() {
		err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversations").Scan(&n)
	} else {
		err = r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM conversations WHERE created_at >= ?",
			since.UTC().Format(sqliteTimeLayout),
		).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count conversations: %w", err)
	}
	return n, nil
}

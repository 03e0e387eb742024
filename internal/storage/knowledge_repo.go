package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// KnowledgeRepo provides knowledge_units operations on SQLite.
type KnowledgeRepo struct {
	db *sql.DB
}

// NewKnowledgeRepo creates a new KnowledgeRepo.
func NewKnowledgeRepo(db *sql.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

// List returns records in insertion order, filtered by category when it is non-empty.
func (r *KnowledgeRepo) List(ctx context.Context, category string) ([]KnowledgeRecord, error) {
	query := "SELECT id, title, content, keywords, category, urgency FROM knowledge_units"
	var args []any
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []KnowledgeRecord{}
	for rows.Next() {
		var rec KnowledgeRecord
		var keywords string
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &keywords, &rec.Category, &rec.Urgency); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &rec.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate knowledge: %w", err)
	}

	return records, nil
}

// Upsert inserts records or updates existing ones in a single transaction.
func (r *KnowledgeRepo) Upsert(ctx context.Context, records []KnowledgeRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO knowledge_units (id, title, content, keywords, category, urgency, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET
		 title = excluded.title, content = excluded.content, keywords = excluded.keywords,
		 category = excluded.category, urgency = excluded.urgency, updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, rec := range records {
		keywords := rec.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		raw, err := json.Marshal(keywords)
		if err != nil {
			return fmt.Errorf("failed to encode keywords for %s: %w", rec.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Title, rec.Content, string(raw), rec.Category, rec.Urgency); err != nil {
			return fmt.Errorf("failed to upsert knowledge %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit knowledge: %w", err)
	}
	return nil
}

// Count returns the number of records.
func (r *KnowledgeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM knowledge_units").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count knowledge: %w", err)
	}
	return n, nil
}

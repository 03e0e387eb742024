package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks momgyeot-ai/internal/storage KnowledgeStore,ConversationStore

import (
	"context"
	"time"
)

// KnowledgeStore defines the knowledge base operations.
type KnowledgeStore interface {
	// ListKnowledge returns every record, or only those of category when it is non-empty.
	// Records come back in store order.
	ListKnowledge(ctx context.Context, category string) ([]KnowledgeRecord, error)
	// UpsertKnowledge inserts records or replaces existing ones with the same id.
	UpsertKnowledge(ctx context.Context, records []KnowledgeRecord) error
	// CountKnowledge returns the number of records.
	CountKnowledge(ctx context.Context) (int, error)
}

// ConversationStore defines the conversation log operations.
type ConversationStore interface {
	// AppendConversation stores conv. CreatedAt is filled in when zero.
	// When returnRecord is set the stored row, including its id, is written back into conv.
	AppendConversation(ctx context.Context, conv *Conversation, returnRecord bool) error
	// ListConversations returns conversations newest first.
	ListConversations(ctx context.Context, q ConversationQuery) ([]Conversation, error)
	// CountConversations counts conversations created at or after since.
	// A zero since counts everything.
	CountConversations(ctx context.Context, since time.Time) (int, error)
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// Store is a complete record store backend.
type Store interface {
	KnowledgeStore
	ConversationStore
	Close() error
}

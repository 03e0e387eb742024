package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_history_service.go -package=mocks momgyeot-ai/internal/service ConversationRepository,HistoryService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/storage"
)

const (
	// DefaultHistoryLimit is used when a history query does not set a limit.
	DefaultHistoryLimit = 20
	maxHistoryLimit     = 100

	labelToday     = "오늘"
	labelYesterday = "어제"
)

// ConversationRepository reads and appends the conversation log.
type ConversationRepository interface {
	AppendConversation(ctx context.Context, conv *storage.Conversation, returnRecord bool) error
	ListConversations(ctx context.Context, q storage.ConversationQuery) ([]storage.Conversation, error)
}

// HistoryQuery selects a page of one user's conversations.
type HistoryQuery struct {
	UserID   string
	MateType string
	Limit    int
	Offset   int
}

// HistoryPage is a page of conversations, newest first, with date groups.
type HistoryPage struct {
	Conversations []storage.Conversation
	// Grouped maps 오늘, 어제 or "M월 D일" to the conversations of that day.
	Grouped map[string][]storage.Conversation
	Count   int
}

// AppendRequest is a transcript entry written by a client.
// Either Role and Content or Question and Answer must be set.
type AppendRequest struct {
	UserID   string
	MateType string
	Role     string
	Content  string
	Question string
	Answer   string
}

// HistoryService serves the per-user conversation log.
type HistoryService interface {
	List(ctx context.Context, q HistoryQuery) (HistoryPage, error)
	Append(ctx context.Context, req AppendRequest) (storage.Conversation, error)
}

type historyService struct {
	repo ConversationRepository
	loc  *time.Location
	now  func() time.Time
}

// NewHistoryService creates a new HistoryService. A nil repo answers ErrNotConfigured.
// Day groups are computed in loc.
func NewHistoryService(repo ConversationRepository, loc *time.Location) HistoryService {
	return newHistoryService(repo, loc, time.Now)
}

func newHistoryService(repo ConversationRepository, loc *time.Location, now func() time.Time) *historyService {
	if loc == nil {
		loc = time.UTC
	}
	return &historyService{repo: repo, loc: loc, now: now}
}

func (s *historyService) List(ctx context.Context, q HistoryQuery) (HistoryPage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	userID := strings.TrimSpace(q.UserID)
	if userID == "" {
		return HistoryPage{}, &ValidationError{Field: "userId", Message: "required"}
	}
	if s.repo == nil {
		return HistoryPage{}, ErrNotConfigured
	}

	limit := q.Limit
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	offset := max(q.Offset, 0)

	convs, err := s.repo.ListConversations(ctx, storage.ConversationQuery{
		UserID:   userID,
		MateType: strings.TrimSpace(q.MateType),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch history", "error", err, "user_id", userID)
		return HistoryPage{}, WrapError(err, "failed to fetch history")
	}
	if convs == nil {
		convs = []storage.Conversation{}
	}

	return HistoryPage{
		Conversations: convs,
		Grouped:       GroupByDay(convs, s.now(), s.loc),
		Count:         len(convs),
	}, nil
}

func (s *historyService) Append(ctx context.Context, req AppendRequest) (storage.Conversation, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return storage.Conversation{}, &ValidationError{Field: "userId", Message: "required"}
	}
	transcript := req.Role != "" && req.Content != ""
	exchange := req.Question != "" && req.Answer != ""
	if !transcript && !exchange {
		return storage.Conversation{}, &ValidationError{Field: "content", Message: "required (role and content, or question and answer)"}
	}
	if s.repo == nil {
		return storage.Conversation{}, ErrNotConfigured
	}

	conv := storage.Conversation{
		UserID:    strings.TrimSpace(req.UserID),
		MateType:  req.MateType,
		Role:      req.Role,
		Content:   req.Content,
		Question:  req.Question,
		Answer:    req.Answer,
		CreatedAt: s.now().UTC(),
	}
	if conv.MateType == "" {
		conv.MateType = storage.DefaultMateType
	}

	if err := s.repo.AppendConversation(ctx, &conv, true); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to append conversation", "error", err, "user_id", conv.UserID)
		return storage.Conversation{}, WrapError(err, "failed to append conversation")
	}
	return conv, nil
}

// GroupByDay buckets convs by their calendar day in loc relative to now.
// Order within a bucket follows convs.
func GroupByDay(convs []storage.Conversation, now time.Time, loc *time.Location) map[string][]storage.Conversation {
	groups := make(map[string][]storage.Conversation)
	today := startOfDay(now, loc)
	yesterday := today.AddDate(0, 0, -1)

	for _, c := range convs {
		day := startOfDay(c.CreatedAt, loc)
		var label string
		switch {
		case day.Equal(today):
			label = labelToday
		case day.Equal(yesterday):
			label = labelYesterday
		default:
			label = fmt.Sprintf("%d월 %d일", int(day.Month()), day.Day())
		}
		groups[label] = append(groups[label], c)
	}
	return groups
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

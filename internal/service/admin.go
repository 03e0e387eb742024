package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_admin_service.go -package=mocks momgyeot-ai/internal/service StatsSource,AdminService

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/storage"
)

const recentConversationCount = 5

// StatsSource provides the counts behind the admin dashboard.
type StatsSource interface {
	CountConversations(ctx context.Context, since time.Time) (int, error)
	ListConversations(ctx context.Context, q storage.ConversationQuery) ([]storage.Conversation, error)
	CountKnowledge(ctx context.Context) (int, error)
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalConversations  int                    `json:"totalConversations"`
	TodayConversations  int                    `json:"todayConversations"`
	WeekConversations   int                    `json:"weekConversations"`
	TotalKnowledge      int                    `json:"totalKnowledge"`
	RecentConversations []storage.Conversation `json:"recentConversations"`
}

// AdminService handles admin login and statistics.
type AdminService interface {
	// Login exchanges the admin password for a session token.
	Login(ctx context.Context, password string) (string, error)
	// Authorize checks an Authorization header value.
	Authorize(header string) error
	// Stats collects dashboard statistics.
	Stats(ctx context.Context) (Stats, error)
}

type adminService struct {
	source   StatsSource
	password string
	loc      *time.Location
	now      func() time.Time
}

// NewAdminService creates a new AdminService. A nil source makes Stats return ErrNotConfigured.
func NewAdminService(source StatsSource, password string, loc *time.Location) AdminService {
	return newAdminService(source, password, loc, time.Now)
}

func newAdminService(source StatsSource, password string, loc *time.Location, now func() time.Time) *adminService {
	if loc == nil {
		loc = time.UTC
	}
	return &adminService{source: source, password: password, loc: loc, now: now}
}

// Login returns base64("admin:<unix millis>") for the right password.
func (s *adminService) Login(ctx context.Context, password string) (string, error) {
	if s.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "admin login rejected")
		return "", ErrUnauthorized
	}
	token := fmt.Sprintf("admin:%d", s.now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Authorize accepts any bearer token.
func (s *adminService) Authorize(header string) error {
	if !strings.HasPrefix(header, "Bearer ") {
		return ErrUnauthorized
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context) (Stats, error) {
	if s.source == nil {
		return Stats{}, ErrNotConfigured
	}

	now := s.now()
	today := startOfDay(now, s.loc)
	weekAgo := startOfDay(now.AddDate(0, 0, -7), s.loc)

	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.source.CountConversations(gctx, time.Time{})
		if err != nil {
			return WrapError(err, "failed to count conversations")
		}
		stats.TotalConversations = n
		return nil
	})
	g.Go(func() error {
		n, err := s.source.CountConversations(gctx, today)
		if err != nil {
			return WrapError(err, "failed to count today's conversations")
		}
		stats.TodayConversations = n
		return nil
	})
	g.Go(func() error {
		n, err := s.source.CountConversations(gctx, weekAgo)
		if err != nil {
			return WrapError(err, "failed to count this week's conversations")
		}
		stats.WeekConversations = n
		return nil
	})
	g.Go(func() error {
		n, err := s.source.CountKnowledge(gctx)
		if err != nil {
			return WrapError(err, "failed to count knowledge")
		}
		stats.TotalKnowledge = n
		return nil
	})
	g.Go(func() error {
		recent, err := s.source.ListConversations(gctx, storage.ConversationQuery{Limit: recentConversationCount})
		if err != nil {
			return WrapError(err, "failed to list recent conversations")
		}
		stats.RecentConversations = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to collect admin stats", "error", err)
		return Stats{}, err
	}
	if stats.RecentConversations == nil {
		stats.RecentConversations = []storage.Conversation{}
	}
	return stats, nil
}

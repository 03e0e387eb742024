package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"momgyeot-ai/internal/service"
	"momgyeot-ai/internal/service/mocks"
	"momgyeot-ai/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestAdminService_Login(t *testing.T) {
	now := time.UnixMilli(1767225600123)

	tests := []struct {
		name       string
		configured string
		password   string
		wantErr    bool
	}{
		{name: "correct password", configured: "momgyeot2024", password: "momgyeot2024"},
		{name: "wrong password", configured: "momgyeot2024", password: "nope", wantErr: true},
		{name: "empty configured password rejects everything", configured: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewAdminServiceAt(nil, tt.configured, time.UTC, now)
			token, err := svc.Login(context.Background(), tt.password)
			if tt.wantErr {
				if !errors.Is(err, service.ErrUnauthorized) {
					t.Errorf("Login() error = %v, want ErrUnauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			raw, err := base64.StdEncoding.DecodeString(token)
			if err != nil {
				t.Fatalf("token is not base64: %v", err)
			}
			if string(raw) != "admin:1767225600123" {
				t.Errorf("token = %q, want admin:1767225600123", raw)
			}
		})
	}
}

func TestAdminService_Authorize(t *testing.T) {
	svc := service.NewAdminService(nil, "pw", nil)

	tests := []struct {
		header  string
		wantErr bool
	}{
		{header: "Bearer YWRtaW46MQ==", wantErr: false},
		{header: "Bearer ", wantErr: false},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "bearer abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			err := svc.Authorize(tt.header)
			if (err != nil) != tt.wantErr {
				t.Errorf("Authorize(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
		})
	}
}

func TestAdminService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := seoul(t)
	// 2026-03-10 12:00 KST
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	weekAgo := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)

	source := mocks.NewMockStatsSource(ctrl)
	source.EXPECT().CountConversations(gomock.Any(), time.Time{}).Return(120, nil)
	source.EXPECT().CountConversations(gomock.Any(), today).Return(4, nil)
	source.EXPECT().CountConversations(gomock.Any(), weekAgo).Return(31, nil)
	source.EXPECT().CountKnowledge(gomock.Any()).Return(257, nil)
	source.EXPECT().
		ListConversations(gomock.Any(), storage.ConversationQuery{Limit: 5}).
		Return([]storage.Conversation{{ID: "c1"}, {ID: "c2"}}, nil)

	svc := service.NewAdminServiceAt(source, "pw", loc, now)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TotalConversations != 120 || stats.TodayConversations != 4 || stats.WeekConversations != 31 {
		t.Errorf("Stats() conversation counts = %+v", stats)
	}
	if stats.TotalKnowledge != 257 {
		t.Errorf("Stats() TotalKnowledge = %d, want 257", stats.TotalKnowledge)
	}
	if len(stats.RecentConversations) != 2 {
		t.Errorf("Stats() RecentConversations = %v", stats.RecentConversations)
	}
}

func TestAdminService_Stats_Errors(t *testing.T) {
	if _, err := service.NewAdminService(nil, "pw", nil).Stats(context.Background()); !errors.Is(err, service.ErrNotConfigured) {
		t.Errorf("Stats() error = %v, want ErrNotConfigured", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockStatsSource(ctrl)
	upstream := errors.New("status 500")
	source.EXPECT().CountConversations(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	source.EXPECT().CountKnowledge(gomock.Any()).Return(0, upstream)
	source.EXPECT().ListConversations(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := service.NewAdminService(source, "pw", time.UTC).Stats(context.Background())
	if !errors.Is(err, upstream) {
		t.Errorf("Stats() error = %v, want wrapped upstream error", err)
	}
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"momgyeot-ai/internal/service"
	"momgyeot-ai/internal/service/mocks"

	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	chat := mocks.NewMockChatService(ctrl)
	deps := &Deps{
		ChatService:    chat,
		HistoryService: mocks.NewMockHistoryService(ctrl),
		AdminService:   mocks.NewMockAdminService(ctrl),
		Retriever:      mocks.NewMockRetriever(ctrl),
	}
	return NewRouter(deps), chat
}

func TestRouter_Routes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "POST /api/chat exists", method: http.MethodPost, path: "/api/chat", body: "not json", wantStatus: http.StatusBadRequest},
		{name: "GET /api/chat not allowed", method: http.MethodGet, path: "/api/chat", wantStatus: http.StatusMethodNotAllowed},
		{name: "POST /api/search without store", method: http.MethodPost, path: "/api/search", body: `{"query":"입덧"}`, wantStatus: http.StatusInternalServerError},
		{name: "POST /api/messages without key", method: http.MethodPost, path: "/api/messages", body: `{}`, wantStatus: http.StatusInternalServerError},
		{name: "GET /api/health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "PUT /api/admin not allowed", method: http.MethodPut, path: "/api/admin", wantStatus: http.StatusMethodNotAllowed},
		{name: "OPTIONS preflight", method: http.MethodOptions, path: "/api/chat", wantStatus: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouter_RequestIDAndCORSHeaders(t *testing.T) {
	router, chat := newTestRouter(t)
	chat.EXPECT().
		ProcessChat(gomock.Any(), service.ChatRequest{Query: "황달"}).
		Return(service.ChatResponse{Answer: "a"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"query":"황달"}`))
	req.Header.Set("Origin", "https://momgyeot.app")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want 200 (body %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://momgyeot.app" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_PanicRecovered(t *testing.T) {
	router, chat := newTestRouter(t)
	chat.EXPECT().ProcessChat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, service.ChatRequest) (service.ChatResponse, error) {
			panic("boom")
		})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"query":"x"}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want 500", w.Code)
	}
}

func TestRouter_BodyTooLarge(t *testing.T) {
	router, _ := newTestRouter(t)

	body := strings.Repeat("a", maxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %v, want 413", w.Code)
	}
}

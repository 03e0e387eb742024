package handlers

import (
	"encoding/json"
	"net/http"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/rag"
	"momgyeot-ai/internal/service"
)

// ChatHandler handles HTTP requests for chat.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	Query    string          `json:"query"`
	UserID   string          `json:"userId,omitempty"`
	MateType string          `json:"mateType,omitempty"`
	UserInfo json.RawMessage `json:"userInfo,omitempty"`
}

// ChatResponse represents the HTTP response payload for chat.
type ChatResponse struct {
	Success    bool               `json:"success"`
	Answer     string             `json:"answer"`
	AnswerHTML string             `json:"answerHtml"`
	RAGResults []rag.ScoredRecord `json:"ragResults"`
	Related    []string           `json:"related"`
}

// ServeHTTP handles HTTP requests for chat.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	svcResp, err := h.chatService.ProcessChat(ctx, service.ChatRequest{
		Query:    req.Query,
		UserID:   req.UserID,
		MateType: req.MateType,
		UserInfo: req.UserInfo,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Chat failed")
		return
	}

	results := svcResp.RAGResults
	if results == nil {
		results = []rag.ScoredRecord{}
	}
	related := svcResp.Related
	if related == nil {
		related = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, ChatResponse{
		Success:    true,
		Answer:     svcResp.Answer,
		AnswerHTML: svcResp.AnswerHTML,
		RAGResults: results,
		Related:    related,
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/service"
	"momgyeot-ai/internal/storage"
)

// HistoryHandler handles HTTP requests for conversation history.
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// HistoryResponse represents the HTTP response payload for a history page.
type HistoryResponse struct {
	Success       bool                              `json:"success"`
	Conversations []storage.Conversation            `json:"conversations"`
	Grouped       map[string][]storage.Conversation `json:"grouped"`
	Count         int                               `json:"count"`
}

// AppendHistoryRequest represents the HTTP request payload for a new transcript entry.
type AppendHistoryRequest struct {
	UserID   string `json:"userId"`
	MateType string `json:"mateType,omitempty"`
	Role     string `json:"role,omitempty"`
	Content  string `json:"content,omitempty"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// AppendHistoryResponse echoes the stored entry.
type AppendHistoryResponse struct {
	Success      bool                 `json:"success"`
	Conversation storage.Conversation `json:"conversation"`
}

// ServeHTTP handles HTTP requests for history.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.append(w, r)
	default:
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (h *HistoryHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), service.DefaultHistoryLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	page, err := h.historyService.List(ctx, service.HistoryQuery{
		UserID:   q.Get("userId"),
		MateType: q.Get("mateType"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "History failed")
		return
	}

	convs := page.Conversations
	if convs == nil {
		convs = []storage.Conversation{}
	}
	grouped := page.Grouped
	if grouped == nil {
		grouped = map[string][]storage.Conversation{}
	}

	writeJSON(ctx, w, http.StatusOK, HistoryResponse{
		Success:       true,
		Conversations: convs,
		Grouped:       grouped,
		Count:         page.Count,
	})
}

func (h *HistoryHandler) append(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AppendHistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	conv, err := h.historyService.Append(ctx, service.AppendRequest{
		UserID:   req.UserID,
		MateType: req.MateType,
		Role:     req.Role,
		Content:  req.Content,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "History failed")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, AppendHistoryResponse{Success: true, Conversation: conv})
}

// intParam parses an optional integer query parameter.
func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

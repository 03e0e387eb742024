package handlers

import (
	"context"
	"net/http"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/llm"
)

// Forwarder relays a raw messages request upstream.
type Forwarder interface {
	Forward(ctx context.Context, req llm.ProxyRequest) (llm.ProxyResponse, error)
}

// MessagesHandler proxies requests to the messages API.
type MessagesHandler struct {
	forwarder Forwarder
}

// NewMessagesHandler creates a new MessagesHandler. A nil forwarder answers 500.
func NewMessagesHandler(forwarder Forwarder) *MessagesHandler {
	return &MessagesHandler{forwarder: forwarder}
}

// ServeHTTP handles HTTP requests for the messages proxy.
func (h *MessagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	if h.forwarder == nil {
		logger.ErrorContext(ctx, "messages proxy called without an API key")
		writeError(w, http.StatusInternalServerError, "API key not configured")
		return
	}

	var req llm.ProxyRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	resp, err := h.forwarder.Forward(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "messages proxy failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.WarnContext(ctx, "upstream messages API error", "status", resp.StatusCode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

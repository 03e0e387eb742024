package handlers

import (
	"errors"
	"net/http"
	"strings"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/rag"
	"momgyeot-ai/internal/service"
)

// SearchHandler handles HTTP requests for knowledge search.
type SearchHandler struct {
	retriever        service.Retriever
	storeConfigured  bool
	minContentLength int
}

// NewSearchHandler creates a new SearchHandler.
// When storeConfigured is false every valid request answers 500.
func NewSearchHandler(retriever service.Retriever, storeConfigured bool, minContentLength int) *SearchHandler {
	return &SearchHandler{
		retriever:        retriever,
		storeConfigured:  storeConfigured,
		minContentLength: minContentLength,
	}
}

// SearchRequest represents the HTTP request payload for search.
type SearchRequest struct {
	Query      string `json:"query"`
	CategoryID string `json:"categoryId"`
	Stage      string `json:"stage"`
	MateType   string `json:"mateType"`
	Limit      int    `json:"limit"`
}

// SearchResponse represents the HTTP response payload for search.
type SearchResponse struct {
	Success          bool               `json:"success"`
	Results          []rag.ScoredRecord `json:"results"`
	Count            int                `json:"count"`
	Query            string             `json:"query"`
	ExpandedKeywords []string           `json:"expandedKeywords"`
}

// ServeHTTP handles HTTP requests for search.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if rag.Normalize(req.Query) == "" && strings.TrimSpace(req.CategoryID) == "" {
		writeError(w, http.StatusBadRequest, rag.ErrInvalidQuery.Error())
		return
	}
	if !h.storeConfigured {
		logger.ErrorContext(ctx, "search requested without a record store")
		writeError(w, http.StatusInternalServerError, msgStoreNotConfig)
		return
	}

	persona := req.Stage
	if persona == "" {
		persona = req.MateType
	}

	result, err := h.retriever.Search(ctx, rag.SearchRequest{
		Query:            req.Query,
		Persona:          persona,
		Category:         req.CategoryID,
		Limit:            req.Limit,
		MinContentLength: h.minContentLength,
	})
	if err != nil {
		if errors.Is(err, rag.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		handleServiceError(ctx, w, err, "Search failed")
		return
	}

	records := result.Records
	if records == nil {
		records = []rag.ScoredRecord{}
	}
	expanded := result.ExpandedKeywords
	if expanded == nil {
		expanded = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, SearchResponse{
		Success:          true,
		Results:          records,
		Count:            len(records),
		Query:            result.Query,
		ExpandedKeywords: expanded,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/service"
	"momgyeot-ai/internal/storage"
)

// AdminHandler handles admin login and dashboard statistics.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// LoginRequest represents the admin login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// StatsBody is the dashboard statistics payload.
type StatsBody struct {
	TotalConversations  int                    `json:"totalConversations"`
	TodayConversations  int                    `json:"todayConversations"`
	WeekConversations   int                    `json:"weekConversations"`
	TotalKnowledge      int                    `json:"totalKnowledge"`
	RecentConversations []storage.Conversation `json:"recentConversations"`
}

// StatsResponse wraps StatsBody.
type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   StatsBody `json:"stats"`
}

// ServeHTTP handles HTTP requests for the admin endpoint.
func (h *AdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	switch r.Method {
	case http.MethodPost:
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		token, err := h.adminService.Login(ctx, req.Password)
		if errors.Is(err, service.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		if err != nil {
			handleServiceError(ctx, w, err, "Admin operation failed")
			return
		}
		writeJSON(ctx, w, http.StatusOK, LoginResponse{Success: true, Token: token})

	case http.MethodGet:
		if err := h.adminService.Authorize(r.Header.Get("Authorization")); err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		stats, err := h.adminService.Stats(ctx)
		if err != nil {
			handleServiceError(ctx, w, err, "Admin operation failed")
			return
		}
		recent := stats.RecentConversations
		if recent == nil {
			recent = []storage.Conversation{}
		}
		writeJSON(ctx, w, http.StatusOK, StatsResponse{
			Success: true,
			Stats: StatsBody{
				TotalConversations:  stats.TotalConversations,
				TodayConversations:  stats.TodayConversations,
				WeekConversations:   stats.WeekConversations,
				TotalKnowledge:      stats.TotalKnowledge,
				RecentConversations: recent,
			},
		})

	default:
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/iremkabaoglu/FinManager/internal/finance/application"
)

type DashboardServiceInterface interface {
	Summarize(ctx context.Context, callerID string, today time.Time) (*application.DashboardSummary, error)
}

type DashboardHandler struct {
	service      DashboardServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
	now          func() time.Time
}

func NewDashboardHandler(
	service DashboardServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *DashboardHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &DashboardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
		now:          time.Now,
	}
}

// GetDashboard summarizes the 30 days ending today. An optional ?date=
// (2006-01-02) anchors the window elsewhere, mostly useful for testing.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	today := h.now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		today = parsed
	}

	summary, err := h.service.Summarize(r.Context(), callerID(r), today)
	if err != nil {
		respondServiceError(h.respondError, w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReportService is the interface that wraps methods for the working-day
// progress report
type ReportService interface {
	// SendProgressReport posts the working-day count to the configured
	// webhook. On weekends the run is skipped and no message is sent.
	SendProgressReport(ctx context.Context) (*services.ReportResult, error)
}

// ReportHandler handles progress-report HTTP requests
type ReportHandler struct {
	BaseHandler
	service ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all report handler routes
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Get("/report", h.RunReport)
	r.Post("/report", h.RunReport)
}

// RunReport handles GET|POST /api/v1/report
// @Summary Post the working-day progress report
// @Description Compute the working days since the challenge start date and post a progress message to the report webhook. Skipped on weekends.
// @Tags report
// @Produce json
// @Success 200 {object} services.ReportResult "Report outcome"
// @Failure 500 {object} map[string]any "Report delivery failed"
// @Router /api/v1/report [get]
func (h *ReportHandler) RunReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SendProgressReport(r.Context())
	if err != nil {
		h.Logger.Error("failed to send progress report", zap.Error(err))

		// Propagate the upstream status code when Discord rejected the post.
		status := http.StatusInternalServerError
		var upstreamErr *models.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Status != 0 {
			status = upstreamErr.Status
		}
		h.RespondError(w, status, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    result,
	})
}

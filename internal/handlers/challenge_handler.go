package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChallengeService is the interface that wraps methods for challenge generation
type ChallengeService interface {
	// GenerateLesson produces one lesson for the standard daily spec.
	//
	// The generator is invoked exactly once; the error is surfaced to the
	// caller rather than retried.
	GenerateLesson(ctx context.Context) (*models.Lesson, error)
	// GenerateCustomLesson produces one lesson built around the caller's
	// goal and vocabulary lists.
	//
	// Please reference GenerateLesson for error semantics.
	GenerateCustomLesson(ctx context.Context, req models.CreateCustomChallengeRequest) (*models.Lesson, error)
	// GenerateSchedule produces a full 15-day challenge plan.
	//
	// Please reference GenerateLesson for error semantics.
	GenerateSchedule(ctx context.Context) (*models.Schedule, error)
}

// ChallengeDispatcher is the interface the daily challenge endpoint uses
// to fan a message out to webhooks
type ChallengeDispatcher interface {
	// SendMany posts the same message to every URL concurrently and
	// returns one result per URL. An empty list returns an empty slice.
	SendMany(ctx context.Context, urls []string, message *models.DiscordMessage) []models.DeliveryResult
}

// ChallengeHandler handles challenge-generation HTTP requests
type ChallengeHandler struct {
	BaseHandler
	service    ChallengeService
	dispatcher ChallengeDispatcher
	webhooks   []models.WebhookConfig
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(service ChallengeService, dispatcher ChallengeDispatcher, webhooks []models.WebhookConfig, logger *zap.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
		dispatcher:  dispatcher,
		webhooks:    webhooks,
	}
}

// RegisterRoutes registers all challenge handler routes
func (h *ChallengeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/challenges", func(r chi.Router) {
		r.Post("/", h.CreateChallenge)
		r.Post("/custom", h.CreateCustomChallenge)
		r.Post("/schedule", h.CreateSchedule)
		r.Get("/daily", h.RunDailyChallenge)
		r.Post("/daily", h.RunDailyChallenge)
	})
}

// CreateChallenge handles POST /api/v1/challenges
// @Summary Generate a translation challenge
// @Description Generate a single Vietnamese-to-English translation lesson
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]any "Generated lesson"
// @Failure 500 {object} map[string]any "Generation failed"
// @Router /api/v1/challenges [post]
func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GenerateLesson(r.Context())
	if err != nil {
		h.Logger.Error("failed to create challenge", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    lesson,
	})
}

// CreateCustomChallenge handles POST /api/v1/challenges/custom
// @Summary Generate a custom translation challenge
// @Description Generate a lesson built around a caller-supplied goal and vocabulary lists
// @Tags challenges
// @Accept json
// @Produce json
// @Param request body models.CreateCustomChallengeRequest true "Custom challenge parameters"
// @Success 200 {object} map[string]any "Generated lesson"
// @Failure 400 {object} map[string]any "Bad request - missing goal"
// @Failure 500 {object} map[string]any "Generation failed"
// @Router /api/v1/challenges/custom [post]
func (h *ChallengeHandler) CreateCustomChallenge(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Goal == "" {
		h.RespondError(w, http.StatusBadRequest, "goal is required")
		return
	}

	lesson, err := h.service.GenerateCustomLesson(r.Context(), req)
	if err != nil {
		h.Logger.Error("failed to create custom challenge", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    lesson,
	})
}

// CreateSchedule handles POST /api/v1/challenges/schedule
// @Summary Generate a 15-day challenge schedule
// @Description Generate a full 15-day Vietnamese-to-English translation course
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]any "Generated schedule"
// @Failure 500 {object} map[string]any "Generation failed"
// @Router /api/v1/challenges/schedule [post]
func (h *ChallengeHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GenerateSchedule(r.Context())
	if err != nil {
		h.Logger.Error("failed to create schedule", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    schedule,
	})
}

// RunDailyChallenge handles GET|POST /api/v1/challenges/daily
// @Summary Generate and broadcast the daily challenge
// @Description Generate a lesson, format it as a Discord message and fan it out to all configured webhooks
// @Tags challenges
// @Produce json
// @Success 200 {object} map[string]any "Lesson and per-webhook delivery results"
// @Failure 500 {object} map[string]any "Generation failed"
// @Router /api/v1/challenges/daily [post]
func (h *ChallengeHandler) RunDailyChallenge(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GenerateLesson(r.Context())
	if err != nil {
		h.Logger.Error("failed to create daily challenge", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	message := services.FormatLesson(lesson)

	if len(h.webhooks) == 0 {
		h.RespondJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"message":        "Challenge created successfully, but no Discord webhooks configured",
			"data":           lesson,
			"discordResults": []models.DeliveryResult{},
		})
		return
	}

	urls := make([]string, 0, len(h.webhooks))
	for _, webhook := range h.webhooks {
		urls = append(urls, webhook.URL)
	}

	report := services.Summarize(h.dispatcher.SendMany(r.Context(), urls, message))

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"message":        fmt.Sprintf("Challenge created and sent to %d/%d Discord webhooks", report.Success, report.Total),
		"data":           lesson,
		"discordResults": report,
	})
}

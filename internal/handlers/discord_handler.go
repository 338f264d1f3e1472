package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WebhookSender is the interface the relay endpoint uses to deliver a
// message to a single webhook
type WebhookSender interface {
	// SendOne posts a message to a single webhook URL. Delivery failures
	// are captured in the result, never returned as errors.
	SendOne(ctx context.Context, url string, message *models.DiscordMessage) models.DeliveryResult
}

// DiscordHandler handles Discord relay HTTP requests
type DiscordHandler struct {
	BaseHandler
	sender   WebhookSender
	webhooks []models.WebhookConfig
}

// NewDiscordHandler creates a new Discord handler
func NewDiscordHandler(sender WebhookSender, webhooks []models.WebhookConfig, logger *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		BaseHandler: BaseHandler{Logger: logger},
		sender:      sender,
		webhooks:    webhooks,
	}
}

// RegisterRoutes registers all Discord handler routes
func (h *DiscordHandler) RegisterRoutes(r chi.Router) {
	r.Post("/discord/send", h.SendMessage)
	r.Get("/webhooks", h.ListWebhooks)
	r.Get("/templates", h.ListTemplates)
}

// SendMessage handles POST /api/v1/discord/send
// @Summary Relay a message to a Discord webhook
// @Description Forward an already-built Discord message to the given webhook URL. The upstream status code is propagated on failure.
// @Tags discord
// @Accept json
// @Produce json
// @Param request body models.SendMessageRequest true "Webhook URL and message"
// @Success 200 {object} map[string]any "Message delivered"
// @Failure 400 {object} map[string]any "Bad request - missing webhookUrl or message"
// @Failure 500 {object} map[string]any "Delivery failed"
// @Router /api/v1/discord/send [post]
func (h *DiscordHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.WebhookURL == "" || req.Message == nil {
		h.RespondError(w, http.StatusBadRequest, "webhookUrl and message are required")
		return
	}

	result := h.sender.SendOne(r.Context(), req.WebhookURL, req.Message)
	if !result.Success {
		// Propagate the upstream status code when one was received.
		status := result.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		h.RespondError(w, status, result.Error)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message delivered to Discord",
	})
}

// ListWebhooks handles GET /api/v1/webhooks
// @Summary List configured webhook destinations
// @Description List the named Discord webhooks available for sending
// @Tags discord
// @Produce json
// @Success 200 {array} models.WebhookConfig "Configured webhooks"
// @Router /api/v1/webhooks [get]
func (h *DiscordHandler) ListWebhooks(w http.ResponseWriter, r *http.Request) {
	webhooks := h.webhooks
	if webhooks == nil {
		webhooks = []models.WebhookConfig{}
	}
	h.RespondJSON(w, http.StatusOK, webhooks)
}

// ListTemplates handles GET /api/v1/templates
// @Summary List notification content templates
// @Description List the canned notification messages offered by the UI
// @Tags discord
// @Produce json
// @Success 200 {array} models.ContentTemplate "Content templates"
// @Router /api/v1/templates [get]
func (h *DiscordHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, services.ContentTemplates)
}

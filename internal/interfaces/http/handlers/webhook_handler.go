package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/response"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

// WebhookHandler handles processor callback endpoints
type WebhookHandler struct {
	webhookUsecase *usecases.WebhookUsecase
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase *usecases.WebhookUsecase) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase}
}

// HandlePaymentWebhook handles payment lifecycle callbacks from the processor.
// Applied, duplicate and stale deliveries all acknowledge with 200 so the
// processor stops retrying; only malformed input, auth failures, unknown
// records and storage errors are non-200.
// POST /api/v1/webhooks/payment
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.webhookUsecase.ProcessPaymentWebhook(c.Request.Context(), json.RawMessage(raw))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"received": true,
		"outcome":  result.Outcome,
		"kind":     result.Kind,
		"number":   result.Number,
		"status":   result.Status,
	})
}

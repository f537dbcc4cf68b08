package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookHandler receives payment provider callbacks
type WebhookHandler struct {
	service service.PaymentServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(service service.PaymentServiceInterface) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// HandlePaymentWebhook handles POST /api/v1/webhooks/payments
// @Summary Payment provider webhook
// @Description Verifies the Stripe-Signature header. Paid intents carrying a lead_id convert the lead. Other events are acknowledged.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} service.WebhookResult
// @Failure 400 {object} ErrorResponse "Invalid signature"
// @Failure 413 {object} ErrorResponse "Payload too large"
// @Failure 503 {object} ErrorResponse "Webhook secret not configured"
// @Router /webhooks/payments [post]
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxWebhookBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body", "details": err.Error()})
		return
	}

	result, err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSignature) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to process webhook")
		return
	}

	c.JSON(http.StatusOK, result)
}

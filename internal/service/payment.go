package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/repository"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
	"gorm.io/gorm"
)

const (
	// MaxWebhookBodyBytes caps the payment webhook payload
	MaxWebhookBodyBytes = int64(65536)

	eventPaymentSucceeded = "payment_intent.succeeded"
	webhookActor          = "payments-webhook"
)

// Webhook outcomes
const (
	WebhookProcessed = "processed"
	WebhookDuplicate = "duplicate"
	WebhookIgnored   = "ignored"
)

// PaymentService verifies payment provider webhooks and converts paid leads
type PaymentService struct {
	payments repository.PaymentRepositoryInterface
	leads    LeadConverter
	metrics  *metrics.Metrics
	secret   string
}

// NewPaymentService creates a new payment service
func NewPaymentService(payments repository.PaymentRepositoryInterface, leads LeadConverter, m *metrics.Metrics, webhookSecret string) *PaymentService {
	return &PaymentService{
		payments: payments,
		leads:    leads,
		metrics:  m,
		secret:   webhookSecret,
	}
}

// WebhookResult describes what a webhook delivery did
type WebhookResult struct {
	EventID   string     `json:"event_id"`
	EventType string     `json:"event_type"`
	Outcome   string     `json:"outcome"`
	LeadID    *uuid.UUID `json:"lead_id,omitempty"`
}

// HandleWebhook verifies the signature of a delivery and applies it. Unknown event types
// and payments without a lead are acknowledged and ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	if s.secret == "" {
		return nil, apperrors.ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.metrics.WebhookEvents.WithLabelValues("unknown", "bad_signature").Inc()
		logger.WithContext(ctx).WithError(err).Warn("Webhook signature verification failed")
		return nil, apperrors.ErrInvalidSignature
	}

	result := &WebhookResult{EventID: event.ID, EventType: string(event.Type), Outcome: WebhookIgnored}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	if event.Type != eventPaymentSucceeded {
		log.Debug("Ignoring webhook event type")
		s.metrics.WebhookEvents.WithLabelValues(string(event.Type), result.Outcome).Inc()
		return result, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		s.metrics.WebhookEvents.WithLabelValues(string(event.Type), "error").Inc()
		return nil, apperrors.NewValidationError("data", "malformed payment intent")
	}

	if err := s.applyPayment(ctx, &intent, result); err != nil {
		s.metrics.WebhookEvents.WithLabelValues(string(event.Type), "error").Inc()
		return nil, err
	}

	log.WithField("outcome", result.Outcome).Info("Webhook event handled")
	s.metrics.WebhookEvents.WithLabelValues(string(event.Type), result.Outcome).Inc()
	return result, nil
}

func (s *PaymentService) applyPayment(ctx context.Context, intent *stripe.PaymentIntent, result *WebhookResult) error {
	log := logger.WithContext(ctx).WithField("payment_intent", intent.ID)

	leadID, err := uuid.Parse(intent.Metadata["lead_id"])
	if err != nil {
		log.Warn("Payment intent has no lead_id metadata")
		return nil
	}
	result.LeadID = &leadID

	existing, err := s.payments.GetByProviderRef(intent.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing payment: %w", err)
	}
	if existing != nil {
		result.Outcome = WebhookDuplicate
		return nil
	}

	amount := intent.AmountReceived
	if amount <= 0 {
		amount = intent.Amount
	}

	// convert before recording so a failed insert is retried by the provider
	if _, err := s.leads.ConvertLead(ctx, leadID, amount, webhookActor); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			log.WithField("lead_id", leadID).Warn("Payment references an unknown lead")
			return nil
		case apperrors.IsConflict(err):
			log.WithError(err).WithField("lead_id", leadID).Warn("Paid lead cannot be converted")
		default:
			return fmt.Errorf("failed to convert lead: %w", err)
		}
	}

	currency := string(intent.Currency)
	if currency == "" {
		currency = "usd"
	}
	payment := &models.Payment{
		LeadID:      leadID,
		ProviderRef: intent.ID,
		AmountCents: amount,
		Currency:    currency,
		Status:      string(intent.Status),
	}
	payment.CreatedBy = webhookActor
	if err := s.payments.Create(payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	result.Outcome = WebhookProcessed
	return nil
}

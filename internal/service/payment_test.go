package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_secret"

// PaymentServiceTestSuite defines the test suite for PaymentService
type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPayments *mocks.MockPaymentRepositoryInterface
	mockLeads    *mocks.MockLeadConverter
	metrics      *metrics.Metrics
	payments     *service.PaymentService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPayments = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.mockLeads = mocks.NewMockLeadConverter(suite.ctrl)
	suite.metrics = metrics.New()
	suite.payments = service.NewPaymentService(suite.mockPayments, suite.mockLeads, suite.metrics, testWebhookSecret)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func eventPayload(eventType, intentID, leadID string, amount int64) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_test_1",
  "object": "event",
  "api_version": "2020-08-27",
  "type": %q,
  "data": {
    "object": {
      "id": %q,
      "object": "payment_intent",
      "amount": %d,
      "amount_received": %d,
      "currency": "usd",
      "status": "succeeded",
      "metadata": {"lead_id": %q}
    }
  }
}`, eventType, intentID, amount, amount, leadID))
}

func sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func (suite *PaymentServiceTestSuite) TestProcessesSucceededPayment() {
	leadID := uuid.New()
	payload := eventPayload("payment_intent.succeeded", "pi_123", leadID.String(), 25000)

	suite.mockPayments.EXPECT().GetByProviderRef("pi_123").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeads.EXPECT().ConvertLead(gomock.Any(), leadID, int64(25000), "payments-webhook").Return(&service.LeadResponse{ID: leadID}, nil)
	suite.mockPayments.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
		assert.Equal(suite.T(), leadID, p.LeadID)
		assert.Equal(suite.T(), "pi_123", p.ProviderRef)
		assert.Equal(suite.T(), int64(25000), p.AmountCents)
		assert.Equal(suite.T(), "usd", p.Currency)
		return nil
	})

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookProcessed, result.Outcome)
	assert.Equal(suite.T(), "evt_test_1", result.EventID)
	assert.Equal(suite.T(), leadID, *result.LeadID)
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.WebhookEvents.WithLabelValues("payment_intent.succeeded", "processed")))
}

func (suite *PaymentServiceTestSuite) TestDuplicateDeliveryIsAcknowledged() {
	leadID := uuid.New()
	payload := eventPayload("payment_intent.succeeded", "pi_123", leadID.String(), 25000)

	suite.mockPayments.EXPECT().GetByProviderRef("pi_123").Return(&models.Payment{ProviderRef: "pi_123"}, nil)

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookDuplicate, result.Outcome)
}

func (suite *PaymentServiceTestSuite) TestRejectsBadSignature() {
	payload := eventPayload("payment_intent.succeeded", "pi_123", uuid.NewString(), 25000)

	_, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, "whsec_other"))
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSignature)

	_, err = suite.payments.HandleWebhook(suite.ctx, payload, "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSignature)
}

func (suite *PaymentServiceTestSuite) TestRejectsTamperedPayload() {
	payload := eventPayload("payment_intent.succeeded", "pi_123", uuid.NewString(), 25000)
	header := sign(payload, testWebhookSecret)
	tampered := eventPayload("payment_intent.succeeded", "pi_123", uuid.NewString(), 1)

	_, err := suite.payments.HandleWebhook(suite.ctx, tampered, header)

	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

func (suite *PaymentServiceTestSuite) TestIgnoresOtherEventTypes() {
	payload := eventPayload("charge.refunded", "ch_1", uuid.NewString(), 100)

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookIgnored, result.Outcome)
}

func (suite *PaymentServiceTestSuite) TestIgnoresPaymentWithoutLead() {
	payload := eventPayload("payment_intent.succeeded", "pi_123", "", 25000)

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookIgnored, result.Outcome)
	assert.Nil(suite.T(), result.LeadID)
}

func (suite *PaymentServiceTestSuite) TestUnknownLeadIsIgnored() {
	leadID := uuid.New()
	payload := eventPayload("payment_intent.succeeded", "pi_123", leadID.String(), 25000)

	suite.mockPayments.EXPECT().GetByProviderRef("pi_123").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeads.EXPECT().ConvertLead(gomock.Any(), leadID, int64(25000), gomock.Any()).Return(nil, apperrors.ErrLeadNotFound)

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookIgnored, result.Outcome)
}

func (suite *PaymentServiceTestSuite) TestLostLeadPaymentIsStillRecorded() {
	leadID := uuid.New()
	payload := eventPayload("payment_intent.succeeded", "pi_123", leadID.String(), 25000)

	suite.mockPayments.EXPECT().GetByProviderRef("pi_123").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeads.EXPECT().ConvertLead(gomock.Any(), leadID, int64(25000), gomock.Any()).
		Return(nil, fmt.Errorf("lead lost -> converted: %w", apperrors.ErrInvalidStatusTransition))
	suite.mockPayments.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.WebhookProcessed, result.Outcome)
}

func (suite *PaymentServiceTestSuite) TestConversionFailureIsReturned() {
	leadID := uuid.New()
	payload := eventPayload("payment_intent.succeeded", "pi_123", leadID.String(), 25000)

	suite.mockPayments.EXPECT().GetByProviderRef("pi_123").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLeads.EXPECT().ConvertLead(gomock.Any(), leadID, int64(25000), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.payments.HandleWebhook(suite.ctx, payload, sign(payload, testWebhookSecret))

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.WebhookEvents.WithLabelValues("payment_intent.succeeded", "error")))
}

func (suite *PaymentServiceTestSuite) TestNotConfigured() {
	svc := service.NewPaymentService(suite.mockPayments, suite.mockLeads, suite.metrics, "")

	_, err := svc.HandleWebhook(suite.ctx, []byte("{}"), "t=1,v1=abc")

	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

// TestPaymentServiceTestSuite runs the test suite
func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

package notify

import (
	"context"
	"fmt"
	"time"

	"taxpro-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

// smsRequest is the gateway payload
type smsRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SMSClient posts text messages to an HTTP SMS gateway. Without a URL it only logs.
type SMSClient struct {
	httpClient *resty.Client
}

// NewSMSClient creates an SMS client for the gateway at baseURL
func NewSMSClient(baseURL, apiKey string) *SMSClient {
	if baseURL == "" {
		return &SMSClient{}
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &SMSClient{httpClient: client}
}

// Enabled reports whether a gateway is configured
func (c *SMSClient) Enabled() bool {
	return c.httpClient != nil
}

// Send delivers one SMS
func (c *SMSClient) Send(ctx context.Context, phone, message string) error {
	log := logger.WithContext(ctx).WithField("phone_suffix", lastDigits(phone, 4))
	if c.httpClient == nil {
		log.Debug("SMS gateway not configured, skipping SMS")
		return nil
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(smsRequest{Phone: phone, Message: message}).
		Post("")
	if err != nil {
		log.WithError(err).Warn("SMS gateway call failed")
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}
	if resp.IsError() {
		log.WithField("status_code", resp.StatusCode()).Warn("SMS gateway returned error")
		return fmt.Errorf("SMS gateway error: status %d", resp.StatusCode())
	}

	log.Info("SMS sent")
	return nil
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

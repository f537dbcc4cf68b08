package translate

import (
	"context"
	"fmt"
	"time"

	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"

	"github.com/go-resty/resty/v2"
)

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source,omitempty"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls a Google Translate v2 compatible REST endpoint
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient creates a translation client
func NewClient(apiURL, apiKey string) *Client {
	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{httpClient: client, apiKey: apiKey}
}

// Translate translates HTML or plain text fragments into target, preserving order
func (c *Client) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrTranslateNotConfigured
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	var result translateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(translateRequest{Q: texts, Target: target, Source: source, Format: "html"}).
		SetResult(&result).
		SetError(&result).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("failed to call translation API: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil {
			msg = result.Error.Message
		}
		logger.WithContext(ctx).WithField("status_code", resp.StatusCode()).Warn("Translation API returned error")
		return nil, fmt.Errorf("translation API error: %s", msg)
	}

	if len(result.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("translation API returned %d results for %d inputs", len(result.Data.Translations), len(texts))
	}

	out := make([]string, len(texts))
	for i, tr := range result.Data.Translations {
		out[i] = tr.TranslatedText
	}
	return out, nil
}

package llm

import (
	"context"
	"fmt"
	"strings"

	apperrors "taxpro-backend/internal/errors"

	"google.golang.org/genai"
)

// GenAIClient generates page copy with Gemini and hero images with Imagen
type GenAIClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewGenAIClient creates a GenAI client. An empty key yields ErrGenAINotConfigured.
func NewGenAIClient(ctx context.Context, apiKey, textModel, imageModel string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, apperrors.ErrGenAINotConfigured
	}
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Model returns the text model name recorded on generated content
func (c *GenAIClient) Model() string {
	return c.textModel
}

// GenerateJSON asks the text model for a JSON document and returns it raw
func (c *GenAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", apperrors.ErrEmptyGeneration
	}
	return text, nil
}

// GenerateImage renders one image for prompt and returns its bytes and MIME type
func (c *GenAIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	if c.imageModel == "" {
		return nil, "", apperrors.NewConfigurationError("GENAI_IMAGE_MODEL environment variable not set")
	}

	resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
	})
	if err != nil {
		return nil, "", fmt.Errorf("GenAI image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, "", apperrors.ErrEmptyGeneration
	}

	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return img.ImageBytes, mime, nil
}

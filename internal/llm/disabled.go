package llm

import (
	"context"

	apperrors "taxpro-backend/internal/errors"
)

// Disabled stands in for GenAIClient when no API key is configured
type Disabled struct{}

func (Disabled) Model() string { return "" }

func (Disabled) GenerateJSON(context.Context, string) (string, error) {
	return "", apperrors.ErrGenAINotConfigured
}

func (Disabled) GenerateImage(context.Context, string) ([]byte, string, error) {
	return nil, "", apperrors.ErrGenAINotConfigured
}

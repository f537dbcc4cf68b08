package service

import (
	"context"
	"time"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=clients.go -destination=../mocks/client_mocks.go -package=mocks

// TokenIssuer issues session tokens for profiles
type TokenIssuer interface {
	GenerateJWT(profile *models.Profile) (string, error)
	TokenTTL() time.Duration
}

// ReferralCache caches code lookups and deduplicates clicks
type ReferralCache interface {
	GetProfileID(ctx context.Context, code string) (uuid.UUID, bool, error)
	SetProfileID(ctx context.Context, code string, id uuid.UUID) error
	Invalidate(ctx context.Context, code string) error
	FirstClick(ctx context.Context, code, ipHash string) (bool, error)
}

// Mailer sends HTML email
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMSSender sends text messages
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// ContentGenerator produces structured copy and images from prompts
type ContentGenerator interface {
	Model() string
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// Translator translates text fragments between languages
type Translator interface {
	Translate(ctx context.Context, texts []string, source, target string) ([]string, error)
}

// MediaStore persists generated media and returns its public URL
type MediaStore interface {
	Save(name string, data []byte) (string, error)
}

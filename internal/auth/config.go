package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "taxpro-backend"

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig builds an AuthConfig from the application's JWT settings
func NewAuthConfig(secret string, ttlMinutes int) *AuthConfig {
	ttl := time.Duration(ttlMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthConfig{
		JWTSecret: secret,
		TokenTTL:  ttl,
		Issuer:    defaultIssuer,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}

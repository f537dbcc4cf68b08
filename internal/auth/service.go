package auth

import (
	"fmt"
	"time"

	"taxpro-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates profile tokens and hashes passwords
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	ProfileID            string      `json:"profile_id" example:"5b1f3c1e-8a52-4d4c-9c57-0d3f0f6c2a11"`
	Email                string      `json:"email" example:"jane.doe@example.com"`
	Role                 models.Role `json:"role" example:"affiliate"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Identity is the authenticated caller as seen by services
type Identity struct {
	ProfileID uuid.UUID
	Email     string
	Role      models.Role
}

// IsStaff reports whether the caller is an admin or tax preparer
func (i Identity) IsStaff() bool {
	return i.Role.IsStaff()
}

// IsAdmin reports whether the caller is an admin
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Identity converts validated claims into an Identity
func (c *AuthClaims) Identity() (Identity, error) {
	id, err := uuid.Parse(c.ProfileID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid profile id in token: %w", err)
	}
	return Identity{ProfileID: id, Email: c.Email, Role: c.Role}, nil
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// TokenTTL returns how long issued tokens stay valid
func (s *AuthService) TokenTTL() time.Duration {
	return s.config.TokenTTL
}

// GenerateJWT creates a JWT token for the profile
func (s *AuthService) GenerateJWT(profile *models.Profile) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		ProfileID: profile.ID.String(),
		Email:     profile.Email,
		Role:      profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   profile.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxProfileID  = "profile_id"
	ctxEmail      = "email"
	ctxRole       = "role"
	ctxAuthClaims = "auth_claims"
)

// AccountLookup loads the stored profile behind a token
type AccountLookup interface {
	Account(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service  *AuthService
	accounts AccountLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// WithAccountCheck makes every authenticated request re-read the profile, so
// disabling an account or changing its role applies before the token expires.
func (m *AuthMiddleware) WithAccountCheck(accounts AccountLookup) *AuthMiddleware {
	m.accounts = accounts
	return m
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}
		identity, err := claims.Identity()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}
		if status, msg := m.checkAccount(c.Request.Context(), &identity); status != 0 {
			c.JSON(status, gin.H{"error": msg})
			c.Abort()
			return
		}

		setIdentity(c, identity, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}
		if identity, err := claims.Identity(); err == nil {
			if status, _ := m.checkAccount(c.Request.Context(), &identity); status == 0 {
				setIdentity(c, identity, claims)
			}
		}

		c.Next()
	}
}

// RequireRole allows the request only if the authenticated role is one of roles.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Role not allowed for this resource"})
		c.Abort()
	}
}

// checkAccount returns a non-zero status when the stored profile rejects the token.
// The stored role wins over the role in the claims.
func (m *AuthMiddleware) checkAccount(ctx context.Context, identity *Identity) (int, string) {
	if m.accounts == nil {
		return 0, ""
	}

	profile, err := m.accounts.Account(ctx, identity.ProfileID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return http.StatusUnauthorized, "Account not found"
		}
		logger.WithContext(ctx).WithError(err).Error("Failed to load account for token")
		return http.StatusServiceUnavailable, "Failed to verify account"
	}
	if !profile.IsActive {
		return http.StatusUnauthorized, "Account is disabled"
	}

	identity.Email = profile.Email
	identity.Role = profile.Role
	return 0, ""
}

func setIdentity(c *gin.Context, identity Identity, claims *AuthClaims) {
	c.Set(ctxProfileID, identity.ProfileID)
	c.Set(ctxEmail, identity.Email)
	c.Set(ctxRole, identity.Role)
	c.Set(ctxAuthClaims, claims)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), identity.Email))
}

// GetProfileID is a helper function to extract the profile ID from context
func GetProfileID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxProfileID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxEmail)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// GetRole is a helper function to extract the role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ctxRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// GetIdentity returns the authenticated caller, if any
func GetIdentity(c *gin.Context) (Identity, bool) {
	id, ok := GetProfileID(c)
	if !ok {
		return Identity{}, false
	}
	email, _ := GetUserEmail(c)
	role, _ := GetRole(c)
	return Identity{ProfileID: id, Email: email, Role: role}, true
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ctxAuthClaims)
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

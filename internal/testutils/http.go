package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body as JSON and records the response
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders is MakeRequest with extra headers, usually a bearer token from Sessions
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// Sessions issues real bearer tokens so handlers run behind the auth middleware
type Sessions struct {
	t          *testing.T
	Service    *auth.AuthService
	Middleware *auth.AuthMiddleware
}

// NewSessions signs tokens with a throwaway key. The middleware trusts the claims
// and does not look profiles up, so handler tests need no profile store.
func NewSessions(t *testing.T) *Sessions {
	t.Helper()
	svc, err := auth.NewAuthService(auth.NewAuthConfig("handler-test-key", 60))
	require.NoError(t, err)
	return &Sessions{t: t, Service: svc, Middleware: auth.NewAuthMiddleware(svc)}
}

// Login creates a fresh profile with role and returns the identity handlers
// will see alongside the headers that carry it
func (s *Sessions) Login(role models.Role) (auth.Identity, map[string]string) {
	profile := &models.Profile{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     string(role) + "@example.com",
		Role:      role,
		IsActive:  true,
	}
	return auth.Identity{ProfileID: profile.ID, Email: profile.Email, Role: role}, s.Bearer(profile)
}

// Bearer returns the Authorization header for profile
func (s *Sessions) Bearer(profile *models.Profile) map[string]string {
	token, err := s.Service.GenerateJWT(profile)
	require.NoError(s.t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertErrorResponse checks the status and that the "error" field mentions expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}

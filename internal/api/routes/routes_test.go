package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxpro-backend/internal/app"
	"taxpro-backend/internal/config"
	"taxpro-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RoutesTestSuite struct {
	suite.Suite
	router   *gin.Engine
	services *app.Services
	mock     sqlmock.Sqlmock
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { sqlDB.Close() })
	suite.mock = mock

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	suite.Require().NoError(err)

	cfg := &config.Config{
		Environment:         "test",
		JWTSecret:           "routes-test-secret",
		JWTTTLMinutes:       60,
		AllowedOrigins:      []string{"http://localhost:3000"},
		ReferralCookieName:  "ref_code",
		ReferralLandingPath: "/get-started",
		MediaDir:            suite.T().TempDir(),
		MediaBaseURL:        "/media",
		SEOBatchSize:        5,
	}

	clients, err := app.NewClients(context.Background(), cfg)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { clients.Close() })

	services, err := app.NewServices(db, cfg, clients)
	suite.Require().NoError(err)
	suite.services = services

	suite.router = SetupRoutes(db, cfg, clients, services)
}

// token mints a bearer token and queues the profile lookup each authenticated request makes
func (suite *RoutesTestSuite) token(role models.Role, active bool, requests int) string {
	profile := &models.Profile{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "someone@example.com",
		Role:      role,
	}
	token, err := suite.services.Auth.GenerateJWT(profile)
	suite.Require().NoError(err)

	for i := 0; i < requests; i++ {
		suite.mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "is_active"}).
				AddRow(profile.ID, profile.Email, string(role), active))
	}
	return token
}

func (suite *RoutesTestSuite) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *RoutesTestSuite) TestLiveness() {
	rec := suite.do(http.MethodGet, "/health/live", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (suite *RoutesTestSuite) TestMetricsEndpoint() {
	suite.do(http.MethodGet, "/health/live", "")

	rec := suite.do(http.MethodGet, "/metrics", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "http_requests_total")
}

func (suite *RoutesTestSuite) TestUnknownEndpoint() {
	rec := suite.do(http.MethodGet, "/api/v1/does-not-exist", "")
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(rec.Body.String(), "Endpoint not found")
	suite.Contains(rec.Body.String(), "/api/v1/does-not-exist")
}

func (suite *RoutesTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/api/v1/profile", "/api/v1/referrals", "/api/v1/leads", "/api/v1/commissions", "/api/v1/tickets"} {
		rec := suite.do(http.MethodGet, path, "")
		suite.Equal(http.StatusUnauthorized, rec.Code, path)
	}
}

func (suite *RoutesTestSuite) TestAdminRoutesRejectOtherRoles() {
	paths := []string{"/api/v1/admin/profiles", "/api/v1/campaigns", "/api/v1/seo/pages", "/api/v1/page-restrictions", "/api/v1/crm/contacts", "/api/v1/commissions/export"}
	token := suite.token(models.RoleAffiliate, true, len(paths))
	for _, path := range paths {
		rec := suite.do(http.MethodGet, path, token)
		suite.Equal(http.StatusForbidden, rec.Code, path)
	}
}

func (suite *RoutesTestSuite) TestStaffCanReachCRMButNotAdminRoutes() {
	token := suite.token(models.RoleTaxPreparer, true, 2)

	rec := suite.do(http.MethodGet, "/api/v1/admin/profiles", token)
	suite.Equal(http.StatusForbidden, rec.Code)

	rec = suite.do(http.MethodPut, "/api/v1/leads/not-a-uuid/status", token)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *RoutesTestSuite) TestDisabledAccountRejectedWithLiveToken() {
	token := suite.token(models.RoleAffiliate, false, 1)

	rec := suite.do(http.MethodGet, "/api/v1/profile", token)
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Contains(rec.Body.String(), "Account is disabled")
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RoutesTestSuite) TestPageRestrictionCheckIsPublic() {
	rec := suite.do(http.MethodGet, "/api/v1/page-restrictions/check", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "path query parameter is required")
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupHealthRoutes(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

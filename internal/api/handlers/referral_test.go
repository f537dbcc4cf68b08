package handlers

import (
	"net/http"
	"strings"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"
	"taxpro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReferralHandlerTestSuite defines the test suite for ReferralHandler
type ReferralHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockReferralService *mocks.MockReferralServiceInterface
	handler             *ReferralHandler
	tokens              *testutils.Sessions
	httpSuite           *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReferralHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReferralService = mocks.NewMockReferralServiceInterface(suite.ctrl)
	suite.handler = NewReferralHandler(suite.mockReferralService, ReferralCookie{
		Name:        "taxpro_ref",
		MaxAge:      30 * 24 * 60 * 60,
		LandingPath: "/get-started",
	})
	suite.tokens = testutils.NewSessions(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/r/:code", suite.handler.FollowLink)
	referrals := suite.httpSuite.Router.Group("/api/v1/referrals", suite.tokens.Middleware.RequireAuth())
	{
		referrals.POST("", suite.handler.SubmitReferral)
		referrals.GET("", suite.handler.ListMyReferrals)
		referrals.GET("/stats", suite.handler.GetStats)
	}
}

// TearDownTest cleans up after each test
func (suite *ReferralHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReferralHandlerTestSuite) TestFollowLinkKnownCode() {
	suite.mockReferralService.EXPECT().
		RecordClick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, in service.ClickInput) bool {
			assert.Equal(suite.T(), "jane-taxes", in.Code)
			assert.Equal(suite.T(), "/get-started", in.LandingPath)
			return true
		})

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/r/jane-taxes", nil)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "/get-started?ref=jane-taxes", rec.Header().Get("Location"))
	cookie := rec.Header().Get("Set-Cookie")
	assert.True(suite.T(), strings.HasPrefix(cookie, "taxpro_ref=jane-taxes"))
	assert.Contains(suite.T(), cookie, "Max-Age=2592000")
	assert.Contains(suite.T(), cookie, "HttpOnly")
}

func (suite *ReferralHandlerTestSuite) TestFollowLinkUnknownCode() {
	suite.mockReferralService.EXPECT().
		RecordClick(gomock.Any(), gomock.Any()).
		Return(false)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/r/nobody", nil)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "/get-started", rec.Header().Get("Location"))
	assert.Empty(suite.T(), rec.Header().Get("Set-Cookie"))
}

func (suite *ReferralHandlerTestSuite) TestSubmitReferral() {
	who, headers := suite.tokens.Login(models.RoleAffiliate)
	referralID := uuid.New()
	suite.mockReferralService.EXPECT().
		SubmitReferral(gomock.Any(), who.ProfileID, &service.SubmitReferralRequest{Name: "John Smith", Email: "john@example.com"}).
		Return(&service.ReferralResponse{ID: referralID, ReferredName: "John Smith", ReferredEmail: "john@example.com"}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/referrals", map[string]string{
		"name":  "John Smith",
		"email": "john@example.com",
	}, headers)

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var resp service.ReferralResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), referralID, resp.ID)
}

func (suite *ReferralHandlerTestSuite) TestSubmitReferralDuplicate() {
	_, headers := suite.tokens.Login(models.RoleClient)
	suite.mockReferralService.EXPECT().
		SubmitReferral(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrReferralExists)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/referrals", map[string]string{"name": "John", "email": "john@example.com"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "referral already exists")
}

func (suite *ReferralHandlerTestSuite) TestSubmitReferralValidation() {
	_, headers := suite.tokens.Login(models.RoleClient)
	suite.mockReferralService.EXPECT().
		SubmitReferral(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "email or phone is required"))

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/referrals", map[string]string{"name": "John"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "email or phone")
}

func (suite *ReferralHandlerTestSuite) TestListMyReferrals() {
	who, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockReferralService.EXPECT().
		ListMine(gomock.Any(), who.ProfileID, 1, 20).
		Return(&service.ReferralListResponse{Referrals: []service.ReferralResponse{}, Page: 1, PageSize: 20}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/referrals", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ReferralHandlerTestSuite) TestGetStats() {
	who, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockReferralService.EXPECT().
		Stats(gomock.Any(), who.ProfileID).
		Return(&service.ReferralStatsResponse{Clicks: 12, Leads: 3, ConvertedLeads: 1, PendingCommissionCents: 3750}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/referrals/stats", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.ReferralStatsResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), int64(12), resp.Clicks)
	assert.Equal(suite.T(), int64(3750), resp.PendingCommissionCents)
}

// TestReferralHandlerTestSuite runs the test suite
func TestReferralHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReferralHandlerTestSuite))
}

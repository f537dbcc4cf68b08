package handlers

import (
	"net/http"
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

// ProfileHandlerTestSuite defines the test suite for ProfileHandler
type ProfileHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProfileService *mocks.MockProfileServiceInterface
	handler            *ProfileHandler
	tokens             *testutils.Sessions
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProfileHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileService = mocks.NewMockProfileServiceInterface(suite.ctrl)
	suite.handler = NewProfileHandler(suite.mockProfileService)
	suite.tokens = testutils.NewSessions(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/auth/register", suite.handler.Register)
	v1.POST("/auth/login", suite.handler.Login)

	me := v1.Group("/profile", suite.tokens.Middleware.RequireAuth())
	{
		me.GET("", suite.handler.GetMe)
		me.PUT("", suite.handler.UpdateMe)
		me.PUT("/vanity-code", suite.handler.SetVanityCode)
	}

	admin := v1.Group("/admin/profiles", suite.tokens.Middleware.RequireAuth(), suite.tokens.Middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", suite.handler.ListProfiles)
		admin.PUT("/:id/role", suite.handler.SetRole)
		admin.PUT("/:id/active", suite.handler.SetActive)
	}
}

// TearDownTest cleans up after each test
func (suite *ProfileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProfileHandlerTestSuite) TestRegister() {
	body := map[string]interface{}{
		"email":      "jane@example.com",
		"password":   "s3cure-passw0rd",
		"first_name": "Jane",
		"last_name":  "Doe",
		"role":       "affiliate",
	}
	expected := &service.AuthResponse{
		Token:     "token",
		ExpiresIn: 86400,
		Profile:   service.ProfileResponse{ID: uuid.New(), Email: "jane@example.com", Role: models.RoleAffiliate},
	}

	suite.mockProfileService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *service.RegisterRequest) (*service.AuthResponse, error) {
			assert.Equal(suite.T(), "jane@example.com", req.Email)
			assert.Equal(suite.T(), models.RoleAffiliate, req.Role)
			return expected, nil
		})

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/register", body)

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var resp service.AuthResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), "token", resp.Token)
	assert.Equal(suite.T(), models.RoleAffiliate, resp.Profile.Role)
}

func (suite *ProfileHandlerTestSuite) TestRegisterDuplicateEmail() {
	suite.mockProfileService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrProfileExists)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{"email": "jane@example.com"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "already exists")
}

func (suite *ProfileHandlerTestSuite) TestRegisterInvalidBody() {
	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/register", "not an object")

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
}

func (suite *ProfileHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockProfileService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "invalid email or password")
}

func (suite *ProfileHandlerTestSuite) TestGetMe() {
	who, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockProfileService.EXPECT().
		GetByID(gomock.Any(), who.ProfileID).
		Return(&service.ProfileResponse{ID: who.ProfileID, Email: who.Email}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/profile", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.ProfileResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), who.ProfileID, resp.ID)
}

func (suite *ProfileHandlerTestSuite) TestGetMeRequiresToken() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/profile", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "Authorization header is required")
}

func (suite *ProfileHandlerTestSuite) TestSetVanityCodeAlreadySet() {
	who, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockProfileService.EXPECT().
		SetVanityCode(gomock.Any(), who.ProfileID, &service.SetVanityCodeRequest{Code: "jane-taxes"}).
		Return(nil, apperrors.ErrVanityCodeAlreadySet)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/profile/vanity-code", map[string]string{"code": "jane-taxes"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "cannot be changed")
}

func (suite *ProfileHandlerTestSuite) TestSetVanityCodeTaken() {
	_, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockProfileService.EXPECT().
		SetVanityCode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrVanityCodeTaken)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/profile/vanity-code", map[string]string{"code": "taken"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "tracking code already exists")
}

func (suite *ProfileHandlerTestSuite) TestListProfilesAdminOnly() {
	_, headers := suite.tokens.Login(models.RoleAffiliate)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/admin/profiles", nil, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "Role not allowed")
}

func (suite *ProfileHandlerTestSuite) TestListProfiles() {
	_, headers := suite.tokens.Login(models.RoleAdmin)
	suite.mockProfileService.EXPECT().
		List(gomock.Any(), models.RoleTaxPreparer, 2, 10).
		Return(&service.ProfileListResponse{Profiles: []service.ProfileResponse{}, Total: 11, Page: 2, PageSize: 10}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/admin/profiles?role=tax_preparer&page=2&page_size=10", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.ProfileListResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), int64(11), resp.Total)
}

func (suite *ProfileHandlerTestSuite) TestSetRole() {
	_, headers := suite.tokens.Login(models.RoleAdmin)
	target := uuid.New()
	suite.mockProfileService.EXPECT().
		SetRole(gomock.Any(), target, models.RoleTaxPreparer).
		Return(&service.ProfileResponse{ID: target, Role: models.RoleTaxPreparer}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/admin/profiles/"+target.String()+"/role", map[string]string{"role": "tax_preparer"}, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ProfileHandlerTestSuite) TestSetRoleInvalidID() {
	_, headers := suite.tokens.Login(models.RoleAdmin)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/admin/profiles/not-a-uuid/role", map[string]string{"role": "admin"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid profile ID")
}

func (suite *ProfileHandlerTestSuite) TestSetActive() {
	_, headers := suite.tokens.Login(models.RoleAdmin)
	target := uuid.New()

	suite.Run("missing flag", func() {
		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/admin/profiles/"+target.String()+"/active", map[string]string{}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
	})

	suite.Run("disable", func() {
		suite.mockProfileService.EXPECT().
			SetActive(gomock.Any(), target, false).
			Return(&service.ProfileResponse{ID: target, IsActive: false}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/admin/profiles/"+target.String()+"/active", map[string]bool{"active": false}, headers)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})
}

// TestProfileHandlerTestSuite runs the test suite
func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

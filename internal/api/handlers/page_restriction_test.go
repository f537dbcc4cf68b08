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

// PageRestrictionHandlerTestSuite defines the test suite for PageRestrictionHandler
type PageRestrictionHandlerTestSuite struct {
	suite.Suite
	ctrl                       *gomock.Controller
	mockPageRestrictionService *mocks.MockPageRestrictionServiceInterface
	handler                    *PageRestrictionHandler
	tokens                     *testutils.Sessions
	httpSuite                  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PageRestrictionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPageRestrictionService = mocks.NewMockPageRestrictionServiceInterface(suite.ctrl)
	suite.handler = NewPageRestrictionHandler(suite.mockPageRestrictionService)
	suite.tokens = testutils.NewSessions(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	restrictions := suite.httpSuite.Router.Group("/api/v1/page-restrictions")
	restrictions.GET("/check", suite.tokens.Middleware.OptionalAuth(), suite.handler.CheckAccess)

	admin := restrictions.Group("", suite.tokens.Middleware.RequireAuth(), suite.tokens.Middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("", suite.handler.CreateRestriction)
		admin.GET("", suite.handler.ListRestrictions)
		admin.GET("/:id", suite.handler.GetRestriction)
		admin.PUT("/:id", suite.handler.UpdateRestriction)
		admin.DELETE("/:id", suite.handler.DeleteRestriction)
	}
}

// TearDownTest cleans up after each test
func (suite *PageRestrictionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PageRestrictionHandlerTestSuite) TestCheckAccessAnonymous() {
	suite.mockPageRestrictionService.EXPECT().
		Check(gomock.Any(), "/dashboard/commissions", gomock.Nil()).
		Return(&service.AccessDecision{Allowed: false, MatchedPattern: "/dashboard/*", RedirectTo: "/login"}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/page-restrictions/check?path=/dashboard/commissions", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.AccessDecision
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.False(suite.T(), resp.Allowed)
	assert.Equal(suite.T(), "/login", resp.RedirectTo)
}

func (suite *PageRestrictionHandlerTestSuite) TestCheckAccessWithRole() {
	_, headers := suite.tokens.Login(models.RoleAffiliate)
	role := models.RoleAffiliate
	suite.mockPageRestrictionService.EXPECT().
		Check(gomock.Any(), "/dashboard", &role).
		Return(&service.AccessDecision{Allowed: true, MatchedPattern: "/dashboard"}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/page-restrictions/check?path=/dashboard", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *PageRestrictionHandlerTestSuite) TestCheckAccessMissingPath() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/page-restrictions/check", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "path query parameter is required")
}

func (suite *PageRestrictionHandlerTestSuite) TestCreateRestriction() {
	who, headers := suite.tokens.Login(models.RoleAdmin)
	req := &service.PageRestrictionRequest{
		PathPattern:  "/dashboard/*",
		AllowedRoles: []models.Role{models.RoleAffiliate, models.RoleAdmin},
		RedirectTo:   "/login",
	}

	suite.Run("created", func() {
		suite.mockPageRestrictionService.EXPECT().
			Create(gomock.Any(), req, who.Email).
			Return(&service.PageRestrictionResponse{ID: uuid.New(), PathPattern: "/dashboard/*", IsActive: true}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/page-restrictions", req, headers)
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	})

	suite.Run("duplicate path", func() {
		suite.mockPageRestrictionService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPageRestrictionExists)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/page-restrictions", req, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "page restriction already exists")
	})
}

func (suite *PageRestrictionHandlerTestSuite) TestListRestrictionsRequiresAdmin() {
	_, headers := suite.tokens.Login(models.RoleClient)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/page-restrictions", nil, headers)

	assert.Equal(suite.T(), http.StatusForbidden, rec.Code)
}

func (suite *PageRestrictionHandlerTestSuite) TestUpdateAndDelete() {
	_, headers := suite.tokens.Login(models.RoleAdmin)
	id := uuid.New()

	suite.mockPageRestrictionService.EXPECT().
		Update(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrPageRestrictionNotFound)
	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/page-restrictions/"+id.String(), map[string]interface{}{
		"path_pattern":  "/admin/*",
		"allowed_roles": []string{"admin"},
	}, headers)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "page restriction not found")

	suite.mockPageRestrictionService.EXPECT().Delete(gomock.Any(), id).Return(nil)
	rec = suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/v1/page-restrictions/"+id.String(), nil, headers)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

// TestPageRestrictionHandlerTestSuite runs the test suite
func TestPageRestrictionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PageRestrictionHandlerTestSuite))
}

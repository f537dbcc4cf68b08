package service_test

import (
	"context"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PageRestrictionServiceTestSuite defines the test suite for PageRestrictionService
type PageRestrictionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockPageRestrictionRepositoryInterface
	restrictions *service.PageRestrictionService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *PageRestrictionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPageRestrictionRepositoryInterface(suite.ctrl)
	suite.restrictions = service.NewPageRestrictionService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *PageRestrictionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func rolePtr(r models.Role) *models.Role { return &r }

func (suite *PageRestrictionServiceTestSuite) rules() []models.PageRestriction {
	return []models.PageRestriction{
		{PathPattern: "/dashboard/*", AllowedRoles: "client,affiliate,tax_preparer", RedirectTo: "/login", IsActive: true},
		{PathPattern: "/dashboard/payouts", AllowedRoles: "affiliate", RedirectTo: "/dashboard", IsActive: true},
		{PathPattern: "/staff/*", AllowedRoles: "tax_preparer", IsActive: true},
	}
}

func (suite *PageRestrictionServiceTestSuite) TestCheck() {
	cases := []struct {
		name     string
		path     string
		role     *models.Role
		allowed  bool
		pattern  string
		redirect string
	}{
		{"unrestricted path", "/pricing", nil, true, "", ""},
		{"anonymous on wildcard", "/dashboard/leads", nil, false, "/dashboard/*", "/login"},
		{"client on wildcard", "/dashboard/leads?page=2", rolePtr(models.RoleClient), true, "/dashboard/*", ""},
		{"wildcard base itself", "/dashboard/", rolePtr(models.RoleClient), true, "/dashboard/*", ""},
		{"exact beats wildcard", "/dashboard/payouts", rolePtr(models.RoleClient), false, "/dashboard/payouts", "/dashboard"},
		{"affiliate on exact", "/dashboard/payouts#top", rolePtr(models.RoleAffiliate), true, "/dashboard/payouts", ""},
		{"admin always allowed", "/staff/queue", rolePtr(models.RoleAdmin), true, "/staff/*", ""},
		{"prefix is not a segment match", "/staffing", rolePtr(models.RoleClient), true, "", ""},
		{"dot segments are cleaned", "/pricing/../staff/queue", rolePtr(models.RoleClient), false, "/staff/*", ""},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockRepo.EXPECT().GetActive().Return(suite.rules(), nil)

			decision, err := suite.restrictions.Check(suite.ctx, tc.path, tc.role)

			require.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.allowed, decision.Allowed)
			assert.Equal(suite.T(), tc.pattern, decision.MatchedPattern)
			assert.Equal(suite.T(), tc.redirect, decision.RedirectTo)
		})
	}
}

func (suite *PageRestrictionServiceTestSuite) TestCreateNormalizesPattern() {
	req := &service.PageRestrictionRequest{PathPattern: "/dashboard//reports/*", AllowedRoles: []models.Role{models.RoleAffiliate, models.RoleAffiliate}}

	suite.mockRepo.EXPECT().GetByPattern("/dashboard/reports/*").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.PageRestriction) error {
		assert.Equal(suite.T(), "affiliate", r.AllowedRoles)
		assert.True(suite.T(), r.IsActive)
		return nil
	})

	resp, err := suite.restrictions.Create(suite.ctx, req, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/dashboard/reports/*", resp.PathPattern)
	assert.Equal(suite.T(), []models.Role{models.RoleAffiliate}, resp.AllowedRoles)
}

func (suite *PageRestrictionServiceTestSuite) TestCreateRejectsDuplicates() {
	req := &service.PageRestrictionRequest{PathPattern: "/staff/*", AllowedRoles: []models.Role{models.RoleTaxPreparer}}
	suite.mockRepo.EXPECT().GetByPattern("/staff/*").Return(&models.PageRestriction{PathPattern: "/staff/*"}, nil)

	_, err := suite.restrictions.Create(suite.ctx, req, "admin")

	assert.ErrorIs(suite.T(), err, apperrors.ErrPageRestrictionExists)
}

func (suite *PageRestrictionServiceTestSuite) TestCreateValidation() {
	cases := []*service.PageRestrictionRequest{
		{PathPattern: "dashboard", AllowedRoles: []models.Role{models.RoleClient}},
		{PathPattern: "/dashboard", AllowedRoles: []models.Role{"owner"}},
		{PathPattern: "/dashboard", AllowedRoles: nil},
		{PathPattern: "/dash*/x", AllowedRoles: []models.Role{models.RoleClient}},
	}
	for _, req := range cases {
		_, err := suite.restrictions.Create(suite.ctx, req, "admin")
		assert.True(suite.T(), apperrors.IsValidation(err), "%+v", req)
	}
}

func (suite *PageRestrictionServiceTestSuite) TestUpdateDeactivates() {
	r := &models.PageRestriction{PathPattern: "/staff/*", AllowedRoles: "tax_preparer", IsActive: true}
	r.ID = uuid.New()
	inactive := false

	suite.mockRepo.EXPECT().GetByID(r.ID).Return(r, nil)
	suite.mockRepo.EXPECT().Update(r).Return(nil)

	resp, err := suite.restrictions.Update(suite.ctx, r.ID, &service.PageRestrictionRequest{
		PathPattern:  "/staff/*",
		AllowedRoles: []models.Role{models.RoleTaxPreparer},
		IsActive:     &inactive,
	}, "admin")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.IsActive)
}

func (suite *PageRestrictionServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.restrictions.Delete(suite.ctx, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPageRestrictionNotFound)
}

// TestPageRestrictionServiceTestSuite runs the test suite
func TestPageRestrictionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PageRestrictionServiceTestSuite))
}

func TestMatchPattern(t *testing.T) {
	assert.Equal(t, 0, service.MatchPattern("/*", "/anything"))
	assert.Equal(t, 20, service.MatchPattern("/dashboard/*", "/dashboard/leads"))
	assert.Equal(t, 20, service.MatchPattern("/dashboard/*", "/dashboard"))
	assert.Equal(t, 21, service.MatchPattern("/dashboard", "/dashboard"))
	assert.Equal(t, -1, service.MatchPattern("/dashboard/*", "/dashboards"))
	assert.Equal(t, -1, service.MatchPattern("/dashboard", "/dashboard/leads"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/dashboard", service.NormalizePath("/dashboard/"))
	assert.Equal(t, "/dashboard", service.NormalizePath("dashboard?x=1"))
	assert.Equal(t, "/", service.NormalizePath(""))
	assert.Equal(t, "/a/c", service.NormalizePath("/a/b/../c#frag"))
}

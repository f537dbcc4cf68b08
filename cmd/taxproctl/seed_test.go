package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taxpro-backend/internal/commission"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeederTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	profiles     *mocks.MockProfileServiceInterface
	restrictions *mocks.MockPageRestrictionServiceInterface
	seeder       *seeder
}

func (suite *SeederTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.profiles = mocks.NewMockProfileServiceInterface(suite.ctrl)
	suite.restrictions = mocks.NewMockPageRestrictionServiceInterface(suite.ctrl)
	suite.seeder = &seeder{profiles: suite.profiles, restrictions: suite.restrictions}
}

func (suite *SeederTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SeederTestSuite) TestSeedsAffiliateWithVanityCode() {
	id := uuid.New()
	suite.profiles.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.RegisterRequest) (*service.AuthResponse, error) {
			suite.Equal(models.RoleAffiliate, req.Role)
			return &service.AuthResponse{Profile: service.ProfileResponse{ID: id}}, nil
		})
	suite.profiles.EXPECT().
		SetVanityCode(gomock.Any(), id, &service.SetVanityCodeRequest{Code: "jane-taxes"}).
		Return(&service.ProfileResponse{ID: id}, nil)

	summary, err := suite.seeder.run(context.Background(), &seedFile{
		Profiles: []profileSeed{{
			Email: "jane@example.com", Password: "password123", FirstName: "Jane", LastName: "Doe",
			Role: "affiliate", VanityCode: "jane-taxes",
		}},
	}, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ProfilesCreated)
	suite.False(summary.TiersWritten)
}

func (suite *SeederTestSuite) TestStaffRoleAppliedAfterSignup() {
	id := uuid.New()
	suite.profiles.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.RegisterRequest) (*service.AuthResponse, error) {
			suite.Equal(models.RoleClient, req.Role)
			return &service.AuthResponse{Profile: service.ProfileResponse{ID: id}}, nil
		})
	suite.profiles.EXPECT().SetRole(gomock.Any(), id, models.RoleAdmin).Return(&service.ProfileResponse{ID: id}, nil)

	summary, err := suite.seeder.run(context.Background(), &seedFile{
		Profiles: []profileSeed{{Email: "admin@example.com", Password: "password123", FirstName: "A", LastName: "B", Role: "Admin"}},
	}, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.ProfilesCreated)
}

func (suite *SeederTestSuite) TestExistingRecordsAreSkipped() {
	suite.profiles.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrProfileExists)
	suite.restrictions.EXPECT().Create(gomock.Any(), gomock.Any(), seedActor).Return(nil, apperrors.ErrPageRestrictionExists)

	summary, err := suite.seeder.run(context.Background(), &seedFile{
		Profiles:         []profileSeed{{Email: "jane@example.com", Password: "password123", FirstName: "Jane", LastName: "Doe"}},
		PageRestrictions: []restrictionSeed{{PathPattern: "/admin/*", AllowedRoles: []string{"admin"}}},
	}, "")

	suite.Require().NoError(err)
	suite.Equal(0, summary.ProfilesCreated)
	suite.Equal(1, summary.ProfilesExisting)
	suite.Equal(1, summary.RestrictionsExisted)
}

func (suite *SeederTestSuite) TestRestrictionRolesNormalized() {
	suite.restrictions.EXPECT().
		Create(gomock.Any(), gomock.Any(), seedActor).
		DoAndReturn(func(_ context.Context, req *service.PageRestrictionRequest, _ string) (*service.PageRestrictionResponse, error) {
			suite.Equal([]models.Role{models.RoleAffiliate, models.RoleAdmin}, req.AllowedRoles)
			suite.Equal("/login", req.RedirectTo)
			return &service.PageRestrictionResponse{ID: uuid.New()}, nil
		})

	summary, err := suite.seeder.run(context.Background(), &seedFile{
		PageRestrictions: []restrictionSeed{{PathPattern: "/dashboard/*", AllowedRoles: []string{" Affiliate", "admin"}, RedirectTo: "/login"}},
	}, "")

	suite.Require().NoError(err)
	suite.Equal(1, summary.RestrictionsCreated)
}

func (suite *SeederTestSuite) TestUnknownRoleFails() {
	_, err := suite.seeder.run(context.Background(), &seedFile{
		Profiles: []profileSeed{{Email: "x@example.com", Role: "superuser"}},
	}, "")
	suite.Error(err)
	suite.Contains(err.Error(), "unknown role")
}

func (suite *SeederTestSuite) TestServiceErrorStopsRun() {
	suite.profiles.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := suite.seeder.run(context.Background(), &seedFile{
		Profiles: []profileSeed{
			{Email: "a@example.com", Password: "password123", FirstName: "A", LastName: "A"},
			{Email: "b@example.com", Password: "password123", FirstName: "B", LastName: "B"},
		},
	}, "")
	suite.Error(err)
	suite.Contains(err.Error(), "a@example.com")
}

func (suite *SeederTestSuite) TestTiersWrittenAndReloadable() {
	path := filepath.Join(suite.T().TempDir(), "tiers.yaml")

	summary, err := suite.seeder.run(context.Background(), &seedFile{
		Tiers: map[string][]commission.Tier{
			"affiliate": {{Name: "standard", MinConversions: 0, RateBPS: 1200}},
		},
	}, path)
	suite.Require().NoError(err)
	suite.True(summary.TiersWritten)

	table, err := commission.LoadTable(path)
	suite.Require().NoError(err)
	tier, ok := table.Lookup(models.RoleAffiliate, 3)
	suite.True(ok)
	suite.Equal(1200, tier.RateBPS)
}

func (suite *SeederTestSuite) TestInvalidTiersRejectedBeforeProfiles() {
	_, err := suite.seeder.run(context.Background(), &seedFile{
		Tiers:    map[string][]commission.Tier{"affiliate": {{Name: "bad", RateBPS: 20000}}},
		Profiles: []profileSeed{{Email: "jane@example.com"}},
	}, filepath.Join(suite.T().TempDir(), "tiers.yaml"))
	suite.Error(err)
}

func (suite *SeederTestSuite) TestLoadSeedFile() {
	path := filepath.Join(suite.T().TempDir(), "seed.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(`
profiles:
  - email: admin@example.com
    password: change-me-please
    first_name: Office
    last_name: Admin
    role: admin
page_restrictions:
  - path_pattern: /admin/*
    allowed_roles: [admin]
    redirect_to: /login
tiers:
  affiliate:
    - {name: standard, min_conversions: 0, rate_bps: 1500}
`), 0o644))

	data, err := loadSeedFile(path)
	suite.Require().NoError(err)
	suite.Len(data.Profiles, 1)
	suite.Equal("admin", data.Profiles[0].Role)
	suite.Len(data.PageRestrictions, 1)
	suite.Equal([]string{"admin"}, data.PageRestrictions[0].AllowedRoles)
	suite.Equal(1500, data.Tiers["affiliate"][0].RateBPS)

	_, err = loadSeedFile(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Error(err)
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

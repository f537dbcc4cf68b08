//go:build integration
// +build integration

package repository

import (
	"testing"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReferralRepositoryTestSuite tests the ReferralRepository against Postgres
type ReferralRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReferralRepository
	referrer      *models.Profile
}

func (suite *ReferralRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReferralRepository(suite.baseTestSuite.DB)
}

func (suite *ReferralRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ReferralRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.referrer = testutils.NewProfileFactory().WithEmail("referrer@example.com")
	suite.Require().NoError(NewProfileRepository(suite.baseTestSuite.DB).Create(suite.referrer))
}

func (suite *ReferralRepositoryTestSuite) TestPhoneOnlyReferralsDoNotCollide() {
	suite.Require().NoError(suite.repo.Create(&models.Referral{
		ReferrerID: suite.referrer.ID, ReferredName: "Ann", ReferredPhone: "4085550101",
	}))
	suite.Require().NoError(suite.repo.Create(&models.Referral{
		ReferrerID: suite.referrer.ID, ReferredName: "Bob", ReferredPhone: "4085550102",
	}))

	count, err := suite.repo.CountByReferrer(suite.referrer.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *ReferralRepositoryTestSuite) TestDuplicateEmailPerReferrerRejected() {
	suite.Require().NoError(suite.repo.Create(&models.Referral{
		ReferrerID: suite.referrer.ID, ReferredName: "John", ReferredEmail: "john@example.com",
	}))
	err := suite.repo.Create(&models.Referral{
		ReferrerID: suite.referrer.ID, ReferredName: "Johnny", ReferredEmail: "john@example.com",
	})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func TestReferralRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReferralRepositoryTestSuite))
}

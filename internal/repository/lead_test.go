//go:build integration
// +build integration

package repository

import (
	"testing"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// LeadRepositoryTestSuite tests lead, referral and commission persistence together
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	leads          *LeadRepository
	referrals      *ReferralRepository
	commissions    *CommissionRepository
	profiles       *ProfileRepository
	profileFactory *testutils.ProfileFactory
	leadFactory    *testutils.LeadFactory
}

func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.leads = NewLeadRepository(db)
	suite.referrals = NewReferralRepository(db)
	suite.commissions = NewCommissionRepository(db)
	suite.profiles = NewProfileRepository(db)
	suite.profileFactory = testutils.NewProfileFactory()
	suite.leadFactory = testutils.NewLeadFactory()
}

func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeadRepositoryTestSuite) TestListAndCounts() {
	referrer := suite.profileFactory.WithRole(models.RoleAffiliate)
	suite.Require().NoError(suite.profiles.Create(referrer))

	l1 := suite.leadFactory.ReferredBy(referrer.ID)
	l2 := suite.leadFactory.ReferredBy(referrer.ID)
	l2.Status = models.LeadStatusConverted
	l3 := suite.leadFactory.Create()
	for _, l := range []*models.Lead{l1, l2, l3} {
		suite.Require().NoError(suite.leads.Create(l))
	}

	leads, total, err := suite.leads.List(LeadFilter{ReferrerID: &referrer.ID}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(leads, 2)

	converted, err := suite.leads.CountConvertedByReferrer(referrer.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), converted)

	all, err := suite.leads.CountByReferrer(referrer.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), all)
}

func (suite *LeadRepositoryTestSuite) TestOldestReferralWins() {
	first := suite.profileFactory.WithEmail("first@example.com")
	second := suite.profileFactory.WithEmail("second@example.com")
	suite.Require().NoError(suite.profiles.Create(first))
	suite.Require().NoError(suite.profiles.Create(second))

	suite.Require().NoError(suite.referrals.Create(&models.Referral{
		ReferrerID: first.ID, ReferredName: "Pat", ReferredEmail: "pat@example.com", ReferredPhone: "5125550100",
	}))
	suite.Require().NoError(suite.referrals.Create(&models.Referral{
		ReferrerID: second.ID, ReferredName: "Pat", ReferredEmail: "pat@example.com", ReferredPhone: "5125550100",
	}))

	byEmail, err := suite.referrals.FindOldestByEmail("PAT@example.com")
	suite.Require().NoError(err)
	suite.Equal(first.ID, byEmail.ReferrerID)

	byPhone, err := suite.referrals.FindOldestByPhone("5125550100")
	suite.Require().NoError(err)
	suite.Equal(first.ID, byPhone.ReferrerID)

	_, err = suite.referrals.GetByReferrerAndEmail(second.ID, "pat@example.com")
	suite.NoError(err)
}

func (suite *LeadRepositoryTestSuite) TestCommissionUniquePerLead() {
	referrer := suite.profileFactory.WithRole(models.RoleAffiliate)
	suite.Require().NoError(suite.profiles.Create(referrer))
	lead := suite.leadFactory.ReferredBy(referrer.ID)
	suite.Require().NoError(suite.leads.Create(lead))

	c := &models.Commission{ReferrerID: referrer.ID, LeadID: lead.ID, BaseAmountCents: 30000, RateBPS: 1500, AmountCents: 4500, Status: models.CommissionStatusPending}
	suite.Require().NoError(suite.commissions.Create(c))

	dup := &models.Commission{ReferrerID: referrer.ID, LeadID: lead.ID, BaseAmountCents: 30000, RateBPS: 1500, AmountCents: 4500, Status: models.CommissionStatusPending}
	suite.Error(suite.commissions.Create(dup))

	got, err := suite.commissions.GetByLeadID(lead.ID)
	suite.Require().NoError(err)
	suite.Equal(c.ID, got.ID)

	sums, err := suite.commissions.SumByStatus(&referrer.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(4500), sums[models.CommissionStatusPending])
}

func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}

package service_test

import (
	"context"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CRMServiceTestSuite defines the test suite for CRMService
type CRMServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockCRMContactRepositoryInterface
	crm      *service.CRMService
	ctx      context.Context
}

// SetupTest sets up the test suite
func (suite *CRMServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCRMContactRepositoryInterface(suite.ctrl)
	suite.crm = service.NewCRMService(suite.mockRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *CRMServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CRMServiceTestSuite) TestUpsertCreatesContact() {
	lead := &models.Lead{FirstName: "Maria", Email: "Maria@Example.com", Status: models.LeadStatusNew}
	lead.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByEmail("maria@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.CRMContact) error {
		assert.Equal(suite.T(), "maria@example.com", c.Email)
		assert.Equal(suite.T(), models.ContactStageLead, c.Stage)
		assert.Equal(suite.T(), lead.ID, *c.LeadID)
		return nil
	})

	require.NoError(suite.T(), suite.crm.UpsertFromLead(suite.ctx, lead))
}

func (suite *CRMServiceTestSuite) TestUpsertNeverDowngradesCustomer() {
	existing := &models.CRMContact{Email: "maria@example.com", FirstName: "Old", Stage: models.ContactStageCustomer}
	lead := &models.Lead{FirstName: "Maria", Email: "maria@example.com", Status: models.LeadStatusNew}
	lead.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByEmail("maria@example.com").Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.CRMContact) error {
		assert.Equal(suite.T(), models.ContactStageCustomer, c.Stage)
		assert.Equal(suite.T(), "Maria", c.FirstName)
		return nil
	})

	require.NoError(suite.T(), suite.crm.UpsertFromLead(suite.ctx, lead))
}

func (suite *CRMServiceTestSuite) TestUpsertPromotesConvertedLead() {
	existing := &models.CRMContact{Email: "maria@example.com", Stage: models.ContactStageLead}
	lead := &models.Lead{Email: "maria@example.com", Status: models.LeadStatusConverted}

	suite.mockRepo.EXPECT().GetByEmail("maria@example.com").Return(existing, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	require.NoError(suite.T(), suite.crm.UpsertFromLead(suite.ctx, lead))
	assert.Equal(suite.T(), models.ContactStageCustomer, existing.Stage)
}

func (suite *CRMServiceTestSuite) TestMarkCustomer() {
	suite.Run("promotes lead contact", func() {
		c := &models.CRMContact{Email: "a@example.com", Stage: models.ContactStageLead}
		suite.mockRepo.EXPECT().GetByEmail("a@example.com").Return(c, nil)
		suite.mockRepo.EXPECT().Update(c).Return(nil)

		require.NoError(suite.T(), suite.crm.MarkCustomer(suite.ctx, "A@example.com"))
		assert.Equal(suite.T(), models.ContactStageCustomer, c.Stage)
	})

	suite.Run("already customer is a no-op", func() {
		c := &models.CRMContact{Email: "b@example.com", Stage: models.ContactStageCustomer}
		suite.mockRepo.EXPECT().GetByEmail("b@example.com").Return(c, nil)

		require.NoError(suite.T(), suite.crm.MarkCustomer(suite.ctx, "b@example.com"))
	})

	suite.Run("missing contact", func() {
		suite.mockRepo.EXPECT().GetByEmail("c@example.com").Return(nil, gorm.ErrRecordNotFound)

		err := suite.crm.MarkCustomer(suite.ctx, "c@example.com")
		assert.ErrorIs(suite.T(), err, apperrors.ErrCRMContactNotFound)
	})
}

func (suite *CRMServiceTestSuite) TestUnsubscribe() {
	c := &models.CRMContact{Email: "a@example.com"}
	suite.mockRepo.EXPECT().GetByEmail("a@example.com").Return(c, nil)
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	require.NoError(suite.T(), suite.crm.Unsubscribe(suite.ctx, " a@example.com "))
	assert.True(suite.T(), c.Unsubscribed)
}

func (suite *CRMServiceTestSuite) TestListContacts() {
	suite.mockRepo.EXPECT().Search("garcia", models.ContactStageCustomer, 20, 0).
		Return([]models.CRMContact{{Email: "maria@example.com", Stage: models.ContactStageCustomer}}, int64(1), nil)

	resp, err := suite.crm.ListContacts(suite.ctx, " garcia ", models.ContactStageCustomer, 0, 0)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Contacts, 1)
	assert.Equal(suite.T(), 1, resp.Page)

	_, err = suite.crm.ListContacts(suite.ctx, "", "prospect", 1, 20)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCRMServiceTestSuite runs the test suite
func TestCRMServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CRMServiceTestSuite))
}

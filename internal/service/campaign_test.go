package service_test

import (
	"context"
	"errors"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CampaignServiceTestSuite defines the test suite for CampaignService
type CampaignServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockCampaignRepositoryInterface
	mockContacts  *mocks.MockCRMContactRepositoryInterface
	mockProfiles  *mocks.MockProfileRepositoryInterface
	mockGenerator *mocks.MockContentGenerator
	mockMailer    *mocks.MockMailer
	metrics       *metrics.Metrics
	campaigns     *service.CampaignService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockCRMContactRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockGenerator = mocks.NewMockContentGenerator(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.metrics = metrics.New()
	suite.campaigns = service.NewCampaignService(suite.mockRepo, suite.mockContacts, suite.mockProfiles, suite.mockGenerator, suite.mockMailer, suite.metrics, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CampaignServiceTestSuite) draft(audience models.CampaignAudience) *models.Campaign {
	c := &models.Campaign{Name: "Spring", Audience: audience, Subject: "Deadline", BodyHTML: "<p>File now</p>", Status: models.CampaignStatusDraft}
	c.ID = uuid.New()
	return c
}

func (suite *CampaignServiceTestSuite) TestCreateSanitizes() {
	req := &service.CreateCampaignRequest{
		Name:     "Spring",
		Audience: models.AudienceLeads,
		Subject:  "<b>Deadline</b> soon",
		BodyHTML: `<p onclick="x()">File now</p><script>alert(1)</script>`,
	}
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.campaigns.Create(suite.ctx, req, "admin@taxpro.test")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Deadline soon", resp.Subject)
	assert.NotContains(suite.T(), resp.BodyHTML, "script")
	assert.NotContains(suite.T(), resp.BodyHTML, "onclick")
	assert.Equal(suite.T(), models.CampaignStatusDraft, resp.Status)
}

func (suite *CampaignServiceTestSuite) TestCreateValidation() {
	_, err := suite.campaigns.Create(suite.ctx, &service.CreateCampaignRequest{Name: "x", Audience: "everyone"}, "admin")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CampaignServiceTestSuite) TestUpdateRequiresDraft() {
	c := suite.draft(models.AudienceLeads)
	c.Status = models.CampaignStatusSent
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.campaigns.Update(suite.ctx, c.ID, &service.UpdateCampaignRequest{Name: "x", Audience: models.AudienceLeads}, "admin")

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotDraft)
}

func (suite *CampaignServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.campaigns.Get(suite.ctx, id)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
}

func (suite *CampaignServiceTestSuite) TestGenerateContent() {
	c := suite.draft(models.AudienceLeads)
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockGenerator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return(`{"subject": "File before April 15", "body_html": "<p>Book a free review.</p>"}`, nil)
	suite.mockGenerator.EXPECT().Model().Return("gemini-test")
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	resp, err := suite.campaigns.GenerateContent(suite.ctx, c.ID, &service.GenerateCampaignContentRequest{Brief: "deadline reminder"}, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "File before April 15", resp.Subject)
	assert.Equal(suite.T(), "<p>Book a free review.</p>", resp.BodyHTML)
}

func (suite *CampaignServiceTestSuite) TestGenerateContentNotConfigured() {
	c := suite.draft(models.AudienceLeads)
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockGenerator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return("", apperrors.ErrGenAINotConfigured)

	_, err := suite.campaigns.GenerateContent(suite.ctx, c.ID, &service.GenerateCampaignContentRequest{Brief: "x"}, "admin")

	assert.True(suite.T(), apperrors.IsConfiguration(err))
}

func (suite *CampaignServiceTestSuite) TestSendToLeads() {
	c := suite.draft(models.AudienceLeads)

	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().MarkSending(c.ID).Return(true, nil)
	suite.mockContacts.EXPECT().GetSubscribedByStages([]models.ContactStage{models.ContactStageLead}).Return([]models.CRMContact{
		{Email: "a@example.com"},
		{Email: "A@example.com"},
		{Email: "b@example.com"},
	}, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), "a@example.com", "Deadline", "<p>File now</p>").Return(nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), "b@example.com", "Deadline", "<p>File now</p>").Return(errors.New("mailbox full"))
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	resp, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CampaignStatusSent, resp.Status)
	assert.Equal(suite.T(), 1, resp.SentCount)
	assert.Equal(suite.T(), 1, resp.FailedCount)
	assert.NotEmpty(suite.T(), resp.SentAt)
	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.Notifications.WithLabelValues("campaign", "error")))
}

func (suite *CampaignServiceTestSuite) TestSendToAffiliates() {
	c := suite.draft(models.AudienceAffiliates)

	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().MarkSending(c.ID).Return(true, nil)
	suite.mockProfiles.EXPECT().GetActiveByRole(models.RoleAffiliate).Return([]models.Profile{{Email: "aff@example.com"}}, nil)
	suite.mockContacts.EXPECT().UnsubscribedEmails([]string{"aff@example.com"}).Return(nil, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), "aff@example.com", gomock.Any(), gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	resp, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.SentCount)
}

func (suite *CampaignServiceTestSuite) TestSendToAffiliatesSkipsUnsubscribedContacts() {
	c := suite.draft(models.AudienceAffiliates)

	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().MarkSending(c.ID).Return(true, nil)
	suite.mockProfiles.EXPECT().GetActiveByRole(models.RoleAffiliate).Return([]models.Profile{
		{Email: "stay@example.com"},
		{Email: "Gone@Example.com"},
	}, nil)
	suite.mockContacts.EXPECT().UnsubscribedEmails([]string{"stay@example.com", "Gone@Example.com"}).
		Return([]string{"gone@example.com"}, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), "stay@example.com", gomock.Any(), gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	resp, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.SentCount)
	assert.Equal(suite.T(), 0, resp.FailedCount)
}

func (suite *CampaignServiceTestSuite) TestSendAllFailuresMarksFailed() {
	c := suite.draft(models.AudienceAllContacts)

	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().MarkSending(c.ID).Return(true, nil)
	suite.mockContacts.EXPECT().GetSubscribedByStages([]models.ContactStage{models.ContactStageLead, models.ContactStageCustomer}).
		Return([]models.CRMContact{{Email: "a@example.com"}}, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
	suite.mockRepo.EXPECT().Update(c).Return(nil)

	resp, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.CampaignStatusFailed, resp.Status)
}

func (suite *CampaignServiceTestSuite) TestSendLosesRace() {
	c := suite.draft(models.AudienceLeads)
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.mockRepo.EXPECT().MarkSending(c.ID).Return(false, nil)

	_, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotDraft)
}

func (suite *CampaignServiceTestSuite) TestSendRequiresContent() {
	c := suite.draft(models.AudienceLeads)
	c.BodyHTML = ""
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *CampaignServiceTestSuite) TestSendAlreadySent() {
	c := suite.draft(models.AudienceLeads)
	c.Status = models.CampaignStatusSent
	suite.mockRepo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.campaigns.Send(suite.ctx, c.ID, "admin")

	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestCampaignServiceTestSuite runs the test suite
func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}

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

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockLeadService *mocks.MockLeadServiceInterface
	handler         *LeadHandler
	tokens          *testutils.Sessions
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLeadService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.handler = NewLeadHandler(suite.mockLeadService, "taxpro_ref")
	suite.tokens = testutils.NewSessions(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/leads", suite.handler.CreateLead)

	leads := v1.Group("/leads", suite.tokens.Middleware.RequireAuth())
	{
		leads.GET("", suite.handler.ListLeads)
		leads.GET("/:id", suite.handler.GetLead)
		leads.PUT("/:id/status", suite.handler.UpdateLeadStatus)
		leads.PUT("/:id/assignee", suite.tokens.Middleware.RequireRole(models.RoleAdmin), suite.handler.AssignLead)
	}
}

// TearDownTest cleans up after each test
func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func intakeForm() map[string]string {
	return map[string]string{
		"first_name":   "Maria",
		"last_name":    "Garcia",
		"email":        "maria@example.com",
		"phone":        "408-555-0142",
		"service_type": "individual tax return",
		"city":         "San Jose",
		"state":        "CA",
	}
}

func (suite *LeadHandlerTestSuite) TestCreateLeadWithReferralCookie() {
	leadID := uuid.New()
	referrerID := uuid.New()
	suite.mockLeadService.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), "jane-taxes").
		DoAndReturn(func(_ interface{}, req *service.CreateLeadRequest, _ string) (*service.LeadResponse, error) {
			assert.Equal(suite.T(), "maria@example.com", req.Email)
			return &service.LeadResponse{
				ID:                leadID,
				Status:            models.LeadStatusNew,
				ReferrerID:        &referrerID,
				AttributionMethod: models.AttributionCookie,
				AttributionCode:   "jane-taxes",
			}, nil
		})

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/leads", intakeForm(), map[string]string{
		"Cookie": "taxpro_ref=jane-taxes",
	})

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var resp service.LeadResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), leadID, resp.ID)
	assert.Equal(suite.T(), models.AttributionCookie, resp.AttributionMethod)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadWithoutCookie() {
	suite.mockLeadService.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), "").
		Return(&service.LeadResponse{ID: uuid.New(), AttributionMethod: models.AttributionDirect}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", intakeForm())

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
}

func (suite *LeadHandlerTestSuite) TestCreateLeadValidation() {
	suite.mockLeadService.EXPECT().
		CreateLead(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "must be a valid email"))

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]string{"first_name": "Maria", "email": "nope"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "email")
}

func (suite *LeadHandlerTestSuite) TestListLeads() {
	who, headers := suite.tokens.Login(models.RoleTaxPreparer)
	suite.mockLeadService.EXPECT().
		List(gomock.Any(), who, service.LeadListParams{
			Status:       models.LeadStatusQualified,
			Search:       "maria",
			AssignedToMe: true,
			Page:         2,
			PageSize:     10,
		}).
		Return(&service.LeadListResponse{Leads: []service.LeadResponse{}, Total: 0, Page: 2, PageSize: 10}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/leads?status=qualified&q=maria&assigned_to_me=true&page=2&page_size=10", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	_, headers := suite.tokens.Login(models.RoleAffiliate)

	suite.Run("invalid id", func() {
		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/leads/abc", nil, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid lead ID")
	})

	suite.Run("not visible", func() {
		id := uuid.New()
		suite.mockLeadService.EXPECT().
			Get(gomock.Any(), gomock.Any(), id).
			Return(nil, apperrors.ErrLeadNotFound)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/leads/"+id.String(), nil, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "lead not found")
	})
}

func (suite *LeadHandlerTestSuite) TestUpdateLeadStatus() {
	who, headers := suite.tokens.Login(models.RoleTaxPreparer)
	id := uuid.New()

	suite.Run("converted", func() {
		suite.mockLeadService.EXPECT().
			UpdateStatus(gomock.Any(), who, id, &service.UpdateLeadStatusRequest{Status: models.LeadStatusConverted, FeeAmountCents: 25000}).
			Return(&service.LeadResponse{ID: id, Status: models.LeadStatusConverted, FeeAmountCents: 25000}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/leads/"+id.String()+"/status", map[string]interface{}{
			"status":           "converted",
			"fee_amount_cents": 25000,
		}, headers)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})

	suite.Run("invalid transition", func() {
		suite.mockLeadService.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.ErrInvalidStatusTransition)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/leads/"+id.String()+"/status", map[string]string{"status": "new"}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "invalid status transition")
	})
}

func (suite *LeadHandlerTestSuite) TestUpdateLeadStatusStaffOnly() {
	_, headers := suite.tokens.Login(models.RoleAffiliate)
	suite.mockLeadService.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrStaffOnly)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/leads/"+uuid.NewString()+"/status", map[string]string{"status": "contacted"}, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "only staff")
}

func (suite *LeadHandlerTestSuite) TestAssignLead() {
	_, headers := suite.tokens.Login(models.RoleAdmin)
	id := uuid.New()
	preparer := uuid.New()

	suite.Run("assigned", func() {
		suite.mockLeadService.EXPECT().
			AssignPreparer(gomock.Any(), id, &service.AssignLeadRequest{PreparerID: preparer}).
			Return(&service.LeadResponse{ID: id, AssignedPreparerID: &preparer}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/leads/"+id.String()+"/assignee", map[string]string{"preparer_id": preparer.String()}, headers)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})

	suite.Run("not a preparer", func() {
		suite.mockLeadService.EXPECT().
			AssignPreparer(gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.ErrAssigneeNotPreparer)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/leads/"+id.String()+"/assignee", map[string]string{"preparer_id": preparer.String()}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "tax preparer")
	})
}

// TestLeadHandlerTestSuite runs the test suite
func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}

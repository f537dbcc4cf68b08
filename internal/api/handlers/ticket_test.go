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

// TicketHandlerTestSuite defines the test suite for TicketHandler
type TicketHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTicketService *mocks.MockTicketServiceInterface
	handler           *TicketHandler
	tokens            *testutils.Sessions
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TicketHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTicketService = mocks.NewMockTicketServiceInterface(suite.ctrl)
	suite.handler = NewTicketHandler(suite.mockTicketService)
	suite.tokens = testutils.NewSessions(suite.T())
	suite.httpSuite = testutils.SetupHTTPTest()

	tickets := suite.httpSuite.Router.Group("/api/v1/tickets", suite.tokens.Middleware.RequireAuth())
	{
		tickets.POST("", suite.handler.CreateTicket)
		tickets.GET("", suite.handler.ListTickets)
		tickets.GET("/:id", suite.handler.GetTicket)
		tickets.POST("/:id/messages", suite.handler.AddMessage)
		tickets.PUT("/:id/status", suite.handler.UpdateTicketStatus)
		tickets.PUT("/:id/assignee", suite.tokens.Middleware.RequireRole(models.RoleAdmin), suite.handler.AssignTicket)
	}
}

// TearDownTest cleans up after each test
func (suite *TicketHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TicketHandlerTestSuite) TestCreateTicket() {
	who, headers := suite.tokens.Login(models.RoleClient)
	req := &service.CreateTicketRequest{
		Subject:     "Question about my W-2",
		Description: "Box 12 looks wrong",
		Category:    models.TicketCategoryTaxQuestion,
	}
	suite.mockTicketService.EXPECT().
		Create(gomock.Any(), who, req).
		Return(&service.TicketResponse{ID: uuid.New(), Number: "TKT-000042", Status: models.TicketStatusOpen, CreatorID: who.ProfileID}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/tickets", map[string]string{
		"subject":     "Question about my W-2",
		"description": "Box 12 looks wrong",
		"category":    "tax_question",
	}, headers)

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var resp service.TicketResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), "TKT-000042", resp.Number)
}

func (suite *TicketHandlerTestSuite) TestCreateTicketRequiresAuth() {
	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tickets", map[string]string{"subject": "hi"})

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *TicketHandlerTestSuite) TestListTickets() {
	who, headers := suite.tokens.Login(models.RoleTaxPreparer)
	suite.mockTicketService.EXPECT().
		List(gomock.Any(), who, models.TicketStatusOpen, true, 1, 20).
		Return(&service.TicketListResponse{Tickets: []service.TicketResponse{}, Page: 1, PageSize: 20}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/tickets?status=open&assigned_to_me=true", nil, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *TicketHandlerTestSuite) TestGetTicketNotFound() {
	_, headers := suite.tokens.Login(models.RoleClient)
	id := uuid.New()
	suite.mockTicketService.EXPECT().
		Get(gomock.Any(), gomock.Any(), id).
		Return(nil, apperrors.ErrTicketNotFound)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/tickets/"+id.String(), nil, headers)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "ticket not found")
}

func (suite *TicketHandlerTestSuite) TestAddMessage() {
	who, headers := suite.tokens.Login(models.RoleClient)
	id := uuid.New()

	suite.Run("reply", func() {
		suite.mockTicketService.EXPECT().
			AddMessage(gomock.Any(), who, id, &service.AddTicketMessageRequest{Body: "Thanks!"}).
			Return(&service.TicketMessageResponse{ID: uuid.New(), AuthorID: who.ProfileID, Body: "Thanks!"}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/tickets/"+id.String()+"/messages", map[string]string{"body": "Thanks!"}, headers)
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	})

	suite.Run("internal note from customer", func() {
		suite.mockTicketService.EXPECT().
			AddMessage(gomock.Any(), who, id, &service.AddTicketMessageRequest{Body: "psst", IsInternal: true}).
			Return(nil, apperrors.ErrStaffOnly)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/tickets/"+id.String()+"/messages", map[string]interface{}{"body": "psst", "is_internal": true}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "only staff")
	})

	suite.Run("closed ticket", func() {
		suite.mockTicketService.EXPECT().
			AddMessage(gomock.Any(), who, id, gomock.Any()).
			Return(nil, apperrors.ErrTicketClosed)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/tickets/"+id.String()+"/messages", map[string]string{"body": "hello?"}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "ticket is closed")
	})
}

func (suite *TicketHandlerTestSuite) TestUpdateTicketStatus() {
	who, headers := suite.tokens.Login(models.RoleTaxPreparer)
	id := uuid.New()
	suite.mockTicketService.EXPECT().
		UpdateStatus(gomock.Any(), who, id, &service.UpdateTicketStatusRequest{Status: models.TicketStatusResolved}).
		Return(&service.TicketResponse{ID: id, Status: models.TicketStatusResolved}, nil)

	rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/tickets/"+id.String()+"/status", map[string]string{"status": "resolved"}, headers)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *TicketHandlerTestSuite) TestAssignTicket() {
	who, headers := suite.tokens.Login(models.RoleAdmin)
	id := uuid.New()
	assignee := uuid.New()

	suite.Run("staff assignee", func() {
		suite.mockTicketService.EXPECT().
			Assign(gomock.Any(), id, &service.AssignTicketRequest{AssigneeID: assignee}, who.Email).
			Return(&service.TicketResponse{ID: id, AssigneeID: &assignee}, nil)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/tickets/"+id.String()+"/assignee", map[string]string{"assignee_id": assignee.String()}, headers)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	})

	suite.Run("customer assignee", func() {
		suite.mockTicketService.EXPECT().
			Assign(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrAssigneeNotStaff)

		rec := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/tickets/"+id.String()+"/assignee", map[string]string{"assignee_id": assignee.String()}, headers)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "staff member")
	})
}

// TestTicketHandlerTestSuite runs the test suite
func TestTicketHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

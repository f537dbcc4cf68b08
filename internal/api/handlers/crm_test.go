package handlers

import (
	"errors"
	"net/http"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/service"
	"taxpro-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CRMHandlerTestSuite defines the test suite for CRMHandler
type CRMHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCRMService *mocks.MockCRMServiceInterface
	handler        *CRMHandler
	httpSuite      *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CRMHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCRMService = mocks.NewMockCRMServiceInterface(suite.ctrl)
	suite.handler = NewCRMHandler(suite.mockCRMService)
	suite.httpSuite = testutils.SetupHTTPTest()

	crm := suite.httpSuite.Router.Group("/api/v1/crm")
	{
		crm.GET("/contacts", suite.handler.ListContacts)
		crm.POST("/unsubscribe", suite.handler.Unsubscribe)
	}
}

// TearDownTest cleans up after each test
func (suite *CRMHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CRMHandlerTestSuite) TestListContacts() {
	suite.mockCRMService.EXPECT().
		ListContacts(gomock.Any(), "garcia", models.ContactStageCustomer, 1, 20).
		Return(&service.CRMContactListResponse{
			Contacts: []service.CRMContactResponse{{Email: "maria@example.com", Stage: models.ContactStageCustomer}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/crm/contacts?q=garcia&stage=customer", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.CRMContactListResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), "maria@example.com", resp.Contacts[0].Email)
}

func (suite *CRMHandlerTestSuite) TestListContactsUnknownStage() {
	suite.mockCRMService.EXPECT().
		ListContacts(gomock.Any(), "", models.ContactStage("vip"), 1, 20).
		Return(nil, apperrors.NewValidationError("stage", "unknown contact stage"))

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/crm/contacts?stage=vip", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "unknown contact stage")
}

func (suite *CRMHandlerTestSuite) TestUnsubscribe() {
	suite.Run("known contact", func() {
		suite.mockCRMService.EXPECT().Unsubscribe(gomock.Any(), "maria@example.com").Return(nil)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/crm/unsubscribe", map[string]string{"email": "maria@example.com"})
		assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	})

	suite.Run("unknown contact looks the same", func() {
		suite.mockCRMService.EXPECT().Unsubscribe(gomock.Any(), "ghost@example.com").Return(apperrors.ErrCRMContactNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/crm/unsubscribe", map[string]string{"email": "ghost@example.com"})
		assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	})

	suite.Run("invalid email", func() {
		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/crm/unsubscribe", map[string]string{"email": "nope"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid request body")
	})

	suite.Run("database error", func() {
		suite.mockCRMService.EXPECT().Unsubscribe(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/crm/unsubscribe", map[string]string{"email": "maria@example.com"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusInternalServerError, "Failed to unsubscribe")
	})
}

// TestCRMHandlerTestSuite runs the test suite
func TestCRMHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CRMHandlerTestSuite))
}

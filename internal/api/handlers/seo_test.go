package handlers

import (
	"net/http"
	"testing"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/mocks"
	"taxpro-backend/internal/seo"
	"taxpro-backend/internal/service"
	"taxpro-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SeoHandlerTestSuite defines the test suite for SeoHandler
type SeoHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSeoService *mocks.MockSeoServiceInterface
	handler        *SeoHandler
	httpSuite      *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SeoHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSeoService = mocks.NewMockSeoServiceInterface(suite.ctrl)
	suite.handler = NewSeoHandler(suite.mockSeoService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/pages/:slug", suite.handler.GetPublishedPage)

	pages := v1.Group("/seo/pages")
	{
		pages.POST("/batch", suite.handler.GenerateBatch)
		pages.POST("", suite.handler.GeneratePage)
		pages.GET("", suite.handler.ListPages)
		pages.GET("/:id", suite.handler.GetPage)
		pages.POST("/:id/publish", suite.handler.PublishPage)
		pages.POST("/:id/unpublish", suite.handler.UnpublishPage)
		pages.POST("/:id/translate", suite.handler.TranslatePage)
		pages.DELETE("/:id", suite.handler.DeletePage)
	}
}

// TearDownTest cleans up after each test
func (suite *SeoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SeoHandlerTestSuite) TestGenerateBatch() {
	suite.mockSeoService.EXPECT().
		GenerateBatch(gomock.Any(), &service.GenerateBatchRequest{
			Targets: []seo.Target{
				{City: "San Jose", State: "CA", Service: "tax preparation"},
				{City: "Fresno", State: "CA", Service: "tax preparation"},
			},
			WithImages: true,
		}).
		Return(&service.BatchResult{
			Generated: []string{"tax-preparation-san-jose-ca"},
			Skipped:   []string{},
			Failed:    []service.BatchFailure{{Slug: "tax-preparation-fresno-ca", Error: "model returned an empty response"}},
		}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/batch", map[string]interface{}{
		"targets": []map[string]string{
			{"city": "San Jose", "state": "CA", "service": "tax preparation"},
			{"city": "Fresno", "state": "CA", "service": "tax preparation"},
		},
		"with_images": true,
	})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var resp service.BatchResult
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), []string{"tax-preparation-san-jose-ca"}, resp.Generated)
	assert.Len(suite.T(), resp.Failed, 1)
}

func (suite *SeoHandlerTestSuite) TestGenerateBatchNotConfigured() {
	suite.mockSeoService.EXPECT().
		GenerateBatch(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrGenAINotConfigured)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/batch", map[string]interface{}{"targets": []interface{}{}})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusServiceUnavailable, "GENAI_API_KEY")
}

func (suite *SeoHandlerTestSuite) TestGeneratePage() {
	target := seo.Target{City: "San Jose", State: "CA", Service: "tax preparation"}
	suite.mockSeoService.EXPECT().
		GeneratePage(gomock.Any(), target, true).
		Return(&service.SeoPageResponse{ID: uuid.New(), Slug: target.Slug(), Status: models.PageStatusDraft}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages", map[string]interface{}{
		"city":       "San Jose",
		"state":      "CA",
		"service":    "tax preparation",
		"with_image": true,
	})

	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	var resp service.SeoPageResponse
	testutils.ParseJSONResponse(suite.T(), rec, &resp)
	assert.Equal(suite.T(), "tax-preparation-san-jose-ca", resp.Slug)
}

func (suite *SeoHandlerTestSuite) TestListPages() {
	suite.mockSeoService.EXPECT().
		List(gomock.Any(), service.SeoPageListParams{State: "CA", Status: models.PageStatusPublished, Page: 1, PageSize: 20}).
		Return(&service.SeoPageListResponse{Pages: []service.SeoPageResponse{}, Page: 1, PageSize: 20}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/seo/pages?state=CA&status=published", nil)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *SeoHandlerTestSuite) TestGetPublishedPage() {
	suite.Run("published", func() {
		suite.mockSeoService.EXPECT().
			GetPublishedBySlug(gomock.Any(), "tax-preparation-san-jose-ca").
			Return(&service.SeoPageResponse{Slug: "tax-preparation-san-jose-ca", Content: "<p>hi</p>", Status: models.PageStatusPublished}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/pages/tax-preparation-san-jose-ca", nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
		assert.Equal(suite.T(), "public, max-age=300", rec.Header().Get("Cache-Control"))
	})

	suite.Run("draft hidden", func() {
		suite.mockSeoService.EXPECT().
			GetPublishedBySlug(gomock.Any(), "tax-preparation-fresno-ca").
			Return(nil, apperrors.ErrSeoPageNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/pages/tax-preparation-fresno-ca", nil)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "seo landing page not found")
	})
}

func (suite *SeoHandlerTestSuite) TestPublishLifecycle() {
	id := uuid.New()

	suite.mockSeoService.EXPECT().
		Publish(gomock.Any(), id).
		Return(&service.SeoPageResponse{ID: id, Status: models.PageStatusPublished}, nil)
	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/"+id.String()+"/publish", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	suite.mockSeoService.EXPECT().
		Unpublish(gomock.Any(), id).
		Return(&service.SeoPageResponse{ID: id, Status: models.PageStatusDraft}, nil)
	rec = suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/"+id.String()+"/unpublish", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	suite.mockSeoService.EXPECT().Delete(gomock.Any(), id).Return(nil)
	rec = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/seo/pages/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *SeoHandlerTestSuite) TestGetPageInvalidID() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/seo/pages/nope", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid page ID")
}

func (suite *SeoHandlerTestSuite) TestTranslatePage() {
	id := uuid.New()

	suite.Run("translated", func() {
		suite.mockSeoService.EXPECT().
			Translate(gomock.Any(), id, &service.TranslatePageRequest{Language: "es"}).
			Return(&service.SeoPageResponse{ID: uuid.New(), Slug: "tax-preparation-san-jose-ca-es", Language: "es"}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/"+id.String()+"/translate", map[string]string{"language": "es"})
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	})

	suite.Run("already translated", func() {
		suite.mockSeoService.EXPECT().
			Translate(gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.ErrSeoPageExists)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/"+id.String()+"/translate", map[string]string{"language": "es"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "already exists")
	})

	suite.Run("not configured", func() {
		suite.mockSeoService.EXPECT().
			Translate(gomock.Any(), id, gomock.Any()).
			Return(nil, apperrors.ErrTranslateNotConfigured)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/seo/pages/"+id.String()+"/translate", map[string]string{"language": "vi"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusServiceUnavailable, "TRANSLATE_API_KEY")
	})
}

// TestSeoHandlerTestSuite runs the test suite
func TestSeoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SeoHandlerTestSuite))
}

package handlers

import (
	"net/http"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/seo"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SeoHandler handles landing page generation and delivery
type SeoHandler struct {
	service service.SeoServiceInterface
}

// NewSeoHandler creates a new SEO handler
func NewSeoHandler(service service.SeoServiceInterface) *SeoHandler {
	return &SeoHandler{service: service}
}

// GeneratePageRequest asks for a single landing page
type GeneratePageRequest struct {
	seo.Target
	WithImage bool `json:"with_image"`
}

// GenerateBatch handles POST /api/v1/seo/pages/batch
// @Summary Generate landing pages for many city/service pairs
// @Description Existing slugs are skipped unless overwrite is set. One failed page does not stop the batch.
// @Tags seo
// @Accept json
// @Produce json
// @Param request body service.GenerateBatchRequest true "Targets"
// @Success 200 {object} service.BatchResult
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Model not configured"
// @Security BearerAuth
// @Router /seo/pages/batch [post]
func (h *SeoHandler) GenerateBatch(c *gin.Context) {
	var req service.GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := h.service.GenerateBatch(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to generate pages")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GeneratePage handles POST /api/v1/seo/pages
// @Summary Generate or regenerate one landing page
// @Tags seo
// @Accept json
// @Produce json
// @Param request body GeneratePageRequest true "Target"
// @Success 201 {object} service.SeoPageResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Model not configured"
// @Security BearerAuth
// @Router /seo/pages [post]
func (h *SeoHandler) GeneratePage(c *gin.Context) {
	var req GeneratePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	page, err := h.service.GeneratePage(c.Request.Context(), req.Target, req.WithImage)
	if err != nil {
		respondError(c, err, "Failed to generate page")
		return
	}

	c.JSON(http.StatusCreated, page)
}

// ListPages handles GET /api/v1/seo/pages
// @Summary List landing pages
// @Tags seo
// @Produce json
// @Param city query string false "City"
// @Param state query string false "Two letter state"
// @Param service query string false "Service"
// @Param status query string false "draft or published"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SeoPageListResponse
// @Security BearerAuth
// @Router /seo/pages [get]
func (h *SeoHandler) ListPages(c *gin.Context) {
	page, pageSize := pageParams(c)
	params := service.SeoPageListParams{
		City:     c.Query("city"),
		State:    c.Query("state"),
		Service:  c.Query("service"),
		Status:   models.PageStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	resp, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list pages")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPage handles GET /api/v1/seo/pages/:id
// @Summary Get a landing page, draft or published
// @Tags seo
// @Produce json
// @Param id path string true "Page ID (UUID)"
// @Success 200 {object} service.SeoPageResponse
// @Failure 404 {object} ErrorResponse "Page not found"
// @Security BearerAuth
// @Router /seo/pages/{id} [get]
func (h *SeoHandler) GetPage(c *gin.Context) {
	id, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	page, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetPublishedPage handles GET /api/v1/pages/:slug
// @Summary Get a published landing page by slug
// @Tags seo
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} service.SeoPageResponse
// @Failure 404 {object} ErrorResponse "Page not found"
// @Router /pages/{slug} [get]
func (h *SeoHandler) GetPublishedPage(c *gin.Context) {
	page, err := h.service.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get page")
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, page)
}

// PublishPage handles POST /api/v1/seo/pages/:id/publish
// @Summary Publish a landing page
// @Tags seo
// @Produce json
// @Param id path string true "Page ID (UUID)"
// @Success 200 {object} service.SeoPageResponse
// @Failure 404 {object} ErrorResponse "Page not found"
// @Security BearerAuth
// @Router /seo/pages/{id}/publish [post]
func (h *SeoHandler) PublishPage(c *gin.Context) {
	id, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	page, err := h.service.Publish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to publish page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// UnpublishPage handles POST /api/v1/seo/pages/:id/unpublish
// @Summary Return a landing page to draft
// @Tags seo
// @Produce json
// @Param id path string true "Page ID (UUID)"
// @Success 200 {object} service.SeoPageResponse
// @Failure 404 {object} ErrorResponse "Page not found"
// @Security BearerAuth
// @Router /seo/pages/{id}/unpublish [post]
func (h *SeoHandler) UnpublishPage(c *gin.Context) {
	id, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	page, err := h.service.Unpublish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to unpublish page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /api/v1/seo/pages/:id
// @Summary Delete a landing page
// @Tags seo
// @Param id path string true "Page ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Page not found"
// @Security BearerAuth
// @Router /seo/pages/{id} [delete]
func (h *SeoHandler) DeletePage(c *gin.Context) {
	id, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete page")
		return
	}

	c.Status(http.StatusNoContent)
}

// TranslatePage handles POST /api/v1/seo/pages/:id/translate
// @Summary Create a translated draft of a landing page
// @Tags seo
// @Accept json
// @Produce json
// @Param id path string true "Page ID (UUID)"
// @Param request body service.TranslatePageRequest true "Target language"
// @Success 201 {object} service.SeoPageResponse
// @Failure 404 {object} ErrorResponse "Page not found"
// @Failure 409 {object} ErrorResponse "Translation already exists"
// @Failure 503 {object} ErrorResponse "Translation not configured"
// @Security BearerAuth
// @Router /seo/pages/{id}/translate [post]
func (h *SeoHandler) TranslatePage(c *gin.Context) {
	id, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	var req service.TranslatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	page, err := h.service.Translate(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to translate page")
		return
	}

	c.JSON(http.StatusCreated, page)
}

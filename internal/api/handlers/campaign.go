package handlers

import (
	"net/http"

	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignHandler handles email campaign endpoints
type CampaignHandler struct {
	service service.CampaignServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(service service.CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// CreateCampaign handles POST /api/v1/campaigns
// @Summary Create a campaign draft
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body service.CreateCampaignRequest true "Campaign"
// @Success 201 {object} service.CampaignResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	campaign, err := h.service.Create(c.Request.Context(), &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to create campaign")
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// ListCampaigns handles GET /api/v1/campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CampaignListResponse
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	page, pageSize := pageParams(c)

	resp, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list campaigns")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCampaign handles GET /api/v1/campaigns/:id
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := parseIDParam(c, "campaign")
	if !ok {
		return
	}

	campaign, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// UpdateCampaign handles PUT /api/v1/campaigns/:id
// @Summary Edit a campaign draft
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param request body service.UpdateCampaignRequest true "Campaign"
// @Success 200 {object} service.CampaignResponse
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 409 {object} ErrorResponse "Campaign is no longer a draft"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "campaign")
	if !ok {
		return
	}

	var req service.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	campaign, err := h.service.Update(c.Request.Context(), id, &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to update campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /api/v1/campaigns/:id
// @Summary Delete a campaign draft
// @Tags campaigns
// @Param id path string true "Campaign ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 409 {object} ErrorResponse "Campaign is no longer a draft"
// @Security BearerAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, ok := parseIDParam(c, "campaign")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete campaign")
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateContent handles POST /api/v1/campaigns/:id/generate
// @Summary Draft the subject and body with the language model
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Param request body service.GenerateCampaignContentRequest true "Brief"
// @Success 200 {object} service.CampaignResponse
// @Failure 409 {object} ErrorResponse "Campaign is no longer a draft"
// @Failure 503 {object} ErrorResponse "Model not configured"
// @Security BearerAuth
// @Router /campaigns/{id}/generate [post]
func (h *CampaignHandler) GenerateContent(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "campaign")
	if !ok {
		return
	}

	var req service.GenerateCampaignContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	campaign, err := h.service.GenerateContent(c.Request.Context(), id, &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to generate campaign content")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// SendCampaign handles POST /api/v1/campaigns/:id/send
// @Summary Send a campaign to its audience
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID (UUID)"
// @Success 200 {object} service.CampaignResponse
// @Failure 400 {object} ErrorResponse "Subject or body missing"
// @Failure 409 {object} ErrorResponse "Campaign is no longer a draft"
// @Security BearerAuth
// @Router /campaigns/{id}/send [post]
func (h *CampaignHandler) SendCampaign(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "campaign")
	if !ok {
		return
	}

	campaign, err := h.service.Send(c.Request.Context(), id, who.Email)
	if err != nil {
		respondError(c, err, "Failed to send campaign")
		return
	}

	c.JSON(http.StatusOK, campaign)
}

package handlers

import (
	"net/http"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles intake submissions and the lead pipeline
type LeadHandler struct {
	service    service.LeadServiceInterface
	cookieName string
}

// NewLeadHandler creates a new lead handler. cookieName is the referral cookie read on intake.
func NewLeadHandler(service service.LeadServiceInterface, cookieName string) *LeadHandler {
	return &LeadHandler{service: service, cookieName: cookieName}
}

// CreateLead handles POST /api/v1/leads
// @Summary Submit the intake form
// @Description Public endpoint. The referral cookie, when present, takes priority over the ref field.
// @Tags leads
// @Accept json
// @Produce json
// @Param request body service.CreateLeadRequest true "Intake form"
// @Success 201 {object} service.LeadResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	cookieCode, _ := c.Cookie(h.cookieName)

	lead, err := h.service.CreateLead(c.Request.Context(), &req, cookieCode)
	if err != nil {
		respondError(c, err, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/leads
// @Summary List leads
// @Description Staff see every lead; everyone else sees the leads they referred
// @Tags leads
// @Produce json
// @Param status query string false "Filter by status"
// @Param q query string false "Search name or email"
// @Param assigned_to_me query bool false "Only leads assigned to the calling preparer"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LeadListResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	params := service.LeadListParams{
		Status:       models.LeadStatus(c.Query("status")),
		Search:       c.Query("q"),
		AssignedToMe: c.Query("assigned_to_me") == "true",
		Page:         page,
		PageSize:     pageSize,
	}

	resp, err := h.service.List(c.Request.Context(), who, params)
	if err != nil {
		respondError(c, err, "Failed to list leads")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLead handles GET /api/v1/leads/:id
// @Summary Get a lead
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} service.LeadResponse
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "lead")
	if !ok {
		return
	}

	lead, err := h.service.Get(c.Request.Context(), who, id)
	if err != nil {
		respondError(c, err, "Failed to get lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatus handles PUT /api/v1/leads/:id/status
// @Summary Move a lead through the pipeline
// @Description Converting a lead requires a fee and creates the referrer's commission
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param request body service.UpdateLeadStatusRequest true "New status"
// @Success 200 {object} service.LeadResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /leads/{id}/status [put]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "lead")
	if !ok {
		return
	}

	var req service.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	lead, err := h.service.UpdateStatus(c.Request.Context(), who, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update lead status")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// AssignLead handles PUT /api/v1/leads/:id/assignee
// @Summary Assign a lead to a tax preparer
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param request body service.AssignLeadRequest true "Preparer"
// @Success 200 {object} service.LeadResponse
// @Failure 403 {object} ErrorResponse "Assignee is not a tax preparer"
// @Failure 404 {object} ErrorResponse "Lead or preparer not found"
// @Security BearerAuth
// @Router /leads/{id}/assignee [put]
func (h *LeadHandler) AssignLead(c *gin.Context) {
	id, ok := parseIDParam(c, "lead")
	if !ok {
		return
	}

	var req service.AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	lead, err := h.service.AssignPreparer(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to assign lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

package handlers

import (
	"net/http"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CRMHandler handles CRM contact endpoints
type CRMHandler struct {
	service service.CRMServiceInterface
}

// NewCRMHandler creates a new CRM handler
func NewCRMHandler(service service.CRMServiceInterface) *CRMHandler {
	return &CRMHandler{service: service}
}

// ListContacts handles GET /api/v1/crm/contacts
// @Summary Search CRM contacts
// @Tags crm
// @Produce json
// @Param q query string false "Search name or email"
// @Param stage query string false "lead or customer"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CRMContactListResponse
// @Failure 400 {object} ErrorResponse "Unknown stage"
// @Security BearerAuth
// @Router /crm/contacts [get]
func (h *CRMHandler) ListContacts(c *gin.Context) {
	page, pageSize := pageParams(c)
	stage := models.ContactStage(c.Query("stage"))

	resp, err := h.service.ListContacts(c.Request.Context(), c.Query("q"), stage, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UnsubscribeRequest identifies the contact opting out of campaigns
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email" example:"maria@example.com"`
}

// Unsubscribe handles POST /api/v1/crm/unsubscribe
// @Summary Opt out of campaign email
// @Description Public endpoint. Unknown addresses are accepted so the endpoint does not reveal who is a contact.
// @Tags crm
// @Accept json
// @Param request body UnsubscribeRequest true "Email address"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Router /crm/unsubscribe [post]
func (h *CRMHandler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req.Email); err != nil && !apperrors.IsNotFound(err) {
		respondError(c, err, "Failed to unsubscribe")
		return
	}

	c.Status(http.StatusNoContent)
}

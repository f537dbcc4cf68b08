package handlers

import (
	"net/http"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PageRestrictionHandler handles role-based page access rules
type PageRestrictionHandler struct {
	service service.PageRestrictionServiceInterface
}

// NewPageRestrictionHandler creates a new page restriction handler
func NewPageRestrictionHandler(service service.PageRestrictionServiceInterface) *PageRestrictionHandler {
	return &PageRestrictionHandler{service: service}
}

// CheckAccess handles GET /api/v1/page-restrictions/check
// @Summary Check whether the caller may view a path
// @Description Anonymous callers are evaluated without a role. The most specific active rule decides.
// @Tags page-restrictions
// @Produce json
// @Param path query string true "Page path"
// @Success 200 {object} service.AccessDecision
// @Failure 400 {object} ErrorResponse "path is required"
// @Router /page-restrictions/check [get]
func (h *PageRestrictionHandler) CheckAccess(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	var role *models.Role
	if r, ok := auth.GetRole(c); ok {
		role = &r
	}

	decision, err := h.service.Check(c.Request.Context(), path, role)
	if err != nil {
		respondError(c, err, "Failed to check page access")
		return
	}

	c.JSON(http.StatusOK, decision)
}

// CreateRestriction handles POST /api/v1/page-restrictions
// @Summary Create a page restriction
// @Tags page-restrictions
// @Accept json
// @Produce json
// @Param request body service.PageRestrictionRequest true "Restriction"
// @Success 201 {object} service.PageRestrictionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Path already restricted"
// @Security BearerAuth
// @Router /page-restrictions [post]
func (h *PageRestrictionHandler) CreateRestriction(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.PageRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to create page restriction")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListRestrictions handles GET /api/v1/page-restrictions
// @Summary List page restrictions
// @Tags page-restrictions
// @Produce json
// @Success 200 {array} service.PageRestrictionResponse
// @Security BearerAuth
// @Router /page-restrictions [get]
func (h *PageRestrictionHandler) ListRestrictions(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list page restrictions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRestriction handles GET /api/v1/page-restrictions/:id
// @Summary Get a page restriction
// @Tags page-restrictions
// @Produce json
// @Param id path string true "Restriction ID (UUID)"
// @Success 200 {object} service.PageRestrictionResponse
// @Failure 404 {object} ErrorResponse "Restriction not found"
// @Security BearerAuth
// @Router /page-restrictions/{id} [get]
func (h *PageRestrictionHandler) GetRestriction(c *gin.Context) {
	id, ok := parseIDParam(c, "page restriction")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get page restriction")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateRestriction handles PUT /api/v1/page-restrictions/:id
// @Summary Replace a page restriction
// @Tags page-restrictions
// @Accept json
// @Produce json
// @Param id path string true "Restriction ID (UUID)"
// @Param request body service.PageRestrictionRequest true "Restriction"
// @Success 200 {object} service.PageRestrictionResponse
// @Failure 404 {object} ErrorResponse "Restriction not found"
// @Failure 409 {object} ErrorResponse "Path already restricted"
// @Security BearerAuth
// @Router /page-restrictions/{id} [put]
func (h *PageRestrictionHandler) UpdateRestriction(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "page restriction")
	if !ok {
		return
	}

	var req service.PageRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to update page restriction")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteRestriction handles DELETE /api/v1/page-restrictions/:id
// @Summary Delete a page restriction
// @Tags page-restrictions
// @Param id path string true "Restriction ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Restriction not found"
// @Security BearerAuth
// @Router /page-restrictions/{id} [delete]
func (h *PageRestrictionHandler) DeleteRestriction(c *gin.Context) {
	id, ok := parseIDParam(c, "page restriction")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete page restriction")
		return
	}

	c.Status(http.StatusNoContent)
}

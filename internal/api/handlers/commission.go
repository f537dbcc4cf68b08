package handlers

import (
	"fmt"
	"net/http"
	"time"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CommissionHandler handles commission endpoints
type CommissionHandler struct {
	service service.CommissionServiceInterface
}

// NewCommissionHandler creates a new commission handler
func NewCommissionHandler(service service.CommissionServiceInterface) *CommissionHandler {
	return &CommissionHandler{service: service}
}

// ListCommissions handles GET /api/v1/commissions
// @Summary List commissions
// @Description Admins see every commission; referrers see their own
// @Tags commissions
// @Produce json
// @Param status query string false "pending, approved, paid or void"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.CommissionListResponse
// @Security BearerAuth
// @Router /commissions [get]
func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	status := models.CommissionStatus(c.Query("status"))

	resp, err := h.service.List(c.Request.Context(), who, status, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list commissions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCommission handles GET /api/v1/commissions/:id
// @Summary Get a commission
// @Tags commissions
// @Produce json
// @Param id path string true "Commission ID (UUID)"
// @Success 200 {object} service.CommissionResponse
// @Failure 404 {object} ErrorResponse "Commission not found"
// @Security BearerAuth
// @Router /commissions/{id} [get]
func (h *CommissionHandler) GetCommission(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "commission")
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), who, id)
	if err != nil {
		respondError(c, err, "Failed to get commission")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCommissionStatus handles PUT /api/v1/commissions/:id/status
// @Summary Approve, pay or void a commission
// @Tags commissions
// @Accept json
// @Produce json
// @Param id path string true "Commission ID (UUID)"
// @Param request body service.UpdateCommissionStatusRequest true "New status"
// @Success 200 {object} service.CommissionResponse
// @Failure 404 {object} ErrorResponse "Commission not found"
// @Failure 409 {object} ErrorResponse "Invalid status transition"
// @Security BearerAuth
// @Router /commissions/{id}/status [put]
func (h *CommissionHandler) UpdateCommissionStatus(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "commission")
	if !ok {
		return
	}

	var req service.UpdateCommissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), id, &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to update commission")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummary handles GET /api/v1/commissions/summary
// @Summary Commission totals by status
// @Description Referrers get their own totals. Admins get platform totals, or one referrer's with referrer_id.
// @Tags commissions
// @Produce json
// @Param referrer_id query string false "Referrer ID (admin only)"
// @Success 200 {object} service.CommissionSummary
// @Security BearerAuth
// @Router /commissions/summary [get]
func (h *CommissionHandler) GetSummary(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var referrerID *uuid.UUID
	if !who.IsAdmin() {
		referrerID = &who.ProfileID
	} else if raw := c.Query("referrer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid referrer ID: invalid UUID format"})
			return
		}
		referrerID = &id
	}

	resp, err := h.service.Summary(c.Request.Context(), referrerID)
	if err != nil {
		respondError(c, err, "Failed to summarize commissions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportCommissions handles GET /api/v1/commissions/export
// @Summary Download commissions as a spreadsheet
// @Tags commissions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Only commissions with this status"
// @Success 200 {file} file "xlsx workbook"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Security BearerAuth
// @Router /commissions/export [get]
func (h *CommissionHandler) ExportCommissions(c *gin.Context) {
	status := models.CommissionStatus(c.Query("status"))

	data, err := h.service.Export(c.Request.Context(), status)
	if err != nil {
		respondError(c, err, "Failed to export commissions")
		return
	}

	filename := fmt.Sprintf("commissions-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

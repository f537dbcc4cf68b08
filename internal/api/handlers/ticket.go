package handlers

import (
	"net/http"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles support ticket endpoints
type TicketHandler struct {
	service service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(service service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{service: service}
}

// CreateTicket handles POST /api/v1/tickets
// @Summary Open a support ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body service.CreateTicketRequest true "Ticket"
// @Success 201 {object} service.TicketResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	ticket, err := h.service.Create(c.Request.Context(), who, &req)
	if err != nil {
		respondError(c, err, "Failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// ListTickets handles GET /api/v1/tickets
// @Summary List tickets
// @Description Staff see every ticket; customers see their own
// @Tags tickets
// @Produce json
// @Param status query string false "Filter by status"
// @Param assigned_to_me query bool false "Only tickets assigned to the caller"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TicketListResponse
// @Security BearerAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	status := models.TicketStatus(c.Query("status"))
	assignedToMe := c.Query("assigned_to_me") == "true"

	resp, err := h.service.List(c.Request.Context(), who, status, assignedToMe, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTicket handles GET /api/v1/tickets/:id
// @Summary Get a ticket with its messages
// @Description Internal notes are only returned to staff
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} service.TicketResponse
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "ticket")
	if !ok {
		return
	}

	ticket, err := h.service.Get(c.Request.Context(), who, id)
	if err != nil {
		respondError(c, err, "Failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AddMessage handles POST /api/v1/tickets/:id/messages
// @Summary Reply on a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param request body service.AddTicketMessageRequest true "Message"
// @Success 201 {object} service.TicketMessageResponse
// @Failure 403 {object} ErrorResponse "Internal notes are staff only"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Failure 409 {object} ErrorResponse "Ticket is closed"
// @Security BearerAuth
// @Router /tickets/{id}/messages [post]
func (h *TicketHandler) AddMessage(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "ticket")
	if !ok {
		return
	}

	var req service.AddTicketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	msg, err := h.service.AddMessage(c.Request.Context(), who, id, &req)
	if err != nil {
		respondError(c, err, "Failed to add message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// UpdateTicketStatus handles PUT /api/v1/tickets/:id/status
// @Summary Change a ticket's status
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param request body service.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} service.TicketResponse
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 409 {object} ErrorResponse "Ticket is closed"
// @Security BearerAuth
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "ticket")
	if !ok {
		return
	}

	var req service.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	ticket, err := h.service.UpdateStatus(c.Request.Context(), who, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// AssignTicket handles PUT /api/v1/tickets/:id/assignee
// @Summary Assign a ticket to a staff member
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param request body service.AssignTicketRequest true "Assignee"
// @Success 200 {object} service.TicketResponse
// @Failure 403 {object} ErrorResponse "Assignee is not staff"
// @Security BearerAuth
// @Router /tickets/{id}/assignee [put]
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "ticket")
	if !ok {
		return
	}

	var req service.AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	ticket, err := h.service.Assign(c.Request.Context(), id, &req, who.Email)
	if err != nil {
		respondError(c, err, "Failed to assign ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

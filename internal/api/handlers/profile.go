package handlers

import (
	"net/http"

	"taxpro-backend/internal/database/models"
	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles registration, login and profile management
type ProfileHandler struct {
	service service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Register handles POST /api/v1/auth/register
// @Summary Register a new account
// @Description Create a client or affiliate account and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *ProfileHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange email and password for a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *ProfileHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMe handles GET /api/v1/profile
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	profile, err := h.service.GetByID(c.Request.Context(), who.ProfileID)
	if err != nil {
		respondError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PUT /api/v1/profile
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body service.UpdateProfileRequest true "Profile data"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	profile, err := h.service.UpdateMe(c.Request.Context(), who.ProfileID, &req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetVanityCode handles PUT /api/v1/profile/vanity-code
// @Summary Claim a vanity referral code
// @Description A vanity code can be set once and must not collide with any existing code
// @Tags profile
// @Accept json
// @Produce json
// @Param request body service.SetVanityCodeRequest true "Vanity code"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid code"
// @Failure 409 {object} ErrorResponse "Code taken or already set"
// @Security BearerAuth
// @Router /profile/vanity-code [put]
func (h *ProfileHandler) SetVanityCode(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.SetVanityCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	profile, err := h.service.SetVanityCode(c.Request.Context(), who.ProfileID, &req)
	if err != nil {
		respondError(c, err, "Failed to set vanity code")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/v1/admin/profiles
// @Summary List profiles
// @Tags admin
// @Produce json
// @Param role query string false "Filter by role"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProfileListResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Security BearerAuth
// @Router /admin/profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	page, pageSize := pageParams(c)
	role := models.Role(c.Query("role"))

	resp, err := h.service.List(c.Request.Context(), role, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetRoleRequest changes the role of a profile
type SetRoleRequest struct {
	Role models.Role `json:"role" binding:"required" example:"tax_preparer"`
}

// SetRole handles PUT /api/v1/admin/profiles/:id/role
// @Summary Change a profile's role
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param request body SetRoleRequest true "New role"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /admin/profiles/{id}/role [put]
func (h *ProfileHandler) SetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "profile")
	if !ok {
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	profile, err := h.service.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondError(c, err, "Failed to set role")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SetActiveRequest enables or disables a profile
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive handles PUT /api/v1/admin/profiles/:id/active
// @Summary Enable or disable a profile
// @Description Disabled profiles cannot log in and their referral codes stop resolving
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param request body SetActiveRequest true "Active flag"
// @Success 200 {object} service.ProfileResponse
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /admin/profiles/{id}/active [put]
func (h *ProfileHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "profile")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	profile, err := h.service.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

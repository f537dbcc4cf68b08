package handlers

import (
	"net/http"
	"net/url"

	"taxpro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReferralCookie describes the attribution cookie dropped by referral links
type ReferralCookie struct {
	Name        string
	MaxAge      int
	LandingPath string
	Secure      bool
}

// ReferralHandler handles referral links and the referrer's own referrals
type ReferralHandler struct {
	service service.ReferralServiceInterface
	cookie  ReferralCookie
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(service service.ReferralServiceInterface, cookie ReferralCookie) *ReferralHandler {
	return &ReferralHandler{service: service, cookie: cookie}
}

// FollowLink handles GET /r/:code
// @Summary Follow a referral link
// @Description Records the click, sets the attribution cookie and redirects to the landing page. Unknown codes redirect without a cookie.
// @Tags referrals
// @Param code path string true "Tracking or vanity code"
// @Success 302 "Redirect to the landing page"
// @Router /r/{code} [get]
func (h *ReferralHandler) FollowLink(c *gin.Context) {
	code := c.Param("code")
	target := h.cookie.LandingPath

	known := h.service.RecordClick(c.Request.Context(), service.ClickInput{
		Code:        code,
		IP:          c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		LandingPath: target,
	})
	if known {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, code, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
		target = withRef(target, code)
	}

	c.Redirect(http.StatusFound, target)
}

func withRef(target, code string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("ref", code)
	u.RawQuery = q.Encode()
	return u.String()
}

// SubmitReferral handles POST /api/v1/referrals
// @Summary Refer a friend
// @Description Pre-register a friend so their later intake is attributed by email or phone
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body service.SubmitReferralRequest true "Friend details"
// @Success 201 {object} service.ReferralResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Friend already referred"
// @Security BearerAuth
// @Router /referrals [post]
func (h *ReferralHandler) SubmitReferral(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	var req service.SubmitReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	resp, err := h.service.SubmitReferral(c.Request.Context(), who.ProfileID, &req)
	if err != nil {
		respondError(c, err, "Failed to submit referral")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMyReferrals handles GET /api/v1/referrals
// @Summary List my referrals
// @Tags referrals
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ReferralListResponse
// @Security BearerAuth
// @Router /referrals [get]
func (h *ReferralHandler) ListMyReferrals(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	resp, err := h.service.ListMine(c.Request.Context(), who.ProfileID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list referrals")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats handles GET /api/v1/referrals/stats
// @Summary Referral dashboard numbers
// @Description Clicks, referrals, leads, conversions and commission totals for the caller
// @Tags referrals
// @Produce json
// @Success 200 {object} service.ReferralStatsResponse
// @Security BearerAuth
// @Router /referrals/stats [get]
func (h *ReferralHandler) GetStats(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), who.ProfileID)
	if err != nil {
		respondError(c, err, "Failed to get referral stats")
		return
	}

	c.JSON(http.StatusOK, resp)
}

package testutils

import (
	"net/http"
	"testing"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSessionsAuthenticateThroughMiddleware(t *testing.T) {
	sessions := NewSessions(t)
	httpSuite := SetupHTTPTest()
	httpSuite.Router.GET("/whoami", sessions.Middleware.RequireAuth(), func(c *gin.Context) {
		identity, _ := auth.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.ProfileID, "role": identity.Role})
	})

	who, headers := sessions.Login(models.RoleTaxPreparer)
	rec := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/whoami", nil, headers)

	var body map[string]string
	ParseJSONResponse(t, rec, &body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, who.ProfileID.String(), body["id"])
	assert.Equal(t, string(models.RoleTaxPreparer), body["role"])

	AssertErrorResponse(t, httpSuite.MakeRequest(http.MethodGet, "/whoami", nil), http.StatusUnauthorized, "Authorization header is required")
}

func TestSessionsDistinctProfiles(t *testing.T) {
	sessions := NewSessions(t)

	first, _ := sessions.Login(models.RoleAffiliate)
	second, _ := sessions.Login(models.RoleAffiliate)

	assert.NotEqual(t, first.ProfileID, second.ProfileID)
}

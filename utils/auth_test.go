package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/protected")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":     c.MustGet("userId"),
			"role":       c.MustGet("role"),
			"supplierId": c.MustGet("supplierId"),
		})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-42", "supplier", "sup-001")
	require.NoError(t, err)

	w := doGet(protectedRouter(), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
	assert.Contains(t, w.Body.String(), "sup-001")
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := doGet(protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := GenerateToken("user-42", "admin", "")
	require.NoError(t, err)

	// Token signed with a different secret than the verifier's.
	t.Setenv("JWT_SECRET", "test-secret")
	w := doGet(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	supplierToken, err := GenerateToken("user-1", "supplier", "sup-001")
	require.NoError(t, err)
	adminToken, err := GenerateToken("user-2", "admin", "")
	require.NoError(t, err)

	r := protectedRouter("admin")

	w := doGet(r, supplierToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := protectedRouter("admin", "supplier")

	supplierToken, err := GenerateToken("user-1", "supplier", "sup-001")
	require.NoError(t, err)
	influencerToken, err := GenerateToken("user-3", "influencer", "")
	require.NoError(t, err)

	w := doGet(r, supplierToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, influencerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

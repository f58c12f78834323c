package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func setupProtectedRouter(adminHandlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	r.GET("/admin", RequireAuthWithRole("admin"), func(c *gin.Context) {
		if adminHandlerRan != nil {
			*adminHandlerRan = true
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func getWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := setupProtectedRouter(nil)

	w := getWithToken(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	r := setupProtectedRouter(nil)

	w := getWithToken(r, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	r := setupProtectedRouter(nil)

	token, err := GenerateToken(1, "admin", "staff@example.com")
	assert.NoError(t, err)

	w := getWithToken(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff@example.com")
}

// A valid token with the wrong role must be rejected before the handler
// runs, not after.
func TestRequireAuthWithRoleRejectsOtherRoles(t *testing.T) {
	handlerRan := false
	r := setupProtectedRouter(&handlerRan)

	token, err := GenerateToken(2, "viewer", "viewer@example.com")
	assert.NoError(t, err)

	w := getWithToken(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan, "admin handler must not execute for non-admin tokens")
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
	assert.NotContains(t, w.Body.String(), "\"ok\"")
}

func TestRequireAuthWithRoleAcceptsAdmin(t *testing.T) {
	handlerRan := false
	r := setupProtectedRouter(&handlerRan)

	token, err := GenerateToken(3, "admin", "admin@example.com")
	assert.NoError(t, err)

	w := getWithToken(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerRan)
}

// The signing secret must be read from the environment at use time, so a
// value loaded from .env after process start is honored.
func TestSecretFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "rotated-secret")

	token, err := GenerateToken(4, "admin", "staff@example.com")
	assert.NoError(t, err)

	r := setupProtectedRouter(nil)
	w := getWithToken(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// A token signed under the fallback secret is no longer acceptable.
	fallback := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 5,
		"role":    "admin",
		"email":   "old@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := fallback.SignedString([]byte("supersecret"))
	assert.NoError(t, err)

	w = getWithToken(r, "/me", signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-cms/internal/service"
)

func newAuthTestRouter(access *service.AccessService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(access))
	r.GET("/admin/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func newTestAccess(ttl time.Duration) *service.AccessService {
	tokens := service.NewTokenManager("middleware-test-secret", ttl)
	return service.NewAccessService(service.AdminCredentials{
		Username: "admin",
		Password: "secret",
	}, tokens)
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	r := newAuthTestRouter(newTestAccess(time.Hour))

	req, _ := http.NewRequest("GET", "/admin/portfolio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter(newTestAccess(time.Hour))

	req, _ := http.NewRequest("GET", "/admin/portfolio", nil)
	req.Header.Set("Authorization", "Basic something")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := newAuthTestRouter(newTestAccess(time.Hour))

	req, _ := http.NewRequest("GET", "/admin/portfolio", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	access := newTestAccess(-time.Minute)
	r := newAuthTestRouter(access)

	token, err := access.Login("admin", "secret")
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/admin/portfolio", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	access := newTestAccess(time.Hour)
	r := newAuthTestRouter(access)

	token, err := access.Login("admin", "secret")
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/admin/portfolio", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

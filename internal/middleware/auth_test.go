package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/autogleam/detailing-api/internal/auth"
	"github.com/autogleam/detailing-api/internal/config"
	"github.com/autogleam/detailing-api/internal/models"
)

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    RoleFromContext(c),
		})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_authorization_header")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newAuthRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := newAuthRouter(cfg)

	tok, err := auth.GenerateToken(7, "kasia@example.com", models.RoleEmployee, []byte(cfg.JWTSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"employee"`)
}

func TestAuthMiddleware_AuthDisabledInjectsAdmin(t *testing.T) {
	r := newAuthRouter(&config.Config{AuthDisabled: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRoleFromContext_DefaultsToEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, models.RoleEmployee, RoleFromContext(c))
}

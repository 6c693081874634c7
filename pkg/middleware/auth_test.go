package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mob-social/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func whoAmI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("user_role")})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "registered")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	for name, header := range map[string]string{
		"no header":      "",
		"invalid format": "InvalidFormat token",
		"invalid token":  "Bearer invalid-token",
		"empty bearer":   "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-9", "registered")

	router := setupTestRouter()
	router.Use(OptionalAuthMiddleware(jwtService))
	router.GET("/test", whoAmI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-9"`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestRateLimitMiddleware_NilClientPassesThrough(t *testing.T) {
	router := setupTestRouter()
	router.Use(RateLimitMiddleware(nil, 1, time.Minute))
	router.GET("/test", whoAmI)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitKey(t *testing.T) {
	router := setupTestRouter()
	authed := router.Group("/authed")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Next()
	})
	authed.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, rateLimitKey(c))
	})
	router.GET("/anon/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, rateLimitKey(c))
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/authed/items/7", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, "rate_limit:/authed/items/:id:user-123", w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/anon/items/7", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	assert.Equal(t, "rate_limit:/anon/items/:id:10.0.0.1", w.Body.String())
}

func TestRateLimitMiddleware_AfterAuthSeesUser(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "registered")

	var seen string
	router := setupTestRouter()
	router.Use(OptionalAuthMiddleware(jwtService), func(c *gin.Context) {
		seen = rateLimitKey(c)
		c.Next()
	}, RateLimitMiddleware(nil, 1, time.Minute))
	router.GET("/test", whoAmI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate_limit:/test:user-123", seen)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boystrip/pkg/logger"
	"boystrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(issuer *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(logger.Nop()))

	guest := r.Group("/", JWTAuthMiddleware(issuer))
	guest.GET("/open", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("Role")) })
	guest.GET("/admin", RoleMiddleware(utils.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	guestToken, err := issuer.CreateToken(utils.RoleGuest)
	require.NoError(t, err)
	adminToken, err := issuer.CreateToken(utils.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/open", "", http.StatusUnauthorized},
		{"bad token", "/open", "Bearer nope", http.StatusUnauthorized},
		{"guest", "/open", "Bearer " + guestToken, http.StatusOK},
		{"query token", "/open?token=" + guestToken, "", http.StatusOK},
		{"guest on admin route", "/admin", "Bearer " + guestToken, http.StatusForbidden},
		{"admin", "/admin", "Bearer " + adminToken, http.StatusOK},
	}

	r := newRouter(issuer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
		})
	}
}

func TestTraceIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := newRouter(utils.NewTokenIssuer("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Trace-ID", "from-client")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "from-client", w.Header().Get("X-Trace-ID"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ai", RateLimitMiddleware(6), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ai", RateLimitMiddleware(0), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

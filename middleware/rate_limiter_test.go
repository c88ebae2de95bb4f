package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fletero/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	r := newLimitedRouter()

	assert.Equal(t, http.StatusOK, hit(r, "198.51.100.7").Code)
	assert.Equal(t, http.StatusOK, hit(r, "198.51.100.7").Code)

	rec := hit(r, "198.51.100.7")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	// Other clients keep their own budget.
	assert.Equal(t, http.StatusOK, hit(r, "198.51.100.8").Code)
}

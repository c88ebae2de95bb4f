package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler answers GET / with a plain-text liveness string.
func HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "fletero calendar service is running")
}

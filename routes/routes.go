package routes

import (
	"time"

	"fletero/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.HealthHandler)

	api := r.Group("/api/calendar")
	{
		api.POST("/search", h.SearchHandler)
		api.GET("/search", h.SearchMethodNotAllowed)
		api.POST("/reserve", h.ReserveHandler)
		api.GET("/fleet", h.FleetHandler)
	}
}

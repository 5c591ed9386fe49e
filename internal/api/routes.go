package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(RequestID())
	router.Use(Logger())
	router.Use(Metrics())
	router.Use(Recovery())
	router.Use(CORS())

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/resources.json", handler.GetResources)

	api := router.Group("/api")
	{
		api.GET("/events", handler.GetEvents)
		api.GET("/events/calendar.ics", handler.GetCalendar)
		api.GET("/team", handler.GetTeam)
	}

	return router
}

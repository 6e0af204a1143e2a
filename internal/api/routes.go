package api

import (
	"fitsync/fitsync-ai/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the plan generation API on router.
func SetupRoutes(router *gin.Engine, corsOrigins []string, planService service.PlanService) {
	planHandler := NewPlanHandler(planService)

	router.Use(CORSMiddleware(corsOrigins))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.POST("/generate_fitness_plan", planHandler.GenerateFitnessPlan)
}

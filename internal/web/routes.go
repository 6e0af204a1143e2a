package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// SetupRoutes registers the UI on router.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.SetHTMLTemplate(Templates())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/", h.Index)
	router.POST("/profile", h.SaveProfile)
	router.POST("/workouts", h.AddWorkout)
	router.POST("/generate", h.GeneratePlan)
	router.POST("/bmi", h.CalculateBMI)
	router.POST("/reset", h.Reset)
	router.GET("/plans", h.RecentPlans)
}

package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browsers on the given origins to call the API directly.
// A "*" entry allows any origin.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = append(config.AllowHeaders, "X-Request-ID")
	config.ExposeHeaders = []string{"X-Request-ID"}
	config.MaxAge = 12 * time.Hour

	config.AllowOrigins = nil
	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			break
		}
		config.AllowOrigins = append(config.AllowOrigins, origin)
	}
	if config.AllowAllOrigins || len(config.AllowOrigins) == 0 {
		config.AllowAllOrigins = true
		config.AllowOrigins = nil
	}
	return cors.New(config)
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitsync/fitsync-ai/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevel(t *testing.T) {
	Setup(config.LogConfig{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Setup(config.LogConfig{Level: "nonsense"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger())

	var sawLogger bool
	router.GET("/x", func(c *gin.Context) {
		sawLogger = log.Ctx(c.Request.Context()).GetLevel() != zerolog.Disabled
		c.String(http.StatusOK, c.GetString(ContextRequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String())
	assert.True(t, sawLogger)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "given-id", w.Header().Get(RequestIDHeader))
}

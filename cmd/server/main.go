package main

import (
	"context"
	"errors"
	"fitsync/fitsync-ai/internal/api"
	"fitsync/fitsync-ai/internal/config"
	"fitsync/fitsync-ai/internal/llm"
	"fitsync/fitsync-ai/internal/logging"
	"fitsync/fitsync-ai/internal/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title FitSync Plan API
// @version 1.0
// @description Turns a fitness profile into a generated training plan.
// @host localhost:5000
// @BasePath /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load config")
	}
	logging.Setup(cfg.Log)
	log.Info().Msg("Starting FitSync plan API...")

	// --- Model client ---
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	model, err := llm.NewGemini(ctx, cfg.Gemini)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create model client")
	}

	// --- Services ---
	planService := service.NewPlanService(model)

	// --- Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger())
	api.SetupRoutes(router, cfg.Server.CORSOrigins, planService)

	// The write timeout must outlast a full model call.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Address).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exiting.")
}

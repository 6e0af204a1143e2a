package main

import (
	"context"
	"errors"
	"fitsync/fitsync-ai/internal/client"
	"fitsync/fitsync-ai/internal/config"
	"fitsync/fitsync-ai/internal/logging"
	"fitsync/fitsync-ai/internal/repository/mongo"
	"fitsync/fitsync-ai/internal/service"
	"fitsync/fitsync-ai/internal/session"
	"fitsync/fitsync-ai/internal/storage"
	"fitsync/fitsync-ai/internal/web"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load config")
	}
	logging.Setup(cfg.Log)
	log.Info().Msg("Starting FitSync web UI...")

	// --- Database Connection ---
	// An unreachable store is not fatal: inserts fail individually and show a notice.
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid MongoDB configuration")
	}
	defer func() {
		log.Info().Msg("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}()
	if err := mongo.Ping(dbClient); err != nil {
		log.Warn().Err(err).Msg("MongoDB is not reachable yet; plans will not be saved until it is")
	}
	planCollection := dbClient.Database(cfg.Database.Name).Collection(cfg.Database.Collection)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsurePlanIndexes(ctx, planCollection)
	}()

	// --- Plan archive (optional) ---
	var archive storage.FileStorage
	if cfg.S3.Enabled() {
		archive, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 storage")
		}
	}

	// --- Services ---
	planRepo := mongo.NewMongoPlanRepository(planCollection)
	recorder := service.NewPlanRecorder(planRepo, archive)
	planner := service.NewPlanner(client.NewPlanClient(cfg.Web.APIURL, cfg.Web.APITimeout), recorder)
	sessions := session.NewStore(cfg.Web)

	// --- Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger())
	web.SetupRoutes(router, web.NewHandler(sessions, planner, recorder))

	server := &http.Server{
		Addr:        cfg.Web.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Web.Address).Str("api", cfg.Web.APIURL).Bool("tls", cfg.Web.TLSEnabled()).Msg("Web UI starting")
		var err error
		if cfg.Web.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.Web.TLSCertFile, cfg.Web.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down web UI...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("Web UI forced to shutdown")
	}
	log.Info().Msg("Web UI exiting.")
}

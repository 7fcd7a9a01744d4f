package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pitchbridge/pitchbridge-api/internal/api"
	"github.com/pitchbridge/pitchbridge-api/internal/core/service"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/ai"
	mongodb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/redis"
	"github.com/pitchbridge/pitchbridge-api/internal/pkg/config"
	"github.com/pitchbridge/pitchbridge-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        PitchBridge API
// @version      1.0
// @description  Marketplace connecting startup founders with investors.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	startupRepo := mongodb.NewStartupRepository(db)
	interestRepo := mongodb.NewInterestRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	// --- Services ---
	fanout := service.NewNotificationFanout(notificationRepo, redisdb.NewFanoutDedup(rdb), log)
	analyzer := ai.NewGeminiAnalyzer(ai.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, log)

	feedbackService := service.NewFeedbackService(feedbackRepo, startupRepo, fanout, log)

	services := api.Services{
		Auth:          service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log),
		Users:         service.NewUserService(userRepo),
		Startups:      service.NewStartupService(startupRepo, userRepo, interestRepo, feedbackRepo, log),
		Interests:     service.NewInterestService(interestRepo, startupRepo, userRepo, fanout, log),
		Events:        service.NewEventService(eventRepo, log),
		Feedback:      feedbackService,
		Notifications: service.NewNotificationService(notificationRepo),
		Analyzer:      service.NewAnalyzerService(startupRepo, feedbackService, analyzer, log),
	}

	e := api.NewRouter(services, api.RouterOptions{
		JWTSecret: cfg.JWTSecret,
		Log:       log,
		Mongo:     db,
		Redis:     rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

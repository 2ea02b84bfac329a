package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/voiceguard/voice-api/internal/config"
	"github.com/voiceguard/voice-api/internal/database"
	"github.com/voiceguard/voice-api/internal/handlers"
	"github.com/voiceguard/voice-api/internal/middleware"
	"github.com/voiceguard/voice-api/internal/repository"
	"github.com/voiceguard/voice-api/internal/routes"
	"github.com/voiceguard/voice-api/internal/services"
	"github.com/voiceguard/voice-api/internal/utils"
	"go.uber.org/zap"
)

const (
	usersCollection     = "users"
	feedbackCollection  = "feedback"
	analyticsCollection = "analytics"
	samplesCollection   = "audiosamples"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.App.Env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() {
		_ = logger.Sync()
	}()
	sugar := logger.Sugar()
	sugar.Infof("Starting voice-api in %s environment on port %d", cfg.App.Env, cfg.App.Port)

	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, sugar)
	if err != nil {
		sugar.Fatal(err)
	}
	rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	jwtMgr := utils.NewJWTManager(cfg.App.JWT.Secret, cfg.AccessTTL(), cfg.RefreshTTL())

	userRepo := repository.NewMongoUserRepo(db, usersCollection)
	feedbackRepo := repository.NewMongoFeedbackRepo(db, feedbackCollection)
	analyticsRepo := repository.NewMongoAnalyticsRepo(db, analyticsCollection)
	sampleRepo := repository.NewMongoSampleRepo(db, samplesCollection)

	authSvc := services.NewAuthService(userRepo, analyticsRepo, jwtMgr, cfg.App.AdminEmail, cfg.Security.PasswordHashCost, logger)
	userSvc := services.NewUserService(userRepo, analyticsRepo, sampleRepo, logger)
	feedbackSvc := services.NewFeedbackService(feedbackRepo, rdb, logger)
	sampleSvc := services.NewSampleService(sampleRepo)

	h := handlers.NewHandler(authSvc, userSvc, feedbackSvc, sampleSvc, logger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logger))

	routes.Setup(app, h, jwtMgr, userRepo, logger)

	go func() {
		listenAddr := fmt.Sprintf(":%d", cfg.App.Port)
		sugar.Infof("Server listening on %s", listenAddr)
		if err := app.Listen(listenAddr); err != nil {
			sugar.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	sugar.Info("Shutting down server...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		sugar.Errorf("Fiber app shutdown error: %v", err)
	}
	if err := mongoClient.Disconnect(ctxShut); err != nil {
		sugar.Errorf("MongoDB disconnect error: %v", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			sugar.Errorf("Redis client close error: %v", err)
		}
	}

	sugar.Info("Graceful shutdown complete")
}

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"alumniconnect-api/config"
	"alumniconnect-api/database"
	"alumniconnect-api/logger"
	"alumniconnect-api/middleware"
	"alumniconnect-api/realtime"
	"alumniconnect-api/repositories"
	"alumniconnect-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog := logger.New(cfg.Environment)
	defer zlog.Sync() //nolint:errcheck

	// Relational store: users + mentorship requests
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// Seed directory records for development
	if cfg.Environment != "production" {
		if err := database.SeedData(db); err != nil {
			zlog.Warn("failed to seed database", zap.Error(err))
		}
	}

	// Document store: chat messages
	mongoClient, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Close(context.Background()) //nolint:errcheck

	if err := mongoClient.CreateIndexes(context.Background()); err != nil {
		zlog.Warn("failed to create message indexes", zap.Error(err))
	}

	messageRepo := repositories.NewMessageRepository(mongoClient.MessagesCollection())

	// Realtime layer
	hub := realtime.NewHub()
	go hub.Run()
	defer hub.Stop()

	gateway := realtime.NewGateway(hub, messageRepo, zlog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(300, 50))

	routes.SetupRoutes(router, db, hub, gateway, cfg)

	zlog.Info("starting AlumniConnect API", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))

	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

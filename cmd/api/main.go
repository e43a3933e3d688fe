package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"item-service/config"
	_ "item-service/docs" // Swagger docs
	"item-service/internal/httpserver"
	itemMongo "item-service/internal/item/repository/mongo"
	"item-service/internal/model"
	"item-service/pkg/log"
	"item-service/pkg/mongo"
)

// @title       An example API
// @description A example application: CRUD over an item collection stored in MongoDB.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting item-service...")
	logger.Infof(ctx, "Environment: %s, mode: %s", cfg.Environment.Name, cfg.Environment.Mode)

	// 3. Database. A failed connection is not fatal: /item routes answer 500
	// until the server becomes reachable.
	db := mongo.New(mongo.Config{
		URL:            cfg.MongoDB.URL,
		Database:       cfg.MongoDB.Database,
		ConnectTimeout: cfg.MongoDB.ConnectTimeout,
	}, logger)

	if cfg.Environment.Mode == model.ModeTest {
		logger.Info(ctx, "Running in TEST mode. Database connection disabled.")
	} else {
		logger.Info(ctx, "Connecting to database...")
		if err := db.Connect(ctx); err != nil {
			logger.Errorf(ctx, "Error connecting to database: %v", err)
		} else {
			logger.Info(ctx, "Database connection successful")
		}
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Errorf(closeCtx, "Error closing database connection: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AppMode:         cfg.Environment.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowOrigins:    cfg.CORS.AllowOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		Storage:         db,
		ItemRepository:  itemMongo.New(db, logger),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

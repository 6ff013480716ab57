// main.go
package main

import (
	"context"
	"log"
	"time"

	"store-rating/cmd"
	"store-rating/internal/data/repository"
	"store-rating/internal/wire"
	"store-rating/pkg/database"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("base_path", config.App.BasePath),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Apply schema migrations
	if err := database.Migrate(ctx, config.Database.DSN()); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)
	tokens := token.NewJWT(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	// Wire all dependencies
	app := wire.Wiring(repos, database.NewTxManager(db), tokens, config, logger)

	if err := app.Service.Auth.EnsureAdmin(ctx); err != nil {
		logger.Fatal("Failed to bootstrap admin", zap.Error(err))
	}

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}

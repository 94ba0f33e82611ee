package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"themesjet/internal/admin"
	"themesjet/internal/auth"
	"themesjet/internal/catalog"
	"themesjet/internal/checkout"
	"themesjet/internal/commons"
	"themesjet/internal/config"
	"themesjet/internal/infrastructure/logger"
	"themesjet/internal/infrastructure/mysql"
	"themesjet/internal/insights"
	"themesjet/internal/review"
	"themesjet/internal/server"
	"themesjet/internal/servicerequest"
	"themesjet/internal/user"
)

func main() {
	// Missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.Migrate(db, "migrations"); err != nil {
		zapLogger.Fatal("migrating database", zap.Error(err))
	}

	authorizer := auth.NewRoleAuthorizer()

	router := server.NewRouter(server.Controllers{
		Checkout: checkout.NewModule(db, cfg, authorizer, zapLogger),
		Catalog:  catalog.NewModule(db, authorizer, zapLogger),
		User:     user.NewModule(db, zapLogger),
		Review:   review.NewModule(db, authorizer, zapLogger),
		Insights: insights.NewModule(db, authorizer, zapLogger),
		Requests: servicerequest.NewModule(db, authorizer, zapLogger),
		Admin:    admin.NewModule(db, cfg, authorizer, zapLogger),
	}, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig prefers a yaml file when CONFIG_FILE points at one, and falls
// back to environment variables otherwise.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/admindesk/user-management/internal/api"
	"github.com/admindesk/user-management/internal/core/service"
	"github.com/admindesk/user-management/internal/infrastructure/config"
	"github.com/admindesk/user-management/internal/infrastructure/db/mysql"
	"github.com/admindesk/user-management/pkg/logger"
)

// @title        User Management API
// @version      1.0
// @description  REST API for the user management admin console: authentication, role-based access control, and CRUD on user accounts.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.MySQL.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mysql")
	}
	defer db.Close()

	if err := mysql.RunMigrations(db, cfg.MySQL.Migrations); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	userRepo := mysql.NewUserRepository(db)
	if err := service.EnsureDefaultAdmin(ctx, userRepo, cfg.Admin.Email, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure default admin")
	}

	e := api.NewRouter(userRepo, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

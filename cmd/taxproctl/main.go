// Package main provides taxproctl, the operator CLI for seeding data, generating SEO
// landing pages and exporting commissions against the same database as the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxpro-backend/internal/app"
	"taxpro-backend/internal/config"
	"taxpro-backend/internal/database"
	"taxpro-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "taxproctl",
		Short: "Operate the TaxPro backend from the command line",
		Long: `taxproctl runs maintenance tasks against the TaxPro database.

Available commands:
  seed         - Load profiles, page restrictions and commission tiers from yaml
  seo          - Generate SEO landing pages in bulk
  commissions  - Export commissions to a spreadsheet

Configuration is read the same way as the API server (.env, config.yaml, environment).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			logger.Setup(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(seedCmd())
	cmd.AddCommand(seoCmd())
	cmd.AddCommand(commissionsCmd())

	return cmd
}

// runtime holds everything a command needs to talk to the database and services
type runtime struct {
	cfg      *config.Config
	db       *gorm.DB
	clients  *app.Clients
	services *app.Services
}

func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := connectWithRetry(ctx, cfg.DatabaseURL, 30, time.Second)
	if err != nil {
		return nil, err
	}

	clients, err := app.NewClients(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize clients: %w", err)
	}

	services, err := app.NewServices(db, cfg, clients)
	if err != nil {
		clients.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &runtime{cfg: cfg, db: db, clients: clients, services: services}, nil
}

func (r *runtime) Close() {
	r.clients.Close()
	if sqlDB, err := r.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// connectWithRetry waits for Postgres to accept connections, which matters when the CLI runs
// next to a freshly started database container.
func connectWithRetry(ctx context.Context, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	log := logger.WithContext(ctx)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

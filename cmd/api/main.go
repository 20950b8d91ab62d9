// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"campaignadmin/internal/config"
	"campaignadmin/internal/db"
	"campaignadmin/internal/db/migrations"
	"campaignadmin/internal/logging"
	"campaignadmin/internal/routes"
)

// @title Campaign Admin API
// @version 1.0
// @description Campaign, submission review, reward and reporting administration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.App.LogLevel, cfg.App.LogFormat)

	if cfg.Database.CreateIfAbsent {
		if err := db.CreateDatabaseIfNotExists(ctx, cfg.Database.DatabaseURL()); err != nil {
			return err
		}
	}

	database, err := db.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.RunMigrations(ctx, database.DB.DB); err != nil {
		return err
	}

	var s3Config *config.S3Config
	if cfg.S3.Bucket != "" {
		s3Config, err = config.NewS3Config(ctx, cfg.S3)
		if err != nil {
			return err
		}
		logger.Info("object storage enabled", "bucket", s3Config.Bucket, "photo_bucket", s3Config.PhotoBucket)
	}

	router := routes.SetupRoutes(database.DB, cfg, s3Config, logger)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		// h2c serves HTTP/2 without TLS behind the load balancer
		Handler: h2c.NewHandler(router, &http2.Server{}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr, "environment", cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	// Give in-flight requests 5 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}

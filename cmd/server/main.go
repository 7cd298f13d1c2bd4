package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"client-portal-backend/internal/api/handlers"
	"client-portal-backend/internal/api/routes"
	"client-portal-backend/internal/cache"
	"client-portal-backend/internal/config"
	"client-portal-backend/internal/database"
	"client-portal-backend/internal/events"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "client-portal-backend/docs" // This is needed for swag
)

//	@title			Client Portal Backend API
//	@version		1.0
//	@description	Backend API for the agency client portal and the public portfolio catalog.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Error("Failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := make(map[string]handlers.DependencyCheck)

	var catalogCache cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		redisCache := cache.NewRedisCache(client, time.Duration(cfg.CatalogCacheTTLSec)*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("Redis unreachable, catalog cache falls through to the database")
		}
		catalogCache = redisCache
		checks["redis"] = redisCache.Ping
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logrus.WithError(err).Warn("AMQP unavailable, engagement events are disabled")
		} else {
			publisher = amqpPublisher
			checks["amqp"] = func(context.Context) error {
				if !amqpPublisher.IsConnected() {
					return errors.New("connection closed")
				}
				return nil
			}
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to open attachment store")
		return
	}

	// Initialize router
	router := routes.SetupRoutes(routes.Dependencies{
		DB:        db,
		Config:    cfg,
		Cache:     catalogCache,
		Publisher: publisher,
		Store:     store,
		Checks:    checks,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"port":        port,
		"environment": cfg.Environment,
		"attachments": store.Driver(),
	}).Info("Starting server")

	// Errors return through main so the deferred closes still run
	if err := serve(ctx, srv, time.Duration(cfg.ShutdownTimeoutSec)*time.Second); err != nil {
		logrus.WithError(err).Error("Server stopped")
	}
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests for at most shutdownTimeout
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

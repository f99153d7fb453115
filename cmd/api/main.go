package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"funky-fusion/internal/config"
	"funky-fusion/internal/database"
	"funky-fusion/internal/logger"
	"funky-fusion/internal/server"
	"funky-fusion/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close server resources
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// newStore builds the slot store for the configured backend. The postgres
// backend also returns the owning *sql.DB so the server can close it.
func newStore(cfg *config.Config, log *zap.Logger) (storage.Store, *sql.DB, error) {
	switch cfg.Storage.Backend {
	case "redis":
		store, err := storage.NewRedisStore(
			fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Storage.KeyPrefix,
		)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case "postgres":
		dbService, err := database.New(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		db := dbService.DB()

		health := dbService.Health()
		log.Info("Database health check", zap.Any("health", health))

		if err := database.Migrate(db, "migrations", log); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		return storage.NewPostgresStore(db), db, nil

	default:
		log.Warn("Using in-memory storage; state will not survive restarts")
		return storage.NewMemoryStore(), nil, nil
	}
}

func main() {
	// Load .env before viper reads the environment
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded configuration from .env")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Backend),
	)

	// Initialize the slot store
	store, db, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Redis client for auth-route rate limiting; skipped when unreachable
	var redisClient *redis.Client
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, auth rate limiting disabled", zap.Error(err))
		client.Close()
	} else {
		redisClient = client
	}
	cancel()

	// Create server
	srv := server.NewServer(cfg, log, store, db, redisClient)

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info("Graceful shutdown complete")
}

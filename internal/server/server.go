package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"funky-fusion/internal/account"
	"funky-fusion/internal/cart"
	"funky-fusion/internal/checkout"
	"funky-fusion/internal/config"
	custommiddleware "funky-fusion/internal/middleware"
	"funky-fusion/internal/storage"
	"funky-fusion/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  storage.Store
	db     *sql.DB
}

// NewServer assembles the router and all stores over the shared slot store.
// db is nil unless the postgres backend is selected; redisClient is nil when
// rate limiting is unavailable (limits are then skipped).
func NewServer(cfg *config.Config, logger *zap.Logger, store storage.Store, db *sql.DB, redisClient *redis.Client) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize stores over the shared slot store
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cartStore := cart.NewStore(startupCtx, store, logger)
	accountStore := account.NewStore(startupCtx, store, logger)
	checkoutService := checkout.NewService(store, cartStore, accountStore, logger)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(logger)
	cartHandler := transport.NewCartHandler(cartStore, logger)
	accountHandler := transport.NewAccountHandler(accountStore, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, logger)

	// Rate limit the credential routes when Redis is available
	var rateLimiter func(http.Handler) http.Handler
	if redisClient != nil {
		rateLimiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.AuthRequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "auth_rate_limit",
		}, logger)
	}

	// Register routes
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	accountHandler.RegisterRoutes(router, rateLimiter)
	checkoutHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		store:  store,
		db:     db,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if err := s.store.Close(); err != nil {
		s.logger.Error("Failed to close slot store", zap.Error(err))
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}

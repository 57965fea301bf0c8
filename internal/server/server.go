// Package server is the composition root: it assembles repositories,
// services and HTTP handlers, and manages the server lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/application"
	"github.com/retailatlas/store-locator/api/internal/config"
	mongodoc "github.com/retailatlas/store-locator/api/internal/infrastructure/mongo"
	adminhttp "github.com/retailatlas/store-locator/api/internal/interfaces/http/admin"
	commonhttp "github.com/retailatlas/store-locator/api/internal/interfaces/http/common"
	publichttp "github.com/retailatlas/store-locator/api/internal/interfaces/http/public"
)

// Server manages the HTTP lifecycle and injects dependencies into the
// public and admin handlers.
type Server struct {
	logger        *zap.Logger
	client        *mongo.Client
	storeQueries  application.StoreQueryService
	storeCommands application.StoreCommandService
	importer      application.ImportService
	auth          authConfig
	addr          string
	origins       []string
}

// New assembles a Server from configuration and a connected Mongo client.
func New(cfg *config.Config, client *mongo.Client) *Server {
	logger := zap.L()
	database := client.Database(cfg.Mongo.Database)

	repo := mongodoc.NewStoreRepository(database, cfg.Mongo.StoreCollection)
	feedClient := &http.Client{Timeout: time.Duration(cfg.Feed.FetchTimeoutSecs) * time.Second}

	return &Server{
		logger:        logger,
		client:        client,
		storeQueries:  application.NewStoreQueryService(repo),
		storeCommands: application.NewStoreCommandService(repo),
		importer:      application.NewImportService(repo, feedClient, cfg.Feed.SourceURL),
		auth: authConfig{
			secret:   []byte(cfg.Auth.JWTSecret),
			issuer:   cfg.Auth.JWTIssuer,
			audience: cfg.Auth.JWTAudience,
		},
		addr:    cfg.Server.Addr,
		origins: cfg.Server.AllowedOrigins,
	}
}

// Run ensures storage indexes, mounts all routes and serves until a
// shutdown signal arrives.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	database := s.client.Database(cfg.Mongo.Database)
	if err := mongodoc.EnsureIndexes(indexCtx, database, cfg.Mongo.StoreCollection); err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:       s.logger,
		StoreQueries: s.storeQueries,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:        s.logger,
		StoreCommands: s.storeCommands,
		Importer:      s.importer,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(ctx, httpServer, errChan)
}

// waitForShutdown blocks until the listener fails or an OS signal arrives,
// then drains in-flight requests before returning.
func (s *Server) waitForShutdown(ctx context.Context, httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("server shutdown error", zap.Error(err))
		}
	}
	return nil
}

// healthHandler reports storage reachability for monitoring probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// requestLogger emits one structured line per request.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

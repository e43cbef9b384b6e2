package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"

	"oidcsync/internal/auth"
	"oidcsync/internal/config"
	"oidcsync/internal/metrics"
	"oidcsync/internal/middlewares"
	"oidcsync/internal/reconcile"
	"oidcsync/internal/refresh"
	"oidcsync/internal/storage"
	"oidcsync/internal/userinfo"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	refresh     *refresh.Manager
	database    *storage.DatabaseProvider
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled && sessionManager.RedisClient() != nil {
		collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", sessionManager.RedisClient())
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis session collector: already registered", "error", err)
		}
	}

	oidcProvider, err := auth.NewRealOIDCProvider(ctx, cfg.OIDC)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize OIDC provider: %w", err)
	}

	var store storage.UserStore
	var database *storage.DatabaseProvider

	switch cfg.Storage.Driver {
	case "postgres":
		dbProvider, err := storage.NewDatabaseProvider(ctx, cfg)
		if err != nil {
			logger.Error("failed to initialize database provider", "error", err)
			cancel()
			return nil, err
		}

		logger.Debug("running database migrations")
		if err := dbProvider.RunMigrations(ctx); err != nil {
			logger.Error("failed to run database migrations", "error", err)
			cancel()
			return nil, err
		}
		logger.Debug("database migrations completed")

		store = dbProvider
		database = dbProvider
	default:
		logger.Warn("using in-memory user store, records do not survive restarts")
		store = storage.NewMemoryProvider(cfg.Users.DefaultGroup)
	}

	formatter := reconcile.NewFormatter(cfg.Users.UsernameTemplate, cfg.Users.ProviderURL, logger)
	engine := reconcile.NewEngine(store, formatter, logger)
	client := userinfo.NewClient(nil, logger)
	refreshManager := refresh.NewManager(client, engine, cfg.Users.RefreshInterval, logger)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, oidcProvider, store, refreshManager)

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		refresh:     refreshManager,
		database:    database,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	s.refresh.Start()

	go func() {
		s.logger.Info("server started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server forced to shutdown", "error", err)
		}
	}

	// Queued refreshes drain before the store goes away.
	s.refresh.Stop()

	if s.database != nil {
		s.database.Close()
	}

	s.logger.Info("server exited")
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/nzbio/internal/config"
	"github.com/amaumene/nzbio/internal/constants"
	"github.com/amaumene/nzbio/internal/handlers"
	"github.com/amaumene/nzbio/internal/metrics"
	"github.com/amaumene/nzbio/internal/middleware"
	"github.com/amaumene/nzbio/internal/services"
	"github.com/amaumene/nzbio/pkg/logger"
	"github.com/amaumene/nzbio/pkg/security"
)

func runServe(ctx context.Context, flags *serveFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.port != "" {
		cfg = cfg.WithPort(flags.port)
	}

	log := logger.NewWithOptions(logger.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSize,
	})

	validator := security.NewAPIKeyValidator()
	if !validator.IsValidTMDBKey(cfg.TMDBAPIKey) {
		log.Warnf("[App] TMDB_API_KEY is missing or malformed, every lookup will fail")
	}
	if cfg.HydraAPIKey == "" {
		log.Warnf("[App] HYDRA_API_KEY is empty")
	}
	log.Infof("[App] indexer %s (key %s), retention %d days", cfg.HydraAPIURL(), security.MaskAPIKey(cfg.HydraAPIKey), cfg.RetentionDays)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	container := services.NewContainer(cfg, log, m)
	router := newRouter(cfg, container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("[App] %s %s listening on port %s", constants.AddonName, constants.AddonVersion, cfg.Port)
		log.Infof("[App] manifest: http://localhost:%s/manifest.json", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infof("[App] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(cfg config.Config, container *services.Container) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(container.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip(container.Logger))
	if container.Metrics != nil {
		r.Use(middleware.Metrics(container.Metrics))
		r.GET("/metrics", gin.WrapH(container.Metrics.Handler()))
	}

	handlers.New(container, cfg).RegisterRoutes(r)
	return r
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/api/middleware"
	"github.com/arcanosig/arcano/backend/internal/api/routes"
	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP engine and the background workers it owns.
type Server struct {
	Engine     *gin.Engine
	cfg        config.Config
	background *routes.Background
}

// New wires up middleware, the metrics endpoint and the versioned routes.
func New(db *gorm.DB, cfg config.Config, storage services.Storage) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Debug || cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(cfg.Debug),
		middleware.SecurityHeaders(middleware.SecurityHeadersConfig{IsDevelopment: !cfg.IsProduction()}),
		middleware.CORS(routes.AllowedOrigins(cfg)...),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(registry)
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	bg, err := routes.Register(router, db, cfg, storage)
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return &Server{Engine: router, cfg: cfg, background: bg}, nil
}

// Run starts the mail worker, the scheduler and the HTTP server, and stops
// them in reverse order once ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	log := logger.Component("server")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.HTTPPort),
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	workers, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	s.background.Mail.Start(workers)
	s.background.Maintenance.Start()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("graceful shutdown: %w", err)
	}
	s.background.Maintenance.Stop(shutdownCtx)
	stopWorkers()
	s.background.Mail.Drain(shutdownCtx)
	s.background.Notifications.Wait()
	log.Info("server stopped")
	return runErr
}

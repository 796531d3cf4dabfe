// Package server serves the estimator over HTTP: a single-page form and a
// small JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/ja7ad/fpgabuild/internal/config"
	"github.com/ja7ad/fpgabuild/pkg/estimate"
)

const readHeaderTimeout = 10 * time.Second

// Server is the HTTP front-end around one estimator.
type Server struct {
	cfg      config.ServerConfig
	est      *estimate.Estimator
	defaults estimate.Input
	metrics  *metrics
	engine   *gin.Engine
}

// New wires routes for cfg. est may be nil to use the default model.
func New(cfg *config.Config, est *estimate.Estimator) *Server {
	if est == nil {
		est = estimate.New(&cfg.Coefficients)
	}
	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		cfg:      cfg.Server,
		est:      est,
		defaults: cfg.Defaults,
		metrics:  newMetrics(),
		engine:   gin.New(),
	}

	s.engine.Use(gin.Recovery(), requestID(), s.metrics.instrument())
	s.engine.SetHTMLTemplate(template.Must(template.New("index.html").Parse(indexHTML)))

	s.engine.GET("/", s.index)
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	api := s.engine.Group("/api/v1")
	{
		api.POST("/estimate", s.estimate)
		api.GET("/presets", s.presets)
	}
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is done, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", ln.Addr().String()).Info("http server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

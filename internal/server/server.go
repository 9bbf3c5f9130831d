// Package server exposes the gateway over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/gateway"
)

const shutdownTimeout = 10 * time.Second

// Executor runs one statement and shapes its outcome.
type Executor interface {
	Execute(ctx context.Context, statement string) (gateway.Response, error)
}

type Server struct {
	cfg      config.Server
	executor Executor
	logger   *zap.Logger
	engine   *gin.Engine
}

type Option func(*options)

type options struct {
	serviceName string
}

// WithTracing instruments every request with an OpenTelemetry span.
func WithTracing(serviceName string) Option {
	return func(o *options) { o.serviceName = serviceName }
}

func New(cfg config.Server, executor Executor, logger *zap.Logger, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(requestID())
	engine.Use(accessLog(logger))
	engine.Use(recovery(logger))
	engine.Use(corsMiddleware(cfg.AllowOrigins))
	if o.serviceName != "" {
		engine.Use(otelgin.Middleware(o.serviceName))
	}
	if cfg.Metrics {
		p := ginprometheus.NewPrometheus("gin")
		p.MetricsPath = cfg.MetricsPath
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.FullPath()
		}
		p.Use(engine)
	}

	s := &Server{
		cfg:      cfg,
		executor: executor,
		logger:   logger,
		engine:   engine,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/sqlquery/", s.handleSQLQuery)
	s.engine.GET("/healthz", s.handleHealth)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln and shuts down gracefully once ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	s.logger.Info("sqlgate listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("sqlgate stopped")
	return nil
}

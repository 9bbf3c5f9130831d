package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/gateway"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/metrics"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/server"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/telemetry"
)

func (a *App) handleServe() {
	configPath, _ := a.parseFlags("serve", nil)
	cfg, logger, factory := bootstrap(configPath, os.Stdout)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatal("could not set up tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	var opts []gateway.Option
	if cfg.Server.Metrics {
		recorder, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
		if err != nil {
			logger.Fatal("could not register metrics", zap.Error(err))
		}
		opts = append(opts, gateway.WithMetrics(recorder))
	}
	service := gateway.New(factory, logger, opts...)

	var serverOpts []server.Option
	if cfg.Telemetry.OTLPEndpoint != "" {
		serverOpts = append(serverOpts, server.WithTracing(cfg.Telemetry.ServiceName))
	}
	srv := server.New(cfg.Server, service, logger, serverOpts...)

	logger.Info("starting sqlgate",
		zap.String("version", version),
		zap.String("backend", factory.Backend()),
		zap.String("database", cfg.Database.Address()),
		zap.Bool("tls", cfg.Database.TLS.Enabled),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

// Package gateway runs one caller-supplied statement per call on its own
// backend connection and turns the outcome into a response or a report.
package gateway

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/db"
	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/metrics"
)

const tracerName = "github.com/RehahnC/shared-rexdb-fastapi-sql/internal/gateway"

// Failure is returned for backend failures. Its message is the report
// message, e.g. "MySQL error: ...".
type Failure struct {
	Report db.Report
	Err    error
}

func (f *Failure) Error() string { return f.Report.Message }
func (f *Failure) Unwrap() error { return f.Err }

type Service struct {
	factory db.Factory
	logger  *zap.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

type Option func(*Service)

func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(tracerName) }
}

func New(factory db.Factory, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		factory: factory,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs statement and shapes the outcome into a Response.
func (s *Service) Execute(ctx context.Context, statement string) (Response, error) {
	result, err := s.Run(ctx, statement)
	if err != nil {
		return nil, err
	}
	return Shape(result), nil
}

// Run executes statement on a fresh connection. Whatever was acquired is
// released before Run returns, on every path. Backend failures come back as
// *Failure; anything else is returned unchanged.
func (s *Service) Run(ctx context.Context, statement string) (*db.Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "gateway.Run",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", strings.ToLower(s.factory.Backend()))),
	)
	defer span.End()

	// Statements can carry credentials, so only their size is logged.
	s.logger.Debug("executing statement", zap.Int("statement_bytes", len(statement)))

	result, err := s.run(ctx, statement)

	outcome := outcomeOf(result, err)
	if s.metrics != nil {
		s.metrics.Observe(outcome, time.Since(start))
	}
	span.SetAttributes(attribute.String("sqlgate.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if report, ok := db.Classify(err); ok {
			s.logger.Error(report.Message, zap.String("kind", report.Kind))
			return nil, &Failure{Report: report, Err: err}
		}
		s.logger.Error("statement failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) run(ctx context.Context, statement string) (*db.Result, error) {
	conn, err := s.factory.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release(conn)

	return db.Execute(ctx, conn, statement)
}

// release never changes the outcome already computed; a failed close is
// only logged.
func (s *Service) release(conn *db.Connection) {
	if err := conn.Close(); err != nil {
		s.logger.Warn("release connection", zap.String("backend", conn.Backend()), zap.Error(err))
	}
}

func outcomeOf(result *db.Result, err error) string {
	if err != nil {
		return metrics.OutcomeError
	}
	if result.Kind == db.KindAck {
		return metrics.OutcomeWrite
	}
	return metrics.OutcomeRead
}

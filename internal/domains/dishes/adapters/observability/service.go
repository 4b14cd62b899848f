package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	dishdomain "github.com/melvan27/GrubDash/internal/domains/dishes/domain"
	dishports "github.com/melvan27/GrubDash/internal/domains/dishes/ports"
	apierrors "github.com/melvan27/GrubDash/internal/shared/errors"
	"github.com/melvan27/GrubDash/internal/shared/payload"
)

const tracerName = "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/observability/service"

// Service decorates the dish service with tracing, logging, and metrics.
type Service struct {
	inner   dishports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core dish service.
func New(inner dishports.Service, opts ...Option) dishports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ListDishes(ctx context.Context) ([]*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.ListDishes")
	defer span.End()

	result, err := s.inner.ListDishes(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list dishes")
	}
	span.SetAttributes(attribute.Int("dish.count", len(result)))
	return result, nil
}

func (s *Service) CreateDish(ctx context.Context, data payload.Payload) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.CreateDish")
	defer span.End()

	s.logInfo(ctx, "creating dish", slog.String("dish.name", data.String("name")))
	result, err := s.inner.CreateDish(ctx, data)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create dish")
	}
	span.SetAttributes(attribute.String("dish.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "dish created", slog.String("dish.id", result.ID), slog.Int("dish.price", result.Price))
	return result, nil
}

func (s *Service) GetDish(ctx context.Context, id string) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.GetDish", trace.WithAttributes(attribute.String("dish.id", id)))
	defer span.End()

	result, err := s.inner.GetDish(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load dish", slog.String("dish.id", id))
	}
	return result, nil
}

func (s *Service) UpdateDish(ctx context.Context, id string, data payload.Payload) (*dishdomain.Dish, error) {
	ctx, span := s.tracer.Start(ctx, "DishService.UpdateDish", trace.WithAttributes(attribute.String("dish.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating dish", slog.String("dish.id", id))
	result, err := s.inner.UpdateDish(ctx, id, data)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update dish", slog.String("dish.id", id))
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, "dish updated", slog.String("dish.id", result.ID))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// handleError records err on the span. Client errors are logged at warn
// level and counted as rejections; anything else is an error.
func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	status := apierrors.StatusFromError(err)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	level := slog.LevelError
	if apierrors.IsClientError(err) {
		level = slog.LevelWarn
		s.metrics.recordRejected(ctx, apierrors.AsProblem(err))
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()), slog.Int("status", status))
		s.logger.LogAttrs(ctx, level, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	created  metric.Int64Counter
	updated  metric.Int64Counter
	rejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("dishes.service.created", metric.WithDescription("Number of dishes created"))
	updated, _ := m.Int64Counter("dishes.service.updated", metric.WithDescription("Number of dish updates"))
	rejected, _ := m.Int64Counter("dishes.service.rejected", metric.WithDescription("Number of dish requests rejected by validation"))
	return serviceMetrics{created: created, updated: updated, rejected: rejected}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.updated != nil {
		m.updated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, problem *apierrors.Problem) {
	if m.rejected != nil {
		m.rejected.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("http.response.status_code", problem.Status),
			attribute.String("error.kind", problem.Kind()),
		))
	}
}

var _ dishports.Service = (*Service)(nil)

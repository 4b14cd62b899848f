package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	dishmemory "github.com/melvan27/GrubDash/internal/domains/dishes/adapters/memory"
	dishapp "github.com/melvan27/GrubDash/internal/domains/dishes/application"
	"github.com/melvan27/GrubDash/internal/shared/payload"
)

func counterValue(t *testing.T, reader sdkmetric.Reader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func rejectedByKind(t *testing.T, reader sdkmetric.Reader, name string) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	kinds := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value(attribute.Key("error.kind"))
				kinds[kind.AsString()] += dp.Value
			}
		}
	}
	return kinds
}

func TestService_RecordsSpansMetricsAndLogs(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spans := tracetest.NewSpanRecorder()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	var logs bytes.Buffer

	svc := New(
		dishapp.NewService(dishmemory.NewRepository()),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
		WithTracer(tracerProvider.Tracer("test")),
		WithMeter(meterProvider.Meter("test")),
	)
	ctx := context.Background()

	created, err := svc.CreateDish(ctx, payload.Payload{
		"name": "Soup", "description": "Hot", "price": float64(4), "image_url": "soup.png",
	})
	require.NoError(t, err)
	_, err = svc.UpdateDish(ctx, created.ID, payload.Payload{"id": "other"})
	require.Error(t, err)
	_, err = svc.GetDish(ctx, "missing")
	require.Error(t, err)

	assert.Equal(t, int64(1), counterValue(t, reader, "dishes.service.created"))
	assert.Equal(t, int64(2), counterValue(t, reader, "dishes.service.rejected"))
	assert.Zero(t, counterValue(t, reader, "dishes.service.updated"))
	assert.Equal(t, map[string]int64{"validation": 1, "not_found": 1}, rejectedByKind(t, reader, "dishes.service.rejected"))

	var names []string
	for _, span := range spans.Ended() {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"DishService.CreateDish", "DishService.UpdateDish", "DishService.GetDish"}, names)

	assert.Contains(t, logs.String(), `"msg":"dish created"`)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), "Dish does not exist: missing.")
}

func TestNew_DefaultsAreSafe(t *testing.T) {
	svc := New(dishapp.NewService(dishmemory.NewRepository()), nil)

	list, err := svc.ListDishes(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

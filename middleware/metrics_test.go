package middleware

import (
	"context"
	"testing"

	"github.com/shravanasati/zattiri/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetricsMiddleware(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	mw, err := MetricsMiddleware(provider.Meter("test"))
	require.NoError(t, err)

	table := newTable()
	table.Use(mw)
	resolver := table.Resolver()

	resolver.Resolve("/")
	resolver.Resolve("/")
	resolver.Resolve("/missing")

	metrics := collectMetrics(t, reader)

	counter, ok := metrics["zattiri.resolutions"]
	require.True(t, ok)
	sum, ok := counter.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	byKind := map[string]int64{}
	for _, dp := range sum.DataPoints {
		kind, ok := dp.Attributes.Value(attribute.Key("resolution.kind"))
		require.True(t, ok)
		byKind[kind.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{
		router.Matched.String():         2,
		router.BuiltinNotFound.String(): 1,
	}, byKind)

	histogram, ok := metrics["zattiri.render.duration"]
	require.True(t, ok)
	hist, ok := histogram.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	assert.Equal(t, uint64(3), count)
}

func TestMetricsMiddlewareGlobalMeter(t *testing.T) {
	mw, err := MetricsMiddleware(nil)
	require.NoError(t, err)

	table := newTable()
	table.Use(mw)
	assert.Equal(t, "<h1>Hello</h1>", table.Resolver().Resolve("/").Body)
}

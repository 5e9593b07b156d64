package server

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// connection failure stages
const (
	stageAccept = "accept"
	stageRead   = "read"
	stageWrite  = "write"
	stagePanic  = "panic"
)

type serverMetrics struct {
	accepted metric.Int64Counter
	failed   metric.Int64Counter
}

func newServerMetrics(meter metric.Meter) (*serverMetrics, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	accepted, err := meter.Int64Counter("zattiri.connections.accepted",
		metric.WithDescription("Number of accepted connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("zattiri.connections.failed",
		metric.WithDescription("Number of connections abandoned, by stage"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, err
	}

	return &serverMetrics{accepted: accepted, failed: failed}, nil
}

func (m *serverMetrics) connAccepted() {
	m.accepted.Add(context.Background(), 1)
}

func (m *serverMetrics) connFailed(stage string) {
	m.failed.Add(context.Background(), 1, metric.WithAttributes(attribute.String("stage", stage)))
}

package middleware

import (
	"context"
	"time"

	"github.com/shravanasati/zattiri/router"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/shravanasati/zattiri/middleware"

// MetricsMiddleware counts resolutions and records how long rendering took,
// both labelled with the resolution kind. A nil meter falls back to the
// global meter provider.
func MetricsMiddleware(meter metric.Meter) (router.Middleware, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	resolutions, err := meter.Int64Counter("zattiri.resolutions",
		metric.WithDescription("Number of resolved routes by resolution kind"),
		metric.WithUnit("{resolution}"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("zattiri.render.duration",
		metric.WithDescription("Time spent resolving a route and rendering its body"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return func(next router.Resolver) router.Resolver {
		return router.ResolverFunc(func(route string) router.Resolution {
			start := time.Now()
			res := next.Resolve(route)

			ctx := context.Background()
			kindAttr := metric.WithAttributes(attribute.String("resolution.kind", res.Kind.String()))
			resolutions.Add(ctx, 1, kindAttr)
			duration.Record(ctx, time.Since(start).Seconds(), kindAttr)

			return res
		})
	}, nil
}

package middleware

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/broady/stripe"
)

// MetricsInterceptor records a request counter and a duration histogram for
// every transport exchange. A nil mp uses the global provider.
func MetricsInterceptor(mp metric.MeterProvider) (stripe.Interceptor, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName, metric.WithInstrumentationVersion(stripe.Version))

	requests, err := meter.Int64Counter("stripe.client.requests",
		metric.WithDescription("Number of API requests sent"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("stripe.client.request.duration",
		metric.WithDescription("Duration of API requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		elapsed := time.Since(start).Seconds()
		if err == nil && resp == nil {
			err = &stripe.TransportError{Kind: stripe.TransportOther, Err: stripe.ErrNoResponse}
		}

		attrs := []attribute.KeyValue{
			attribute.String("stripe.operation", info.Operation),
			attribute.String("http.method", info.Method),
			attribute.String("outcome", outcome(resp, err)),
		}
		if resp != nil {
			attrs = append(attrs, attribute.String("http.status_code", strconv.Itoa(resp.StatusCode)))
		}
		opt := metric.WithAttributes(attrs...)
		requests.Add(ctx, 1, opt)
		duration.Record(ctx, elapsed, opt)
		return resp, err
	}, nil
}

func outcome(resp *stripe.TransportResponse, err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case err != nil:
		return "transport_error"
	case resp.StatusCode >= 400:
		return "api_error"
	}
	return "ok"
}

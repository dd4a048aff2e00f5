package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/broady/stripe"
)

const instrumentationName = "github.com/broady/stripe/middleware"

// TracingInterceptor starts a client span around every transport exchange.
// A nil tp uses the global provider.
func TracingInterceptor(tp trace.TracerProvider) stripe.Interceptor {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(stripe.Version))

	return func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
		ctx, span := tracer.Start(ctx, "stripe "+info.Operation,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", info.Method),
				attribute.String("http.url", req.URL),
				attribute.String("stripe.operation", info.Operation),
				attribute.String("stripe.fingerprint", info.Fingerprint),
			),
		)
		defer span.End()

		if info.StripeAccount != "" {
			span.SetAttributes(attribute.String("stripe.account", info.StripeAccount))
		}
		if info.IdempotencyKey != "" {
			span.SetAttributes(attribute.Bool("stripe.idempotent", true))
		}

		resp, err := next(ctx, req)
		if err == nil && resp == nil {
			err = &stripe.TransportError{Kind: stripe.TransportOther, Err: stripe.ErrNoResponse}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return resp, err
		}

		span.SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
			attribute.String("stripe.request_id", resp.Header.Get("Request-Id")),
		)
		if resp.StatusCode >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return resp, nil
	}
}

// Package middleware provides stripe.Interceptor implementations for
// logging, tracing, and metrics.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/broady/stripe"
)

// LoggingInterceptor creates an interceptor that logs API calls using slog.
// It logs the start and end of each call, including duration, status, and
// the server's request id.
func LoggingInterceptor(logger *slog.Logger) stripe.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
		start := time.Now()

		logger.InfoContext(ctx, "request started",
			slog.String("operation", info.Operation),
			slog.String("fingerprint", info.Fingerprint),
		)

		resp, err := next(ctx, req)
		duration := time.Since(start)
		if err == nil && resp == nil {
			err = &stripe.TransportError{Kind: stripe.TransportOther, Err: stripe.ErrNoResponse}
		}

		if err != nil {
			logger.ErrorContext(ctx, "request failed",
				slog.String("operation", info.Operation),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
			return resp, err
		}

		level := slog.LevelInfo
		if resp.StatusCode >= 400 {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "request completed",
			slog.String("operation", info.Operation),
			slog.Duration("duration", duration),
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", resp.Header.Get("Request-Id")),
		)
		return resp, nil
	}
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/broady/stripe"
	"github.com/broady/stripe/stripetest"
)

type object struct {
	ID string `json:"id"`
}

func retrieve(ctx context.Context, c *stripe.Client) error {
	_, err := stripe.Send[object](ctx, c, &stripe.Request{
		Operation: "customers.retrieve",
		Method:    http.MethodGet,
		Path:      "/v1/customers/cus_1",
		Output:    "customer",
	})
	return err
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func TestLoggingInterceptor_Success(t *testing.T) {
	var buf bytes.Buffer
	c, tr := stripetest.NewClient(stripe.WithInterceptor(LoggingInterceptor(newLogger(&buf))))
	tr.Enqueue(stripetest.Response{
		Body:   `{"id":"cus_1"}`,
		Header: http.Header{"Request-Id": {"req_abc"}},
	})

	if err := retrieve(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "request started") {
		t.Error("expected 'request started' in log output")
	}
	if !strings.Contains(logOutput, "request completed") {
		t.Error("expected 'request completed' in log output")
	}
	if !strings.Contains(logOutput, "customers.retrieve") {
		t.Error("expected operation in log output")
	}
	if !strings.Contains(logOutput, "req_abc") {
		t.Error("expected request id in log output")
	}
	if !strings.Contains(logOutput, "duration") {
		t.Error("expected 'duration' in log output")
	}
}

func TestLoggingInterceptor_Error(t *testing.T) {
	var buf bytes.Buffer
	c, tr := stripetest.NewClient(stripe.WithInterceptor(LoggingInterceptor(newLogger(&buf))))
	tr.Fail(errors.New("test error"))

	if err := retrieve(context.Background(), c); err == nil {
		t.Fatal("expected error")
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "request failed") {
		t.Error("expected 'request failed' in log output")
	}
	if !strings.Contains(logOutput, "test error") {
		t.Error("expected error message in log output")
	}
	if !strings.Contains(logOutput, `"level":"ERROR"`) {
		t.Error("expected error level in log output")
	}
}

func dropResponse(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
	return nil, nil
}

func TestInterceptors_NoResponse(t *testing.T) {
	var buf bytes.Buffer
	mw, err := MetricsInterceptor(nil)
	if err != nil {
		t.Fatalf("MetricsInterceptor: %v", err)
	}
	_, tp := newRecorder()
	c, _ := stripetest.NewClient(
		stripe.WithInterceptor(LoggingInterceptor(newLogger(&buf))),
		stripe.WithInterceptor(TracingInterceptor(tp)),
		stripe.WithInterceptor(mw),
		stripe.WithInterceptor(dropResponse),
	)

	err = retrieve(context.Background(), c)
	if !errors.Is(err, stripe.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}
	if !strings.Contains(buf.String(), "request failed") {
		t.Error("expected 'request failed' in log output")
	}
}

func TestLoggingInterceptor_APIErrorIsWarning(t *testing.T) {
	var buf bytes.Buffer
	c, tr := stripetest.NewClient(stripe.WithInterceptor(LoggingInterceptor(newLogger(&buf))))
	tr.Reply(404, `{"error":{"type":"invalid_request_error","message":"No such customer"}}`)

	err := retrieve(context.Background(), c)
	if stripe.KindOf(err) != stripe.KindAPI {
		t.Fatalf("expected api error, got %v", err)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, `"level":"WARN"`) {
		t.Error("expected warn level for a 4xx response")
	}
	if !strings.Contains(logOutput, `"status":404`) {
		t.Error("expected status in log output")
	}
}

func TestLoggingInterceptor_NilLogger(t *testing.T) {
	// Should not panic with nil logger, should use default
	c, tr := stripetest.NewClient(stripe.WithInterceptor(LoggingInterceptor(nil)))
	tr.Reply(200, `{"id":"cus_1"}`)

	if err := retrieve(context.Background(), c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoggingInterceptor_PropagatesContext(t *testing.T) {
	type ctxKey string
	key := ctxKey("test-key")

	var buf bytes.Buffer
	check := func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
		if val := ctx.Value(key); val != "test-value" {
			t.Error("expected context value to be propagated")
		}
		return next(ctx, req)
	}
	c, tr := stripetest.NewClient(
		stripe.WithInterceptor(LoggingInterceptor(newLogger(&buf))),
		stripe.WithInterceptor(check),
	)
	tr.Reply(200, `{"id":"cus_1"}`)

	ctx := context.WithValue(context.Background(), key, "test-value")
	if err := retrieve(ctx, c); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

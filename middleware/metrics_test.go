package middleware

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/broady/stripe"
	"github.com/broady/stripe/stripetest"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetricsInterceptor(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	interceptor, err := MetricsInterceptor(mp)
	if err != nil {
		t.Fatalf("MetricsInterceptor: %v", err)
	}

	c, tr := stripetest.NewClient(stripe.WithInterceptor(interceptor))
	tr.Reply(200, `{"id":"cus_1"}`)
	tr.Reply(200, `{"id":"cus_1"}`)
	tr.Reply(404, `{"error":{"type":"invalid_request_error"}}`)

	ctx := context.Background()
	for range 3 {
		_ = retrieve(ctx, c)
	}

	metrics := collect(t, reader)
	counter, ok := metrics["stripe.client.requests"]
	if !ok {
		t.Fatal("expected request counter")
	}
	sum, ok := counter.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("unexpected counter data %T", counter.Data)
	}

	byOutcome := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		o, _ := dp.Attributes.Value(attribute.Key("outcome"))
		byOutcome[o.AsString()] += dp.Value
	}
	if byOutcome["ok"] != 2 || byOutcome["api_error"] != 1 {
		t.Errorf("unexpected counts by outcome: %v", byOutcome)
	}

	hist, ok := metrics["stripe.client.request.duration"]
	if !ok {
		t.Fatal("expected duration histogram")
	}
	h, ok := hist.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("unexpected histogram data %T", hist.Data)
	}
	var total uint64
	for _, dp := range h.DataPoints {
		total += dp.Count
	}
	if total != 3 {
		t.Errorf("expected 3 recorded durations, got %d", total)
	}
}

func TestMetricsInterceptor_Outcome(t *testing.T) {
	tests := []struct {
		name string
		resp *stripe.TransportResponse
		err  error
		want string
	}{
		{"ok", &stripe.TransportResponse{StatusCode: 200}, nil, "ok"},
		{"api error", &stripe.TransportResponse{StatusCode: 500}, nil, "api_error"},
		{"cancelled", nil, context.Canceled, "cancelled"},
		{"transport", nil, context.DeadlineExceeded, "transport_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcome(tt.resp, tt.err); got != tt.want {
				t.Errorf("outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

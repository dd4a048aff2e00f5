// Package stripetest provides fakes for testing code built on the stripe
// runtime: a scripted Transport that records requests, and an httptest
// server that serves paginated list endpoints.
package stripetest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/broady/stripe"
)

// Response is one scripted reply.
type Response struct {
	Status int
	Header http.Header
	Body   string
	// Err is returned instead of a response when set.
	Err error
	// Hang blocks until the request context is done.
	Hang bool
}

// RecordedRequest is a request seen by Transport or Server.
type RecordedRequest struct {
	Method string
	URL    string
	Path   string
	Header http.Header
	Body   string
	// Query holds the parsed URL query, Form the parsed form body.
	Query url.Values
	Form  url.Values
}

// Param returns a parameter from the query or, failing that, the body.
func (r *RecordedRequest) Param(key string) string {
	if v := r.Query.Get(key); v != "" || r.Query.Has(key) {
		return v
	}
	return r.Form.Get(key)
}

// HasParam reports whether key was sent in the query or body.
func (r *RecordedRequest) HasParam(key string) bool {
	return r.Query.Has(key) || r.Form.Has(key)
}

// RawQuery returns the encoded query string exactly as sent.
func (r *RecordedRequest) RawQuery() string {
	_, q, _ := strings.Cut(r.URL, "?")
	return q
}

func record(method, rawURL string, header http.Header, body []byte) *RecordedRequest {
	rec := &RecordedRequest{
		Method: method,
		URL:    rawURL,
		Header: header.Clone(),
		Body:   string(body),
		Query:  url.Values{},
		Form:   url.Values{},
	}
	if u, err := url.Parse(rawURL); err == nil {
		rec.Path = u.Path
		rec.Query = u.Query()
	}
	if len(body) > 0 {
		if form, err := url.ParseQuery(string(body)); err == nil {
			rec.Form = form
		}
	}
	return rec
}

// Transport is a stripe.Transport that replays queued responses in order
// and records every request.
type Transport struct {
	mu        sync.Mutex
	responses []Response
	requests  []*RecordedRequest
}

// NewTransport creates an empty scripted transport.
func NewTransport() *Transport {
	return &Transport{}
}

// Enqueue appends a response.
func (t *Transport) Enqueue(r Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses = append(t.responses, r)
	return t
}

// Reply queues a response with a raw body.
func (t *Transport) Reply(status int, body string) *Transport {
	return t.Enqueue(Response{Status: status, Body: body})
}

// ReplyJSON queues a response with v encoded as JSON.
func (t *Transport) ReplyJSON(status int, v any) *Transport {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("stripetest: ReplyJSON: %v", err))
	}
	return t.Reply(status, string(data))
}

// Fail queues a transport error.
func (t *Transport) Fail(err error) *Transport {
	return t.Enqueue(Response{Err: err})
}

// Hang queues a response that never arrives; the request returns when its
// context is done.
func (t *Transport) Hang() *Transport {
	return t.Enqueue(Response{Hang: true})
}

// RoundTrip implements stripe.Transport.
func (t *Transport) RoundTrip(ctx context.Context, req *stripe.TransportRequest) (*stripe.TransportResponse, error) {
	t.mu.Lock()
	t.requests = append(t.requests, record(req.Method, req.URL, req.Header, req.Body))
	if len(t.responses) == 0 {
		t.mu.Unlock()
		return nil, fmt.Errorf("stripetest: no response queued for %s %s", req.Method, req.URL)
	}
	r := t.responses[0]
	t.responses = t.responses[1:]
	t.mu.Unlock()

	if r.Hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if r.Err != nil {
		return nil, r.Err
	}
	header := r.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	return &stripe.TransportResponse{StatusCode: status, Header: header, Body: []byte(r.Body)}, nil
}

// Requests returns every recorded request in order.
func (t *Transport) Requests() []*RecordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*RecordedRequest, len(t.requests))
	copy(out, t.requests)
	return out
}

// LastRequest returns the most recent request, or nil.
func (t *Transport) LastRequest() *RecordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

// Pending returns how many queued responses are unused.
func (t *Transport) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.responses)
}

// NewClient returns a client wired to a fresh Transport.
func NewClient(opts ...stripe.Option) (*stripe.Client, *Transport) {
	tr := NewTransport()
	opts = append([]stripe.Option{stripe.WithTransport(tr)}, opts...)
	return stripe.NewClient("sk_test_123", opts...), tr
}

// AssertHeader checks that a recorded request carried the expected header.
func AssertHeader(t testing.TB, r *RecordedRequest, key, want string) {
	t.Helper()
	if got := r.Header.Get(key); got != want {
		t.Errorf("expected header %s=%q, got %q", key, want, got)
	}
}

// AssertParam checks a query or form parameter.
func AssertParam(t testing.TB, r *RecordedRequest, key, want string) {
	t.Helper()
	if !r.HasParam(key) {
		t.Errorf("expected param %s=%q, but it was not sent", key, want)
		return
	}
	if got := r.Param(key); got != want {
		t.Errorf("expected param %s=%q, got %q", key, want, got)
	}
}

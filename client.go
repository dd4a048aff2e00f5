// Package stripe is the runtime for a generated Stripe API client: request
// descriptors, the client that sends them over a pluggable Transport, the
// error taxonomy, cursor pagination, and the builder core that generated
// endpoint builders embed.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/broady/stripe/wire"
)

const (
	DefaultBaseURL      = "https://api.stripe.com"
	DefaultMaxPageItems = 10000
)

// Client sends requests to the API. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	secretKey    string
	baseURL      string
	apiVersion   string
	userAgent    string
	transport    Transport
	logger       *slog.Logger
	interceptors []Interceptor
	headers      http.Header
	manifest     *Manifest
	maxPageItems int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAPIVersion overrides the Stripe-Version header.
func WithAPIVersion(v string) Option {
	return func(c *Client) { c.apiVersion = v }
}

// WithTransport sets the transport used for every request.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithHTTPClient uses hc through an HTTPTransport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.transport = NewHTTPTransport(hc) }
}

// WithLogger sets the logger for request tracing at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithInterceptor appends an interceptor. Interceptors run in the order
// they were added.
func WithInterceptor(i Interceptor) Option {
	return func(c *Client) { c.interceptors = append(c.interceptors, i) }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithManifest enables client-side validation of expand[] paths.
func WithManifest(m *Manifest) Option {
	return func(c *Client) { c.manifest = m }
}

// WithMaxPageItems sets the default item cap for paginators.
func WithMaxPageItems(n int) Option {
	return func(c *Client) { c.maxPageItems = n }
}

// NewClient creates a client authenticating with secretKey.
func NewClient(secretKey string, opts ...Option) *Client {
	c := &Client{
		secretKey:    secretKey,
		baseURL:      DefaultBaseURL,
		apiVersion:   APIVersion,
		userAgent:    "stripe-go-runtime/" + Version,
		headers:      http.Header{},
		maxPageItems: DefaultMaxPageItems,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.interceptors = slices.Clip(c.interceptors)
	return c
}

// APIVersion returns the Stripe-Version sent with every request.
func (c *Client) APIVersion() string { return c.apiVersion }

// Do sends req and decodes a successful response into out. out may be nil
// to discard the body.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	_, err := c.do(ctx, req, out)
	return err
}

// do is the single send-and-decode path shared by Send, SendAsync and the
// paginator. It returns the raw response so callers can inspect the body.
func (c *Client) do(ctx context.Context, req *Request, out any) (*TransportResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, c.transportFailure(err)
	}
	if err := req.Validate(); err != nil {
		return nil, &ParamsError{Fields: map[string]string{}, Err: err}
	}
	if c.manifest != nil {
		if err := c.manifest.ValidateAll(req.Output, req.Expand); err != nil {
			return nil, err
		}
	}

	info := newCallInfo(req)
	ctx = withCallInfo(ctx, info)
	treq := c.newTransportRequest(req)

	c.logger.DebugContext(ctx, "stripe request",
		slog.String("operation", info.Operation),
		slog.String("method", treq.Method),
		slog.String("url", treq.URL),
		slog.Any("headers", redactHeaders(treq.Header)),
	)

	start := time.Now()
	roundTrip := chainInterceptors(c.interceptors, info, c.transport.RoundTrip)
	resp, err := roundTrip(ctx, treq)
	if err == nil && resp == nil {
		err = &TransportError{Kind: TransportOther, Err: ErrNoResponse}
	}
	if err != nil {
		err = c.transportFailure(err)
		c.logger.DebugContext(ctx, "stripe request failed",
			slog.String("operation", info.Operation),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return nil, err
	}

	info.StatusCode = resp.StatusCode
	info.RequestID = resp.Header.Get("Request-Id")
	c.logger.DebugContext(ctx, "stripe response",
		slog.String("operation", info.Operation),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", info.RequestID),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, decodeAPIError(resp)
	}
	if out != nil {
		if err := wire.Unmarshal(resp.Body, out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func (c *Client) newTransportRequest(req *Request) *TransportRequest {
	h := c.headers.Clone()
	h.Set("Authorization", "Bearer "+c.secretKey)
	h.Set("Stripe-Version", c.apiVersion)
	h.Set("User-Agent", c.userAgent)
	h.Set("Accept", "application/json")
	if req.Method == http.MethodPost {
		h.Set("Content-Type", "application/x-www-form-urlencoded")
		if req.IdempotencyKey != "" {
			h.Set("Idempotency-Key", req.IdempotencyKey)
		}
	}
	if req.StripeAccount != "" {
		h.Set("Stripe-Account", req.StripeAccount)
	}
	return &TransportRequest{
		Method: req.Method,
		URL:    req.URL(c.baseURL),
		Header: h,
		Body:   req.Body(),
	}
}

// transportFailure normalises an error returned from the transport chain.
func (c *Client) transportFailure(err error) error {
	var (
		apiErr    *APIError
		decodeErr *wire.DecodeError
		tErr      *TransportError
	)
	switch {
	case errors.Is(err, ErrCancelled):
		return err
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	case errors.As(err, &apiErr), errors.As(err, &decodeErr), errors.As(err, &tErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &TransportError{Kind: TransportTimeout, Err: err}
	}
	return &TransportError{Kind: TransportOther, Err: err}
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out.Get("Authorization") != "" {
		out.Set("Authorization", "[REDACTED]")
	}
	return out
}

// Result is the outcome of an asynchronous send.
type Result[T any] struct {
	Value *T
	Err   error
}

// Send performs req and decodes the response as T, blocking until done.
func Send[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	out := new(T)
	if err := c.Do(ctx, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendAsync performs req in a new goroutine. The returned channel receives
// exactly one Result and is then closed. Cancelling ctx aborts the request.
func SendAsync[T any](ctx context.Context, c *Client, req *Request) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := Send[T](ctx, c, req)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

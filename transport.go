package stripe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// TransportRequest is what the client hands to a Transport.
type TransportRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// TransportResponse is a fully-read HTTP response.
type TransportResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one HTTP exchange. Implementations must honour ctx
// cancellation and must not retry.
type Transport interface {
	RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *TransportRequest) (*TransportResponse, error)

func (f TransportFunc) RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	return f(ctx, req)
}

// DefaultMaxBodySize bounds how much of a response HTTPTransport will read.
const DefaultMaxBodySize = 32 << 20

// HTTPTransport is the net/http binding of Transport.
type HTTPTransport struct {
	client      *http.Client
	limiter     *rate.Limiter
	maxBodySize int64
}

// NewHTTPTransport wraps hc. A nil hc uses http.DefaultClient.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPTransport{client: hc, maxBodySize: DefaultMaxBodySize}
}

// RateLimit throttles outgoing requests to r per second with the given
// burst. Waiting happens before the request is sent and observes ctx.
func (t *HTTPTransport) RateLimit(r rate.Limit, burst int) *HTTPTransport {
	t.limiter = rate.NewLimiter(r, burst)
	return t
}

// MaxBodySize sets the largest response body that will be read.
func (t *HTTPTransport) MaxBodySize(n int64) *HTTPTransport {
	t.maxBodySize = n
	return t
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, classifyTransportError(ctxErr)
			}
			return nil, &TransportError{Kind: TransportOther, Err: err}
		}
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &TransportError{Kind: TransportOther, Err: err}
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodySize+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &TransportError{Kind: TransportTimeout, Err: err}
		}
		if errors.Is(err, context.Canceled) {
			return nil, &TransportError{Kind: TransportOther, Err: err}
		}
		return nil, &TransportError{Kind: TransportRead, Err: err}
	}
	if int64(len(data)) > t.maxBodySize {
		return nil, &TransportError{Kind: TransportRead, Err: fmt.Errorf("response body exceeds %d bytes", t.maxBodySize)}
	}
	return &TransportResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

package stripe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/broady/stripe"
	"github.com/broady/stripe/stripetest"
	"github.com/broady/stripe/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	ID     string `json:"id" required:"true"`
	Object string `json:"object"`
	Email  string `json:"email"`
}

func postCustomer(t *testing.T) *stripe.Request {
	t.Helper()
	vals := wire.NewValues()
	vals.Add("email", "jenny@example.com")
	return &stripe.Request{
		Operation: "customers.create",
		Method:    http.MethodPost,
		Path:      "/v1/customers",
		Payload:   stripe.FormPayload(vals),
		Output:    "customer",
	}
}

func TestClient_Headers(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(200, `{"id":"cus_1","object":"customer"}`)

	req := postCustomer(t)
	req.IdempotencyKey = "idem-1"
	req.StripeAccount = "acct_1"
	_, err := stripe.Send[customer](context.Background(), c, req)
	require.NoError(t, err)

	got := tr.LastRequest()
	require.NotNil(t, got)
	assert.Equal(t, "POST", got.Method)
	assert.Equal(t, "https://api.stripe.com/v1/customers", got.URL)
	assert.Equal(t, "email=jenny%40example.com", got.Body)
	stripetest.AssertHeader(t, got, "Authorization", "Bearer sk_test_123")
	stripetest.AssertHeader(t, got, "Stripe-Version", stripe.APIVersion)
	stripetest.AssertHeader(t, got, "Idempotency-Key", "idem-1")
	stripetest.AssertHeader(t, got, "Stripe-Account", "acct_1")
	stripetest.AssertHeader(t, got, "Content-Type", "application/x-www-form-urlencoded")
}

func TestClient_GetHasNoIdempotencyKeyOrBody(t *testing.T) {
	c, tr := stripetest.NewClient(stripe.WithAPIVersion("2020-08-27"), stripe.WithBaseURL("http://localhost:12111/"))
	tr.Reply(200, `{"id":"cus_1"}`)

	vals := wire.NewValues()
	vals.Add("limit", "3")
	req := &stripe.Request{
		Method:         http.MethodGet,
		Path:           "/v1/customers/cus_1",
		Payload:        stripe.QueryPayload(vals),
		Expand:         []string{"default_source"},
		IdempotencyKey: "ignored",
	}
	cus, err := stripe.Send[customer](context.Background(), c, req)
	require.NoError(t, err)
	assert.Equal(t, "cus_1", cus.ID)

	got := tr.LastRequest()
	assert.Equal(t, "http://localhost:12111/v1/customers/cus_1?limit=3&expand[0]=default_source", got.URL)
	assert.Empty(t, got.Body)
	assert.Empty(t, got.Header.Get("Idempotency-Key"))
	assert.Empty(t, got.Header.Get("Content-Type"))
	stripetest.AssertHeader(t, got, "Stripe-Version", "2020-08-27")
}

func TestClient_APIError(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Enqueue(stripetest.Response{
		Status: 402,
		Header: http.Header{"Request-Id": {"req_abc"}},
		Body:   `{"error":{"type":"card_error","code":"card_declined","decline_code":"insufficient_funds","message":"Your card has insufficient funds.","param":"source"}}`,
	})

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	require.Error(t, err)
	assert.Equal(t, stripe.KindAPI, stripe.KindOf(err))

	var apiErr *stripe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, stripe.ErrorTypeCard, apiErr.Type)
	assert.Equal(t, "card_declined", apiErr.Code)
	assert.Equal(t, "insufficient_funds", apiErr.DeclineCode)
	assert.Equal(t, "source", apiErr.Param)
	assert.Equal(t, 402, apiErr.StatusCode)
	assert.Equal(t, "req_abc", apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "card_declined")
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(503, `<html>unavailable</html>`)

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	var apiErr *stripe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, stripe.ErrorTypeAPI, apiErr.Type)
	assert.Equal(t, 503, apiErr.StatusCode)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
}

func TestClient_UnknownAPIErrorType(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(400, `{"error":{"type":"temporary_session_error","message":"x"}}`)

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	var apiErr *stripe.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, stripe.APIErrorType("temporary_session_error"), apiErr.Type)
	assert.True(t, apiErr.Type.IsUnknown())
}

func TestClient_DecodeError(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(200, `{"object":"customer"}`)
	tr.Reply(200, `{"id":`)

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	assert.Equal(t, stripe.KindDecode, stripe.KindOf(err))
	assert.ErrorIs(t, err, &wire.DecodeError{Reason: wire.ReasonMissingField, Field: "id"})

	_, err = stripe.Send[customer](context.Background(), c, postCustomer(t))
	assert.ErrorIs(t, err, &wire.DecodeError{Reason: wire.ReasonMalformed})
}

func TestClient_TransportError(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Fail(&stripe.TransportError{Kind: stripe.TransportConnect, Err: errors.New("connection refused")})
	tr.Fail(errors.New("something odd"))

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	var tErr *stripe.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, stripe.TransportConnect, tErr.Kind)
	assert.Equal(t, stripe.KindTransport, stripe.KindOf(err))

	_, err = stripe.Send[customer](context.Background(), c, postCustomer(t))
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, stripe.TransportOther, tErr.Kind)
}

func TestClient_NoResponse(t *testing.T) {
	c := stripe.NewClient("sk_test_123", stripe.WithTransport(stripe.TransportFunc(
		func(ctx context.Context, req *stripe.TransportRequest) (*stripe.TransportResponse, error) {
			return nil, nil
		})))

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	var tErr *stripe.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, stripe.TransportOther, tErr.Kind)
	assert.ErrorIs(t, err, stripe.ErrNoResponse)
}

func TestClient_Cancelled(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Hang()

	ctx, cancel := context.WithCancel(context.Background())
	ch := stripe.SendAsync[customer](ctx, c, postCustomer(t))
	cancel()

	select {
	case res := <-ch:
		assert.Nil(t, res.Value)
		assert.ErrorIs(t, res.Err, stripe.ErrCancelled)
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Equal(t, stripe.KindCancelled, stripe.KindOf(res.Err))
	case <-time.After(5 * time.Second):
		t.Fatal("request was not cancelled")
	}
	_, open := <-ch
	assert.False(t, open)
}

func TestClient_AlreadyCancelled(t *testing.T) {
	c, tr := stripetest.NewClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stripe.Send[customer](ctx, c, postCustomer(t))
	assert.ErrorIs(t, err, stripe.ErrCancelled)
	assert.Empty(t, tr.Requests())
}

func TestClient_Timeout(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Hang()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := stripe.Send[customer](ctx, c, postCustomer(t))

	var tErr *stripe.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.True(t, tErr.Timeout())
}

func TestClient_SendAsync(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(200, `{"id":"cus_1","object":"customer","email":"jenny@example.com"}`)

	res := <-stripe.SendAsync[customer](context.Background(), c, postCustomer(t))
	require.NoError(t, res.Err)
	assert.Equal(t, "jenny@example.com", res.Value.Email)
}

func TestClient_Interceptors(t *testing.T) {
	var order []string
	mk := func(name string) stripe.Interceptor {
		return func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
			order = append(order, name+":before")
			fromCtx, ok := stripe.CallInfoFromContext(ctx)
			assert.True(t, ok)
			assert.Same(t, info, fromCtx)
			req.Header.Set("X-"+name, "1")
			resp, err := next(ctx, req)
			order = append(order, name+":after")
			return resp, err
		}
	}
	var seen *stripe.CallInfo
	capture := func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
		seen = info
		return next(ctx, req)
	}

	c, tr := stripetest.NewClient(
		stripe.WithInterceptor(mk("a")),
		stripe.WithInterceptor(mk("b")),
		stripe.WithInterceptor(capture),
	)
	tr.Enqueue(stripetest.Response{Status: 200, Header: http.Header{"Request-Id": {"req_1"}}, Body: `{"id":"cus_1"}`})

	req := postCustomer(t)
	_, err := stripe.Send[customer](context.Background(), c, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"a:before", "b:before", "b:after", "a:after"}, order)
	stripetest.AssertHeader(t, tr.LastRequest(), "X-a", "1")
	stripetest.AssertHeader(t, tr.LastRequest(), "X-b", "1")

	require.NotNil(t, seen)
	assert.Equal(t, "customers.create", seen.Operation)
	assert.Equal(t, req.Fingerprint(), seen.Fingerprint)
	assert.Equal(t, "req_1", seen.RequestID)
	assert.Equal(t, 200, seen.StatusCode)
}

func TestClient_InterceptorShortCircuit(t *testing.T) {
	denied := errors.New("denied")
	c, tr := stripetest.NewClient(stripe.WithInterceptor(
		func(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
			return nil, denied
		},
	))
	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	assert.ErrorIs(t, err, denied)
	assert.Equal(t, stripe.KindTransport, stripe.KindOf(err))
	assert.Empty(t, tr.Requests())
}

func TestClient_LogsRedactedAuthorization(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, tr := stripetest.NewClient(stripe.WithLogger(logger))
	tr.Reply(200, `{"id":"cus_1"}`)

	_, err := stripe.Send[customer](context.Background(), c, postCustomer(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "stripe request")
	assert.Contains(t, buf.String(), "customers.create")
	assert.Contains(t, buf.String(), "[REDACTED]")
	assert.NotContains(t, buf.String(), "sk_test_123")
}

func TestClient_InvalidRequest(t *testing.T) {
	c, tr := stripetest.NewClient()
	_, err := stripe.Send[customer](context.Background(), c, &stripe.Request{Method: "PATCH", Path: "/v1/customers"})
	assert.Equal(t, stripe.KindInvalidParams, stripe.KindOf(err))
	assert.Empty(t, tr.Requests())
}

func TestClient_DoDiscardsBody(t *testing.T) {
	c, tr := stripetest.NewClient()
	tr.Reply(200, `not even json`)
	require.NoError(t, c.Do(context.Background(), postCustomer(t), nil))
}

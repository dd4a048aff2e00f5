package stripe

import (
	"context"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/broady/stripe/wire"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Call is the core shared by every generated endpoint builder. Builders
// embed a *Call, own the parameter struct it points at, and expose one
// setter per optional parameter.
type Call[T any] struct {
	operation      string
	method         string
	path           string
	ids            []string
	params         any
	output         TypeTag
	expand         []string
	idempotencyKey string
	stripeAccount  string
}

// NewCall creates a builder core. path contains one %s per id. params is a
// pointer to the builder's parameter struct, or nil.
func NewCall[T any](operation, method, path string, output TypeTag, params any, ids ...string) *Call[T] {
	return &Call[T]{
		operation: operation,
		method:    method,
		path:      path,
		ids:       ids,
		params:    params,
		output:    output,
	}
}

// AddExpand appends expansion paths.
func (c *Call[T]) AddExpand(paths ...string) {
	c.expand = append(c.expand, paths...)
}

// SetIdempotencyKey sets the Idempotency-Key header. It is ignored for
// methods other than POST.
func (c *Call[T]) SetIdempotencyKey(key string) {
	c.idempotencyKey = key
}

// SetStripeAccount makes the call on behalf of a connected account.
func (c *Call[T]) SetStripeAccount(account string) {
	c.stripeAccount = account
}

// Build validates the parameters and produces the request descriptor.
func (c *Call[T]) Build() (*Request, error) {
	path, err := FormatPath(c.path, c.ids...)
	if err != nil {
		return nil, &ParamsError{Fields: map[string]string{"path": err.Error()}, Err: err}
	}
	vals := wire.NewValues()
	if !isNil(c.params) {
		if err := validate.Struct(c.params); err != nil {
			return nil, newParamsError(err)
		}
		if vals, err = wire.Marshal(c.params); err != nil {
			return nil, &ParamsError{Fields: map[string]string{}, Err: err}
		}
	}

	payload := EmptyPayload()
	if vals.Len() > 0 {
		payload = QueryPayload(vals)
		if c.method == http.MethodPost {
			payload = FormPayload(vals)
		}
	}
	return &Request{
		Operation:      c.operation,
		Method:         c.method,
		Path:           path,
		Payload:        payload,
		Expand:         slices.Clone(c.expand),
		Output:         c.output,
		IdempotencyKey: c.idempotencyKey,
		StripeAccount:  c.stripeAccount,
	}, nil
}

// Send builds the request and performs it, blocking until done.
func (c *Call[T]) Send(ctx context.Context, client *Client) (*T, error) {
	req, err := c.Build()
	if err != nil {
		return nil, err
	}
	return Send[T](ctx, client, req)
}

// SendAsync builds the request and performs it in the background.
func (c *Call[T]) SendAsync(ctx context.Context, client *Client) <-chan Result[T] {
	req, err := c.Build()
	if err != nil {
		ch := make(chan Result[T], 1)
		ch <- Result[T]{Err: err}
		close(ch)
		return ch
	}
	return SendAsync[T](ctx, client, req)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ListCall is the builder core of list endpoints.
type ListCall[T any] struct {
	*Call[List[T]]
}

// NewListCall creates a GET list builder core.
func NewListCall[T any](operation, path string, elem TypeTag, params any, ids ...string) *ListCall[T] {
	return &ListCall[T]{NewCall[List[T]](operation, http.MethodGet, path, ListOf(elem), params, ids...)}
}

// Paginate returns a paginator over every page, starting with the page
// this builder describes.
func (l *ListCall[T]) Paginate(client *Client, opts ...PageOption) *Paginator[T] {
	req, err := l.Build()
	if err != nil {
		return failedPaginator[T](err)
	}
	return NewPaginator[T](client, req, opts...)
}

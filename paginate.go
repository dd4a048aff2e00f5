package stripe

import (
	"context"
	"fmt"
	"iter"

	"github.com/broady/stripe/wire"
	"github.com/tidwall/gjson"
)

// List is one page of a list endpoint.
type List[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data" required:"true"`
	HasMore bool   `json:"has_more" required:"true"`
	URL     string `json:"url"`
}

// PageOption configures a Paginator.
type PageOption func(*pageConfig)

type pageConfig struct {
	backward bool
	maxItems int
}

// Backward pages towards older items using ending_before. A request that
// already sets ending_before pages backward without this option.
func Backward() PageOption {
	return func(c *pageConfig) { c.backward = true }
}

// MaxItems caps the number of items a paginator will yield before failing
// with ErrPageLimitExceeded. It overrides the client default.
func MaxItems(n int) PageOption {
	return func(c *pageConfig) { c.maxItems = n }
}

// Paginator lazily walks every page of a list endpoint.
//
//	p := builder.Paginate(client)
//	for p.Next(ctx) {
//	    use(p.Current())
//	}
//	if err := p.Err(); err != nil { ... }
//
// The next page is fetched only once every item of the current page has
// been consumed. A Paginator is not safe for concurrent use.
type Paginator[T any] struct {
	client *Client
	req    *Request
	cfg    pageConfig

	page    *List[T]
	idx     int
	yielded int
	cursor  string
	current T
	err     error
}

// NewPaginator creates a paginator whose first request is req, unchanged.
func NewPaginator[T any](c *Client, req *Request, opts ...PageOption) *Paginator[T] {
	cfg := pageConfig{
		backward: req.Payload.Values.Has("ending_before"),
		maxItems: c.maxPageItems,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Paginator[T]{client: c, req: req, cfg: cfg}
}

func failedPaginator[T any](err error) *Paginator[T] {
	return &Paginator[T]{err: err}
}

// Next advances to the next item, fetching a page if needed. It returns
// false when the list is exhausted or an error occurred.
func (p *Paginator[T]) Next(ctx context.Context) bool {
	for p.err == nil {
		if p.page != nil && p.idx+1 < len(p.page.Data) {
			if p.cfg.maxItems > 0 && p.yielded >= p.cfg.maxItems {
				p.err = fmt.Errorf("%w: more than %d items", ErrPageLimitExceeded, p.cfg.maxItems)
				return false
			}
			p.idx++
			p.yielded++
			p.current = p.page.Data[p.idx]
			return true
		}
		if p.page != nil && !p.page.HasMore {
			return false
		}
		p.err = p.fetch(ctx)
	}
	return false
}

// Current returns the item Next advanced to.
func (p *Paginator[T]) Current() T { return p.current }

// Err returns the error that stopped iteration, if any.
func (p *Paginator[T]) Err() error { return p.err }

// Page returns the most recently fetched page.
func (p *Paginator[T]) Page() *List[T] { return p.page }

// All iterates the remaining items. A failure is yielded once as the final
// element with a zero item.
func (p *Paginator[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.Next(ctx) {
			if !yield(p.Current(), nil) {
				return
			}
		}
		if err := p.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Collect drains the paginator into a slice.
func (p *Paginator[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for p.Next(ctx) {
		out = append(out, p.Current())
	}
	return out, p.Err()
}

func (p *Paginator[T]) nextRequest() *Request {
	if p.page == nil {
		return p.req
	}
	if p.cfg.backward {
		return p.req.WithParam("ending_before", p.cursor)
	}
	return p.req.WithParam("starting_after", p.cursor)
}

func (p *Paginator[T]) fetch(ctx context.Context) error {
	page := new(List[T])
	resp, err := p.client.do(ctx, p.nextRequest(), page)
	if err != nil {
		return err
	}
	if len(page.Data) == 0 {
		if page.HasMore {
			return wire.InvariantViolation("empty page with has_more=true")
		}
		p.page, p.idx = page, -1
		return nil
	}

	ids := gjson.GetBytes(resp.Body, "data.#.id").Array()
	var cursor string
	if len(ids) == len(page.Data) {
		if p.cfg.backward {
			cursor = ids[0].String()
		} else {
			cursor = ids[len(ids)-1].String()
		}
	}
	if cursor == "" && page.HasMore {
		return wire.InvariantViolation("list item without id")
	}
	p.page, p.idx, p.cursor = page, -1, cursor
	return nil
}

package wire

import "strconv"

// RangeQuery filters a numeric or timestamp field. Exact takes precedence
// over the bounds: `created=N`. Otherwise each set bound is sent as a
// sub-key: `created[gte]=N&created[lt]=M`.
type RangeQuery struct {
	Exact *int64
	GT    *int64
	GTE   *int64
	LT    *int64
	LTE   *int64
}

// Range starts an empty range filter.
func Range() *RangeQuery {
	return &RangeQuery{}
}

// Equal returns a filter matching exactly n.
func Equal(n int64) *RangeQuery {
	return &RangeQuery{Exact: &n}
}

func (r *RangeQuery) WithGT(n int64) *RangeQuery  { r.GT = &n; return r }
func (r *RangeQuery) WithGTE(n int64) *RangeQuery { r.GTE = &n; return r }
func (r *RangeQuery) WithLT(n int64) *RangeQuery  { r.LT = &n; return r }
func (r *RangeQuery) WithLTE(n int64) *RangeQuery { r.LTE = &n; return r }

// AppendForm implements FormAppender.
func (r RangeQuery) AppendForm(v *Values, key string) {
	if r.Exact != nil {
		v.Add(key, strconv.FormatInt(*r.Exact, 10))
		return
	}
	for _, b := range []struct {
		op string
		n  *int64
	}{
		{"gt", r.GT},
		{"gte", r.GTE},
		{"lt", r.LT},
		{"lte", r.LTE},
	} {
		if b.n != nil {
			v.Add(key+"["+b.op+"]", strconv.FormatInt(*b.n, 10))
		}
	}
}

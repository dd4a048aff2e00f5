package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type address struct {
	Line1      *string `form:"line1"`
	City       *string `form:"city"`
	PostalCode *string `form:"postal_code"`
}

type customerParams struct {
	Email       *string           `form:"email"`
	Description *string           `form:"description"`
	Metadata    map[string]string `form:"metadata"`
	Address     *address          `form:"address"`
	Balance     *int64            `form:"balance"`
	TaxExempt   *bool             `form:"tax_exempt"`
	Preferred   []string          `form:"preferred_locales"`
	Ignored     string            `form:"-"`
	InvoicePfx  *string
}

func TestMarshal_NilFieldsAbsent(t *testing.T) {
	vals, err := Marshal(&customerParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, vals.Len())
	assert.Equal(t, "", vals.Encode())
}

func TestMarshal_MetadataUnset(t *testing.T) {
	p := &customerParams{Metadata: map[string]string{"k": ""}}
	vals, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "metadata[k]=", vals.Encode())
}

func TestMarshal_EmptyStringPointerIsSent(t *testing.T) {
	p := &customerParams{Description: ptr("")}
	vals, err := Marshal(p)
	require.NoError(t, err)
	assert.True(t, vals.Has("description"))
	assert.Equal(t, "description=", vals.Encode())
}

func TestMarshal_EmptyMapClearsCollection(t *testing.T) {
	p := &customerParams{Metadata: map[string]string{}}
	vals, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "metadata=", vals.Encode())
}

func TestMarshal_NestedAndOrdered(t *testing.T) {
	p := &customerParams{
		Email:      ptr("jenny@example.com"),
		Metadata:   map[string]string{"b": "2", "a": "1"},
		Address:    &address{City: ptr("Berlin"), Line1: ptr("Main St 1")},
		Balance:    ptr(int64(-500)),
		TaxExempt:  ptr(false),
		Preferred:  []string{"en", "de"},
		Ignored:    "x",
		InvoicePfx: ptr("ABC"),
	}
	vals, err := Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		"email=jenny%40example.com"+
			"&metadata[a]=1&metadata[b]=2"+
			"&address[line1]=Main+St+1&address[city]=Berlin"+
			"&balance=-500"+
			"&tax_exempt=false"+
			"&preferred_locales[0]=en&preferred_locales[1]=de"+
			"&invoice_pfx=ABC",
		vals.Encode())
}

func TestMarshal_Scalars(t *testing.T) {
	type scalars struct {
		F   *float64   `form:"f"`
		U   *uint      `form:"u"`
		At  *time.Time `form:"at"`
		Opt string     `form:"opt,omitempty"`
		N   int        `form:"n,omitempty"`
	}
	at := time.Unix(1700000000, 0).UTC()
	vals, err := Marshal(scalars{F: ptr(0.1), U: ptr(uint(7)), At: &at})
	require.NoError(t, err)
	assert.Equal(t, "f=0.1&u=7&at=1700000000", vals.Encode())
}

func TestMarshal_RangeQuery(t *testing.T) {
	type listParams struct {
		Created *RangeQuery `form:"created"`
		Limit   *int64      `form:"limit"`
	}
	tests := []struct {
		name string
		in   listParams
		want string
	}{
		{
			name: "bounds",
			in:   listParams{Created: Range().WithGTE(1700000000).WithLT(1710000000), Limit: ptr(int64(50))},
			want: "created[gte]=1700000000&created[lt]=1710000000&limit=50",
		},
		{
			name: "exact",
			in:   listParams{Created: Equal(42)},
			want: "created=42",
		},
		{
			name: "all bounds in canonical order",
			in:   listParams{Created: Range().WithLTE(4).WithLT(3).WithGTE(2).WithGT(1)},
			want: "created[gt]=1&created[gte]=2&created[lt]=3&created[lte]=4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals, err := Marshal(&tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, vals.Encode())
		})
	}
}

func TestMarshal_SliceOfStructs(t *testing.T) {
	type item struct {
		Price    *string `form:"price"`
		Quantity *int64  `form:"quantity"`
	}
	type params struct {
		Items []item `form:"items"`
	}
	vals, err := Marshal(params{Items: []item{
		{Price: ptr("price_1"), Quantity: ptr(int64(2))},
		{Price: ptr("price_2")},
	}})
	require.NoError(t, err)
	assert.Equal(t, "items[0][price]=price_1&items[0][quantity]=2&items[1][price]=price_2", vals.Encode())
}

func TestMarshal_EmbeddedStruct(t *testing.T) {
	type common struct {
		Limit *int64 `form:"limit"`
	}
	type params struct {
		common
		Customer *string `form:"customer"`
	}
	vals, err := Marshal(&params{common: common{Limit: ptr(int64(3))}, Customer: ptr("cus_1")})
	require.NoError(t, err)
	assert.Equal(t, "limit=3&customer=cus_1", vals.Encode())
}

func TestMarshal_Errors(t *testing.T) {
	_, err := Marshal(42)
	assert.Error(t, err)

	type bad struct {
		C chan int `form:"c"`
	}
	_, err = Marshal(bad{C: make(chan int)})
	assert.ErrorContains(t, err, `"c"`)

	vals, err := Marshal((*customerParams)(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, vals.Len())
}

func TestValues(t *testing.T) {
	v := NewValues()
	v.Add("limit", "10")
	v.Add("expand[0]", "data.customer")
	v.Add("limit", "20")

	assert.Equal(t, "10", v.Get("limit"))
	assert.True(t, v.Has("expand[0]"))
	assert.False(t, v.Has("missing"))

	v.Set("limit", "30")
	assert.Equal(t, "limit=30&expand[0]=data.customer", v.Encode())

	v.Set("starting_after", "cus_3")
	assert.Equal(t, "cus_3", v.Get("starting_after"))

	c := v.Clone()
	c.Del("limit")
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2, c.Len())

	u := v.URLValues()
	assert.Equal(t, "30", u.Get("limit"))

	var keys []string
	for k := range v.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"limit", "expand[0]", "starting_after"}, keys)

	var nilVals *Values
	assert.Equal(t, 0, nilVals.Len())
	assert.Equal(t, "", nilVals.Get("x"))
	assert.Equal(t, 0, nilVals.Clone().Len())
}

func TestMarshalAppend(t *testing.T) {
	v := NewValues()
	v.Add("customer", "cus_1")
	require.NoError(t, MarshalAppend(v, "metadata", map[string]string{"order": "6735"}))
	assert.Equal(t, "customer=cus_1&metadata[order]=6735", v.Encode())
}

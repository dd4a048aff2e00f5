package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/stripe"
	"github.com/broady/stripe/api"
	"github.com/broady/stripe/stripetest"
	"github.com/broady/stripe/wire"
)

func newClient() (*stripe.Client, *stripetest.Transport) {
	return stripetest.NewClient(
		stripe.WithAPIVersion(api.APIVersion),
		stripe.WithManifest(api.Manifest),
	)
}

func TestUpdateCustomer_MetadataUnset(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"id":"cus_1","object":"customer","metadata":{"other":"kept"}}`)

	cus, err := api.UpdateCustomer("cus_1").
		Metadata(map[string]string{"k": ""}).
		Send(context.Background(), c)
	require.NoError(t, err)

	req := tr.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/customers/cus_1", req.Path)
	assert.Equal(t, "metadata[k]=", req.Body)
	assert.NotContains(t, cus.Metadata, "k")
	assert.Equal(t, "kept", cus.Metadata["other"])
}

func TestUpdateCustomer_ClearAllMetadata(t *testing.T) {
	req, err := api.UpdateCustomer("cus_1").Metadata(map[string]string{}).Build()
	require.NoError(t, err)
	assert.Equal(t, "metadata=", req.Payload.Values.Encode())
}

func TestListDisputes_RangeFilter(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"object":"list","data":[],"has_more":false,"url":"/v1/disputes"}`)

	_, err := api.ListDisputes().
		Created(wire.Range().WithGTE(1_700_000_000).WithLT(1_700_086_400)).
		Limit(50).
		Send(context.Background(), c)
	require.NoError(t, err)

	req := tr.LastRequest()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/v1/disputes", req.Path)
	assert.Equal(t, "created[gte]=1700000000&created[lt]=1700086400&limit=50", req.RawQuery())
	assert.Empty(t, req.Body)
}

func TestRetrieveDispute_Expand(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{
		"id": "dp_1", "object": "dispute", "amount": 1000, "currency": "usd", "status": "needs_response",
		"charge": {"id": "ch_1", "object": "charge", "amount": 1000, "currency": "usd", "status": "succeeded"},
		"payment_intent": {"id": "pi_1", "object": "payment_intent", "amount": 1000, "currency": "usd", "status": "succeeded"}
	}`)
	tr.Reply(200, `{"id":"dp_1","object":"dispute","amount":1000,"currency":"usd","status":"won","charge":"ch_1","payment_intent":null}`)

	ctx := context.Background()
	dp, err := api.RetrieveDispute("dp_1").Expand("charge", "payment_intent").Send(ctx, c)
	require.NoError(t, err)

	assert.Equal(t, "/v1/disputes/dp_1", tr.LastRequest().Path)
	assert.Equal(t, "expand[0]=charge&expand[1]=payment_intent", tr.LastRequest().RawQuery())
	require.True(t, dp.Charge.IsExpanded())
	assert.Equal(t, api.ChargeID("ch_1"), dp.Charge.Object.ID)
	assert.Equal(t, "ch_1", dp.Charge.ID)
	assert.Equal(t, api.ChargeStatusSucceeded, dp.Charge.Object.Status)
	require.True(t, dp.PaymentIntent.IsExpanded())
	assert.Equal(t, int64(1000), dp.PaymentIntent.Object.Amount)

	dp, err = api.RetrieveDispute("dp_1").Send(ctx, c)
	require.NoError(t, err)
	assert.False(t, dp.Charge.IsExpanded())
	assert.Equal(t, "ch_1", dp.Charge.ID)
	assert.Equal(t, "", dp.PaymentIntent.ID)
	assert.Equal(t, api.DisputeStatusWon, dp.Status)
}

func TestRetrieveDispute_InvalidExpand(t *testing.T) {
	c, tr := newClient()

	_, err := api.RetrieveDispute("dp_1").Expand("charge.balance").Send(context.Background(), c)
	var pe *stripe.ParamsError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Fields, "expand")
	assert.Empty(t, tr.Requests())

	tr.Reply(200, `{"object":"list","data":[],"has_more":false}`)
	_, err = api.ListDisputes().Expand("data.charge.customer").Send(context.Background(), c)
	assert.NoError(t, err)
}

func TestDeleteCustomerBankAccount(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"id":"ba_1","object":"bank_account","deleted":true}`)
	tr.Reply(200, `{"id":"ba_1","object":"bank_account","last4":"6789","country":"US","currency":"usd","status":"verified","customer":"cus_1"}`)

	ctx := context.Background()
	res, err := api.DeleteCustomerBankAccount("cus_1", "ba_1").Send(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, tr.LastRequest().Method)
	assert.Equal(t, "/v1/customers/cus_1/bank_accounts/ba_1", tr.LastRequest().Path)
	require.True(t, res.IsDeleted())
	assert.Equal(t, "ba_1", res.ID())
	assert.Equal(t, "bank_account", res.Deleted.Object)
	assert.Nil(t, res.Active)

	res, err = api.DeleteCustomerBankAccount("cus_1", "ba_1").Send(ctx, c)
	require.NoError(t, err)
	require.False(t, res.IsDeleted())
	assert.Equal(t, "6789", res.Active.Last4)
	assert.Equal(t, api.BankAccountStatusVerified, res.Active.Status)
	assert.Equal(t, "cus_1", res.Active.Customer.ID)
}

func TestDeleteCustomerSource(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"id":"card_1","object":"card","brand":"Visa","last4":"4242","funding":"credit"}`)
	tr.Reply(200, `{"id":"src_1","object":"source","deleted":true}`)
	tr.Reply(200, `{"id":"x_1","object":"ach_credit_transfer"}`)

	ctx := context.Background()
	res, err := api.DeleteCustomerSource("cus_1", "card_1").Send(ctx, c)
	require.NoError(t, err)
	require.False(t, res.IsDeleted())
	card, ok := res.Active.Value.(*api.Card)
	require.True(t, ok, "expected *api.Card, got %T", res.Active.Value)
	assert.Equal(t, "4242", card.Last4)
	assert.Equal(t, api.CardFundingCredit, card.Funding)

	res, err = api.DeleteCustomerSource("cus_1", "src_1").Send(ctx, c)
	require.NoError(t, err)
	assert.True(t, res.IsDeleted())

	_, err = api.DeleteCustomerSource("cus_1", "x_1").Send(ctx, c)
	assert.ErrorIs(t, err, &wire.DecodeError{Reason: wire.ReasonUnknownVariant})
	assert.Equal(t, stripe.KindDecode, stripe.KindOf(err))
}

func TestPaymentMethod_OpenEnumDrift(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"id":"pm_1","object":"payment_method","type":"future_method_xyz","created":1700000000}`)

	pm, err := api.RetrievePaymentMethod("pm_1").Send(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, api.PaymentMethodType("future_method_xyz"), pm.Type)
	assert.True(t, pm.Type.IsUnknown())

	out, err := json.Marshal(pm.Type)
	require.NoError(t, err)
	assert.Equal(t, `"future_method_xyz"`, string(out))
	assert.Equal(t, pm.Type, api.ParsePaymentMethodType(string(pm.Type)))
}

func TestDispute_DecodeErrorPaths(t *testing.T) {
	const head = `{"id":"dp_1","object":"dispute","amount":100,"currency":"usd","status":"lost",`
	tests := []struct {
		name   string
		tail   string
		reason wire.DecodeReason
		field  string
	}{
		{"charge not an id or object", `"charge":12}`, wire.ReasonTypeMismatch, "charge"},
		{"expanded charge missing amount", `"charge":{"id":"ch_1","currency":"usd"}}`, wire.ReasonMissingField, "charge.amount"},
		{"expanded payment intent bad amount", `"charge":"ch_1","payment_intent":{"id":"pi_1","amount":"ten"}}`, wire.ReasonTypeMismatch, "payment_intent.amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d api.Dispute
			err := wire.Unmarshal([]byte(head+tt.tail), &d)
			var de *wire.DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.reason, de.Reason)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestDispute_NullReason(t *testing.T) {
	var buf bytes.Buffer
	wire.SetDriftLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { wire.SetDriftLogger(nil) })

	var d api.Dispute
	err := wire.Unmarshal([]byte(`{"id":"dp_1","amount":100,"charge":"ch_1","currency":"usd","status":"lost","reason":null}`), &d)
	require.NoError(t, err)
	assert.Equal(t, api.DisputeReason(""), d.Reason)
	assert.Empty(t, buf.String())
}

func TestListDisputes_Paginate(t *testing.T) {
	c, tr := newClient()
	tr.Reply(200, `{"object":"list","data":[`+disputes("a", "b", "c")+`],"has_more":true,"url":"/v1/disputes"}`)
	tr.Reply(200, `{"object":"list","data":[`+disputes("d", "e")+`],"has_more":false,"url":"/v1/disputes"}`)

	items, err := api.ListDisputes().Limit(3).Paginate(c).Collect(context.Background())
	require.NoError(t, err)

	var got []api.DisputeID
	for _, d := range items {
		got = append(got, d.ID)
	}
	assert.Equal(t, []api.DisputeID{"a", "b", "c", "d", "e"}, got)

	reqs := tr.Requests()
	require.Len(t, reqs, 2)
	assert.False(t, reqs[0].HasParam("starting_after"))
	stripetest.AssertParam(t, reqs[1], "starting_after", "c")
}

func TestListCharges_AgainstServer(t *testing.T) {
	srv := stripetest.NewServer(t)
	var items []any
	for i := range 7 {
		items = append(items, map[string]any{
			"id": fmt.Sprintf("ch_%d", i), "object": "charge", "amount": 100 * (i + 1),
			"currency": "usd", "status": "succeeded", "customer": "cus_1",
		})
	}
	srv.HandleList("/v1/charges", items...)

	c := api.NewClient("sk_test_123", stripe.WithBaseURL(srv.URL))
	var total int64
	for ch, err := range api.ListCharges().Customer("cus_1").Limit(3).Paginate(c).All(context.Background()) {
		require.NoError(t, err)
		total += ch.Amount
	}
	assert.Equal(t, int64(2800), total)

	reqs := srv.Requests()
	require.Len(t, reqs, 3)
	stripetest.AssertHeader(t, reqs[0], "Stripe-Version", api.APIVersion)
	stripetest.AssertParam(t, reqs[0], "customer", "cus_1")
	stripetest.AssertParam(t, reqs[2], "starting_after", "ch_5")
}

func disputes(ids ...string) string {
	var out string
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"id":%q,"object":"dispute","amount":100,"currency":"usd","status":"lost","charge":"ch_%s"}`, id, id)
	}
	return out
}

// Package api is the typed surface of the Stripe API: one record per
// resource, one builder per operation, typed ids, enums, the polymorphic
// payment-source union and the expand manifest.
//
//	c := api.NewClient(key)
//	page := api.ListDisputes().Created(wire.Range().WithGTE(from)).Limit(50).Paginate(c)
//	for d, err := range page.All(ctx) {
//	    ...
//	}
package api

//go:generate go run ../cmd/stripegen gen --config stripegen.yaml

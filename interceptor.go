package stripe

import (
	"context"
)

// RoundTripFunc is the next step in an interceptor chain.
type RoundTripFunc func(ctx context.Context, req *TransportRequest) (*TransportResponse, error)

// Interceptor wraps every transport exchange made by a Client.
//
//	func timing(ctx context.Context, info *stripe.CallInfo, req *stripe.TransportRequest, next stripe.RoundTripFunc) (*stripe.TransportResponse, error) {
//	    start := time.Now()
//	    resp, err := next(ctx, req)
//	    log.Printf("%s took %v", info.Operation, time.Since(start))
//	    return resp, err
//	}
//
// Interceptors can:
//   - Inspect or modify the outgoing request, including headers
//   - Inspect the response before it is decoded
//   - Short-circuit by returning a response or error without calling next
//
// Returned errors reach the caller unchanged, except that context
// cancellation is reported as ErrCancelled.
type Interceptor func(ctx context.Context, info *CallInfo, req *TransportRequest, next RoundTripFunc) (*TransportResponse, error)

// chainInterceptors wraps final with the interceptors. The first interceptor
// in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor, info *CallInfo, final RoundTripFunc) RoundTripFunc {
	chain := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		current := interceptors[i]
		next := chain
		chain = func(ctx context.Context, req *TransportRequest) (*TransportResponse, error) {
			return current(ctx, info, req, next)
		}
	}
	return chain
}

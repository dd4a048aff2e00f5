package stripe

import (
	"context"
)

type contextKey struct {
	name string
}

var callInfoKey = &contextKey{"call_info"}

// CallInfo describes the call in progress. Interceptors receive it directly;
// other code reached from a call can find it with CallInfoFromContext.
type CallInfo struct {
	// Operation is the request's operation name, or "METHOD /path" when unset.
	Operation      string
	Method         string
	Path           string
	Output         TypeTag
	Fingerprint    string
	IdempotencyKey string
	StripeAccount  string

	// StatusCode and RequestID are filled in once a response arrives.
	StatusCode int
	RequestID  string
}

func newCallInfo(req *Request) *CallInfo {
	op := req.Operation
	if op == "" {
		op = req.Method + " " + req.Path
	}
	return &CallInfo{
		Operation:      op,
		Method:         req.Method,
		Path:           req.Path,
		Output:         req.Output,
		Fingerprint:    req.Fingerprint(),
		IdempotencyKey: req.IdempotencyKey,
		StripeAccount:  req.StripeAccount,
	}
}

// CallInfoFromContext returns the CallInfo of the call ctx belongs to.
func CallInfoFromContext(ctx context.Context) (*CallInfo, bool) {
	info, ok := ctx.Value(callInfoKey).(*CallInfo)
	return info, ok
}

func withCallInfo(ctx context.Context, info *CallInfo) context.Context {
	return context.WithValue(ctx, callInfoKey, info)
}

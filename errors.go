package stripe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/broady/stripe/wire"
	"github.com/go-playground/validator/v10"
)

// ErrorKind is the top-level classification of a client error.
type ErrorKind string

const (
	KindTransport         ErrorKind = "transport"
	KindDecode            ErrorKind = "decode"
	KindAPI               ErrorKind = "api"
	KindCancelled         ErrorKind = "cancelled"
	KindPageLimitExceeded ErrorKind = "page_limit_exceeded"
	KindInvalidParams     ErrorKind = "invalid_params"
	KindUnknown           ErrorKind = "unknown"
)

var (
	// ErrCancelled is returned when the caller's context is cancelled at a
	// transport or page boundary. The context's own error is also wrapped.
	ErrCancelled = errors.New("stripe: request cancelled")

	// ErrPageLimitExceeded is returned when a paginator reaches its item cap.
	ErrPageLimitExceeded = errors.New("stripe: page limit exceeded")

	// ErrNoResponse is wrapped in a TransportError when a transport or
	// interceptor returns neither a response nor an error.
	ErrNoResponse = errors.New("stripe: no response")
)

// DecodeError is returned when a response body cannot be decoded.
type DecodeError = wire.DecodeError

// KindOf classifies err. It returns "" for a nil error.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var (
		apiErr    *APIError
		tErr      *TransportError
		decodeErr *wire.DecodeError
		paramsErr *ParamsError
	)
	switch {
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrPageLimitExceeded):
		return KindPageLimitExceeded
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &tErr):
		return KindTransport
	case errors.As(err, &paramsErr):
		return KindInvalidParams
	}
	return KindUnknown
}

// APIErrorType mirrors the `type` of a vendor error object.
type APIErrorType string

const (
	ErrorTypeAPI            APIErrorType = "api_error"
	ErrorTypeCard           APIErrorType = "card_error"
	ErrorTypeIdempotency    APIErrorType = "idempotency_error"
	ErrorTypeInvalidRequest APIErrorType = "invalid_request_error"
	ErrorTypeRateLimit      APIErrorType = "rate_limit_error"
	ErrorTypeAuthentication APIErrorType = "authentication_error"
)

var apiErrorTypes = wire.OpenEnum("api_error_type",
	ErrorTypeAPI,
	ErrorTypeCard,
	ErrorTypeIdempotency,
	ErrorTypeInvalidRequest,
	ErrorTypeRateLimit,
	ErrorTypeAuthentication,
)

func (t *APIErrorType) UnmarshalJSON(data []byte) error {
	return apiErrorTypes.DecodeJSON(data, t)
}

// IsUnknown reports whether t is outside the documented set.
func (t APIErrorType) IsUnknown() bool { return !apiErrorTypes.IsKnown(t) }

// APIError is a structured error returned by the server.
type APIError struct {
	Type          APIErrorType `json:"type"`
	Code          string       `json:"code,omitempty"`
	DeclineCode   string       `json:"decline_code,omitempty"`
	Message       string       `json:"message,omitempty"`
	Param         string       `json:"param,omitempty"`
	DocURL        string       `json:"doc_url,omitempty"`
	RequestLogURL string       `json:"request_log_url,omitempty"`

	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"-"`
	// RequestID is the value of the Request-Id response header.
	RequestID string `json:"-"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stripe: %s", e.Type)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Param != "" {
		fmt.Fprintf(&b, " [param=%s]", e.Param)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " [request_id=%s]", e.RequestID)
	}
	return b.String()
}

// decodeAPIError builds an APIError from a non-2xx response. Bodies that do
// not carry an error object still produce an APIError with the HTTP status.
func decodeAPIError(resp *TransportResponse) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	apiErr := &APIError{Type: ErrorTypeAPI}
	if err := wire.Unmarshal(resp.Body, &envelope); err == nil && envelope.Error != nil {
		apiErr = envelope.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	apiErr.StatusCode = resp.StatusCode
	apiErr.RequestID = resp.Header.Get("Request-Id")
	return apiErr
}

// TransportErrorKind classifies a transport failure.
type TransportErrorKind string

const (
	TransportConnect TransportErrorKind = "connect"
	TransportRead    TransportErrorKind = "read"
	TransportTimeout TransportErrorKind = "timeout"
	TransportTLS     TransportErrorKind = "tls"
	TransportOther   TransportErrorKind = "other"
)

// TransportError is a failure below the HTTP layer: no response was
// received, or the response body could not be read.
type TransportError struct {
	Kind TransportErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("stripe: transport %s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool { return e.Kind == TransportTimeout }

// classifyTransportError maps a failed http.Client.Do to a TransportError.
func classifyTransportError(err error) *TransportError {
	var (
		tErr       *TransportError
		netErr     net.Error
		opErr      *net.OpError
		recordErr  tls.RecordHeaderError
		verifyErr  *tls.CertificateVerificationError
		unknownCA  x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)
	switch {
	case errors.As(err, &tErr):
		return tErr
	case errors.Is(err, context.DeadlineExceeded):
		return &TransportError{Kind: TransportTimeout, Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &TransportError{Kind: TransportTimeout, Err: err}
	case errors.As(err, &recordErr), errors.As(err, &verifyErr),
		errors.As(err, &unknownCA), errors.As(err, &hostErr), errors.As(err, &invalidErr):
		return &TransportError{Kind: TransportTLS, Err: err}
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return &TransportError{Kind: TransportConnect, Err: err}
	}
	return &TransportError{Kind: TransportOther, Err: err}
}

// ParamsError reports request parameters rejected before sending.
type ParamsError struct {
	// Fields maps a parameter name to a human-readable problem.
	Fields map[string]string
	Err    error
}

func (e *ParamsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = name + ": " + e.Fields[name]
	}
	return "stripe: invalid params: " + strings.Join(msgs, "; ")
}

func (e *ParamsError) Unwrap() error { return e.Err }

func newParamsError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return &ParamsError{Fields: map[string]string{}, Err: err}
	}
	fields := make(map[string]string, len(valErrs))
	for _, ve := range valErrs {
		fields[paramPath(ve)] = formatValidationError(ve)
	}
	return &ParamsError{Fields: fields, Err: err}
}

// paramPath renders a validator namespace like "listParams.created.gte"
// as a form key, "created[gte]".
func paramPath(ve validator.FieldError) string {
	parts := strings.Split(ve.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	key := parts[0]
	for _, p := range parts[1:] {
		key += "[" + p + "]"
	}
	return key
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "excluded_with":
		return fmt.Sprintf("cannot be combined with %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

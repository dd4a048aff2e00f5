package stripe

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/broady/stripe/wire"
)

// TypeTag names the response type a request decodes into. It keys the
// expand manifest.
type TypeTag string

// ListOf returns the tag of a list page of t.
func ListOf(t TypeTag) TypeTag { return "list." + t }

// ListElem returns the element tag of a list tag.
func (t TypeTag) ListElem() (TypeTag, bool) {
	elem, ok := strings.CutPrefix(string(t), "list.")
	return TypeTag(elem), ok
}

// PayloadKind says where request parameters travel.
type PayloadKind int

const (
	PayloadEmpty PayloadKind = iota
	PayloadQuery
	PayloadForm
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadQuery:
		return "query"
	case PayloadForm:
		return "form"
	default:
		return "empty"
	}
}

// Payload is the encoded parameter set of a request.
type Payload struct {
	Kind   PayloadKind
	Values *wire.Values
}

func QueryPayload(v *wire.Values) Payload { return Payload{Kind: PayloadQuery, Values: v} }
func FormPayload(v *wire.Values) Payload  { return Payload{Kind: PayloadForm, Values: v} }
func EmptyPayload() Payload               { return Payload{Kind: PayloadEmpty} }

// Request is a fully-built, immutable description of one API call.
type Request struct {
	// Operation is a stable name for the endpoint, e.g. "customers.update".
	Operation string
	Method    string
	Path      string
	Payload   Payload
	Expand    []string
	Output    TypeTag

	// IdempotencyKey is forwarded as the Idempotency-Key header on POST.
	IdempotencyKey string
	// StripeAccount is forwarded as the Stripe-Account header.
	StripeAccount string
}

// Validate checks the structural consistency of r.
func (r *Request) Validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		if r.Payload.Kind == PayloadForm {
			return fmt.Errorf("stripe: %s request cannot carry a form body", r.Method)
		}
	case http.MethodPost:
		if r.Payload.Kind == PayloadQuery {
			return fmt.Errorf("stripe: POST request parameters must be form-encoded")
		}
	default:
		return fmt.Errorf("stripe: unsupported method %q", r.Method)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("stripe: path %q is not absolute", r.Path)
	}
	return nil
}

// Encoded returns the payload with expand[] entries appended.
func (r *Request) Encoded() *wire.Values {
	vals := r.Payload.Values.Clone()
	for i, e := range r.Expand {
		vals.Add("expand["+strconv.Itoa(i)+"]", e)
	}
	return vals
}

// URL joins base with the request path and, for query payloads, the
// encoded parameters.
func (r *Request) URL(base string) string {
	u := strings.TrimSuffix(base, "/") + r.Path
	if r.Method == http.MethodPost {
		return u
	}
	if q := r.Encoded().Encode(); q != "" {
		u += "?" + q
	}
	return u
}

// Body returns the form body for POST requests and nil otherwise.
func (r *Request) Body() []byte {
	if r.Method != http.MethodPost {
		return nil
	}
	return []byte(r.Encoded().Encode())
}

// Fingerprint is a stable hex digest of the method, path, payload and
// expansions. Identical requests have identical fingerprints.
func (r *Request) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(r.Method))
	h.Write([]byte{'\n'})
	h.Write([]byte(r.Path))
	h.Write([]byte{'\n'})
	h.Write([]byte(r.Encoded().Encode()))
	return hex.EncodeToString(h.Sum(nil))
}

// WithParam returns a copy of r with key set to value in the payload.
func (r *Request) WithParam(key, value string) *Request {
	cp := *r
	cp.Expand = slices.Clone(r.Expand)
	cp.Payload.Values = r.Payload.Values.Clone()
	cp.Payload.Values.Set(key, value)
	if cp.Payload.Kind == PayloadEmpty {
		cp.Payload.Kind = PayloadQuery
		if r.Method == http.MethodPost {
			cp.Payload.Kind = PayloadForm
		}
	}
	return &cp
}

// FormatPath substitutes each %s in format with the next id, path-escaped.
func FormatPath(format string, ids ...string) (string, error) {
	if n := strings.Count(format, "%s"); n != len(ids) {
		return "", fmt.Errorf("stripe: path %q expects %d ids, got %d", format, n, len(ids))
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		if id == "" {
			return "", fmt.Errorf("stripe: path %q: id %d is empty", format, i)
		}
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...), nil
}

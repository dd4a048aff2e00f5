package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Enum describes the value set of a string enumeration.
//
// An open enum accepts any string: values outside the known set are
// preserved verbatim and reported once per process through the drift logger.
// A closed enum rejects unknown values.
type Enum[E ~string] struct {
	name   string
	open   bool
	values []E
	known  map[E]struct{}
}

// OpenEnum declares an enumeration that tolerates values added server-side
// after the client was generated.
func OpenEnum[E ~string](name string, values ...E) *Enum[E] {
	return newEnum(name, true, values)
}

// ClosedEnum declares an enumeration whose value set is fixed.
func ClosedEnum[E ~string](name string, values ...E) *Enum[E] {
	return newEnum(name, false, values)
}

func newEnum[E ~string](name string, open bool, values []E) *Enum[E] {
	known := make(map[E]struct{}, len(values))
	for _, v := range values {
		known[v] = struct{}{}
	}
	return &Enum[E]{name: name, open: open, values: values, known: known}
}

func (e *Enum[E]) Name() string { return e.name }
func (e *Enum[E]) Open() bool   { return e.open }

// Values returns the known values in declaration order.
func (e *Enum[E]) Values() []E { return slices.Clone(e.values) }

// IsKnown reports whether v is one of the declared values.
func (e *Enum[E]) IsKnown(v E) bool {
	_, ok := e.known[v]
	return ok
}

// Parse converts s to the enum type. Open enums never fail.
func (e *Enum[E]) Parse(s string) (E, error) {
	v := E(s)
	if e.IsKnown(v) {
		return v, nil
	}
	if e.open {
		reportDrift("enum", e.name, s)
		return v, nil
	}
	return "", &EnumError{Enum: e.name, Value: s}
}

// Render returns the wire form of v. Unknown values of an open enum render
// exactly as they were received.
func (e *Enum[E]) Render(v E) string { return string(v) }

// DecodeJSON decodes a JSON string into dst using Parse. Generated enum
// types call it from their UnmarshalJSON. A JSON null leaves dst unchanged.
func (e *Enum[E]) DecodeJSON(data []byte, dst *E) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return TypeMismatch("", fmt.Errorf("%s: expected string, got %s", e.name, data))
	}
	v, err := e.Parse(s)
	if err != nil {
		return TypeMismatch("", err)
	}
	*dst = v
	return nil
}

// EnumError reports a value outside a closed enumeration.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: unknown value %q", e.Enum, e.Value)
}

var (
	driftLogger atomic.Pointer[slog.Logger]
	driftSeen   sync.Map // "kind\x00name\x00value" -> struct{}
)

// SetDriftLogger sets the logger that receives unknown enum values and
// unknown union variants. A nil logger restores slog.Default.
func SetDriftLogger(l *slog.Logger) {
	driftLogger.Store(l)
}

func currentDriftLogger() *slog.Logger {
	if l := driftLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// reportDrift logs an unrecognised value the first time it is seen.
func reportDrift(kind, name, value string) {
	key := kind + "\x00" + name + "\x00" + value
	if _, seen := driftSeen.LoadOrStore(key, struct{}{}); seen {
		return
	}
	currentDriftLogger().Warn("unrecognized "+kind+" value",
		slog.String(kind, name),
		slog.String("value", value),
	)
}

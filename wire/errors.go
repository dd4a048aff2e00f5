package wire

import (
	"errors"
	"fmt"
)

// ErrDecode matches every *DecodeError via errors.Is.
var ErrDecode = errors.New("decode error")

// DecodeReason classifies a decode failure.
type DecodeReason string

const (
	ReasonMalformed          DecodeReason = "malformed"
	ReasonMissingField       DecodeReason = "missing_field"
	ReasonTypeMismatch       DecodeReason = "type_mismatch"
	ReasonUnknownVariant     DecodeReason = "unknown_variant"
	ReasonInvariantViolation DecodeReason = "invariant_violation"
)

// DecodeError reports a response body that could not be turned into the
// expected value.
type DecodeError struct {
	Reason DecodeReason
	// Field is the dotted path of the offending field, when known.
	Field string
	// Tag is the discriminator value for ReasonUnknownVariant.
	Tag string
	// Message carries free-form detail for ReasonInvariantViolation.
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	msg := "decode: " + string(e.Reason)
	switch {
	case e.Field != "" && e.Tag != "":
		msg += fmt.Sprintf(" %s=%q", e.Field, e.Tag)
	case e.Field != "":
		msg += " at " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode or a DecodeError with the same Reason.
func (e *DecodeError) Is(target error) bool {
	if target == ErrDecode {
		return true
	}
	if t, ok := target.(*DecodeError); ok {
		return t.Reason == e.Reason && (t.Field == "" || t.Field == e.Field)
	}
	return false
}

// Malformed wraps a syntax failure.
func Malformed(err error) *DecodeError {
	return &DecodeError{Reason: ReasonMalformed, Err: err}
}

// MissingField reports an absent required field.
func MissingField(field string) *DecodeError {
	return &DecodeError{Reason: ReasonMissingField, Field: field}
}

// TypeMismatch reports a field whose JSON type does not fit the target.
func TypeMismatch(field string, err error) *DecodeError {
	return &DecodeError{Reason: ReasonTypeMismatch, Field: field, Err: err}
}

// UnknownVariant reports a discriminator value with no registered variant.
func UnknownVariant(field, tag string) *DecodeError {
	return &DecodeError{Reason: ReasonUnknownVariant, Field: field, Tag: tag}
}

// InvariantViolation reports a response that is well-formed but impossible.
func InvariantViolation(format string, args ...any) *DecodeError {
	return &DecodeError{Reason: ReasonInvariantViolation, Message: fmt.Sprintf(format, args...)}
}

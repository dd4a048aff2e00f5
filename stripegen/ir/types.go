// Package ir defines the intermediate representation stripegen builds from a
// vendor API description and hands to the Go emitter.
//
// All names in the IR are wire names (snake_case, as they appear on the
// wire). Emitters derive their own identifiers from them.
package ir

// Documentation holds the description text attached to a schema element.
type Documentation struct {
	// Summary is the first line of the description.
	Summary string

	// Body is the full description text, possibly multi-line.
	Body string
}

// Doc returns a Documentation whose Summary is the first line of s.
func Doc(s string) Documentation {
	summary := s
	for i := range len(s) {
		if s[i] == '\n' {
			summary = s[:i]
			break
		}
	}
	return Documentation{Summary: summary, Body: s}
}

// IsZero reports whether the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Source identifies where in the vendor description an element came from.
type Source struct {
	// Pointer is a JSON pointer into the description, e.g.
	// "#/components/schemas/customer/properties/email".
	Pointer string
}

// Warning represents a non-fatal issue found while building the IR.
type Warning struct {
	// Code is a machine-readable warning code (e.g., "UNSUPPORTED_SCHEMA").
	Code string

	// Message is a human-readable description.
	Message string

	// Source is the location in the description, if known.
	Source *Source

	// Name is the affected resource, enum or operation, if applicable.
	Name string
}

// Warning codes.
const (
	WarnUnsupportedSchema  = "UNSUPPORTED_SCHEMA"
	WarnUnsupportedBody    = "UNSUPPORTED_BODY"
	WarnUnsupportedOutput  = "UNSUPPORTED_OUTPUT"
	WarnEnumMerged         = "ENUM_MERGED"
	WarnOperationSkipped   = "OPERATION_SKIPPED"
	WarnUnknownExpandField = "UNKNOWN_EXPAND_FIELD"
)

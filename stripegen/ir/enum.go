package ir

import "slices"

// EnumDescriptor describes a string enumeration.
type EnumDescriptor struct {
	// Name is the wire name, e.g. "dispute_status".
	Name string

	// Values are the known wire values, sorted.
	Values []string

	// Open enums keep unknown values on decode; closed enums reject them.
	Open bool

	Documentation Documentation
	Source        Source
}

// IsOpen applies the classification rule: an enum is open if the vendor
// marks it extensible or if it appears in any response. Only request-only
// enums are closed.
func IsOpen(extensible, inResponse bool) bool {
	return extensible || inResponse
}

// Merge folds other into e. Values are unioned and the result is open if
// either side is open. The first non-empty documentation wins.
func (e *EnumDescriptor) Merge(other *EnumDescriptor) {
	for _, v := range other.Values {
		if !slices.Contains(e.Values, v) {
			e.Values = append(e.Values, v)
		}
	}
	slices.Sort(e.Values)
	e.Open = e.Open || other.Open
	if e.Documentation.IsZero() {
		e.Documentation = other.Documentation
	}
}

package stripe

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Manifest records, for each response type, which fields can be expanded
// and what type each expands into. Generated code builds one for the whole
// API surface; the client uses it to reject bad expand[] paths before
// sending.
type Manifest struct {
	types map[TypeTag]map[string]TypeTag
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{types: make(map[TypeTag]map[string]TypeTag)}
}

// Register declares the expandable fields of t. A field that maps to ""
// expands into a type that is not itself tracked (a union, for example),
// and any sub-path below it is accepted.
func (m *Manifest) Register(t TypeTag, fields map[string]TypeTag) *Manifest {
	existing, ok := m.types[t]
	if !ok {
		existing = make(map[string]TypeTag, len(fields))
		m.types[t] = existing
	}
	for f, target := range fields {
		existing[f] = target
	}
	return m
}

// Types returns every registered type, sorted.
func (m *Manifest) Types() []TypeTag {
	out := make([]TypeTag, 0, len(m.types))
	for t := range m.types {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Expandable returns the expandable fields of t, sorted.
func (m *Manifest) Expandable(t TypeTag) []string {
	fields := m.types[t]
	out := make([]string, 0, len(fields))
	for f := range fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Validate checks that path is a valid expansion starting at t. List types
// require the path to begin with "data.".
func (m *Manifest) Validate(t TypeTag, path string) error {
	segments := strings.Split(path, ".")
	if elem, ok := t.ListElem(); ok {
		if len(segments) < 2 || segments[0] != "data" {
			return m.expandError(path, fmt.Sprintf("list expansions must start with data. (type %s)", t))
		}
		t, segments = elem, segments[1:]
	}
	for i, seg := range segments {
		fields, known := m.types[t]
		if !known {
			if i == 0 {
				return m.expandError(path, fmt.Sprintf("type %s has no expandable fields", t))
			}
			// Expanded into an untracked type; accept the remainder.
			return nil
		}
		target, ok := fields[seg]
		if !ok {
			return m.expandError(path, fmt.Sprintf("%s is not expandable on %s", seg, t))
		}
		if target == "" {
			return nil
		}
		t = target
	}
	return nil
}

// ValidateAll validates every path. An empty t skips validation.
func (m *Manifest) ValidateAll(t TypeTag, paths []string) error {
	if t == "" {
		return nil
	}
	for _, p := range paths {
		if err := m.Validate(t, p); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manifest) expandError(path, msg string) error {
	return &ParamsError{
		Fields: map[string]string{"expand": msg},
		Err:    fmt.Errorf("invalid expand path %q", path),
	}
}

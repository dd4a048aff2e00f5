package ir

import (
	"slices"
	"strconv"
	"strings"
)

// Schema is the complete description of a vendor API surface.
type Schema struct {
	// APIVersion is the vendor API version the description was published for.
	APIVersion string

	// Resources holds top-level resources and nested records.
	Resources []*ResourceDescriptor

	Enums  []*EnumDescriptor
	Unions []*UnionDescriptor

	// IDs lists the resources that get a typed identifier.
	IDs []IDDescriptor

	Operations []*OperationDescriptor

	// Warnings contains non-fatal issues encountered during schema building.
	Warnings []Warning
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindResource looks up a resource or nested record by name. Returns nil if not found.
func (s *Schema) FindResource(name string) *ResourceDescriptor {
	for _, r := range s.Resources {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// FindEnum looks up an enum by name. Returns nil if not found.
func (s *Schema) FindEnum(name string) *EnumDescriptor {
	for _, e := range s.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindUnion looks up a union by name. Returns nil if not found.
func (s *Schema) FindUnion(name string) *UnionDescriptor {
	for _, u := range s.Unions {
		if u.Name == name {
			return u
		}
	}
	return nil
}

// FindOperation looks up an operation by builder name. Returns nil if not found.
func (s *Schema) FindOperation(name string) *OperationDescriptor {
	for _, o := range s.Operations {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// HasID reports whether resource has a typed identifier.
func (s *Schema) HasID(resource string) bool {
	return slices.ContainsFunc(s.IDs, func(id IDDescriptor) bool { return id.Resource == resource })
}

// TagOf returns the manifest tag for an expansion target: the object tag of
// a resource, or "" for a union.
func (s *Schema) TagOf(target string) string {
	if r := s.FindResource(target); r != nil {
		return r.Tag
	}
	return ""
}

// ExpandManifest maps a type tag to its expandable fields and the tag each
// field expands to. An empty target tag means the field expands to a union.
type ExpandManifest map[string]map[string]string

// Tags returns the registered tags, sorted.
func (m ExpandManifest) Tags() []string {
	tags := make([]string, 0, len(m))
	for t := range m {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Manifest derives the expand manifest. Every top-level resource and every
// union is registered, even with no expandable fields.
func (s *Schema) Manifest() ExpandManifest {
	m := make(ExpandManifest)
	for _, r := range s.Resources {
		if r.Nested() {
			continue
		}
		fields := make(map[string]string)
		for name, target := range r.ExpandableFields() {
			fields[name] = s.TagOf(target)
		}
		m[r.Tag] = fields
	}
	for _, u := range s.Unions {
		m[u.Name] = u.ExpandableFields(s)
	}
	return m
}

// ValidationError describes a structural problem in a Schema.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// Validate checks the schema for structural errors. It returns every problem
// found, not just the first.
func (s *Schema) Validate() []error {
	var errors []*ValidationError

	if s.APIVersion == "" {
		errors = append(errors, &ValidationError{
			Code:    "missing_api_version",
			Message: "schema has no API version",
		})
	}

	// Names share one namespace since each becomes a Go type.
	names := make(map[string]string)
	declare := func(kind, name string) {
		if name == "" {
			errors = append(errors, &ValidationError{
				Code:    "empty_name",
				Message: kind + " has no name",
			})
			return
		}
		if prev, ok := names[name]; ok {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_name",
				Message: kind + " " + name + " collides with " + prev + " of the same name",
			})
			return
		}
		names[name] = kind
	}
	for _, r := range s.Resources {
		declare("resource", r.Name)
	}
	for _, e := range s.Enums {
		declare("enum", e.Name)
	}
	for _, u := range s.Unions {
		declare("union", u.Name)
	}

	for _, r := range s.Resources {
		seen := make(map[string]bool)
		for _, f := range r.Fields {
			if seen[f.Name] {
				errors = append(errors, &ValidationError{
					Code:    "duplicate_field",
					Message: "duplicate field " + r.Name + "." + f.Name,
				})
			}
			seen[f.Name] = true
			errors = append(errors, s.validateExpr(f.Type, names, "field "+r.Name+"."+f.Name)...)
		}
		if r.Nested() && r.Owner != "" && s.FindResource(r.Owner) == nil {
			errors = append(errors, &ValidationError{
				Code:    "missing_owner",
				Message: "nested record " + r.Name + " is owned by unknown resource " + r.Owner,
			})
		}
	}

	for _, e := range s.Enums {
		if len(e.Values) == 0 {
			errors = append(errors, &ValidationError{
				Code:    "empty_enum",
				Message: "enum " + e.Name + " has no values",
			})
		}
		seen := make(map[string]bool)
		for _, v := range e.Values {
			if seen[v] {
				errors = append(errors, &ValidationError{
					Code:    "duplicate_enum_value",
					Message: "enum " + e.Name + " lists " + strconv.Quote(v) + " twice",
				})
			}
			seen[v] = true
		}
	}

	for _, u := range s.Unions {
		if u.Discriminator == "" {
			errors = append(errors, &ValidationError{
				Code:    "missing_discriminator",
				Message: "union " + u.Name + " has no discriminator",
			})
		}
		if len(u.Variants) == 0 {
			errors = append(errors, &ValidationError{
				Code:    "empty_union",
				Message: "union " + u.Name + " has no variants",
			})
		}
		tags := make(map[string]bool)
		for _, v := range u.Variants {
			if tags[v.Tag] {
				errors = append(errors, &ValidationError{
					Code:    "duplicate_variant",
					Message: "union " + u.Name + " has two variants tagged " + strconv.Quote(v.Tag),
				})
			}
			tags[v.Tag] = true
			if r := s.FindResource(v.Resource); r == nil || r.Nested() {
				errors = append(errors, &ValidationError{
					Code:    "missing_variant_resource",
					Message: "union " + u.Name + " variant " + strconv.Quote(v.Tag) + " references unknown resource: " + v.Resource,
				})
			}
		}
	}

	for _, id := range s.IDs {
		if s.FindResource(id.Resource) == nil {
			errors = append(errors, &ValidationError{
				Code:    "missing_id_resource",
				Message: "typed id references unknown resource: " + id.Resource,
			})
		}
	}

	opNames := make(map[string]bool)
	for _, o := range s.Operations {
		ctx := "operation " + o.ID
		if opNames[o.Name] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_operation",
				Message: "duplicate operation name: " + o.Name,
			})
		}
		opNames[o.Name] = true

		switch o.Method {
		case "GET", "POST", "DELETE":
		default:
			errors = append(errors, &ValidationError{
				Code:    "invalid_method",
				Message: ctx + " has unsupported method " + o.Method,
			})
		}
		if !strings.HasPrefix(o.Path, "/") {
			errors = append(errors, &ValidationError{
				Code:    "invalid_path",
				Message: ctx + " path must start with /: " + o.Path,
			})
		}
		placeholders := o.Placeholders()
		if len(placeholders) != len(o.PathParams) {
			errors = append(errors, &ValidationError{
				Code:    "path_param_mismatch",
				Message: ctx + " path has " + strconv.Itoa(len(placeholders)) + " placeholders but " + strconv.Itoa(len(o.PathParams)) + " path params",
			})
		} else {
			for i, p := range o.PathParams {
				if placeholders[i] != p.Name {
					errors = append(errors, &ValidationError{
						Code:    "path_param_mismatch",
						Message: ctx + " path param " + strconv.Itoa(i) + " is " + p.Name + ", path names " + placeholders[i],
					})
				}
			}
		}
		if o.Shape == OutputList && o.Method != "GET" {
			errors = append(errors, &ValidationError{
				Code:    "invalid_list",
				Message: ctx + " returns a list but is not a GET",
			})
		}
		if s.FindResource(o.Output) == nil && s.FindUnion(o.Output) == nil {
			errors = append(errors, &ValidationError{
				Code:    "missing_output",
				Message: ctx + " returns unknown type: " + o.Output,
			})
		}
		for _, p := range append(slices.Clone(o.PathParams), o.Params...) {
			errors = append(errors, s.validateExpr(p.Type, names, ctx+" param "+p.Name)...)
		}
	}

	// Convert ValidationErrors to regular errors
	var result []error
	for _, e := range errors {
		result = append(result, e)
	}
	return result
}

// validateExpr checks that every name an expression refers to is declared,
// and that expansions point at resources or unions.
func (s *Schema) validateExpr(e TypeExpr, names map[string]string, context string) []*ValidationError {
	var errors []*ValidationError
	switch d := e.(type) {
	case nil:
		errors = append(errors, &ValidationError{
			Code:    "missing_type",
			Message: context + " has no type",
		})
	case *RefExpr:
		if _, ok := names[d.Target]; !ok {
			errors = append(errors, &ValidationError{
				Code:    "missing_type_reference",
				Message: context + " references unknown type: " + d.Target,
			})
		}
	case *ExpandableExpr:
		kind, ok := names[d.Target]
		if !ok {
			errors = append(errors, &ValidationError{
				Code:    "missing_type_reference",
				Message: context + " expands to unknown type: " + d.Target,
			})
		} else if kind == "enum" {
			errors = append(errors, &ValidationError{
				Code:    "invalid_expandable",
				Message: context + " expands to enum " + d.Target,
			})
		}
	case *IDExpr:
		if !s.HasID(d.Resource) {
			errors = append(errors, &ValidationError{
				Code:    "missing_id",
				Message: context + " uses the id of " + d.Resource + ", which has no typed id",
			})
		}
	case *ArrayExpr:
		errors = append(errors, s.validateExpr(d.Element, names, context)...)
	case *MapExpr:
		errors = append(errors, s.validateExpr(d.Value, names, context)...)
	}
	return errors
}

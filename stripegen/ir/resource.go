package ir

// ResourceDescriptor describes a record type: either a top-level resource
// carrying an object tag, or a nested record owned by one.
type ResourceDescriptor struct {
	// Name is the wire name, e.g. "payment_intent" or "payment_method_card".
	Name string

	// Tag is the value of the "object" field for top-level resources.
	// Empty for nested records.
	Tag string

	// Fields in emission order: "id" and "object" first, the rest sorted.
	Fields []FieldDescriptor

	// Owner is the resource a nested record was first reached from.
	// Empty for top-level resources.
	Owner string

	Documentation Documentation
	Source        Source
}

// Nested reports whether the record has no object tag of its own.
func (r *ResourceDescriptor) Nested() bool { return r.Tag == "" }

// Field returns the named field, or nil.
func (r *ResourceDescriptor) Field(name string) *FieldDescriptor {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}

// HasID reports whether the resource carries a typed id field.
func (r *ResourceDescriptor) HasID() bool {
	f := r.Field("id")
	if f == nil {
		return false
	}
	_, ok := f.Type.(*IDExpr)
	return ok
}

// ExpandableFields returns the fields that may be expanded, keyed by field
// name, with the target each expands to.
func (r *ResourceDescriptor) ExpandableFields() map[string]string {
	out := make(map[string]string)
	for _, f := range r.Fields {
		if e, ok := f.Type.(*ExpandableExpr); ok {
			out[f.Name] = e.Target
		}
	}
	return out
}

// FieldDescriptor describes one field of a record.
type FieldDescriptor struct {
	// Name is the JSON key.
	Name string

	Type TypeExpr

	// Required fields must be present on decode.
	Required bool

	// Nullable fields may be JSON null.
	Nullable bool

	Documentation Documentation
}

// Expandable reports whether the field is an id-or-object field.
func (f *FieldDescriptor) Expandable() bool {
	_, ok := f.Type.(*ExpandableExpr)
	return ok
}

// IDDescriptor describes a typed identifier.
type IDDescriptor struct {
	// Resource is the wire name of the resource the id identifies.
	Resource string
}

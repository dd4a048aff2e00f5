package ir

import "strings"

// OutputShape describes how an operation's response wraps its output type.
type OutputShape int

const (
	OutputSingle  OutputShape = iota // the object itself
	OutputList                       // a list envelope of the object
	OutputDeleted                    // the object or its deleted stub
)

// String returns the shape name.
func (s OutputShape) String() string {
	switch s {
	case OutputSingle:
		return "single"
	case OutputList:
		return "list"
	case OutputDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ParamLocation is where a parameter travels.
type ParamLocation int

const (
	InPath ParamLocation = iota
	InQuery
	InBody
)

// OperationDescriptor describes one vendor operation.
type OperationDescriptor struct {
	// ID is the vendor operation id, e.g. "GetCustomersCustomer".
	ID string

	// Name is the builder name, e.g. "RetrieveCustomer".
	Name string

	// Method is the HTTP method.
	Method string

	// Path is the path template with {name} placeholders.
	Path string

	// PathParams in template order.
	PathParams []ParamDescriptor

	// Params are the query or body parameters, sorted by name.
	Params []ParamDescriptor

	// Output is the wire name of the returned resource or union. For list
	// operations it names the element.
	Output string

	Shape OutputShape

	Documentation Documentation
	Source        Source
}

// Format returns Path with each {name} placeholder replaced by %s.
func (o *OperationDescriptor) Format() string {
	var b strings.Builder
	rest := o.Path
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:i])
		b.WriteString("%s")
		rest = rest[i+j+1:]
	}
}

// Placeholders returns the placeholder names in Path, in order.
func (o *OperationDescriptor) Placeholders() []string {
	var names []string
	rest := o.Path
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			return names
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			return names
		}
		names = append(names, rest[i+1:i+j])
		rest = rest[i+j+1:]
	}
}

// Param returns the named query or body parameter, or nil.
func (o *OperationDescriptor) Param(name string) *ParamDescriptor {
	for i := range o.Params {
		if o.Params[i].Name == name {
			return &o.Params[i]
		}
	}
	return nil
}

// RequiredParams returns the required query or body parameters.
func (o *OperationDescriptor) RequiredParams() []ParamDescriptor {
	var out []ParamDescriptor
	for _, p := range o.Params {
		if p.Required {
			out = append(out, p)
		}
	}
	return out
}

// Mutating reports whether the operation accepts an idempotency key.
func (o *OperationDescriptor) Mutating() bool {
	return o.Method == "POST"
}

// ParamDescriptor describes a request parameter.
type ParamDescriptor struct {
	// Name is the wire key.
	Name string

	In ParamLocation

	Type TypeExpr

	Required bool

	// Constraints are validator rules derived from the schema, without the
	// omitnil/omitempty/required prefix, e.g. ["min=1", "max=100"].
	Constraints []string

	Documentation Documentation
}

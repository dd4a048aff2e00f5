package golang

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/broady/stripe/stripegen/ir"
)

// GoName converts a wire name to an exported Go identifier. A trailing "Id"
// is spelled "ID".
func GoName(wire string) string {
	name := strcase.ToCamel(wire)
	if s, ok := strings.CutSuffix(name, "Id"); ok {
		return s + "ID"
	}
	return name
}

// argName converts a wire name to a parameter name.
func argName(wire string) string {
	name := GoName(wire)
	if name == "ID" {
		return "id"
	}
	return lowerFirst(name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func idType(resource string) string {
	return GoName(resource) + "ID"
}

// typeName returns the Go type that holds a named IR element: the record
// for resources, the enum type for enums, and the OneOf field type for
// unions.
func (e *Emitter) typeName(name string) string {
	if e.schema.FindUnion(name) != nil {
		return "Any" + GoName(name)
	}
	return GoName(name)
}

// tagOf returns the type tag the runtime uses for name.
func (e *Emitter) tagOf(name string) string {
	if r := e.schema.FindResource(name); r != nil && r.Tag != "" {
		return r.Tag
	}
	return name
}

// fieldType returns the Go type of a response field.
func (e *Emitter) fieldType(f ir.FieldDescriptor) string {
	t := e.exprType(f.Type)
	switch f.Type.(type) {
	case *ir.PrimitiveExpr, *ir.RefExpr:
		if f.Nullable {
			return "*" + t
		}
	}
	return t
}

// exprType returns the Go type of an expression without nullability.
func (e *Emitter) exprType(expr ir.TypeExpr) string {
	switch d := expr.(type) {
	case *ir.PrimitiveExpr:
		switch d.Primitive {
		case ir.PrimitiveInt:
			return "int64"
		case ir.PrimitiveFloat:
			return "float64"
		case ir.PrimitiveBool:
			return "bool"
		default:
			return "string"
		}
	case *ir.IDExpr:
		return idType(d.Resource)
	case *ir.RefExpr:
		return e.typeName(d.Target)
	case *ir.ExpandableExpr:
		return "wire.Expandable[" + e.typeName(d.Target) + "]"
	case *ir.ArrayExpr:
		return "[]" + e.exprType(d.Element)
	case *ir.MapExpr:
		return "map[string]" + e.exprType(d.Value)
	case *ir.RangeExpr:
		return "*wire.RangeQuery"
	}
	return "any"
}

// paramKind tells how a parameter is held in the params record.
type paramKind int

const (
	// paramValue fields are pointers when optional.
	paramValue paramKind = iota
	// paramDirect holds slices, maps and range queries as-is.
	paramDirect
)

func kindOf(expr ir.TypeExpr) paramKind {
	switch expr.(type) {
	case *ir.ArrayExpr, *ir.MapExpr, *ir.RangeExpr:
		return paramDirect
	}
	return paramValue
}

// paramField returns the Go type of a parameter in the params record.
func (e *Emitter) paramField(p ir.ParamDescriptor) string {
	t := e.exprType(p.Type)
	if !p.Required && kindOf(p.Type) == paramValue {
		return "*" + t
	}
	return t
}

// validateTag builds the validator rule for a parameter.
func validateTag(p ir.ParamDescriptor, extra ...string) string {
	rules := append(append([]string(nil), p.Constraints...), extra...)
	if p.Required {
		if len(p.Constraints) == 0 {
			rules = append([]string{"required"}, extra...)
		}
		return strings.Join(rules, ",")
	}
	if len(p.Constraints) == 0 {
		return strings.Join(extra, ",")
	}
	prefix := "omitnil"
	if kindOf(p.Type) == paramDirect {
		prefix = "omitempty"
	}
	return prefix + "," + strings.Join(rules, ",")
}

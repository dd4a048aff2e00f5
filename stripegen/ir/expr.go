package ir

// ExprKind identifies the category of a type expression.
type ExprKind int

const (
	KindPrimitive  ExprKind = iota // string, integer, number, boolean
	KindArray                      // ordered collection
	KindMap                        // string-keyed map
	KindReference                  // resource, nested record, enum or union
	KindID                         // typed id of a resource
	KindExpandable                 // id-or-object field
	KindRange                      // numeric range filter (gt/gte/lt/lte)
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindReference:
		return "Reference"
	case KindID:
		return "ID"
	case KindExpandable:
		return "Expandable"
	case KindRange:
		return "Range"
	default:
		return "Unknown"
	}
}

// TypeExpr is a type expression used by fields and parameters.
// Implementations are sealed to this package.
type TypeExpr interface {
	Kind() ExprKind
	sealed()
}

type exprBase struct{}

func (exprBase) sealed() {}

// PrimitiveKind identifies a primitive wire type.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveInt
	PrimitiveFloat
	PrimitiveBool
)

// String returns the OpenAPI name of the primitive.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveString:
		return "string"
	case PrimitiveInt:
		return "integer"
	case PrimitiveFloat:
		return "number"
	case PrimitiveBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// PrimitiveExpr is a primitive wire value.
type PrimitiveExpr struct {
	exprBase
	Primitive PrimitiveKind
}

// Kind returns KindPrimitive.
func (*PrimitiveExpr) Kind() ExprKind { return KindPrimitive }

// Primitive returns a PrimitiveExpr of the given kind.
func Primitive(k PrimitiveKind) *PrimitiveExpr {
	return &PrimitiveExpr{Primitive: k}
}

// ArrayExpr is an ordered collection.
type ArrayExpr struct {
	exprBase
	Element TypeExpr
}

// Kind returns KindArray.
func (*ArrayExpr) Kind() ExprKind { return KindArray }

// Array returns an ArrayExpr of elem.
func Array(elem TypeExpr) *ArrayExpr {
	return &ArrayExpr{Element: elem}
}

// MapExpr is a map with string keys, such as metadata.
type MapExpr struct {
	exprBase
	Value TypeExpr
}

// Kind returns KindMap.
func (*MapExpr) Kind() ExprKind { return KindMap }

// Map returns a MapExpr of value.
func Map(value TypeExpr) *MapExpr {
	return &MapExpr{Value: value}
}

// RefExpr refers to a named resource, nested record, enum or union by its
// wire name.
type RefExpr struct {
	exprBase
	Target string
}

// Kind returns KindReference.
func (*RefExpr) Kind() ExprKind { return KindReference }

// Ref returns a RefExpr to target.
func Ref(target string) *RefExpr {
	return &RefExpr{Target: target}
}

// IDExpr is the typed id of a resource.
type IDExpr struct {
	exprBase
	Resource string
}

// Kind returns KindID.
func (*IDExpr) Kind() ExprKind { return KindID }

// ID returns an IDExpr for resource.
func ID(resource string) *IDExpr {
	return &IDExpr{Resource: resource}
}

// ExpandableExpr is a field that holds either the id of Target or, when
// expanded, the full object. Target names a resource or a union.
type ExpandableExpr struct {
	exprBase
	Target string
}

// Kind returns KindExpandable.
func (*ExpandableExpr) Kind() ExprKind { return KindExpandable }

// Expandable returns an ExpandableExpr to target.
func Expandable(target string) *ExpandableExpr {
	return &ExpandableExpr{Target: target}
}

// RangeExpr is a numeric range filter encoded as key[gt]=..&key[lte]=...
type RangeExpr struct {
	exprBase
}

// Kind returns KindRange.
func (*RangeExpr) Kind() ExprKind { return KindRange }

// Range returns a RangeExpr.
func Range() *RangeExpr {
	return &RangeExpr{}
}

// References returns the named targets an expression depends on, outermost
// first.
func References(e TypeExpr) []string {
	switch d := e.(type) {
	case *RefExpr:
		return []string{d.Target}
	case *ExpandableExpr:
		return []string{d.Target}
	case *ArrayExpr:
		return References(d.Element)
	case *MapExpr:
		return References(d.Value)
	}
	return nil
}

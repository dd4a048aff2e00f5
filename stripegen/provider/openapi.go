// Package provider builds the stripegen intermediate representation from a
// vendor OpenAPI description.
package provider

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/broady/stripe/stripegen/ir"
)

// Vendor extensions read by the provider.
const (
	extResourceID       = "x-resourceId"
	extExpandableFields = "x-expandableFields"
	extExpansion        = "x-expansionResources"
	extBypassValidation = "x-stripeBypassValidation"
)

// OpenAPIProvider builds a Schema from an OpenAPI 3 document.
type OpenAPIProvider struct{}

// OpenAPIInputOptions configures OpenAPI loading.
type OpenAPIInputOptions struct {
	// Path is the document to load. Ignored when Data is set.
	Path string

	// Data is the raw document.
	Data []byte

	// Names overrides derived builder names, keyed by operation id.
	Names map[string]string

	// Strict runs the OpenAPI validator over the document before building.
	Strict bool
}

// BuildSchema loads the document and converts it. Elements the provider
// cannot represent are skipped and reported as schema warnings.
func (p *OpenAPIProvider) BuildSchema(ctx context.Context, opts OpenAPIInputOptions) (*ir.Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	var doc *openapi3.T
	var err error
	switch {
	case opts.Data != nil:
		doc, err = loader.LoadFromData(opts.Data)
	case opts.Path != "":
		doc, err = loader.LoadFromFile(opts.Path)
	default:
		return nil, fmt.Errorf("no OpenAPI document specified")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if opts.Strict {
		if err := doc.Validate(ctx); err != nil {
			return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
		}
	}
	if doc.Info == nil {
		return nil, fmt.Errorf("OpenAPI document has no info section")
	}

	b := &schemaBuilder{
		doc:    doc,
		names:  opts.Names,
		schema: &ir.Schema{APIVersion: doc.Info.Version},
		kinds:  make(map[string]schemaKind),
		enums:  make(map[string]*ir.EnumDescriptor),
	}
	if doc.Components != nil {
		b.components = doc.Components.Schemas
	}
	b.classify()
	b.buildResources()
	b.buildUnions()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.buildOperations()
	b.finish()
	return b.schema, nil
}

type schemaKind int

const (
	kindNone schemaKind = iota
	kindResource
	kindUnion
	kindNested
)

type schemaBuilder struct {
	doc        *openapi3.T
	components openapi3.Schemas
	names      map[string]string
	schema     *ir.Schema

	// kinds classifies component schemas by name.
	kinds map[string]schemaKind
	enums map[string]*ir.EnumDescriptor
}

// classify sorts component schemas into resources and unions. Deleted
// stubs are never emitted; the runtime decodes them generically.
func (b *schemaBuilder) classify() {
	for _, name := range sortedKeys(b.components) {
		ref := b.components[name]
		if ref == nil || ref.Value == nil || strings.HasPrefix(name, "deleted_") {
			continue
		}
		s := ref.Value
		if _, ok := extension[string](s.Extensions, extResourceID); !ok {
			continue
		}
		switch {
		case len(s.AnyOf) > 0 && allRefs(s.AnyOf):
			b.kinds[name] = kindUnion
		case len(s.Properties) > 0:
			b.kinds[name] = kindResource
		}
	}
}

func (b *schemaBuilder) buildResources() {
	for _, name := range sortedKeys(b.kinds) {
		if b.kinds[name] != kindResource {
			continue
		}
		s := b.components[name].Value
		tag, _ := extension[string](s.Extensions, extResourceID)
		if _, ok := s.Properties["id"]; ok {
			b.schema.IDs = append(b.schema.IDs, ir.IDDescriptor{Resource: name})
		}
		r := &ir.ResourceDescriptor{
			Name:          name,
			Tag:           tag,
			Documentation: ir.Doc(s.Description),
			Source:        ir.Source{Pointer: "#/components/schemas/" + name},
		}
		b.schema.Resources = append(b.schema.Resources, r)
		b.buildFields(r, s)

		expandable, _ := extension[[]string](s.Extensions, extExpandableFields)
		for _, field := range expandable {
			if f := r.Field(field); f == nil || !f.Expandable() {
				b.schema.AddWarning(ir.Warning{
					Code:    ir.WarnUnknownExpandField,
					Message: "field " + field + " is listed as expandable but is not an id-or-object field",
					Source:  &r.Source,
					Name:    name,
				})
			}
		}
	}
}

// buildFields converts the properties of s into r's fields: "id" and
// "object" first, the rest sorted.
func (b *schemaBuilder) buildFields(r *ir.ResourceDescriptor, s *openapi3.Schema) {
	props := sortedKeys(s.Properties)
	slices.SortStableFunc(props, func(a, c string) int {
		return cmp.Compare(fieldRank(a), fieldRank(c))
	})
	for _, prop := range props {
		ref := s.Properties[prop]
		if ref == nil || ref.Value == nil {
			continue
		}
		var typ ir.TypeExpr
		switch {
		case prop == "id" && !r.Nested():
			typ = ir.ID(r.Name)
		case prop == "object":
			typ = ir.Primitive(ir.PrimitiveString)
		default:
			typ = b.fieldType(r, prop, ref)
		}
		if typ == nil {
			b.schema.AddWarning(ir.Warning{
				Code:    ir.WarnUnsupportedSchema,
				Message: "skipping field " + r.Name + "." + prop + ": unsupported schema",
				Source:  &ir.Source{Pointer: r.Source.Pointer + "/properties/" + prop},
				Name:    r.Name,
			})
			continue
		}
		r.Fields = append(r.Fields, ir.FieldDescriptor{
			Name:          prop,
			Type:          typ,
			Required:      slices.Contains(s.Required, prop),
			Nullable:      ref.Value.Nullable,
			Documentation: ir.Doc(ref.Value.Description),
		})
	}
}

func fieldRank(name string) int {
	switch name {
	case "id":
		return 0
	case "object":
		return 1
	}
	return 2
}

// fieldType converts a response-position schema. It returns nil for
// schemas the IR cannot represent.
func (b *schemaBuilder) fieldType(owner *ir.ResourceDescriptor, field string, ref *openapi3.SchemaRef) ir.TypeExpr {
	if ref.Ref != "" {
		return b.refType(owner, refName(ref.Ref))
	}
	s := ref.Value
	if len(s.AnyOf) > 0 {
		return b.anyOfFieldType(owner, s)
	}
	switch {
	case len(s.Enum) > 0 && typeIs(s, openapi3.TypeString):
		name := cmp.Or(s.Title, owner.Name+"_"+field)
		bypass, _ := extension[bool](s.Extensions, extBypassValidation)
		b.addEnum(name, s, ir.IsOpen(bypass, true))
		return ir.Ref(name)
	case typeIs(s, openapi3.TypeString):
		return ir.Primitive(ir.PrimitiveString)
	case typeIs(s, openapi3.TypeInteger):
		return ir.Primitive(ir.PrimitiveInt)
	case typeIs(s, openapi3.TypeNumber):
		return ir.Primitive(ir.PrimitiveFloat)
	case typeIs(s, openapi3.TypeBoolean):
		return ir.Primitive(ir.PrimitiveBool)
	case typeIs(s, openapi3.TypeArray):
		if s.Items == nil {
			return nil
		}
		elem := b.fieldType(owner, field, s.Items)
		if elem == nil {
			return nil
		}
		return ir.Array(elem)
	case typeIs(s, openapi3.TypeObject) && s.AdditionalProperties.Schema != nil:
		value := b.fieldType(owner, field, s.AdditionalProperties.Schema)
		if value == nil {
			return nil
		}
		return ir.Map(value)
	case typeIs(s, openapi3.TypeObject) && len(s.Properties) > 0:
		name := cmp.Or(s.Title, owner.Name+"_"+field)
		if b.schema.FindResource(name) == nil {
			b.buildNested(name, rootOwner(b.schema, owner), s)
		}
		return ir.Ref(name)
	}
	return nil
}

// anyOfFieldType handles the two anyOf forms the vendor uses in responses:
// [string, $ref] for expandable fields, and [$ref] for nullable references.
func (b *schemaBuilder) anyOfFieldType(owner *ir.ResourceDescriptor, s *openapi3.Schema) ir.TypeExpr {
	var target string
	var hasString bool
	for _, alt := range s.AnyOf {
		switch {
		case alt.Ref != "":
			if target != "" {
				return nil
			}
			target = refName(alt.Ref)
		case alt.Value != nil && typeIs(alt.Value, openapi3.TypeString):
			hasString = true
		default:
			return nil
		}
	}
	if target == "" {
		return nil
	}
	_, expansion := s.Extensions[extExpansion]
	if hasString || expansion {
		if b.refType(owner, target) == nil {
			return nil
		}
		return ir.Expandable(target)
	}
	return b.refType(owner, target)
}

// refType resolves a $ref to a resource, union or nested record, building
// nested records on first use.
func (b *schemaBuilder) refType(owner *ir.ResourceDescriptor, name string) ir.TypeExpr {
	switch b.kinds[name] {
	case kindResource, kindUnion, kindNested:
		return ir.Ref(name)
	}
	ref, ok := b.components[name]
	if !ok || ref.Value == nil || len(ref.Value.Properties) == 0 {
		return nil
	}
	b.buildNested(name, rootOwner(b.schema, owner), ref.Value)
	return ir.Ref(name)
}

func (b *schemaBuilder) buildNested(name, owner string, s *openapi3.Schema) {
	b.kinds[name] = kindNested
	r := &ir.ResourceDescriptor{
		Name:          name,
		Owner:         owner,
		Documentation: ir.Doc(s.Description),
		Source:        ir.Source{Pointer: "#/components/schemas/" + name},
	}
	b.schema.Resources = append(b.schema.Resources, r)
	b.buildFields(r, s)
}

// rootOwner walks nested records up to the resource that owns them.
func rootOwner(s *ir.Schema, r *ir.ResourceDescriptor) string {
	for r.Nested() && r.Owner != "" {
		parent := s.FindResource(r.Owner)
		if parent == nil {
			break
		}
		r = parent
	}
	return r.Name
}

func (b *schemaBuilder) buildUnions() {
	for _, name := range sortedKeys(b.kinds) {
		if b.kinds[name] != kindUnion {
			continue
		}
		s := b.components[name].Value
		u := &ir.UnionDescriptor{
			Name:          name,
			Discriminator: "object",
			Documentation: ir.Doc(s.Description),
			Source:        ir.Source{Pointer: "#/components/schemas/" + name},
		}
		for _, alt := range s.AnyOf {
			variant := refName(alt.Ref)
			if b.kinds[variant] != kindResource {
				b.schema.AddWarning(ir.Warning{
					Code:    ir.WarnUnsupportedSchema,
					Message: "union " + name + " variant " + variant + " is not a resource",
					Source:  &u.Source,
					Name:    name,
				})
				continue
			}
			tag, _ := extension[string](b.components[variant].Value.Extensions, extResourceID)
			u.Variants = append(u.Variants, ir.UnionVariant{Tag: tag, Resource: variant})
		}
		slices.SortFunc(u.Variants, func(a, c ir.UnionVariant) int { return cmp.Compare(a.Tag, c.Tag) })
		b.schema.Unions = append(b.schema.Unions, u)
	}
}

// addEnum registers an enum, merging with an earlier one of the same name.
func (b *schemaBuilder) addEnum(name string, s *openapi3.Schema, open bool) {
	e := &ir.EnumDescriptor{
		Name:          name,
		Open:          open,
		Documentation: ir.Doc(s.Description),
	}
	for _, v := range s.Enum {
		if str, ok := v.(string); ok && !slices.Contains(e.Values, str) {
			e.Values = append(e.Values, str)
		}
	}
	slices.Sort(e.Values)

	prev, ok := b.enums[name]
	if !ok {
		b.enums[name] = e
		return
	}
	if !slices.Equal(prev.Values, e.Values) {
		b.schema.AddWarning(ir.Warning{
			Code:    ir.WarnEnumMerged,
			Message: "enum " + name + " is declared with different values; merging",
			Name:    name,
		})
	}
	prev.Merge(e)
}

// finish sorts everything emitted for deterministic output.
func (b *schemaBuilder) finish() {
	for _, name := range sortedKeys(b.enums) {
		b.schema.Enums = append(b.schema.Enums, b.enums[name])
	}
	slices.SortFunc(b.schema.Resources, func(a, c *ir.ResourceDescriptor) int { return cmp.Compare(a.Name, c.Name) })
	slices.SortFunc(b.schema.IDs, func(a, c ir.IDDescriptor) int { return cmp.Compare(a.Resource, c.Resource) })
	slices.SortFunc(b.schema.Operations, func(a, c *ir.OperationDescriptor) int { return cmp.Compare(a.Name, c.Name) })
}

func allRefs(refs openapi3.SchemaRefs) bool {
	for _, r := range refs {
		if r.Ref == "" {
			return false
		}
	}
	return true
}

func refName(ref string) string {
	return ref[strings.LastIndexByte(ref, '/')+1:]
}

func typeIs(s *openapi3.Schema, typ string) bool {
	return s.Type != nil && s.Type.Is(typ)
}

// extension decodes a vendor extension. Extension values are kept in
// whatever form the loader produced, so they are round-tripped through JSON.
func extension[T any](ext map[string]any, key string) (T, bool) {
	var v T
	raw, ok := ext[key]
	if !ok {
		return v, false
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false
	}
	return v, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

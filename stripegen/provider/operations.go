package provider

import (
	"cmp"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/broady/stripe/stripegen/ir"
)

const formContentType = "application/x-www-form-urlencoded"

// defaultMaxLength is the vendor's blanket cap on string parameters. It is
// not turned into a validation rule.
const defaultMaxLength = 5000

func (b *schemaBuilder) buildOperations() {
	if b.doc.Paths == nil {
		return
	}
	paths := b.doc.Paths.Map()
	for _, path := range sortedKeys(paths) {
		item := paths[path]
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			src := ir.Source{Pointer: "#/paths/" + escapePointer(path) + "/" + strings.ToLower(method)}
			o, err := b.buildOperation(method, path, item, op)
			if err != nil {
				b.schema.AddWarning(ir.Warning{
					Code:    ir.WarnOperationSkipped,
					Message: fmt.Sprintf("skipping %s %s: %v", method, path, err),
					Source:  &src,
					Name:    op.OperationID,
				})
				continue
			}
			o.Source = src
			b.schema.Operations = append(b.schema.Operations, o)
		}
	}
}

func (b *schemaBuilder) buildOperation(method, path string, item *openapi3.PathItem, op *openapi3.Operation) (*ir.OperationDescriptor, error) {
	if op.OperationID == "" {
		return nil, fmt.Errorf("no operationId")
	}
	output, shape, err := b.output(op)
	if err != nil {
		return nil, err
	}
	o := &ir.OperationDescriptor{
		ID:            op.OperationID,
		Method:        method,
		Path:          path,
		Output:        output,
		Shape:         shape,
		Documentation: ir.Doc(cmp.Or(op.Description, op.Summary)),
	}

	params := slices.Concat(item.Parameters, op.Parameters)
	for _, name := range o.Placeholders() {
		p := findParam(params, "path", name)
		if p == nil {
			return nil, fmt.Errorf("path placeholder {%s} has no parameter", name)
		}
		o.PathParams = append(o.PathParams, ir.ParamDescriptor{
			Name:          name,
			In:            ir.InPath,
			Type:          b.pathParamType(path, name, output),
			Required:      true,
			Documentation: ir.Doc(p.Description),
		})
	}

	if method == http.MethodGet {
		for _, ref := range params {
			if ref.Value == nil || ref.Value.In != "query" || ref.Value.Name == "expand" || ref.Value.Schema == nil {
				continue
			}
			p := ref.Value
			pd, ok := b.param(o, p.Name, ir.InQuery, p.Schema, p.Required)
			if !ok {
				b.unsupportedParam(o, p.Name)
				continue
			}
			pd.Documentation = ir.Doc(p.Description)
			o.Params = append(o.Params, pd)
		}
	} else if body := formBody(op); body != nil {
		for _, name := range sortedKeys(body.Properties) {
			if name == "expand" {
				continue
			}
			pd, ok := b.param(o, name, ir.InBody, body.Properties[name], slices.Contains(body.Required, name))
			if !ok {
				b.unsupportedParam(o, name)
				continue
			}
			o.Params = append(o.Params, pd)
		}
	} else if op.RequestBody != nil && op.RequestBody.Value != nil && len(op.RequestBody.Value.Content) > 0 {
		b.schema.AddWarning(ir.Warning{
			Code:    ir.WarnUnsupportedBody,
			Message: op.OperationID + " has no form-encoded request body",
			Name:    op.OperationID,
		})
	}
	slices.SortFunc(o.Params, func(a, c ir.ParamDescriptor) int { return cmp.Compare(a.Name, c.Name) })

	o.Name = b.names[op.OperationID]
	if o.Name == "" {
		o.Name = builderName(method, path, shape)
	}
	return o, nil
}

func (b *schemaBuilder) unsupportedParam(o *ir.OperationDescriptor, name string) {
	b.schema.AddWarning(ir.Warning{
		Code:    ir.WarnUnsupportedSchema,
		Message: "skipping parameter " + name + " of " + o.ID + ": unsupported schema",
		Name:    o.ID,
	})
}

// output classifies the 200 response: a resource or union, a list envelope
// of one, or a resource alongside its deleted stub.
func (b *schemaBuilder) output(op *openapi3.Operation) (string, ir.OutputShape, error) {
	if op.Responses == nil {
		return "", 0, fmt.Errorf("no responses")
	}
	resp := op.Responses.Status(http.StatusOK)
	if resp == nil || resp.Value == nil {
		return "", 0, fmt.Errorf("no 200 response")
	}
	media := resp.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return "", 0, fmt.Errorf("no JSON response body")
	}
	ref := media.Schema

	if ref.Ref != "" {
		name := refName(ref.Ref)
		if live, ok := strings.CutPrefix(name, "deleted_"); ok {
			return b.known(live, ir.OutputDeleted)
		}
		return b.known(name, ir.OutputSingle)
	}
	s := ref.Value
	if len(s.AnyOf) > 0 && allRefs(s.AnyOf) {
		var live string
		var deleted bool
		for _, alt := range s.AnyOf {
			name := refName(alt.Ref)
			if strings.HasPrefix(name, "deleted_") {
				deleted = true
				continue
			}
			if live != "" {
				return "", 0, fmt.Errorf("response is an unnamed union")
			}
			live = name
		}
		if deleted && live != "" {
			return b.known(live, ir.OutputDeleted)
		}
	}
	if data, ok := s.Properties["data"]; ok && data.Value != nil && data.Value.Items != nil && data.Value.Items.Ref != "" {
		return b.known(refName(data.Value.Items.Ref), ir.OutputList)
	}
	b.schema.AddWarning(ir.Warning{
		Code:    ir.WarnUnsupportedOutput,
		Message: op.OperationID + " returns a schema that is neither a resource nor a list",
		Name:    op.OperationID,
	})
	return "", 0, fmt.Errorf("unsupported response shape")
}

func (b *schemaBuilder) known(name string, shape ir.OutputShape) (string, ir.OutputShape, error) {
	switch b.kinds[name] {
	case kindResource, kindUnion:
		return name, shape, nil
	}
	return "", 0, fmt.Errorf("response type %s is not a resource", name)
}

// param converts a query or body parameter.
func (b *schemaBuilder) param(o *ir.OperationDescriptor, name string, in ir.ParamLocation, ref *openapi3.SchemaRef, required bool) (ir.ParamDescriptor, bool) {
	typ, constraints := b.paramType(o, name, ref)
	if typ == nil {
		return ir.ParamDescriptor{}, false
	}
	return ir.ParamDescriptor{
		Name:        name,
		In:          in,
		Type:        typ,
		Required:    required,
		Constraints: constraints,
	}, true
}

func (b *schemaBuilder) paramType(o *ir.OperationDescriptor, name string, ref *openapi3.SchemaRef) (ir.TypeExpr, []string) {
	if ref == nil || ref.Value == nil {
		return nil, nil
	}
	s := ref.Value
	if len(s.AnyOf) > 0 {
		return anyOfParamType(s), nil
	}
	switch {
	case len(s.Enum) > 0 && typeIs(s, openapi3.TypeString):
		enum := cmp.Or(s.Title, o.Output+"_"+name)
		bypass, _ := extension[bool](s.Extensions, extBypassValidation)
		b.addEnum(enum, s, ir.IsOpen(bypass, false))
		return ir.Ref(enum), nil
	case typeIs(s, openapi3.TypeString):
		var c []string
		switch {
		case s.MaxLength != nil && s.MinLength > 0 && s.MinLength == *s.MaxLength:
			c = append(c, fmt.Sprintf("len=%d", s.MinLength))
		case s.MaxLength != nil && *s.MaxLength < defaultMaxLength:
			c = append(c, fmt.Sprintf("max=%d", *s.MaxLength))
		}
		if s.Format == "email" {
			c = append(c, "email")
		}
		if b.isTypedID(name) {
			return ir.ID(name), c
		}
		return ir.Primitive(ir.PrimitiveString), c
	case typeIs(s, openapi3.TypeInteger), typeIs(s, openapi3.TypeNumber):
		var c []string
		if s.Min != nil {
			c = append(c, "min="+strconv.FormatFloat(*s.Min, 'f', -1, 64))
		}
		if s.Max != nil {
			c = append(c, "max="+strconv.FormatFloat(*s.Max, 'f', -1, 64))
		}
		if typeIs(s, openapi3.TypeNumber) {
			return ir.Primitive(ir.PrimitiveFloat), c
		}
		return ir.Primitive(ir.PrimitiveInt), c
	case typeIs(s, openapi3.TypeBoolean):
		return ir.Primitive(ir.PrimitiveBool), nil
	case typeIs(s, openapi3.TypeArray):
		elem, _ := b.paramType(o, name, s.Items)
		if elem == nil {
			return nil, nil
		}
		var c []string
		switch {
		case s.MaxItems != nil && s.MinItems > 0 && s.MinItems == *s.MaxItems:
			c = append(c, fmt.Sprintf("len=%d", s.MinItems))
		case s.MaxItems != nil:
			c = append(c, fmt.Sprintf("max=%d", *s.MaxItems))
		}
		return ir.Array(elem), c
	case typeIs(s, openapi3.TypeObject) && s.AdditionalProperties.Schema != nil:
		return ir.Map(ir.Primitive(ir.PrimitiveString)), nil
	}
	return nil, nil
}

// anyOfParamType recognizes range filters ({gt,gte,lt,lte} | integer) and
// clearable maps ({...} | ""). Anything else is unsupported.
func anyOfParamType(s *openapi3.Schema) ir.TypeExpr {
	for _, alt := range s.AnyOf {
		v := alt.Value
		if v == nil || !typeIs(v, openapi3.TypeObject) {
			continue
		}
		if _, ok := v.Properties["gte"]; ok {
			return ir.Range()
		}
		if v.AdditionalProperties.Schema != nil {
			return ir.Map(ir.Primitive(ir.PrimitiveString))
		}
	}
	return nil
}

// isTypedID reports whether a parameter named name carries the id of the
// resource of the same name.
func (b *schemaBuilder) isTypedID(name string) bool {
	return b.kinds[name] == kindResource && b.schema.HasID(name)
}

// pathParamType types a path parameter by the collection it follows: the
// {customer} in /v1/customers/{customer} is a customer id. The last
// parameter is only typed when the collection matches the operation's
// output, since sub-collections such as /sources hold mixed id kinds.
func (b *schemaBuilder) pathParamType(path, param, output string) ir.TypeExpr {
	segs := pathSegments(path)
	for i, seg := range segs {
		if seg != "{"+param+"}" || i == 0 || isParam(segs[i-1]) {
			continue
		}
		noun := singular(segs[i-1])
		last := !slices.ContainsFunc(segs[i+1:], isParam)
		if b.isTypedID(noun) && (!last || noun == output) {
			return ir.ID(noun)
		}
	}
	return ir.Primitive(ir.PrimitiveString)
}

func findParam(params openapi3.Parameters, in, name string) *openapi3.Parameter {
	for _, ref := range params {
		if ref.Value != nil && ref.Value.In == in && ref.Value.Name == name {
			return ref.Value
		}
	}
	return nil
}

func formBody(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get(formContentType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil
	}
	return media.Schema.Value
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}

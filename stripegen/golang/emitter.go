package golang

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/broady/stripe/stripegen/ir"
)

// Emitter renders Go source for an IR schema.
type Emitter struct {
	schema *ir.Schema
	config GeneratorConfig
}

// NewEmitter returns an Emitter for schema.
func NewEmitter(schema *ir.Schema, config GeneratorConfig) *Emitter {
	return &Emitter{schema: schema, config: config.withDefaults()}
}

// GeneratedFile is one rendered, gofmt-formatted file.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// group collects what goes into one resource file: the resource itself, the
// nested records it owns, or a union, plus the builders returning it.
type group struct {
	name     string
	resource *ir.ResourceDescriptor
	nested   []*ir.ResourceDescriptor
	union    *ir.UnionDescriptor
	ops      []*ir.OperationDescriptor
}

// Files renders every file of the package, sorted by path.
func (e *Emitter) Files() ([]GeneratedFile, error) {
	var files []GeneratedFile
	add := func(path string, body *bytes.Buffer) error {
		src, err := e.format(path, body.Bytes())
		if err != nil {
			return err
		}
		files = append(files, GeneratedFile{Path: path, Content: src})
		return nil
	}

	for _, g := range e.groups() {
		var buf bytes.Buffer
		e.emitGroup(&buf, g)
		if err := add(g.name+".go", &buf); err != nil {
			return nil, err
		}
	}
	if len(e.schema.Enums) > 0 {
		var buf bytes.Buffer
		for _, en := range e.schema.Enums {
			e.emitEnum(&buf, en)
		}
		if err := add("enums.go", &buf); err != nil {
			return nil, err
		}
	}
	if len(e.schema.IDs) > 0 {
		var buf bytes.Buffer
		for _, id := range e.schema.IDs {
			fmt.Fprintf(&buf, "// %s identifies a %s.\ntype %s string\n\n", idType(id.Resource), e.tagOf(id.Resource), idType(id.Resource))
		}
		if err := add("ids.go", &buf); err != nil {
			return nil, err
		}
	}
	var manifest, version bytes.Buffer
	e.emitManifest(&manifest)
	if err := add("manifest.go", &manifest); err != nil {
		return nil, err
	}
	e.emitVersion(&version)
	if err := add("version.go", &version); err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b GeneratedFile) int { return cmp.Compare(a.Path, b.Path) })
	return files, nil
}

func (e *Emitter) groups() []*group {
	byName := make(map[string]*group)
	get := func(name string) *group {
		g, ok := byName[name]
		if !ok {
			g = &group{name: name}
			byName[name] = g
		}
		return g
	}
	for _, r := range e.schema.Resources {
		if r.Nested() {
			g := get(r.Owner)
			g.nested = append(g.nested, r)
			continue
		}
		get(r.Name).resource = r
	}
	for _, u := range e.schema.Unions {
		get(u.Name).union = u
	}
	for _, o := range e.schema.Operations {
		g := get(o.Output)
		g.ops = append(g.ops, o)
	}

	out := make([]*group, 0, len(byName))
	for _, g := range byName {
		slices.SortFunc(g.nested, func(a, b *ir.ResourceDescriptor) int { return cmp.Compare(a.Name, b.Name) })
		slices.SortFunc(g.ops, func(a, b *ir.OperationDescriptor) int {
			return cmp.Or(cmp.Compare(rank(a.Name), rank(b.Name)), cmp.Compare(a.Name, b.Name))
		})
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b *group) int { return cmp.Compare(a.name, b.name) })
	return out
}

var verbOrder = []string{"Create", "Retrieve", "Update", "Delete", "List"}

// rank orders builders within a file: the CRUD verbs first, then actions.
func rank(name string) int {
	for i, verb := range verbOrder {
		if strings.HasPrefix(name, verb) {
			return i
		}
	}
	return len(verbOrder)
}

func (e *Emitter) emitGroup(buf *bytes.Buffer, g *group) {
	if g.resource != nil {
		e.emitRecord(buf, g.resource)
	}
	for _, r := range g.nested {
		e.emitRecord(buf, r)
	}
	if g.union != nil {
		e.emitUnion(buf, g.union)
	}
	for _, o := range g.ops {
		e.emitBuilder(buf, o)
	}
}

func (e *Emitter) emitRecord(buf *bytes.Buffer, r *ir.ResourceDescriptor) {
	name := GoName(r.Name)
	fallback := name + " is a " + r.Tag + " object."
	if r.Nested() {
		fallback = name + " is part of " + GoName(r.Owner) + "."
	}
	writeDoc(buf, name, r.Documentation, fallback)
	fmt.Fprintf(buf, "type %s struct {\n", name)
	for _, f := range r.Fields {
		tag := fmt.Sprintf(`json:"%s"`, f.Name)
		if f.Required {
			tag += ` required:"true"`
		}
		fmt.Fprintf(buf, "\t%s %s `%s`\n", GoName(f.Name), e.fieldType(f), tag)
	}
	buf.WriteString("}\n\n")
}

func (e *Emitter) emitUnion(buf *bytes.Buffer, u *ir.UnionDescriptor) {
	name := GoName(u.Name)
	unionVar := lowerFirst(name) + "Union"
	variants := name + "Variants"

	writeDoc(buf, name, u.Documentation, name+" is one of several resources.")
	fmt.Fprintf(buf, "// The variant is chosen by the %q field.\n", u.Discriminator)
	fmt.Fprintf(buf, "type %s interface {\n\tis%s()\n}\n\n", name, name)
	for _, v := range u.Variants {
		fmt.Fprintf(buf, "func (*%s) is%s() {}\n", GoName(v.Resource), name)
	}
	fmt.Fprintf(buf, "\nvar %s = wire.NewUnion[%s](%q, %q)\n\n", unionVar, name, u.Name, u.Discriminator)
	buf.WriteString("func init() {\n")
	for _, v := range u.Variants {
		fmt.Fprintf(buf, "\twire.Variant[%s](%s, %q)\n", GoName(v.Resource), unionVar, v.Tag)
	}
	buf.WriteString("}\n\n")
	fmt.Fprintf(buf, "// %s supplies the %s variant table.\ntype %s struct{}\n\n", variants, name, variants)
	fmt.Fprintf(buf, "func (%s) Union() *wire.Union[%s] { return %s }\n\n", variants, name, unionVar)
	fmt.Fprintf(buf, "// Any%s is a field holding one %s variant.\ntype Any%s = wire.OneOf[%s, %s]\n\n", name, name, name, name, variants)
}

func (e *Emitter) emitBuilder(buf *bytes.Buffer, o *ir.OperationDescriptor) {
	builder := o.Name + "Builder"
	params := lowerFirst(o.Name) + "Params"
	elem := e.typeName(o.Output)

	var core, field, ctor string
	switch o.Shape {
	case ir.OutputList:
		core, field = "*stripe.ListCall["+elem+"]", "ListCall"
		ctor = fmt.Sprintf("stripe.NewListCall[%s](%q, %q, %q", elem, o.ID, o.Format(), e.tagOf(o.Output))
	default:
		out := elem
		if o.Shape == ir.OutputDeleted {
			out = "wire.MaybeDeleted[" + elem + "]"
		}
		core, field = "*stripe.Call["+out+"]", "Call"
		ctor = fmt.Sprintf("stripe.NewCall[%s](%q, http.Method%s, %q, %q", out, o.ID, strcaseMethod(o.Method), o.Format(), e.tagOf(o.Output))
	}

	fmt.Fprintf(buf, "// %s builds %s: %s %s.\n", builder, o.ID, o.Method, o.Path)
	fmt.Fprintf(buf, "type %s struct {\n\t%s\n", builder, core)
	if len(o.Params) > 0 {
		fmt.Fprintf(buf, "\tparams %s\n", params)
	}
	buf.WriteString("}\n\n")

	if len(o.Params) > 0 {
		paging := o.Shape == ir.OutputList && o.Param("ending_before") != nil
		fmt.Fprintf(buf, "type %s struct {\n", params)
		for _, p := range o.Params {
			var extra []string
			if paging && p.Name == "starting_after" {
				extra = append(extra, "excluded_with=EndingBefore")
			}
			tag := fmt.Sprintf(`form:"%s"`, p.Name)
			if v := validateTag(p, extra...); v != "" {
				tag += fmt.Sprintf(` validate:"%s"`, v)
			}
			fmt.Fprintf(buf, "\t%s %s `%s`\n", GoName(p.Name), e.paramField(p), tag)
		}
		buf.WriteString("}\n\n")
	}

	var args, ids, init []string
	for _, p := range o.PathParams {
		a := argName(p.Name)
		args = append(args, a+" "+e.exprType(p.Type))
		if _, ok := p.Type.(*ir.IDExpr); ok {
			a = "string(" + a + ")"
		}
		ids = append(ids, a)
	}
	for _, p := range o.RequiredParams() {
		a := argName(p.Name)
		args = append(args, a+" "+e.exprType(p.Type))
		init = append(init, GoName(p.Name)+": "+a)
	}

	writeDoc(buf, o.Name, o.Documentation, fmt.Sprintf("%s calls %s %s.", o.Name, o.Method, o.Path))
	fmt.Fprintf(buf, "func %s(%s) *%s {\n", o.Name, strings.Join(args, ", "), builder)
	if len(init) > 0 {
		fmt.Fprintf(buf, "\tb := &%s{params: %s{%s}}\n", builder, params, strings.Join(init, ", "))
	} else {
		fmt.Fprintf(buf, "\tb := &%s{}\n", builder)
	}
	if len(o.Params) > 0 {
		ctor += ", &b.params"
	} else {
		ctor += ", nil"
	}
	for _, id := range ids {
		ctor += ", " + id
	}
	fmt.Fprintf(buf, "\tb.%s = %s)\n\treturn b\n}\n\n", field, ctor)

	for _, p := range o.Params {
		if p.Required {
			continue
		}
		name := GoName(p.Name)
		fmt.Fprintf(buf, "func (b *%s) %s(v %s) *%s {\n", builder, name, e.exprType(p.Type), builder)
		if kindOf(p.Type) == paramValue {
			fmt.Fprintf(buf, "\tb.params.%s = &v\n", name)
		} else {
			fmt.Fprintf(buf, "\tb.params.%s = v\n", name)
		}
		buf.WriteString("\treturn b\n}\n\n")
	}

	buf.WriteString("// Expand requests expansion of the given response fields.\n")
	fmt.Fprintf(buf, "func (b *%s) Expand(paths ...string) *%s {\n\tb.AddExpand(paths...)\n\treturn b\n}\n\n", builder, builder)
	if o.Mutating() {
		fmt.Fprintf(buf, "func (b *%s) IdempotencyKey(key string) *%s {\n\tb.SetIdempotencyKey(key)\n\treturn b\n}\n\n", builder, builder)
	}
	fmt.Fprintf(buf, "func (b *%s) StripeAccount(account string) *%s {\n\tb.SetStripeAccount(account)\n\treturn b\n}\n\n", builder, builder)
}

func (e *Emitter) emitEnum(buf *bytes.Buffer, en *ir.EnumDescriptor) {
	name := GoName(en.Name)
	enumVar := lowerFirst(name) + "Enum"

	writeDoc(buf, name, en.Documentation, name+" enumerates the values of "+en.Name+".")
	if en.Open {
		buf.WriteString("// It is an open enum: values this package does not know are kept verbatim.\n")
	} else {
		buf.WriteString("// It is a closed enum: unknown values fail to decode.\n")
	}
	fmt.Fprintf(buf, "type %s string\n\nconst (\n", name)
	consts := make([]string, len(en.Values))
	for i, v := range en.Values {
		consts[i] = name + cmp.Or(GoName(v), "Empty")
		fmt.Fprintf(buf, "\t%s %s = %q\n", consts[i], name, v)
	}
	buf.WriteString(")\n\n")

	ctor := "ClosedEnum"
	if en.Open {
		ctor = "OpenEnum"
	}
	fmt.Fprintf(buf, "var %s = wire.%s(%q,\n", enumVar, ctor, en.Name)
	for _, c := range consts {
		fmt.Fprintf(buf, "\t%s,\n", c)
	}
	buf.WriteString(")\n\n")

	if en.Open {
		fmt.Fprintf(buf, "// Parse%s returns s as a %s. It never fails.\n", name, name)
		fmt.Fprintf(buf, "func Parse%s(s string) %s {\n\tv, _ := %s.Parse(s)\n\treturn v\n}\n\n", name, name, enumVar)
		buf.WriteString("// IsUnknown reports whether v is outside the values known to this package.\n")
		fmt.Fprintf(buf, "func (v %s) IsUnknown() bool { return !%s.IsKnown(v) }\n\n", name, enumVar)
	} else {
		fmt.Fprintf(buf, "// Parse%s returns s as a %s, or an error for unknown values.\n", name, name)
		fmt.Fprintf(buf, "func Parse%s(s string) (%s, error) {\n\treturn %s.Parse(s)\n}\n\n", name, name, enumVar)
	}
	fmt.Fprintf(buf, "func (v *%s) UnmarshalJSON(data []byte) error {\n\treturn %s.DecodeJSON(data, v)\n}\n\n", name, enumVar)
}

func (e *Emitter) emitManifest(buf *bytes.Buffer) {
	m := e.schema.Manifest()
	tags := m.Tags()
	buf.WriteString("// Manifest lists the expandable fields of every response type.\n")
	buf.WriteString("var Manifest = stripe.NewManifest()")
	for _, tag := range tags {
		fields := m[tag]
		buf.WriteString(".\n")
		if len(fields) == 0 {
			fmt.Fprintf(buf, "\tRegister(%q, map[string]stripe.TypeTag{})", tag)
			continue
		}
		fmt.Fprintf(buf, "\tRegister(%q, map[string]stripe.TypeTag{\n", tag)
		names := make([]string, 0, len(fields))
		for f := range fields {
			names = append(names, f)
		}
		slices.Sort(names)
		for _, f := range names {
			fmt.Fprintf(buf, "\t\t%q: %q,\n", f, fields[f])
		}
		buf.WriteString("\t})")
	}
	buf.WriteString("\n")
}

func (e *Emitter) emitVersion(buf *bytes.Buffer) {
	buf.WriteString("// APIVersion is the API version this package was generated from.\n")
	fmt.Fprintf(buf, "const APIVersion = %q\n\n", e.schema.APIVersion)
	buf.WriteString("// NewClient returns a client pinned to APIVersion that checks expand paths\n")
	buf.WriteString("// against Manifest before sending.\n")
	buf.WriteString("func NewClient(secretKey string, opts ...stripe.Option) *stripe.Client {\n")
	buf.WriteString("\tbase := []stripe.Option{\n\t\tstripe.WithAPIVersion(APIVersion),\n\t\tstripe.WithManifest(Manifest),\n\t}\n")
	buf.WriteString("\treturn stripe.NewClient(secretKey, append(base, opts...)...)\n}\n")
}

// format prepends the header and import block to body and runs it through
// gofmt. Imports are derived from the qualified identifiers body uses.
func (e *Emitter) format(path string, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n\n", e.config.Generator, e.config.Package)

	var std, third []string
	if bytes.Contains(body, []byte("http.Method")) {
		std = append(std, `"net/http"`)
	}
	if bytes.Contains(body, []byte("stripe.")) {
		third = append(third, fmt.Sprintf("%q", e.config.Runtime))
	}
	if bytes.Contains(body, []byte("wire.")) {
		third = append(third, fmt.Sprintf("%q", e.config.Runtime+"/wire"))
	}
	if len(std)+len(third) > 0 {
		buf.WriteString("import (\n")
		for _, imp := range std {
			fmt.Fprintf(&buf, "\t%s\n", imp)
		}
		if len(std) > 0 && len(third) > 0 {
			buf.WriteString("\n")
		}
		for _, imp := range third {
			fmt.Fprintf(&buf, "\t%s\n", imp)
		}
		buf.WriteString(")\n\n")
	}
	buf.Write(body)

	src, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", path, err)
	}
	return src, nil
}

// writeDoc writes a doc comment for name. A description that opens with an
// article reads as "Name is a ..."; any other reads as "Name does ...".
func writeDoc(buf *bytes.Buffer, name string, doc ir.Documentation, fallback string) {
	text := strings.TrimSpace(doc.Body)
	if text == "" {
		fmt.Fprintf(buf, "// %s\n", fallback)
		return
	}
	lines := strings.Split(text, "\n")
	first := lines[0]
	switch word, _, _ := strings.Cut(first, " "); word {
	case "A", "An", "The":
		first = name + " is " + lowerWord(first)
	default:
		first = name + " " + lowerWord(first)
	}
	fmt.Fprintf(buf, "// %s\n", first)
	for _, l := range lines[1:] {
		if l = strings.TrimRight(l, " "); l == "" {
			buf.WriteString("//\n")
			continue
		}
		fmt.Fprintf(buf, "// %s\n", l)
	}
}

// lowerWord lowercases the first letter of s unless it opens an acronym.
func lowerWord(s string) string {
	if len(s) > 1 && s[1] >= 'A' && s[1] <= 'Z' {
		return s
	}
	return lowerFirst(s)
}

func strcaseMethod(method string) string {
	return GoName(strings.ToLower(method))
}

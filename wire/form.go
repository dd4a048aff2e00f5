// Package wire implements the vendor's wire formats: bracketed form encoding
// for request parameters and JSON decoding for responses, plus the value
// shapes responses are built from (open enums, expandable references,
// deletion tombstones and tagged unions).
package wire

import (
	"fmt"
	"iter"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iancoleman/strcase"
)

// Values is an ordered multimap of form parameters. Unlike url.Values it
// preserves insertion order, so encoded output is deterministic and matches
// the order fields were declared in.
type Values struct {
	pairs []pair
}

type pair struct {
	key, value string
}

// NewValues returns an empty Values.
func NewValues() *Values {
	return &Values{}
}

// Add appends a key/value pair.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, pair{key, value})
}

// Set replaces the first pair with the given key and removes any others.
// If the key is absent the pair is appended.
func (v *Values) Set(key, value string) {
	found := false
	out := v.pairs[:0]
	for _, p := range v.pairs {
		if p.key != key {
			out = append(out, p)
			continue
		}
		if !found {
			found = true
			out = append(out, pair{key, value})
		}
	}
	v.pairs = out
	if !found {
		v.Add(key, value)
	}
}

// Get returns the first value for key, or "".
func (v *Values) Get(key string) string {
	if v == nil {
		return ""
	}
	for _, p := range v.pairs {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

// Has reports whether key is present.
func (v *Values) Has(key string) bool {
	if v == nil {
		return false
	}
	for _, p := range v.pairs {
		if p.key == key {
			return true
		}
	}
	return false
}

// Del removes every pair with the given key.
func (v *Values) Del(key string) {
	v.pairs = slices.DeleteFunc(v.pairs, func(p pair) bool { return p.key == key })
}

// Len returns the number of pairs.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.pairs)
}

// All iterates the pairs in order.
func (v *Values) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if v == nil {
			return
		}
		for _, p := range v.pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Cloning nil yields an empty Values.
func (v *Values) Clone() *Values {
	if v == nil {
		return &Values{}
	}
	return &Values{pairs: slices.Clone(v.pairs)}
}

// Append adds every pair of other after the pairs of v.
func (v *Values) Append(other *Values) {
	if other == nil {
		return
	}
	v.pairs = append(v.pairs, other.pairs...)
}

// URLValues converts to url.Values, losing cross-key ordering.
func (v *Values) URLValues() url.Values {
	out := url.Values{}
	for k, val := range v.All() {
		out.Add(k, val)
	}
	return out
}

// Encode renders the pairs as application/x-www-form-urlencoded. Square
// brackets in keys are left literal.
func (v *Values) Encode() string {
	if v.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeKey(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

func (v *Values) String() string { return v.Encode() }

var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]")

func escapeKey(key string) string {
	return bracketUnescaper.Replace(url.QueryEscape(key))
}

// FormAppender is implemented by types that encode themselves under a key.
type FormAppender interface {
	AppendForm(v *Values, key string)
}

// Marshal encodes a struct (or pointer to struct) into form Values.
//
// Fields are named by the `form` tag, falling back to the snake_case field
// name. A nil pointer, map, slice or interface is omitted. A non-nil pointer
// is always sent, so a pointer to "" encodes as `key=`, which the API reads
// as "unset". A non-nil empty map or slice also encodes as `key=`.
// Nested structs, maps and slices use bracketed keys: `a[b]`, `a[0]`.
func Marshal(v any) (*Values, error) {
	out := NewValues()
	if v == nil {
		return out, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return out, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("wire: Marshal expects a struct, got %s", rv.Type())
	}
	if err := encodeStruct(out, "", rv); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalAppend encodes v and appends the result to dst under prefix.
// An empty prefix behaves like Marshal.
func MarshalAppend(dst *Values, prefix string, v any) error {
	return encodeValue(dst, prefix, reflect.ValueOf(v), false)
}

type formField struct {
	index     []int
	name      string
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []formField

func cachedFields(t reflect.Type) []formField {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]formField)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t, nil))
	return f.([]formField)
}

func typeFields(t reflect.Type, parent []int) []formField {
	var fields []formField
	for i := range t.NumField() {
		sf := t.Field(i)
		index := append(slices.Clone(parent), i)
		tag := sf.Tag.Get("form")
		if tag == "-" {
			continue
		}
		if sf.Anonymous && tag == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, typeFields(ft, index)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = strcase.ToSnake(sf.Name)
		}
		fields = append(fields, formField{
			index:     index,
			name:      name,
			omitEmpty: opts == "omitempty",
		})
	}
	return fields
}

var (
	appenderType = reflect.TypeFor[FormAppender]()
	timeType     = reflect.TypeFor[time.Time]()
)

func encodeStruct(out *Values, prefix string, rv reflect.Value) error {
	for _, f := range cachedFields(rv.Type()) {
		fv, err := rv.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		key := f.name
		if prefix != "" {
			key = prefix + "[" + f.name + "]"
		}
		if err := encodeValue(out, key, fv, f.omitEmpty); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(out *Values, key string, rv reflect.Value, omitEmpty bool) error {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return nil
		}
	}
	if rv.Type().Implements(appenderType) {
		rv.Interface().(FormAppender).AppendForm(out, key)
		return nil
	}
	if rv.CanAddr() && rv.Addr().Type().Implements(appenderType) {
		rv.Addr().Interface().(FormAppender).AppendForm(out, key)
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return encodeValue(out, key, rv.Elem(), false)
	case reflect.String:
		if omitEmpty && rv.Len() == 0 {
			return nil
		}
		out.Add(key, rv.String())
	case reflect.Bool:
		if omitEmpty && !rv.Bool() {
			return nil
		}
		out.Add(key, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if omitEmpty && rv.Int() == 0 {
			return nil
		}
		out.Add(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if omitEmpty && rv.Uint() == 0 {
			return nil
		}
		out.Add(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		if omitEmpty && rv.Float() == 0 {
			return nil
		}
		out.Add(key, strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()))
	case reflect.Struct:
		if rv.Type() == timeType {
			t := rv.Interface().(time.Time)
			if omitEmpty && t.IsZero() {
				return nil
			}
			out.Add(key, strconv.FormatInt(t.Unix(), 10))
			return nil
		}
		return encodeStruct(out, key, rv)
	case reflect.Map:
		if rv.Len() == 0 {
			out.Add(key, "")
			return nil
		}
		keys := rv.MapKeys()
		names := make([]string, len(keys))
		byName := make(map[string]reflect.Value, len(keys))
		for i, k := range keys {
			names[i] = fmt.Sprint(k.Interface())
			byName[names[i]] = k
		}
		slices.Sort(names)
		for _, name := range names {
			if err := encodeValue(out, key+"["+name+"]", rv.MapIndex(byName[name]), false); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			if rv.Kind() == reflect.Slice {
				out.Add(key, "")
			}
			return nil
		}
		for i := range rv.Len() {
			if err := encodeValue(out, key+"["+strconv.Itoa(i)+"]", rv.Index(i), false); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("wire: cannot form-encode %s at %q", rv.Type(), key)
	}
	return nil
}

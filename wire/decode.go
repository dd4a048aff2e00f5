package wire

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Unmarshal decodes a JSON response body into v.
//
// Unknown keys are ignored. Failures are reported as *DecodeError:
// ReasonMalformed for syntax errors, ReasonTypeMismatch when a value does not
// fit its field, and ReasonMissingField for struct fields tagged
// `required:"true"` that are absent from the payload. Presence is checked
// recursively through nested structs, slices and maps. Field paths are
// dotted from the top of data, through Expandable, MaybeDeleted, OneOf and
// enum values as well.
func Unmarshal(data []byte, v any) error {
	if !gjson.ValidBytes(data) {
		return Malformed(errors.New("invalid JSON"))
	}
	t := reflect.TypeOf(v)
	if err := json.Unmarshal(data, v); err != nil {
		err = classifyJSONError(err)
		var de *DecodeError
		if t != nil && errors.As(err, &de) {
			if rooted := locateError(gjson.ParseBytes(data), t, ""); rooted != nil {
				return rooted
			}
		}
		return err
	}
	if t == nil {
		return nil
	}
	return checkRequired(gjson.ParseBytes(data), t, "")
}

func classifyJSONError(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return Malformed(err)
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) {
		return TypeMismatch(typ.Field, err)
	}
	return err
}

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

type jsonField struct {
	index    int
	name     string
	required bool
	embedded bool
	typ      reflect.Type
}

var jsonFieldCache sync.Map // reflect.Type -> []jsonField

func jsonFields(t reflect.Type) []jsonField {
	if f, ok := jsonFieldCache.Load(t); ok {
		return f.([]jsonField)
	}
	var fields []jsonField
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if sf.Anonymous && name == "" {
			fields = append(fields, jsonField{index: i, embedded: true, typ: sf.Type})
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, jsonField{
			index:    i,
			name:     name,
			required: sf.Tag.Get("required") == "true",
			typ:      sf.Type,
		})
	}
	f, _ := jsonFieldCache.LoadOrStore(t, fields)
	return f.([]jsonField)
}

// selfDecoding reports whether t (or *t) decodes itself, in which case it is
// responsible for its own presence checks.
func selfDecoding(t reflect.Type) bool {
	return t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType)
}

func checkRequired(raw gjson.Result, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if selfDecoding(t) || !raw.Exists() || raw.Type == gjson.Null {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		if !raw.IsObject() {
			return nil
		}
		obj := raw.Map()
		for _, f := range jsonFields(t) {
			if f.embedded {
				if err := checkRequired(raw, f.typ, path); err != nil {
					return err
				}
				continue
			}
			fieldPath := joinPath(path, f.name)
			val, ok := obj[f.name]
			if !ok {
				if f.required {
					return MissingField(fieldPath)
				}
				continue
			}
			if err := checkRequired(val, f.typ, fieldPath); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if !raw.IsArray() {
			return nil
		}
		for i, el := range raw.Array() {
			if err := checkRequired(el, t.Elem(), joinPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	case reflect.Map:
		if !raw.IsObject() {
			return nil
		}
		var err error
		raw.ForEach(func(k, v gjson.Result) bool {
			err = checkRequired(v, t.Elem(), joinPath(path, k.String()))
			return err == nil
		})
		return err
	}
	return nil
}

func joinPath(parent, name string) string {
	switch {
	case parent == "":
		return name
	case name == "":
		return parent
	}
	return parent + "." + name
}

// locateError finds the first value below raw whose own decoder fails and
// returns that failure with its field path rooted at path. Errors raised by
// UnmarshalJSON methods carry paths relative to the value being decoded, so
// the path of the field holding it has to be prepended here.
func locateError(raw gjson.Result, t reflect.Type, path string) *DecodeError {
	nullable := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		nullable = true
	}
	if !raw.Exists() || (nullable && raw.Type == gjson.Null) {
		return nil
	}
	if selfDecoding(t) {
		if path == "" {
			return nil
		}
		err := json.Unmarshal([]byte(raw.Raw), reflect.New(t).Interface())
		if err == nil {
			return nil
		}
		var de *DecodeError
		if !errors.As(classifyJSONError(err), &de) {
			return TypeMismatch(path, err)
		}
		rooted := *de
		rooted.Field = joinPath(path, de.Field)
		return &rooted
	}
	var found *DecodeError
	switch t.Kind() {
	case reflect.Struct:
		if !raw.IsObject() {
			return nil
		}
		raw.ForEach(func(k, v gjson.Result) bool {
			if ft, ok := fieldType(t, k.String()); ok {
				found = locateError(v, ft, joinPath(path, k.String()))
			}
			return found == nil
		})
	case reflect.Slice, reflect.Array:
		if !raw.IsArray() {
			return nil
		}
		for i, el := range raw.Array() {
			if found = locateError(el, t.Elem(), joinPath(path, strconv.Itoa(i))); found != nil {
				break
			}
		}
	case reflect.Map:
		if !raw.IsObject() {
			return nil
		}
		raw.ForEach(func(k, v gjson.Result) bool {
			found = locateError(v, t.Elem(), joinPath(path, k.String()))
			return found == nil
		})
	}
	return found
}

// fieldType returns the type of the field of struct t named name in JSON,
// looking through embedded structs.
func fieldType(t reflect.Type, name string) (reflect.Type, bool) {
	for _, f := range jsonFields(t) {
		if f.embedded {
			et := f.typ
			for et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				if ft, ok := fieldType(et, name); ok {
					return ft, true
				}
			}
			continue
		}
		if f.name == name {
			return f.typ, true
		}
	}
	return nil, false
}

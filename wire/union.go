package wire

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"
)

// Union decodes polymorphic payloads by reading a discriminator field and
// dispatching to the decoder registered for its value. U is normally a
// sealed interface implemented by pointers to each variant type.
type Union[U any] struct {
	name          string
	discriminator string
	variants      map[string]func([]byte) (U, error)
}

// NewUnion creates an empty union table keyed on discriminator.
func NewUnion[U any](name, discriminator string) *Union[U] {
	return &Union[U]{
		name:          name,
		discriminator: discriminator,
		variants:      make(map[string]func([]byte) (U, error)),
	}
}

// Variant registers V under tag. *V must implement U.
// It panics on a duplicate tag or when *V does not implement U, both of
// which are generator bugs.
func Variant[V, U any](u *Union[U], tag string) *Union[U] {
	if _, ok := any(new(V)).(U); !ok {
		panic(fmt.Sprintf("wire: %T does not implement %s", new(V), u.name))
	}
	if _, dup := u.variants[tag]; dup {
		panic(fmt.Sprintf("wire: duplicate variant %q in %s", tag, u.name))
	}
	u.variants[tag] = func(data []byte) (U, error) {
		v := new(V)
		if err := Unmarshal(data, v); err != nil {
			var zero U
			return zero, err
		}
		return any(v).(U), nil
	}
	return u
}

func (u *Union[U]) Name() string          { return u.name }
func (u *Union[U]) Discriminator() string { return u.discriminator }

// Tags returns the registered discriminator values, sorted.
func (u *Union[U]) Tags() []string {
	tags := make([]string, 0, len(u.variants))
	for t := range u.variants {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Decode selects and decodes the variant named by the discriminator.
func (u *Union[U]) Decode(data []byte) (U, error) {
	var zero U
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return zero, TypeMismatch("", fmt.Errorf("%s: expected object, got %s", u.name, res.Type))
	}
	tag := res.Get(u.discriminator)
	if !tag.Exists() {
		return zero, MissingField(u.discriminator)
	}
	if tag.Type != gjson.String {
		return zero, TypeMismatch(u.discriminator, fmt.Errorf("expected string, got %s", tag.Type))
	}
	decode, ok := u.variants[tag.Str]
	if !ok {
		reportDrift("variant", u.name, tag.Str)
		return zero, UnknownVariant(u.discriminator, tag.Str)
	}
	return decode(data)
}

// Variants supplies the union table for a OneOf field type. Implementations
// are zero-size types generated next to the union interface.
type Variants[U any] interface {
	Union() *Union[U]
}

// OneOf is a JSON field holding one variant of U, decoded through the
// table supplied by S.
type OneOf[U any, S Variants[U]] struct {
	Value U
}

func (o *OneOf[U, S]) UnmarshalJSON(data []byte) error {
	var s S
	v, err := s.Union().Decode(data)
	if err != nil {
		return err
	}
	o.Value = v
	return nil
}

func (o OneOf[U, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

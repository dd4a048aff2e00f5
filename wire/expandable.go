package wire

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// ID is the constraint satisfied by every typed resource identifier.
type ID interface {
	~string
}

// IDString converts a typed id for path interpolation.
func IDString[T ID](id T) string { return string(id) }

// Expandable is a reference to a resource that is either a bare id or, when
// the request asked for it through expand[], the full object.
type Expandable[T any] struct {
	ID     string
	Object *T
}

// Ref returns an unexpanded reference.
func Ref[T any](id string) Expandable[T] {
	return Expandable[T]{ID: id}
}

// IsExpanded reports whether the full object is present.
func (e Expandable[T]) IsExpanded() bool { return e.Object != nil }

// UnmarshalJSON accepts a string id or an object.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	switch {
	case res.Type == gjson.Null:
		*e = Expandable[T]{}
	case res.Type == gjson.String:
		*e = Expandable[T]{ID: res.String()}
	case res.IsObject():
		obj := new(T)
		if err := Unmarshal(data, obj); err != nil {
			return err
		}
		*e = Expandable[T]{ID: res.Get("id").String(), Object: obj}
	default:
		return TypeMismatch("", fmt.Errorf("expandable: expected id or object, got %s", res.Type))
	}
	return nil
}

// MarshalJSON writes the object when expanded, the id otherwise.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.Object != nil {
		return json.Marshal(e.Object)
	}
	if e.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(e.ID)
}

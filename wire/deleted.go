package wire

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Tombstone is what the API returns in place of a deleted resource.
type Tombstone struct {
	ID      string `json:"id" required:"true"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// MaybeDeleted holds either a live resource or its tombstone, chosen by the
// payload's `deleted` field. An absent `deleted` means live.
type MaybeDeleted[T any] struct {
	Active  *T
	Deleted *Tombstone

	id string
}

// IsDeleted reports whether the payload was a tombstone.
func (m MaybeDeleted[T]) IsDeleted() bool { return m.Deleted != nil }

// ID returns the id carried by the payload in either state.
func (m MaybeDeleted[T]) ID() string {
	if m.Deleted != nil {
		return m.Deleted.ID
	}
	return m.id
}

func (m *MaybeDeleted[T]) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return TypeMismatch("", fmt.Errorf("expected object, got %s", res.Type))
	}
	del := res.Get("deleted")
	if del.Exists() && del.Type != gjson.True && del.Type != gjson.False {
		return TypeMismatch("deleted", fmt.Errorf("expected bool, got %s", del.Type))
	}
	if del.Bool() {
		ts := new(Tombstone)
		if err := Unmarshal(data, ts); err != nil {
			return err
		}
		*m = MaybeDeleted[T]{Deleted: ts, id: ts.ID}
		return nil
	}
	v := new(T)
	if err := Unmarshal(data, v); err != nil {
		return err
	}
	*m = MaybeDeleted[T]{Active: v, id: res.Get("id").String()}
	return nil
}

func (m MaybeDeleted[T]) MarshalJSON() ([]byte, error) {
	if m.Deleted != nil {
		return json.Marshal(m.Deleted)
	}
	return json.Marshal(m.Active)
}

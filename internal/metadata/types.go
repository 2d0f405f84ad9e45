package metadata

import (
	"github.com/vvka-141/announce/internal/ordered"
)

// Field names with a fixed meaning.
const (
	FieldType        = "type"
	FieldDescription = "description"
)

// User is the author record of an entry.
type User struct {
	Username string
	Name     string
}

// Entry is one metadata record. Entries are immutable once decoded.
type Entry struct {
	fields ordered.Object
}

// NewEntry builds an entry from ordered fields. The slice is copied.
func NewEntry(fields ordered.Object) Entry {
	return Entry{fields: append(ordered.Object(nil), fields...)}
}

// Type returns the declared entry type, or "" when absent or not a string.
func (e Entry) Type() string {
	return e.stringField(FieldType)
}

// Description returns the entry description, or "" when absent.
func (e Entry) Description() string {
	return e.stringField(FieldDescription)
}

// Fields returns the entry fields in input order.
func (e Entry) Fields() ordered.Object {
	return append(ordered.Object(nil), e.fields...)
}

// Get returns the raw value of a field.
func (e Entry) Get(key string) (any, bool) {
	return e.fields.Get(key)
}

func (e Entry) stringField(key string) string {
	v, ok := e.fields.Get(key)
	if !ok || v == nil {
		return ""
	}
	return ordered.Text(v)
}

// UserFrom interprets an author field value.
// Objects yield their username and name members; any other value becomes
// the Name so that resolution falls back to the literal text.
func UserFrom(v any) User {
	obj, ok := v.(ordered.Object)
	if !ok {
		if v == nil {
			return User{}
		}
		return User{Name: ordered.Text(v)}
	}

	var u User
	if username, ok := obj.Get("username"); ok {
		if s, ok := username.(string); ok {
			u.Username = s
		}
	}
	if name, ok := obj.Get("name"); ok && name != nil {
		u.Name = ordered.Text(name)
	}
	return u
}

package ordered

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an object whose members keep their document order.
// Duplicate keys keep the position of the first occurrence and the value of the last.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

func (o Object) set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Member{Key: key, Value: value})
}

// MarshalJSON encodes the object with its members in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeJSON decodes a single JSON document, tolerating comments and
// trailing commas.
func DecodeJSON(data []byte) (any, error) {
	return DecodeStrictJSON(jsonc.ToJSON(data))
}

// DecodeStrictJSON decodes a single JSON document. Comments, trailing commas
// and data after the top-level value are errors.
func DecodeStrictJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(r.Raw)
	case gjson.String:
		return r.Str
	}

	if r.IsArray() {
		arr := []any{}
		r.ForEach(func(_, value gjson.Result) bool {
			arr = append(arr, fromResult(value))
			return true
		})
		return arr
	}
	obj := Object{}
	r.ForEach(func(key, value gjson.Result) bool {
		obj = obj.set(key.Str, fromResult(value))
		return true
	})
	return obj
}

// syntaxError describes why data is not valid JSON.
func syntaxError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return errors.New("invalid JSON document")
}

// DecodeYAML decodes a single YAML document. Mappings become Objects.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		obj := Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			value, err := fromNode(valueNode)
			if err != nil {
				return nil, err
			}
			obj = obj.set(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			value, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

func fromScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			var v bool
			if err := n.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return v, nil
		}
		return b, nil
	case "!!int", "!!float":
		return json.Number(n.Value), nil
	}
	return n.Value, nil
}

// Text renders a scalar or composite value as placeholder text.
// Strings are returned verbatim; everything else uses its compact JSON form.
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

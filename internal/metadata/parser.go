package metadata

import (
	"fmt"

	"github.com/vvka-141/announce/internal/ordered"
	"github.com/vvka-141/announce/pkg/announce"
)

// Parse decodes a JSON list of metadata entries.
func Parse(data []byte) ([]Entry, error) {
	doc, err := ordered.DecodeStrictJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata JSON: %v: %w", err, announce.ErrInvalidInput)
	}

	list, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("metadata must be a JSON list of entries, got %s: %w", describe(doc), announce.ErrInvalidInput)
	}

	entries := make([]Entry, 0, len(list))
	for i, item := range list {
		obj, ok := item.(ordered.Object)
		if !ok {
			return nil, &EntryError{
				Index:   i,
				Message: fmt.Sprintf("expected an object, got %s", describe(item)),
				Hint:    `each entry looks like {"type": "...", "description": "..."}`,
			}
		}
		if v, ok := obj.Get(FieldType); ok {
			if _, isString := v.(string); !isString {
				return nil, &EntryError{
					Index:   i,
					Field:   FieldType,
					Message: fmt.Sprintf("expected a string, got %s", describe(v)),
				}
			}
		}
		entries = append(entries, Entry{fields: obj})
	}
	return entries, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case ordered.Object:
		return "an object"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	}
	return "a number"
}

// Package ordered decodes JSON and YAML documents into generic values while
// keeping the key order of every object.
//
// Rule tables and metadata entries are order sensitive: rules are tried in
// the order they appear and placeholders are substituted in field order.
// encoding/json maps lose that order, so documents are decoded into:
//
//   - Object for JSON objects and YAML mappings
//   - []any for arrays and sequences
//   - string, json.Number, bool and nil for scalars
//
// Keys keep their literal document order, integer-like keys included.
//
// DecodeJSON passes its input through jsonc.ToJSON first so that comments and
// trailing commas are accepted in hand-written rules and author files.
// DecodeStrictJSON accepts plain JSON only and is used for metadata and inline
// author maps.
package ordered

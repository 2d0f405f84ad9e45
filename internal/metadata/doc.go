// Package metadata decodes release/announcement metadata entries.
//
// # Input Format
//
// Metadata is a JSON list of objects. Every entry declares a type and a
// description; any other field is carried along for placeholder substitution:
//
//	[
//	  {
//	    "type": "package",
//	    "description": "Added new utility",
//	    "pkg": "@stdlib/string-trim",
//	    "author": {"username": "alice", "name": "Alice A."}
//	  }
//	]
//
// # Field Order
//
// Entries keep their fields in input order. Placeholders are substituted in
// that order, so an earlier field's value may itself introduce a token that a
// later field replaces.
//
// # Errors
//
// Decoding errors wrap announce.ErrInvalidInput. Per-entry problems are
// reported as *EntryError carrying the entry index and an actionable hint.
package metadata

// Package placeholder substitutes <field> tokens with entry values.
package placeholder

import (
	"strings"

	"github.com/vvka-141/announce/internal/authors"
	"github.com/vvka-141/announce/internal/metadata"
	"github.com/vvka-141/announce/internal/ordered"
	"github.com/vvka-141/announce/pkg/announce"
)

// Token returns the placeholder token for a field name.
func Token(key string) string {
	return "<" + key + ">"
}

// Resolver replaces placeholders using an entry's fields.
type Resolver struct {
	authors authors.Map
	logger  announce.Logger
}

// NewResolver creates a resolver. When the author map is absent, <author>
// tokens are left in place.
func NewResolver(authorMap authors.Map, logger announce.Logger) *Resolver {
	return &Resolver{authors: authorMap, logger: logger}
}

// Resolve replaces every <key> in text for each field of entry, in field order.
func (r *Resolver) Resolve(text string, entry metadata.Entry) string {
	out := text
	for _, field := range entry.Fields() {
		token := Token(field.Key)
		if !strings.Contains(out, token) {
			continue
		}

		var value string
		if field.Key == announce.AuthorField {
			if !r.authors.Present() {
				r.logger.Verbose("No author map supplied, leaving %s unresolved", token)
				continue
			}
			user := metadata.UserFrom(field.Value)
			value = r.authors.Handle(user)
			r.logger.Verbose("Resolved author %q to %q", user.Username, value)
		} else {
			value = ordered.Text(field.Value)
		}

		r.logger.Verbose("Replacing %s in the supplied string...", token)
		out = strings.ReplaceAll(out, token, value)
	}
	return out
}

package services

import (
	"github.com/vvka-141/announce/internal/metadata"
)

// TypeFilter admits entries whose type is in the allowed set.
type TypeFilter struct {
	allowed map[string]struct{}
}

// NewTypeFilter builds a filter from the allowed entry types.
func NewTypeFilter(types []string) TypeFilter {
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return TypeFilter{allowed: allowed}
}

// Allows reports whether entry's type is allowed.
func (f TypeFilter) Allows(entry metadata.Entry) bool {
	_, ok := f.allowed[entry.Type()]
	return ok
}

package rules

import (
	"fmt"

	"github.com/vvka-141/announce/pkg/announce"
)

// Rule binds a compiled pattern to its replacement.
type Rule struct {
	Pattern     Pattern
	Replacement Replacement
}

// Match is the outcome of a successful rule evaluation.
type Match struct {
	// Rule is the rule that fired.
	Rule Rule

	// Replacement is the replacement text that was chosen.
	Replacement string

	// Text is the description with the matched region replaced.
	Text string
}

// RuleSet is the ordered list of rules for one entry type.
type RuleSet []Rule

// Apply evaluates rules in order against description. The first rule whose
// pattern matches is applied and evaluation stops. ok is false when no rule
// matches.
func (rs RuleSet) Apply(description string, chooser Chooser) (m Match, ok bool) {
	for _, rule := range rs {
		if !rule.Pattern.MatchString(description) {
			continue
		}
		replacement := rule.Replacement.Resolve(chooser)
		text, _ := rule.Pattern.ReplaceFirst(description, replacement)
		return Match{Rule: rule, Replacement: replacement, Text: text}, true
	}
	return Match{}, false
}

// Table maps entry types to their rule sets, in file order.
type Table struct {
	types []string
	sets  map[string]RuleSet
}

// NewTable builds a table. Later definitions of a type replace earlier ones
// but keep the first position.
func NewTable() *Table {
	return &Table{sets: make(map[string]RuleSet)}
}

// Add registers the rule set for entryType.
func (t *Table) Add(entryType string, rs RuleSet) {
	if _, exists := t.sets[entryType]; !exists {
		t.types = append(t.types, entryType)
	}
	t.sets[entryType] = rs
}

// Types returns the entry types in file order.
func (t *Table) Types() []string {
	return append([]string(nil), t.types...)
}

// Lookup returns the rule set for entryType.
func (t *Table) Lookup(entryType string) (RuleSet, bool) {
	rs, ok := t.sets[entryType]
	return rs, ok
}

// MustLookup returns the rule set for an allowed entry type, or
// ErrMissingRules when the table does not define it.
func (t *Table) MustLookup(entryType string) (RuleSet, error) {
	rs, ok := t.Lookup(entryType)
	if !ok {
		return nil, fmt.Errorf("type %q is allowed but the rules table does not define it: %w", entryType, announce.ErrMissingRules)
	}
	return rs, nil
}

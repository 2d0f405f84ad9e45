// Package rules compiles and evaluates announcement rules.
//
// # Rules Table
//
// A rules table maps an entry type to an ordered set of rules. Each rule key
// is a pattern and each value is either one replacement or a list of
// candidate replacements:
//
//	{
//	  "package": {
//	    "/^Add(ed)? new utility/i": "Check out our new utility <author>!",
//	    "Fix": ["Squashed a bug in <pkg>", "<pkg> is now more robust"]
//	  }
//	}
//
// Rules are tried in file order and the first matching pattern wins, so more
// specific patterns belong before general ones.
//
// # Patterns
//
// A key of the form /body/flags compiles body with the flags i (ignore case),
// m (multi-line) and s (dot matches newline). The flags g and u are accepted
// for compatibility and do not change behavior; y is rejected. Any other key,
// including /a/b style paths, is compiled as a regular expression verbatim.
//
// # Replacements
//
// Exactly the first matched region is replaced. Replacement text may refer
// to the match: $& (whole match), $1..$99 (numbered groups), $<name> (named
// groups), $` (text before the match), $' (text after) and $$ (a literal $).
package rules

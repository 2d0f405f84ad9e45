package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vvka-141/announce/pkg/announce"
)

// slashForm recognizes /body/flags pattern keys.
var slashForm = regexp.MustCompile(`^/((?:\\/|[^/])+)/([gimsuy]*)$`)

// Pattern is a compiled rule key.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles a rule key into a Pattern.
func CompilePattern(key string) (Pattern, error) {
	body, flags := key, ""
	if m := slashForm.FindStringSubmatch(key); m != nil {
		body, flags = m[1], m[2]
	}

	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(inline.String(), f) {
				inline.WriteRune(f)
			}
		case 'g', 'u':
		default:
			return Pattern{}, fmt.Errorf("pattern %q: unsupported flag %q: %w", key, f, announce.ErrInvalidPattern)
		}
	}
	if inline.Len() > 0 {
		body = "(?" + inline.String() + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %v: %w", key, err, announce.ErrInvalidPattern)
	}
	return Pattern{source: key, re: re}, nil
}

// String returns the rule key the pattern was compiled from.
func (p Pattern) String() string {
	return p.source
}

// MatchString reports whether the pattern matches anywhere in s.
func (p Pattern) MatchString(s string) bool {
	return p.re != nil && p.re.MatchString(s)
}

// ReplaceFirst replaces the first match in s with the expanded replacement.
// The second result is false when the pattern does not match.
func (p Pattern) ReplaceFirst(s, replacement string) (string, bool) {
	if p.re == nil {
		return s, false
	}
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false
	}

	var out strings.Builder
	out.WriteString(s[:loc[0]])
	out.WriteString(p.expand(s, replacement, loc))
	out.WriteString(s[loc[1]:])
	return out.String(), true
}

// expand substitutes $-references in replacement for the match at loc.
func (p Pattern) expand(s, replacement string, loc []int) string {
	group := func(n int) string {
		if 2*n+1 >= len(loc) || loc[2*n] < 0 {
			return ""
		}
		return s[loc[2*n]:loc[2*n+1]]
	}
	groups := p.re.NumSubexp()

	var out strings.Builder
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c != '$' || i+1 == len(replacement) {
			out.WriteByte(c)
			continue
		}

		next := replacement[i+1]
		switch {
		case next == '$':
			out.WriteByte('$')
			i++
		case next == '&':
			out.WriteString(group(0))
			i++
		case next == '`':
			out.WriteString(s[:loc[0]])
			i++
		case next == '\'':
			out.WriteString(s[loc[1]:])
			i++
		case next >= '0' && next <= '9':
			n := int(next - '0')
			width := 1
			if i+2 < len(replacement) && replacement[i+2] >= '0' && replacement[i+2] <= '9' {
				if two := n*10 + int(replacement[i+2]-'0'); two >= 1 && two <= groups {
					n, width = two, 2
				}
			}
			if n < 1 || n > groups {
				out.WriteByte('$')
				continue
			}
			out.WriteString(group(n))
			i += width
		case next == '<':
			end := strings.IndexByte(replacement[i+2:], '>')
			if end < 0 {
				out.WriteByte('$')
				continue
			}
			name := replacement[i+2 : i+2+end]
			idx := p.re.SubexpIndex(name)
			if idx < 0 {
				out.WriteByte('$')
				continue
			}
			out.WriteString(group(idx))
			i += 2 + end
		default:
			out.WriteByte('$')
		}
	}
	return out.String()
}

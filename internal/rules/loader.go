package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/ordered"
	"github.com/vvka-141/announce/pkg/announce"
)

// Load reads and compiles the rules table at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON with comments allowed.
func Load(fsProvider filesystem.FileSystemProvider, path string) (*Table, error) {
	data, err := fsProvider.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w: %w", path, err, announce.ErrInvalidConfig)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = ordered.DecodeYAML(data)
	default:
		doc, err = ordered.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file '%s': %v: %w", path, err, announce.ErrInvalidConfig)
	}

	table, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("rules file '%s': %w", path, err)
	}
	return table, nil
}

// Build compiles a decoded rules document.
func Build(doc any) (*Table, error) {
	root, ok := doc.(ordered.Object)
	if !ok {
		return nil, fmt.Errorf("rules table must be an object keyed by entry type: %w", announce.ErrInvalidConfig)
	}

	table := NewTable()
	for _, typeMember := range root {
		patterns, ok := typeMember.Value.(ordered.Object)
		if !ok {
			return nil, fmt.Errorf("type %q: rules must be an object of pattern -> replacement: %w", typeMember.Key, announce.ErrInvalidConfig)
		}

		rs := make(RuleSet, 0, len(patterns))
		for _, ruleMember := range patterns {
			pattern, err := CompilePattern(ruleMember.Key)
			if err != nil {
				return nil, fmt.Errorf("type %q: %w", typeMember.Key, err)
			}
			replacement, err := buildReplacement(ruleMember.Value)
			if err != nil {
				return nil, fmt.Errorf("type %q, pattern %q: %w", typeMember.Key, ruleMember.Key, err)
			}
			rs = append(rs, Rule{Pattern: pattern, Replacement: replacement})
		}
		table.Add(typeMember.Key, rs)
	}
	return table, nil
}

func buildReplacement(v any) (Replacement, error) {
	switch t := v.(type) {
	case string:
		return Literal(t), nil
	case []any:
		if len(t) == 0 {
			return Replacement{}, fmt.Errorf("replacement list is empty: %w", announce.ErrInvalidConfig)
		}
		options := make([]string, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return Replacement{}, fmt.Errorf("replacement %d must be a string: %w", i, announce.ErrInvalidConfig)
			}
			options[i] = s
		}
		return Choices(options...), nil
	}
	return Replacement{}, fmt.Errorf("replacement must be a string or a list of strings: %w", announce.ErrInvalidConfig)
}

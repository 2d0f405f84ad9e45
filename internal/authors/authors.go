// Package authors maps source-control user names to social handles.
package authors

import (
	"fmt"
	"strings"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/metadata"
	"github.com/vvka-141/announce/internal/ordered"
	"github.com/vvka-141/announce/pkg/announce"
)

// Map holds username -> handle pairs. The zero value is an absent map.
type Map struct {
	handles map[string]string
	present bool
}

// New returns a present map with the given handles.
func New(handles map[string]string) Map {
	m := Map{handles: make(map[string]string, len(handles)), present: true}
	for k, v := range handles {
		m.handles[k] = v
	}
	return m
}

// Present reports whether an author map was supplied for this run.
func (m Map) Present() bool {
	return m.present
}

// Len returns the number of mapped users.
func (m Map) Len() int {
	return len(m.handles)
}

// Lookup returns the handle for username without the leading "@".
func (m Map) Lookup(username string) (string, bool) {
	h, ok := m.handles[username]
	return h, ok && h != ""
}

// Handle resolves a user to "@handle" when the username is mapped and
// otherwise to the user's display name.
func (m Map) Handle(u metadata.User) string {
	if u.Username != "" {
		if h, ok := m.Lookup(u.Username); ok {
			return "@" + h
		}
	}
	return u.Name
}

// Parse decodes a plain JSON object of username -> handle strings.
func Parse(data []byte) (Map, error) {
	return parse(data, ordered.DecodeStrictJSON)
}

func parse(data []byte, decode func([]byte) (any, error)) (Map, error) {
	doc, err := decode(data)
	if err != nil {
		return Map{}, fmt.Errorf("failed to parse author map: %v: %w", err, announce.ErrInvalidInput)
	}
	obj, ok := doc.(ordered.Object)
	if !ok {
		return Map{}, fmt.Errorf("author map must be a JSON object: %w", announce.ErrInvalidInput)
	}

	handles := make(map[string]string, len(obj))
	for _, member := range obj {
		handle, ok := member.Value.(string)
		if !ok {
			return Map{}, fmt.Errorf("author %q: handle must be a string: %w", member.Key, announce.ErrInvalidInput)
		}
		handles[member.Key] = strings.TrimPrefix(handle, "@")
	}
	return New(handles), nil
}

// Load resolves the authors input. Input that starts with "{" is an inline
// JSON object; anything else is a path read through fsProvider. Author files
// may contain comments and trailing commas, inline objects may not. Empty
// input yields an absent map.
func Load(fsProvider filesystem.FileSystemProvider, input string) (Map, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Map{}, nil
	}
	if strings.HasPrefix(input, "{") {
		return Parse([]byte(input))
	}

	data, err := fsProvider.ReadFile(input)
	if err != nil {
		return Map{}, fmt.Errorf("failed to read author map '%s': %w: %w", input, err, announce.ErrInvalidInput)
	}
	m, err := parse(data, ordered.DecodeJSON)
	if err != nil {
		return Map{}, fmt.Errorf("%s: %w", input, err)
	}
	return m, nil
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/announce/pkg/announce"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// APIConfig selects the social feed endpoint.
type APIConfig struct {
	Version string `yaml:"version"`
	BaseURL string `yaml:"base_url"`
}

// PublishConfig tunes posting.
type PublishConfig struct {
	Retries     *int   `yaml:"retries"`
	MinInterval string `yaml:"min_interval"`
}

// AuthorsValue accepts either a path or an inline mapping of
// username -> handle. Mappings are kept as their JSON encoding so they flow
// through the same inline code path as the action input.
type AuthorsValue string

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AuthorsValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = AuthorsValue(node.Value)
		return nil
	case yaml.MappingNode:
		handles := make(map[string]string, len(node.Content)/2)
		if err := node.Decode(&handles); err != nil {
			return fmt.Errorf("authors mapping must contain only strings: %w", err)
		}
		data, err := json.Marshal(handles)
		if err != nil {
			return err
		}
		*a = AuthorsValue(data)
		return nil
	default:
		return fmt.Errorf("line %d: authors must be a path or a mapping", node.Line)
	}
}

// ProjectConfig is the content of announce.yaml.
type ProjectConfig struct {
	Rules   string        `yaml:"rules"`
	Authors AuthorsValue  `yaml:"authors"`
	Types   []string      `yaml:"types"`
	API     APIConfig     `yaml:"api"`
	Publish PublishConfig `yaml:"publish"`
	Timeout string        `yaml:"timeout"`
}

// TimeoutDuration parses Timeout. ok is false when it is unset.
func (c *ProjectConfig) TimeoutDuration() (d time.Duration, ok bool, err error) {
	return parseDuration("timeout", c.Timeout)
}

// MinIntervalDuration parses Publish.MinInterval. ok is false when it is unset.
func (c *ProjectConfig) MinIntervalDuration() (d time.Duration, ok bool, err error) {
	return parseDuration("publish.min_interval", c.Publish.MinInterval)
}

func parseDuration(key, s string) (time.Duration, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s in %s: %v: %w", key, announce.ConfigFileName, err, announce.ErrInvalidConfig)
	}
	return d, true, nil
}

// Load reads announce.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, announce.ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, announce.ErrInvalidConfig)
	}
	return &cfg, nil
}

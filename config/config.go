// Package config provides codeitem configuration.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/codeitem/item"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, i.e. CODEITEM_SKIP_TESTS
const EnvPrefix = "CODEITEM"

// Output and log formats
const (
	FormatYAML    = "yaml"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config represents inspection and output settings
type Config struct {
	// IncludePrivate keeps private items
	IncludePrivate bool `yaml:"includePrivate" envconfig:"INCLUDE_PRIVATE"`

	// SkipTests skips test sources when walking directories
	SkipTests bool `yaml:"skipTests" envconfig:"SKIP_TESTS"`

	// Kinds restricts reported item kinds, all kinds when empty
	Kinds []string `yaml:"kinds,omitempty" envconfig:"KINDS"`

	// Format is the output format (yaml or json)
	Format string `yaml:"format" envconfig:"FORMAT"`

	LogLevel  string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" envconfig:"LOG_FORMAT"` // console or json
}

// Default returns default config
func Default() *Config {
	return &Config{
		IncludePrivate: true,
		Format:         FormatYAML,
		LogLevel:       zerolog.LevelInfoValue,
		LogFormat:      FormatConsole,
	}
}

// Load loads YAML config from URL on top of defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	ret := Default()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, ret.Validate()
}

// LoadEnvFile loads environment variables from a dotenv file, empty path is ignored
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %v: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with EnvPrefix environment variables
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	return c.Validate()
}

// Validate checks formats, log level and kinds
func (c *Config) Validate() error {
	switch c.Format {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unsupported format: %q", c.Format)
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unsupported log format: %q", c.LogFormat)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("unsupported log level: %q", c.LogLevel)
	}
	_, err := c.ItemKinds()
	return err
}

// ItemKinds returns configured kinds as a set, nil when all kinds are reported
func (c *Config) ItemKinds() (map[item.Kind]bool, error) {
	if len(c.Kinds) == 0 {
		return nil, nil
	}
	ret := make(map[item.Kind]bool, len(c.Kinds))
	for _, name := range c.Kinds {
		kind, err := item.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ret[kind] = true
	}
	return ret, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/naming"
)

// Naming styles. Strict is the default: hyphen-only splitting with
// mechanical first-character casing. Go delegates to strcase, which also
// normalises underscores and digits.
const (
	StyleStrict = "strict"
	StyleGo     = "go"
)

// DefaultRootName is used for the top-level declaration when no name is
// supplied on the CLI or in a config file.
const DefaultRootName = "RootObject"

// Config represents the complete configuration for tsgen
type Config struct {
	RootName string       `yaml:"root_name"`
	Naming   NamingConfig `yaml:"naming"`
	Arrays   ArraysConfig `yaml:"arrays"`
	Dev      DevConfig    `yaml:"dev"`
}

// NamingConfig controls interface and field naming
type NamingConfig struct {
	Style string `yaml:"style"`
	// ParentPrefix qualifies nested interface names with the parent
	// interface name, which removes same-key collisions.
	ParentPrefix  bool              `yaml:"parent_prefix"`
	FieldMappings map[string]string `yaml:"field_mappings"`
}

// ArraysConfig controls array handling
type ArraysConfig struct {
	// SingularizeNames names array element interfaces with the singular
	// form of the field key, e.g. "items" declares "Item".
	SingularizeNames bool `yaml:"singularize_names"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		RootName: DefaultRootName,
		Naming: NamingConfig{
			Style:         StyleStrict,
			ParentPrefix:  false,
			FieldMappings: make(map[string]string),
		},
		Arrays: ArraysConfig{
			SingularizeNames: true,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Naming.Style {
	case StyleStrict, StyleGo:
		return nil
	default:
		return fmt.Errorf("unknown naming style '%s' (expected '%s' or '%s')", c.Naming.Style, StyleStrict, StyleGo)
	}
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".tsgen.yml", ".tsgen.yaml", "tsgen.yml", "tsgen.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// override file values only when they differ from their defaults, so a
// config file still wins over an unset flag.
func LoadConfigWithCLI(configPath, cliRootName string, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliRootName != "" && cliRootName != DefaultRootName {
		cfg.RootName = cliRootName
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	return cfg, nil
}

// FieldName returns the TypeScript property name for a JSON key,
// applying naming rules.
func (c *Config) FieldName(jsonKey string) string {
	if mapped, exists := c.Naming.FieldMappings[jsonKey]; exists {
		return mapped
	}

	if c.Naming.Style == StyleGo {
		return strcase.ToLowerCamel(jsonKey)
	}
	return naming.ToCamelCase(jsonKey)
}

// InterfaceName returns the interface name derived from a JSON key.
func (c *Config) InterfaceName(jsonKey string) string {
	if c.Naming.Style == StyleGo {
		return strcase.ToCamel(jsonKey)
	}
	return naming.ToPascalCase(jsonKey)
}

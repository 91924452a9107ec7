package gccopt

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// DefaultConfigFile is the configuration file looked up when --config is not given.
const DefaultConfigFile = ".gccopt.yaml"

// Config represents the gccopt configuration
type Config struct {
	Inputs    []string            `yaml:"inputs"`
	Umbrellas []string            `yaml:"umbrellas"`
	Output    OutputConfig        `yaml:"output"`
	Export    ExportConfig        `yaml:"export"`
	Databases map[string]Database `yaml:"databases"`
}

// OutputConfig represents rendering settings
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"` // Pointer to distinguish between unset and false
}

// ColorEnabled returns true unless color output was explicitly disabled
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// ExportConfig represents export settings
type ExportConfig struct {
	Output string `yaml:"output"`
}

// Database represents database connection configuration
type Database struct {
	Driver     string `yaml:"driver"`
	Connection string `yaml:"connection"`
}

// Formats lists the output formats understood by the renderers.
var Formats = []string{"text", "json", "yaml", "markdown", "html", "xml"}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes, defaults, validates and expands a configuration document.
func ParseConfig(data []byte) (*Config, error) {
	// Strict mode to detect unknown fields
	var config Config

	err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if !slices.Contains(Formats, config.Output.Format) {
		return fmt.Errorf("%w: output.format '%s' is invalid: must be one of %s", ErrConfigValidation, config.Output.Format, strings.Join(Formats, ", "))
	}

	if len(config.Umbrellas) == 0 {
		return fmt.Errorf("%w: umbrellas must name at least one option", ErrConfigValidation)
	}

	for i, u := range config.Umbrellas {
		if u == "" {
			return fmt.Errorf("%w: umbrellas[%d] is empty", ErrConfigValidation, i)
		}
	}

	for name, db := range config.Databases {
		if db.Connection == "" {
			return fmt.Errorf("%w: databases.%s.connection is required", ErrConfigValidation, name)
		}

		if _, err := DialectForDriver(db.Driver); err != nil {
			return fmt.Errorf("%w: databases.%s: %w", ErrConfigValidation, name, err)
		}
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Inputs:    []string{},
		Umbrellas: []string{"Wall", "Wextra"},
		Output: OutputConfig{
			Format: "text",
		},
		Export: ExportConfig{
			Output: "options.db",
		},
		Databases: make(map[string]Database),
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()

	if config.Inputs == nil {
		config.Inputs = defaults.Inputs
	}

	if config.Umbrellas == nil {
		config.Umbrellas = defaults.Umbrellas
	}

	if config.Output.Format == "" {
		config.Output.Format = defaults.Output.Format
	}

	if config.Export.Output == "" {
		config.Export.Output = defaults.Export.Output
	}

	if config.Databases == nil {
		config.Databases = defaults.Databases
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in paths and connection strings
func expandConfigEnvVars(config *Config) {
	for i, input := range config.Inputs {
		config.Inputs[i] = expandEnvVars(input)
	}

	config.Export.Output = expandEnvVars(config.Export.Output)

	for name, db := range config.Databases {
		db.Driver = expandEnvVars(db.Driver)
		db.Connection = expandEnvVars(db.Connection)
		config.Databases[name] = db
	}
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

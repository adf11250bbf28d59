package queryparser

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config represents the queryparser configuration
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
}

// ParserConfig represents parser settings
type ParserConfig struct {
	// MaxDepth bounds generic-parameter nesting; 0 means the parser default.
	MaxDepth int `yaml:"max_depth"`

	// Filters adds or overrides type filter rows beyond the built-in
	// never/macro pair, e.g. for deployments with extra item kinds.
	Filters map[string]int `yaml:"filters"`
}

// OutputConfig represents CLI output settings
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         bool   `yaml:"color"`
}

// LoadConfig loads configuration from the specified file. A missing file is
// not an error; defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		return getDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return fmt.Errorf("failed to load %s: %w", file, err)
			}
		}
	}

	return nil
}

// validateConfig validates the configuration for common errors
func validateConfig(config *Config) error {
	if config.Parser.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrConfigValidation, config.Parser.MaxDepth)
	}

	validFormats := map[string]bool{
		"":     true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[config.Output.DefaultFormat] {
		return fmt.Errorf("%w: invalid output format '%s': must be json or yaml", ErrConfigValidation, config.Output.DefaultFormat)
	}

	return nil
}

// applyDefaults fills in default values for missing settings
func applyDefaults(config *Config) {
	if config.Output.DefaultFormat == "" {
		config.Output.DefaultFormat = "json"
	}
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "json",
			Color:         true,
		},
	}
}

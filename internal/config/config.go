package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Data struct {
		Directory       string `yaml:"directory" env:"DATA_DIRECTORY"`
		CoursesFile     string `yaml:"courses_file" env:"DATA_COURSES_FILE"`
		InstructorsFile string `yaml:"instructors_file" env:"DATA_INSTRUCTORS_FILE"`
	} `yaml:"data"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; defaults plus env vars are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Data.Directory = "data"
	config.Data.CoursesFile = "courses.json"
	config.Data.InstructorsFile = "instructors.json"

	config.Logging.Level = "info"
	config.Logging.Format = "pretty"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Data.Directory == "" {
		return fmt.Errorf("data directory is required")
	}
	if config.Data.CoursesFile == "" {
		return fmt.Errorf("courses file name is required")
	}
	if config.Data.InstructorsFile == "" {
		return fmt.Errorf("instructors file name is required")
	}

	switch config.Logging.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported log format: %s", config.Logging.Format)
	}

	return nil
}

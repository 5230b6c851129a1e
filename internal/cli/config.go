package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ruboto/rubotogen/internal/errors"
)

const (
	maxWalkDepth = 25
	envPrefix    = "RUBOTOGEN"
)

var configNames = []string{"rubotogen.yaml", "rubotogen.yml"}

// Config represents the rubotogen configuration from rubotogen.yaml.
// Zero SDK versions and an empty package fall back to AndroidManifest.xml.
type Config struct {
	Package     string `mapstructure:"package" json:"package"`
	MinSDK      int    `mapstructure:"min_sdk" json:"min_sdk"`
	TargetSDK   int    `mapstructure:"target_sdk" json:"target_sdk"`
	API         string `mapstructure:"api" json:"api"`
	Templates   string `mapstructure:"templates" json:"templates"`
	Destination string `mapstructure:"destination" json:"destination"`

	Generate GenerateConfig `mapstructure:"generate" json:"generate"`
}

// GenerateConfig holds the defaults for the gen commands
type GenerateConfig struct {
	MethodBase string `mapstructure:"method_base" json:"method_base"`
	Force      bool   `mapstructure:"force" json:"force"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, errors.WrapConfigurationError(configPath, "read", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, errors.WrapConfigurationError(configPath, "decode", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("package", "")
	v.SetDefault("min_sdk", 0)
	v.SetDefault("target_sdk", 0)
	v.SetDefault("api", "api.xml")
	v.SetDefault("templates", "")
	v.SetDefault("destination", ".")

	v.SetDefault("generate.method_base", "all")
	v.SetDefault("generate.force", false)
}

// Validate rejects values that can never work, before any command runs
func (c *Config) Validate() error {
	if c.MinSDK < 0 {
		return errors.ConfigurationError("min_sdk", "must not be negative")
	}
	if c.TargetSDK < 0 {
		return errors.ConfigurationError("target_sdk", "must not be negative")
	}
	if c.MinSDK > 0 && c.TargetSDK > 0 && c.MinSDK > c.TargetSDK {
		return errors.ConfigurationError("target_sdk", "must be at least min_sdk").
			WithContext("min_sdk", c.MinSDK).
			WithContext("target_sdk", c.TargetSDK)
	}
	return nil
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for rubotogen.yaml or rubotogen.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.ConfigurationError(explicitPath, "config file not found")
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", ".", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Stop at the repository root
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// ResolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > manifest > default.
func ResolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ResolveInt returns the first positive value
func ResolveInt(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// ResolveBool returns true if any of the provided values is true, so a config
// value of true cannot be switched off by an unset flag.
func ResolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration bytes, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// runtime_version: 3.7 arrives as a float
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	// Only absent keys get a default; an explicit "" selects generated names.
	if !rawKeySet(rawConfig, "devices", "names_file") {
		cfg.Devices.NamesFile = DefaultDeviceNamesFile
	}
	if !rawKeySet(rawConfig, "function_app", "name") {
		cfg.FunctionApp.Name = DefaultFunctionAppName
	}

	// Key retrieval runs unless explicitly switched off
	if !cfg.Keys.Enabled {
		cfg.Keys.Enabled = shouldEnableKeysByDefault(rawConfig)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// shouldEnableKeysByDefault reports whether keys.enabled was left unset in the raw config.
func shouldEnableKeysByDefault(rawConfig map[string]interface{}) bool {
	keysMap, ok := rawConfig["keys"].(map[string]interface{})
	if !ok {
		return true
	}

	_, explicitlySet := keysMap["enabled"]
	return !explicitlySet
}

// rawKeySet reports whether section.key appears in the raw config,
// including as an empty string.
func rawKeySet(rawConfig map[string]interface{}, section, key string) bool {
	sectionMap, ok := rawConfig[section].(map[string]interface{})
	if !ok {
		return false
	}

	_, set := sectionMap[key]
	return set
}

// FindConfigFile returns the default config file in the current directory.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, DefaultConfigFilename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
	}

	return path, nil
}

// Save writes a configuration to a file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"uniconsole/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/uniconsole"
	configFileName = "config.yaml"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from a single specified directory.
// The directory may contain config.yaml and the default manifest directory.
func LoadConfig(configPath string) (UniconsoleConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig() // Start with default config

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			config.applyPathDefaults(configPath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return UniconsoleConfig{}, NewConfigurationError(configFilePath, configFileName, "io", err.Error())
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		// config malformed
		return UniconsoleConfig{}, NewConfigurationError(configFilePath, configFileName, "parse", err.Error())
	}
	config.applyPathDefaults(configPath)

	if errs := config.Validate(); errs.HasErrors() {
		return UniconsoleConfig{}, NewConfigurationErrorWithDetails(configFilePath, configFileName, "validation", "invalid configuration", errs.Error())
	}

	logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// applyPathDefaults fills values that depend on the config directory.
func (c *UniconsoleConfig) applyPathDefaults(configPath string) {
	if c.Manifests.Dir == "" {
		c.Manifests.Dir = filepath.Join(configPath, DefaultManifestDirName)
	}
}

package config

import "time"

// UniconsoleConfig is the top-level configuration structure for uniconsole.
type UniconsoleConfig struct {
	Console   ConsoleConfig   `yaml:"console"`
	Manifests ManifestsConfig `yaml:"manifests"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ConsoleConfig configures the interactive terminal host.
type ConsoleConfig struct {
	Prompt       string        `yaml:"prompt,omitempty"`       // Prompt shown before input (default: "> ")
	Banner       string        `yaml:"banner,omitempty"`       // Help banner printed on start and clear
	Color        bool          `yaml:"color"`                  // Color warnings and errors
	Spinner      bool          `yaml:"spinner"`                // Show a spinner for slow commands
	SpinnerDelay time.Duration `yaml:"spinnerDelay,omitempty"` // Delay before the spinner appears
}

// ManifestsConfig configures YAML command manifests.
type ManifestsConfig struct {
	Dir      string        `yaml:"dir,omitempty"`      // Manifest directory (default: <config-path>/commands)
	Watch    bool          `yaml:"watch"`              // Rescan commands when manifests change
	Debounce time.Duration `yaml:"debounce,omitempty"` // Quiet period before a rescan
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error (default: warn)
}

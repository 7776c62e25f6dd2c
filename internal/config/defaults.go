package config

import "time"

const (
	// DefaultPrompt is the console prompt
	DefaultPrompt = "> "

	// DefaultBanner is printed when the console starts and after clear
	DefaultBanner = "Type 'help' for a list of commands"

	// DefaultManifestDirName is the manifest directory inside the config directory
	DefaultManifestDirName = "commands"

	// DefaultLogLevel keeps diagnostics out of the console unless something is wrong
	DefaultLogLevel = "warn"
)

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() UniconsoleConfig {
	return UniconsoleConfig{
		Console: ConsoleConfig{
			Prompt:       DefaultPrompt,
			Banner:       DefaultBanner,
			Color:        true,
			Spinner:      true,
			SpinnerDelay: 300 * time.Millisecond,
		},
		Manifests: ManifestsConfig{
			Watch:    true,
			Debounce: 250 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

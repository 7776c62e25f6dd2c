package cmd

import (
	"uniconsole/internal/commands"
	"uniconsole/internal/config"
	"uniconsole/internal/demo"
	"uniconsole/internal/manifest"
	"uniconsole/pkg/logging"
)

// buildRegistry registers the sample commands and the manifest directory.
func buildRegistry(cfg config.UniconsoleConfig, manifestDir string) (*commands.Registry, *manifest.Source) {
	if manifestDir == "" {
		manifestDir = cfg.Manifests.Dir
	}
	source := manifest.NewSource(manifestDir)
	registry := commands.NewRegistry(demo.Source(nil), source)

	snapshot := registry.Populate()
	logging.Debug("CLI", "Registered %d commands from built-ins, samples and %s", snapshot.Len(), manifestDir)
	return registry, source
}

// loadConfig loads configuration and initializes logging. verbose forces debug
// logging.
func loadConfig(configPath string, verbose bool) (config.UniconsoleConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.UniconsoleConfig{}, err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	if verbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, logOutput)
	return cfg, nil
}

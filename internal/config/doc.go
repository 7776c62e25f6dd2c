// Package config provides configuration management for uniconsole.
//
// Configuration is loaded from a single directory. The default directory is
// ~/.config/uniconsole, but commands accept a custom directory through the
// --config-path flag.
//
// # Configuration Directory
//
// The directory contains:
//   - config.yaml (main configuration file, optional)
//   - commands/ (default location of YAML command manifests)
//
// A missing config.yaml is not an error: GetDefaultConfig values are used.
// Values present in the file override the defaults field by field.
//
// # Example
//
//	console:
//	  prompt: "uni> "
//	  color: true
//	  spinner: true
//	  spinnerDelay: 500ms
//	manifests:
//	  dir: /opt/uniconsole/commands
//	  watch: true
//	  debounce: 250ms
//	logging:
//	  level: warn
//
// # Validation
//
// Validate returns a ValidationErrors collection describing every invalid
// field, so all problems can be reported at once.
package config

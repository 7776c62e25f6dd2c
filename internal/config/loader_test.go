package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	expected := GetDefaultConfig()
	expected.Manifests.Dir = filepath.Join(dir, DefaultManifestDirName)
	assert.Equal(t, expected, cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `console:
  prompt: "uni> "
  spinner: false
  spinnerDelay: 1s
manifests:
  dir: /opt/commands
  debounce: 50ms
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "uni> ", cfg.Console.Prompt)
	assert.False(t, cfg.Console.Spinner)
	assert.Equal(t, time.Second, cfg.Console.SpinnerDelay)
	assert.Equal(t, "/opt/commands", cfg.Manifests.Dir)
	assert.Equal(t, 50*time.Millisecond, cfg.Manifests.Debounce)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched fields keep their defaults
	assert.Equal(t, DefaultBanner, cfg.Console.Banner)
	assert.True(t, cfg.Console.Color)
	assert.True(t, cfg.Manifests.Watch)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("console: [unclosed"), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)

	var configErr ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "parse", configErr.ErrorType)
	assert.Equal(t, "config.yaml", configErr.FileName)
	assert.Contains(t, configErr.DetailedError(), "Type: parse")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := `logging:
  level: loud
manifests:
  debounce: -1s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)

	var configErr ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "validation", configErr.ErrorType)
	assert.Contains(t, configErr.Details, "logging.level")
	assert.Contains(t, configErr.Details, "manifests.debounce")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UniconsoleConfig)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*UniconsoleConfig) {},
		},
		{
			name:   "negative spinner delay",
			mutate: func(c *UniconsoleConfig) { c.Console.SpinnerDelay = -time.Second },
			fields: []string{"console.spinnerDelay"},
		},
		{
			name:   "unknown log level",
			mutate: func(c *UniconsoleConfig) { c.Logging.Level = "trace" },
			fields: []string{"logging.level"},
		},
		{
			name: "all problems reported",
			mutate: func(c *UniconsoleConfig) {
				c.Console.SpinnerDelay = -1
				c.Manifests.Debounce = -1
				c.Logging.Level = "nope"
			},
			fields: []string{"console.spinnerDelay", "manifests.debounce", "logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			errs := cfg.Validate()
			assert.Equal(t, len(tt.fields) > 0, errs.HasErrors())

			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "bad")
	assert.Equal(t, "field 'a': bad", errs.Error())

	errs.Add("b", "worse")
	assert.Equal(t, "validation failed: field 'a': bad; field 'b': worse", errs.Error())
}

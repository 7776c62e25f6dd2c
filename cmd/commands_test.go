package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniconsole/internal/config"
)

func testRegistryConfig(t *testing.T) config.UniconsoleConfig {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Manifests.Dir = t.TempDir()
	return cfg
}

func TestPrintCommands(t *testing.T) {
	registry, _ := buildRegistry(testRegistryConfig(t), "")

	var buf bytes.Buffer
	require.NoError(t, printCommands(&buf, registry.Snapshot(), "", false))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Audio.reset")
	assert.Contains(t, out, "Video.reset")
	assert.Contains(t, out, "setMode")
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "Prints a manual for a specific command")
	assert.Contains(t, out, "Total: 13 commands")
}

func TestPrintCommands_GroupFilter(t *testing.T) {
	registry, _ := buildRegistry(testRegistryConfig(t), "")

	var buf bytes.Buffer
	require.NoError(t, printCommands(&buf, registry.Snapshot(), "math", false))
	assert.Contains(t, buf.String(), "divide")
	assert.NotContains(t, buf.String(), "ping")
	assert.Contains(t, buf.String(), "Total: 2 commands")

	buf.Reset()
	require.NoError(t, printCommands(&buf, registry.Snapshot(), "nothing", false))
	assert.Equal(t, "No commands found\n", buf.String())
}

func TestBuildRegistry_ManifestOverride(t *testing.T) {
	dir := t.TempDir()
	content := "group: Greetings\ncommands:\n  - name: wave\n    template: 'o/'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greetings.yaml"), []byte(content), 0644))

	registry, source := buildRegistry(testRegistryConfig(t), dir)
	assert.Equal(t, dir, source.Dir())
	assert.Len(t, registry.Snapshot().Lookup("wave"), 1)
}

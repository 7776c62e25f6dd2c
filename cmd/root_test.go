package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "uniconsole", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "console")
	assert.Contains(t, names, "commands")
	assert.Contains(t, names, "version")
}

func TestConsoleFlags(t *testing.T) {
	for _, name := range []string{"config-path", "manifests", "no-color", "no-watch", "verbose"} {
		assert.NotNil(t, consoleCmd.Flags().Lookup(name), name)
	}
}

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (invalid configuration, terminal failure).
	ExitCodeError = 1
)

// rootCmd represents the base command for the uniconsole application.
var rootCmd = &cobra.Command{
	Use:   "uniconsole",
	Short: "Interactive command console",
	Long: `uniconsole is an interactive command console. Commands are registered by
the host program or declared in YAML manifests, resolved by name and
argument count, and invoked with typed arguments.

Run 'uniconsole console' to start a session or 'uniconsole commands' to
list what is registered.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "uniconsole version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
}

// versionString renders the version with the toolchain and platform.
func versionString() string {
	return fmt.Sprintf("uniconsole version %s (%s %s/%s)", rootCmd.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the uniconsole version",
		Long:  `Prints the uniconsole version together with the Go runtime and platform it was built for.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

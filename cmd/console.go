package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"uniconsole/internal/config"
	"uniconsole/internal/console"
	"uniconsole/internal/manifest"
	"uniconsole/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	consoleConfigPath string
	consoleManifests  string
	consoleNoColor    bool
	consoleNoWatch    bool
	consoleVerbose    bool
)

// logOutput receives diagnostic logs. Console output goes through the display.
var logOutput = os.Stderr

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start an interactive command console",
	Long: `Starts an interactive console session.

Type a command name followed by its arguments separated by spaces. Names are
matched case-insensitively. When two commands share a name and parameter
types, use the Group.name form shown by 'help'.

Key bindings:
  TAB        complete the last word, or list candidates
  Up/Down    navigate history
  Ctrl+C     cancel the current line
  Ctrl+D     exit

Commands declared in YAML manifests are loaded from the manifest directory
and reloaded when the files change.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().StringVar(&consoleConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	consoleCmd.Flags().StringVar(&consoleManifests, "manifests", "", "Manifest directory (default: from config)")
	consoleCmd.Flags().BoolVar(&consoleNoColor, "no-color", false, "Disable colored output")
	consoleCmd.Flags().BoolVar(&consoleNoWatch, "no-watch", false, "Do not reload commands when manifests change")
	consoleCmd.Flags().BoolVar(&consoleVerbose, "verbose", false, "Enable debug logging")
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logging.Info("CLI", "Received termination signal, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	cfg, err := loadConfig(consoleConfigPath, consoleVerbose)
	if err != nil {
		return err
	}

	registry, source := buildRegistry(cfg, consoleManifests)

	if cfg.Manifests.Watch && !consoleNoWatch {
		watcher := manifest.NewWatcher(source.Dir(), cfg.Manifests.Debounce, func() {
			snapshot := registry.Populate()
			logging.Info("CLI", "Manifests changed, %d commands registered", snapshot.Len())
		})
		if err := watcher.Start(ctx); err != nil {
			logging.Warn("CLI", "Manifest reload disabled: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	display := console.NewTerminalDisplay(cfg.Console.Color && !consoleNoColor)
	session := console.NewSession(registry, display, console.WithBanner(cfg.Console.Banner))
	repl := console.NewREPL(session, display, console.REPLOptions{
		Prompt:       cfg.Console.Prompt,
		Spinner:      cfg.Console.Spinner,
		SpinnerDelay: cfg.Console.SpinnerDelay,
	})

	return repl.Run(ctx)
}

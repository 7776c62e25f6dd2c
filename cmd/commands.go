package cmd

import (
	"fmt"
	"io"
	"strings"

	"uniconsole/internal/commands"
	"uniconsole/internal/config"
	pkgstrings "uniconsole/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	commandsConfigPath string
	commandsManifests  string
	commandsGroup      string
	commandsNoColor    bool
)

// commandsCmd lists registered commands
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List registered commands",
	Long: `Lists every command a console session would register: built-ins, the
sample commands and commands declared in manifests. The NAME column shows the
form to type; ambiguous commands are shown as Group.name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(commandsConfigPath, false)
		if err != nil {
			return err
		}
		registry, _ := buildRegistry(cfg, commandsManifests)
		return printCommands(cmd.OutOrStdout(), registry.Snapshot(), commandsGroup, !commandsNoColor)
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().StringVar(&commandsConfigPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	commandsCmd.Flags().StringVar(&commandsManifests, "manifests", "", "Manifest directory (default: from config)")
	commandsCmd.Flags().StringVar(&commandsGroup, "group", "", "Only list commands of this group")
	commandsCmd.Flags().BoolVar(&commandsNoColor, "no-color", false, "Disable colored output")
}

// printCommands renders the snapshot as a table.
func printCommands(w io.Writer, snapshot *commands.Snapshot, group string, useColor bool) error {
	header := func(s string) any {
		if useColor {
			return text.FgHiCyan.Sprint(s)
		}
		return s
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{header("NAME"), header("PARAMS"), header("GROUP"), header("DESCRIPTION")})

	count := 0
	for _, d := range snapshot.Descriptors() {
		if group != "" && !strings.EqualFold(d.Group(), group) {
			continue
		}
		t.AppendRow(table.Row{
			snapshot.DisplayName(d),
			strings.Join(d.ParamNames(), " "),
			d.Group(),
			pkgstrings.TruncateDescription(d.Description(), pkgstrings.DefaultDescriptionMaxLen),
		})
		count++
	}

	if count == 0 {
		_, err := fmt.Fprintln(w, "No commands found")
		return err
	}

	t.Render()
	_, err := fmt.Fprintf(w, "Total: %d commands\n", count)
	return err
}

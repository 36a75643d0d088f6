package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/codebrowser/internal/config"
	"github.com/zjrosen/codebrowser/internal/keys"
	"github.com/zjrosen/codebrowser/internal/lineops"
	"github.com/zjrosen/codebrowser/internal/presentation"
)

var keysJSON bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long: `List the configured chords, single-key bindings and bracket pairs,
followed by the editor's fixed operation keys.

Chords are two keys pressed in sequence, for example "esc down".

Examples:
  codebrowser keys
  codebrowser keys --json | jq '.[] | select(.kind == "chord")'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		km, err := cfg.Keymap.Build()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		dtos := presentation.FromBindings(km.Bindings(), keys.DefaultEditorKeyMap().Operations())
		return presentation.NewFormatter(cmd.OutOrStdout(), keysJSON).FormatBindings(dtos)
	},
}

var keysSetCmd = &cobra.Command{
	Use:   "set KEY OPERATION",
	Short: "Bind a single key to an operation",
	Long: `Bind a single key to a line operation in the config file.

Use an empty operation to unbind a default key. Run "codebrowser keys ops"
for the list of operation IDs.

Examples:
  codebrowser keys set ctrl+k line.duplicate_below
  codebrowser keys set ctrl+w ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		name := keys.TranslateToTerminal(args[0])
		if err := config.SaveBinding(path, name, args[1]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s -> %q in %s\n", name, args[1], path)
		return nil
	},
}

var keysOpsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List operation IDs that can be bound",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range lineops.DefaultRegistry().IDs() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output as JSON")
	keysCmd.AddCommand(keysSetCmd, keysOpsCmd)
	rootCmd.AddCommand(keysCmd)
}

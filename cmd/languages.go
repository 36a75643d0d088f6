package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/codebrowser/internal/config"
	"github.com/zjrosen/codebrowser/internal/presentation"
)

var languagesJSON bool

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the file extension to language table",
	Long: `List the table that maps file extensions to language labels.

The language label decides the line comment marker used by
line.toggle_comment. Extensions mapped to an empty label are disabled.

Examples:
  # List all mappings
  codebrowser languages

  # As JSON
  codebrowser languages --json | jq '.[] | select(.language == "python")'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		dtos := presentation.FromLanguageEntries(cfg.LanguageMap().Entries())
		return presentation.NewFormatter(cmd.OutOrStdout(), languagesJSON).FormatLanguages(dtos)
	},
}

var languagesSetCmd = &cobra.Command{
	Use:   "set EXT LANGUAGE",
	Short: "Map a file extension to a language label",
	Long: `Map a file extension to a language label in the config file.

Comments and other settings in the file are preserved. Use an empty label
to disable an extension.

Examples:
  codebrowser languages set star python
  codebrowser languages set .tf hcl
  codebrowser languages set md ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if err := config.SaveLanguage(path, args[0], args[1]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s -> %q in %s\n", args[0], args[1], path)
		return nil
	},
}

func init() {
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "output as JSON")
	languagesCmd.AddCommand(languagesSetCmd)
	rootCmd.AddCommand(languagesCmd)
}


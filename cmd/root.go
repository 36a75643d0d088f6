package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/codebrowser/internal/config"
	"github.com/zjrosen/codebrowser/internal/editor"
	"github.com/zjrosen/codebrowser/internal/log"
	"github.com/zjrosen/codebrowser/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the buffer.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	localConfigPath = ".codebrowser/config.yaml"
	debugLogPath    = "codebrowser-debug.log"
)

var (
	version    = "dev"
	cfgFile    string
	configUsed string
	cfg        config.Config
	configErr  error
)

var rootCmd = &cobra.Command{
	Use:   "codebrowser [FILE]",
	Short: "A terminal editor with structural line operations",
	Long: `A terminal text editor built around structural line operations:
move, duplicate and comment lines, open lines above or below, delete words
and insert bracket pairs. Operations are bound to single keys or two-key
chords (esc down moves the current line down).

Opening a file that does not exist starts an empty buffer that is created
on the first save. Without a FILE argument the buffer is a scratch buffer.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/codebrowser/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false,
		"write a debug log to "+debugLogPath+" (also enabled by "+log.EnvDebug+")")
	rootCmd.Flags().StringP("language", "l", "",
		"language label for the buffer, overriding the file extension")
	rootCmd.Flags().Bool("no-watch", false,
		"do not reload the file when it changes on disk")
}

func initConfig() {
	cfg, configUsed, configErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig reads configuration into v and returns it with the path of the
// file used. When no file exists one is written with the defaults.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	defaults := config.Defaults()
	v.SetDefault("languages", defaults.Languages)
	v.SetDefault("keymap.chords", defaults.Keymap.Chords)
	v.SetDefault("keymap.bindings", defaults.Keymap.Bindings)
	v.SetDefault("keymap.pairs", defaults.Keymap.Pairs)
	v.SetDefault("watch.enabled", defaults.Watch.Enabled)
	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
	v.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	v.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	v.SetDefault("ui.tab_width", defaults.UI.TabWidth)

	home, _ := os.UserHomeDir()
	userDir := filepath.Join(home, ".config", "codebrowser")

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		// Config lookup order:
		// 1. .codebrowser/config.yaml (current directory)
		// 2. ~/.config/codebrowser/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			v.AddConfigPath(userDir)
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file found anywhere - create the user default
			defaultPath := filepath.Join(userDir, "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				v.SetConfigFile(defaultPath)
				_ = v.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		case explicit != "" && errors.Is(err, os.ErrNotExist):
			return config.Config{}, explicit, fmt.Errorf("reading config %s: %w", explicit, err)
		default:
			return config.Config{}, v.ConfigFileUsed(), fmt.Errorf("reading config: %w", err)
		}
	}

	var out config.Config
	if err := v.Unmarshal(&out); err != nil {
		return config.Config{}, v.ConfigFileUsed(), fmt.Errorf("decoding config: %w", err)
	}
	out = config.MergeDefaults(out)
	used := v.ConfigFileUsed()
	log.Debug(log.CatConfig, "loaded config", "path", used)
	return out, used, nil
}

// configPath is where config edits are saved.
func configPath() string {
	if configUsed != "" {
		return configUsed
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "codebrowser", "config.yaml")
}

func runApp(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	if log.Enabled(debug) {
		stop, err := log.Start(debugLogPath, os.Getenv(log.EnvDebug))
		if err != nil {
			return err
		}
		defer stop()
	}

	opts, err := editorOptions(cmd, args)
	if err != nil {
		return err
	}

	if opts.Path != "" && cfg.Watch.Enabled {
		if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
			w, err := watcher.New(watcher.Config{Path: opts.Path, Debounce: cfg.Watch.Debounce})
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			// Clean up watcher resources
			defer func() { _ = w.Stop() }()

			changes, err := w.Start()
			if err != nil {
				log.Warn(log.CatWatcher, "file watching disabled", "error", err)
			} else {
				opts.Watch = changes
			}
		}
	}

	model, err := editor.Open(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// editorOptions builds the editor options from configuration and flags.
func editorOptions(cmd *cobra.Command, args []string) (editor.Options, error) {
	km, err := cfg.Keymap.Build()
	if err != nil {
		return editor.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	language, _ := cmd.Flags().GetString("language")

	opts := editor.Options{
		Language:        language,
		Languages:       cfg.LanguageMap(),
		Keymap:          km,
		ShowLineNumbers: cfg.UI.ShowLineNumbers,
		ShowStatusBar:   cfg.UI.ShowStatusBar,
		TabWidth:        cfg.UI.TabWidth,
	}
	if len(args) == 1 {
		opts.Path = args[0]
	}
	return opts, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

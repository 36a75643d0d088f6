// Package config provides configuration types and defaults for codebrowser.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zjrosen/codebrowser/internal/keys"
	"github.com/zjrosen/codebrowser/internal/keyseq"
	"github.com/zjrosen/codebrowser/internal/langmap"
	"github.com/zjrosen/codebrowser/internal/lineops"
	"github.com/zjrosen/codebrowser/internal/log"
	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// Config holds all configuration options for codebrowser.
type Config struct {
	// Languages maps a file extension (or dot-less basename such as
	// "makefile") to a language label. Merged over the built-in table.
	Languages map[string]string `mapstructure:"languages"`
	Keymap    KeymapConfig      `mapstructure:"keymap"`
	Watch     WatchConfig       `mapstructure:"watch"`
	UI        UIConfig          `mapstructure:"ui"`
}

// ChordConfig binds a two-key sequence such as "esc down" to an operation.
type ChordConfig struct {
	Keys string `mapstructure:"keys"`
	Op   string `mapstructure:"op"`
}

// Split returns the two key names of the chord.
func (c ChordConfig) Split() (first, second string, err error) {
	fields := strings.Fields(c.Keys)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("chord %q must be two space-separated keys", c.Keys)
	}
	return keys.TranslateToTerminal(fields[0]), keys.TranslateToTerminal(fields[1]), nil
}

// KeymapConfig configures the key dispatcher.
type KeymapConfig struct {
	Chords   []ChordConfig     `mapstructure:"chords"`
	Bindings map[string]string `mapstructure:"bindings"` // key name -> operation ID, "" unbinds
	Pairs    []string          `mapstructure:"pairs"`    // two-character strings, e.g. "()"
}

// WatchConfig controls reloading the open file when it changes on disk.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar"`
	TabWidth        int  `mapstructure:"tab_width"` // spaces inserted by tab
}

// DefaultChordConfigs returns the built-in chords in config form.
func DefaultChordConfigs() []ChordConfig {
	out := make([]ChordConfig, 0, len(keyseq.DefaultChords))
	for _, c := range keyseq.DefaultChords {
		out = append(out, ChordConfig{Keys: c.Chord.String(), Op: c.OperationID})
	}
	return out
}

// DefaultPairs returns the built-in bracket pairs in config form.
func DefaultPairs() []string {
	out := make([]string, 0, len(lineops.DefaultPairs))
	for open, closing := range lineops.DefaultPairs {
		out = append(out, open+closing)
	}
	sort.Strings(out)
	return out
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Languages: maps.Clone(langmap.DefaultLanguages),
		Keymap: KeymapConfig{
			Chords:   DefaultChordConfigs(),
			Bindings: maps.Clone(keyseq.DefaultKeys),
			Pairs:    DefaultPairs(),
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 100 * time.Millisecond,
		},
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			TabWidth:        4,
		},
	}
}

// MergeDefaults layers the tables of c over the built-in ones. Viper replaces
// a map default wholesale when the file sets the same key, so a file listing
// one language or one binding would otherwise drop every other entry. An
// empty value in c still disables a language or unbinds a key.
func MergeDefaults(c Config) Config {
	defaults := Defaults()

	langs := defaults.Languages
	maps.Copy(langs, c.Languages)
	c.Languages = langs

	bindings := defaults.Keymap.Bindings
	maps.Copy(bindings, c.Keymap.Bindings)
	c.Keymap.Bindings = bindings

	// Lists replace the defaults when present; an explicit [] clears them.
	if c.Keymap.Chords == nil {
		c.Keymap.Chords = defaults.Keymap.Chords
	}
	if c.Keymap.Pairs == nil {
		c.Keymap.Pairs = defaults.Keymap.Pairs
	}

	return c
}

// LanguageMap returns the extension table built from the configuration.
func (c Config) LanguageMap() *langmap.Map {
	if len(c.Languages) == 0 {
		return langmap.Default()
	}
	return langmap.New(c.Languages)
}

// Build turns the keymap configuration into a dispatcher keymap.
// An empty configuration yields the built-in keymap.
func (k KeymapConfig) Build() (*keyseq.Keymap, error) {
	if len(k.Chords) == 0 && len(k.Bindings) == 0 && len(k.Pairs) == 0 {
		return keyseq.DefaultKeymap(), nil
	}

	km := keyseq.NewKeymap(lineops.DefaultRegistry())

	for i, c := range k.Chords {
		first, second, err := c.Split()
		if err != nil {
			return nil, fmt.Errorf("keymap.chords[%d]: %w", i, err)
		}
		if err := km.BindChord(first, second, c.Op); err != nil {
			return nil, fmt.Errorf("keymap.chords[%d]: %w", i, err)
		}
	}

	names := make([]string, 0, len(k.Bindings))
	for name := range k.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		op := k.Bindings[name]
		if op == "" {
			continue
		}
		if err := km.BindKey(keys.TranslateToTerminal(name), op); err != nil {
			return nil, fmt.Errorf("keymap.bindings.%s: %w", name, err)
		}
	}

	for i, p := range k.Pairs {
		g := textbuf.Graphemes(p)
		if len(g) != 2 {
			return nil, fmt.Errorf("keymap.pairs[%d]: %q must be exactly two characters", i, p)
		}
		if err := km.BindPair(g[0], g[1]); err != nil {
			return nil, fmt.Errorf("keymap.pairs[%d]: %w", i, err)
		}
	}

	return km, nil
}

// ValidateKeymap checks keymap configuration for errors.
// Returns nil if the keymap is valid or empty (will use defaults).
func ValidateKeymap(k KeymapConfig) error {
	_, err := k.Build()
	return err
}

// ValidateWatch checks watcher configuration for errors.
func ValidateWatch(w WatchConfig) error {
	if w.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", w.Debounce)
	}
	if w.Debounce > 10*time.Second {
		return fmt.Errorf("watch.debounce must be at most 10s, got %s", w.Debounce)
	}
	return nil
}

// ValidateUI checks user interface configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.TabWidth < 1 || ui.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", ui.TabWidth)
	}
	return nil
}

// ValidateLanguages checks the extension table for errors.
func ValidateLanguages(langs map[string]string) error {
	for ext := range langs {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("languages: empty extension")
		}
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("languages: extension %q must not contain a path separator", ext)
		}
	}
	return nil
}

// Validate runs every section validator.
func (c Config) Validate() error {
	if err := ValidateLanguages(c.Languages); err != nil {
		return err
	}
	if err := ValidateKeymap(c.Keymap); err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}
	if err := ValidateWatch(c.Watch); err != nil {
		return err
	}
	return ValidateUI(c.UI)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Codebrowser Configuration

# Extra or overriding file type mappings (extension -> language label).
# Built-in mappings cover python, yaml, shell, toml, ruby, go and more.
# Set a value to "" to disable a built-in mapping.
languages:
  py: python
  yaml: yaml
  yml: yaml
  # jsonc: json

# Key dispatch
keymap:
  # Two-key sequences: the first key is remembered, the second fires the operation.
  chords:
    - keys: esc down
      op: line.move_down
    - keys: esc up
      op: line.move_up
    - keys: ctrl+@ backspace
      op: word.delete_left

  # Single keys. Set an entry to "" to unbind a built-in key.
  bindings:
    ctrl+w: word.delete_left
    alt+d: word.delete_right
    ctrl+_: line.toggle_comment
    alt+down: line.move_down
    alt+up: line.move_up

  # Typing the first character inserts both and puts the cursor between them.
  pairs:
    - "()"
    - "[]"
    - "{}"

# Operations:
#   line.move_down, line.move_up            swap the line or selected block with its neighbour
#   line.duplicate_below, line.duplicate_above
#   line.newline_below, line.newline_above  open a blank line
#   line.toggle_comment                     python, yaml, shell, toml, ruby, perl, r, makefile, dockerfile
#   document.goto_start, document.goto_end
#   word.delete_left, word.delete_right

# Reload the open file when it changes on disk (only if there are no unsaved edits)
watch:
  enabled: true
  debounce: 100ms

# UI settings
ui:
  show_line_numbers: true
  show_status_bar: true
  tab_width: 4
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

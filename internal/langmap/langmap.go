// Package langmap resolves a file path to the language label the editor uses
// for comment markers and the status line.
package langmap

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/zjrosen/codebrowser/internal/log"
)

// DefaultLanguages maps extensions (and dot-less basenames) to labels.
// Keys are lower case.
var DefaultLanguages = map[string]string{
	"py":         "python",
	"pyw":        "python",
	"yaml":       "yaml",
	"yml":        "yaml",
	"json":       "json",
	"toml":       "toml",
	"md":         "markdown",
	"markdown":   "markdown",
	"sh":         "shell",
	"bash":       "shell",
	"zsh":        "shell",
	"rb":         "ruby",
	"pl":         "perl",
	"r":          "r",
	"go":         "go",
	"rs":         "rust",
	"js":         "javascript",
	"ts":         "typescript",
	"java":       "java",
	"c":          "c",
	"h":          "c",
	"cpp":        "cpp",
	"html":       "html",
	"css":        "css",
	"sql":        "sql",
	"makefile":   "makefile",
	"dockerfile": "dockerfile",
}

// Entry is one extension mapping.
type Entry struct {
	Extension string
	Language  string
}

// Map resolves paths to language labels.
type Map struct {
	entries map[string]string
}

// New creates a map from entries. Keys are normalised to lower case without a
// leading dot.
func New(entries map[string]string) *Map {
	m := &Map{entries: make(map[string]string, len(entries))}
	for ext, lang := range entries {
		m.Set(ext, lang)
	}
	return m
}

// Default returns a map over DefaultLanguages.
func Default() *Map {
	return New(DefaultLanguages)
}

// Set adds or replaces a mapping.
func (m *Map) Set(ext, language string) {
	m.entries[normalize(ext)] = language
}

// Extension returns the lookup key for path: the text after the last dot of
// the basename, or the whole basename when it has no dot ("Makefile").
func Extension(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return normalize(base[i+1:])
	}
	return normalize(base)
}

// Lookup returns the language for path.
func (m *Map) Lookup(path string) (string, bool) {
	ext := Extension(path)
	lang, ok := m.entries[ext]
	if !ok || lang == "" {
		log.Debug(log.CatLangs, "no language for file", "path", path, "ext", ext)
		return "", false
	}
	return lang, true
}

// Entries lists every mapping sorted by extension.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for ext, lang := range m.entries {
		out = append(out, Entry{Extension: ext, Language: lang})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Extension < out[j].Extension })
	return out
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// Package log is the categorised debug log for codebrowser.
//
// Nothing is written until Start runs, so every package logs unconditionally.
// The value of CODEBROWSER_DEBUG may name the categories to keep, e.g.
// "keys,ops"; "1", "true" and "all" keep every category.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig  Category = "config"  // Configuration loading/saving
	CatEditor  Category = "editor"  // Editing surface updates and file reloads
	CatKeys    Category = "keys"    // Chord state and key dispatch
	CatOps     Category = "ops"     // Line operations applied to the buffer
	CatWatcher Category = "watcher" // File watcher events
	CatLangs   Category = "langs"   // Extension to language resolution
)

// Categories lists every category in display order.
var Categories = []Category{CatConfig, CatEditor, CatKeys, CatOps, CatWatcher, CatLangs}

// EnvDebug enables logging when set to any non-empty value.
const EnvDebug = "CODEBROWSER_DEBUG"

// Enabled reports whether debug logging was requested through the flag or env.
func Enabled(flag bool) bool {
	return flag || os.Getenv(EnvDebug) != ""
}

// ParseFilter turns a comma-separated category list into a filter. A nil
// filter keeps every category.
func ParseFilter(spec string) (map[Category]bool, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	switch spec {
	case "", "1", "true", "all":
		return nil, nil
	}

	filter := make(map[Category]bool)
	for _, name := range strings.Split(spec, ",") {
		cat := Category(strings.TrimSpace(name))
		if cat == "" {
			continue
		}
		if !known(cat) {
			return nil, fmt.Errorf("unknown log category %q", cat)
		}
		filter[cat] = true
	}
	return filter, nil
}

func known(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

type sink struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	only     map[Category]bool
}

var (
	currentMu sync.Mutex
	current   *sink
)

// Start opens the debug log at path through tea.LogToFile, so Bubble Tea's
// own output lands in the same file. filter is parsed by ParseFilter. The
// returned func closes the file and silences the log again.
func Start(path, filter string) (func(), error) {
	only, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "codebrowser")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	install(&sink{w: f, only: only})
	return func() {
		install(nil)
		_ = f.Close()
	}, nil
}

// StartWriter sends the log to w and returns a func restoring the previous
// destination.
func StartWriter(w io.Writer, filter string) (func(), error) {
	only, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	prev := install(&sink{w: w, only: only})
	return func() { install(prev) }, nil
}

func install(s *sink) (prev *sink) {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev, current = current, s
	return prev
}

func active() *sink {
	currentMu.Lock()
	defer currentMu.Unlock()
	return current
}

// SetMinLevel drops messages below level.
func SetMinLevel(level Level) {
	if s := active(); s != nil {
		s.mu.Lock()
		s.minLevel = level
		s.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	emit(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	emit(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	emit(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	emit(LevelError, cat, msg, fields...)
}

// ErrorErr logs msg with err appended as the last field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	emit(LevelError, cat, msg, append(fields, "error", errText)...)
}

// emit writes one line:
//
//	2025-12-06T10:45:00 [DEBUG] [keys] chord matched first=esc second=down
func emit(level Level, cat Category, msg string, fields ...any) {
	s := active()
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.minLevel || (s.only != nil && !s.only[cat]) {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(s.w, b.String())
}

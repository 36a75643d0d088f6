package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/codebrowser/internal/keys"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	json   bool
}

// NewFormatter creates a new formatter. With jsonOutput set every list is
// written as indented JSON, otherwise as aligned text columns.
func NewFormatter(writer io.Writer, jsonOutput bool) *Formatter {
	return &Formatter{
		writer: writer,
		json:   jsonOutput,
	}
}

// FormatLanguages formats the extension table
func (f *Formatter) FormatLanguages(languages []LanguageDTO) error {
	if f.json {
		return f.encode(languages)
	}
	rows := make([][]string, len(languages))
	for i, l := range languages {
		lang := l.Language
		if lang == "" {
			lang = "(disabled)"
		}
		rows[i] = []string{"." + l.Extension, lang}
	}
	return f.columns([]string{"EXTENSION", "LANGUAGE"}, rows)
}

// FormatBindings formats the key bindings
func (f *Formatter) FormatBindings(bindings []BindingDTO) error {
	if f.json {
		return f.encode(bindings)
	}
	rows := make([][]string, len(bindings))
	for i, b := range bindings {
		rows[i] = []string{b.Keys, b.Operation, b.Kind}
	}
	return f.columns([]string{"KEYS", "OPERATION", "KIND"}, rows)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// columns writes rows padded to the widest cell of each column.
func (f *Formatter) columns(header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for _, row := range append([][]string{header}, rows...) {
		var sb strings.Builder
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		if _, err := fmt.Fprintln(f.writer, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// displayKeys renders each key of a binding in its user-facing form.
func displayKeys(s string) string {
	fields := strings.Fields(s)
	for i, k := range fields {
		fields[i] = keys.TranslateToDisplay(k)
	}
	return strings.Join(fields, " ")
}

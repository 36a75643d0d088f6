// Package keys contains keybinding definitions for the editor surface.
//
// These are the host-level bindings: cursor movement, plain editing and the
// structural operations that have a fixed key. Chords and the configurable
// single-key bindings live in keyseq and are consulted before these.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// EditorKeyMap defines the keybindings handled by the editor itself.
type EditorKeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Selection
	SelectUp    key.Binding
	SelectDown  key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding

	// Editing
	Enter     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Tab       key.Binding

	// Structural operations
	GotoStart      key.Binding
	GotoEnd        key.Binding
	NewlineBelow   key.Binding
	NewlineAbove   key.Binding
	DuplicateBelow key.Binding
	DuplicateAbove key.Binding

	// General
	Save key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultEditorKeyMap returns the default editor keybindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "line up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "line down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "char left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "char right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home", "line start"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "line end"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),

		// Selection
		SelectUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "select up"),
		),
		SelectDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "select down"),
		),
		SelectLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "select left"),
		),
		SelectRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "select right"),
		),

		// Editing
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "split line"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "indent"),
		),

		// Structural operations
		GotoStart: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "document start"),
		),
		GotoEnd: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "document end"),
		),
		NewlineBelow: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("ctrl+j", "open line below"),
		),
		NewlineAbove: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "open line above"),
		),
		DuplicateBelow: key.NewBinding(
			key.WithKeys("ctrl+down"),
			key.WithHelp("ctrl+↓", "duplicate below"),
		),
		DuplicateAbove: key.NewBinding(
			key.WithKeys("ctrl+up"),
			key.WithHelp("ctrl+↑", "duplicate above"),
		),

		// General
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.GotoStart, k.GotoEnd, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End, k.PageUp, k.PageDown},
		{k.SelectUp, k.SelectDown, k.SelectLeft, k.SelectRight, k.Enter, k.Backspace, k.Delete, k.Tab},
		{k.GotoStart, k.GotoEnd, k.NewlineBelow, k.NewlineAbove, k.DuplicateBelow, k.DuplicateAbove},
		{k.Save, k.Help, k.Quit},
	}
}

// Operations maps each structural binding to the line operation it runs.
// The IDs match lineops registry entries.
func (k EditorKeyMap) Operations() []OperationBinding {
	return []OperationBinding{
		{Binding: k.GotoStart, OperationID: "document.goto_start"},
		{Binding: k.GotoEnd, OperationID: "document.goto_end"},
		{Binding: k.NewlineBelow, OperationID: "line.newline_below"},
		{Binding: k.NewlineAbove, OperationID: "line.newline_above"},
		{Binding: k.DuplicateBelow, OperationID: "line.duplicate_below"},
		{Binding: k.DuplicateAbove, OperationID: "line.duplicate_above"},
	}
}

// OperationBinding ties a key binding to a line operation ID.
type OperationBinding struct {
	Binding     key.Binding
	OperationID string
}

// TranslateToTerminal converts a user-facing key name to the form the
// terminal reports. Bubble Tea reports ctrl+space as "ctrl+@".
func TranslateToTerminal(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "ctrl+space" {
		return "ctrl+@"
	}
	return name
}

// TranslateToDisplay is the inverse of TranslateToTerminal for help text.
func TranslateToDisplay(name string) string {
	if name == "ctrl+@" {
		return "ctrl+space"
	}
	return name
}

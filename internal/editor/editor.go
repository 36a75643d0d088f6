// Package editor is the Bubble Tea editing surface that hosts the line
// operations and the chord dispatcher.
//
// Every key is offered to the keyseq dispatcher first. Keys it does not
// consume fall through to the native bindings in keys.EditorKeyMap and then
// to plain text editing.
package editor

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/codebrowser/internal/keys"
	"github.com/zjrosen/codebrowser/internal/keyseq"
	"github.com/zjrosen/codebrowser/internal/langmap"
	"github.com/zjrosen/codebrowser/internal/lineops"
	"github.com/zjrosen/codebrowser/internal/log"
	"github.com/zjrosen/codebrowser/internal/textbuf"
	"github.com/zjrosen/codebrowser/internal/watcher"
)

// DefaultTabWidth is used when Options.TabWidth is not positive.
const DefaultTabWidth = 4

// Options configures a Model.
type Options struct {
	// Path is the file backing the buffer. Empty means a scratch buffer.
	Path string
	// Language overrides the label resolved from Path through Languages.
	Language string
	// Languages resolves Path to a language label. Nil uses langmap.Default.
	Languages *langmap.Map
	// Keymap drives the dispatcher. Nil uses keyseq.DefaultKeymap.
	Keymap *keyseq.Keymap

	ShowLineNumbers bool
	ShowStatusBar   bool
	TabWidth        int

	// Watch delivers a signal whenever Path changes on disk. Nil disables
	// reloading.
	Watch <-chan struct{}
}

// ChangedMsg is emitted after a key changes the buffer content.
type ChangedMsg struct {
	Text string
}

// SavedMsg is emitted after the buffer is written to disk.
type SavedMsg struct {
	Path string
}

// Model holds the editor state.
type Model struct {
	// Content state
	doc          *textbuf.Document
	sel          textbuf.Selection
	preferredCol int    // column kept across vertical movement
	saved        string // text as last loaded or written

	// Key handling
	chord      keyseq.ChordState
	dispatcher *keyseq.Dispatcher
	keys       keys.EditorKeyMap
	operations map[string]lineops.Operation

	// File state
	path  string
	watch <-chan struct{}
	ctx   context.Context
	stop  context.CancelFunc

	// Display state
	help            help.Model
	showHelp        bool
	showLineNumbers bool
	showStatusBar   bool
	tabWidth        int
	width           int
	height          int
	offset          int // first visible row
	status          string
}

// New creates an editor over text.
func New(text string, opts Options) Model {
	km := opts.Keymap
	if km == nil {
		km = keyseq.DefaultKeymap()
	}
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	language := opts.Language
	if language == "" && opts.Path != "" {
		langs := opts.Languages
		if langs == nil {
			langs = langmap.Default()
		}
		language, _ = langs.Lookup(opts.Path)
	}

	reg := lineops.DefaultRegistry()
	editorKeys := keys.DefaultEditorKeyMap()
	operations := make(map[string]lineops.Operation)
	for _, ob := range editorKeys.Operations() {
		if op, ok := reg.Get(ob.OperationID); ok {
			operations[ob.OperationID] = op
		}
	}

	ctx, stop := context.WithCancel(context.Background())

	doc := textbuf.NewWithLanguage(text, language)
	return Model{
		doc:             doc,
		sel:             textbuf.Collapsed(textbuf.At(0, 0)),
		saved:           doc.Text(),
		chord:           keyseq.Idle(),
		dispatcher:      keyseq.NewDispatcher(km),
		keys:            editorKeys,
		operations:      operations,
		path:            opts.Path,
		watch:           opts.Watch,
		ctx:             ctx,
		stop:            stop,
		help:            help.New(),
		showLineNumbers: opts.ShowLineNumbers,
		showStatusBar:   opts.ShowStatusBar,
		tabWidth:        tabWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd := m.handleKeyMsg(msg)
		m.ensureCursorVisible()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case watcher.ChangedMsg:
		m = m.reload()
		m.ensureCursorVisible()
		return m, m.listen()
	}
	return m, nil
}

func (m Model) listen() tea.Cmd {
	if m.watch == nil || m.path == "" {
		return nil
	}
	return watcher.ListenCmd(m.ctx, m.path, m.watch)
}

// ============================================================================
// Key handling
// ============================================================================

// keyEvent converts a tea.KeyMsg to the dispatcher's event form. Unmodified
// runes and space are printable; everything else is named by its tea string.
func keyEvent(msg tea.KeyMsg) keyseq.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			return keyseq.Printable(string(msg.Runes))
		}
	case tea.KeySpace:
		if !msg.Alt {
			return keyseq.Printable(" ")
		}
	}
	return keyseq.Named(msg.String())
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	ev := keyEvent(msg)

	res, err := m.dispatcher.Dispatch(ev, m.chord, m.doc, m.sel)
	m.chord = res.State
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if res.Consumed {
		m.setSelection(res.Selection)
		if res.Changed() {
			return m, m.changed()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	for _, ob := range m.keys.Operations() {
		if key.Matches(msg, ob.Binding) {
			if op, ok := m.operations[ob.OperationID]; ok {
				return m.apply(op)
			}
		}
	}

	if ev.Printable {
		return m.insert(ev.Character)
	}
	return m.handleEditing(msg)
}

// apply runs op outside the dispatcher for the native bindings.
func (m Model) apply(op lineops.Operation) (Model, tea.Cmd) {
	next, outcome, err := lineops.Apply(op, m.doc, m.sel)
	if err != nil {
		log.ErrorErr(log.CatEditor, "operation failed", err, "op", op.ID())
		m.status = err.Error()
		return m, nil
	}
	log.Debug(log.CatEditor, "native binding", "op", op.ID(), "outcome", outcome)
	m.setSelection(next)
	if outcome == lineops.Executed && op.ChangesContent() {
		return m, m.changed()
	}
	return m, nil
}

func (m Model) handleEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.insert("\n")
	case key.Matches(msg, m.keys.Tab):
		return m.insert(spaces(m.tabWidth))
	case key.Matches(msg, m.keys.Backspace):
		return m.deleteBackward()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteForward()

	case key.Matches(msg, m.keys.Up):
		m.moveVertical(-1, false)
	case key.Matches(msg, m.keys.Down):
		m.moveVertical(1, false)
	case key.Matches(msg, m.keys.Left):
		m.moveLeft(false)
	case key.Matches(msg, m.keys.Right):
		m.moveRight(false)
	case key.Matches(msg, m.keys.SelectUp):
		m.moveVertical(-1, true)
	case key.Matches(msg, m.keys.SelectDown):
		m.moveVertical(1, true)
	case key.Matches(msg, m.keys.SelectLeft):
		m.moveLeft(true)
	case key.Matches(msg, m.keys.SelectRight):
		m.moveRight(true)
	case key.Matches(msg, m.keys.Home):
		m.moveTo(textbuf.At(m.sel.Active.Row, 0), false)
	case key.Matches(msg, m.keys.End):
		m.moveTo(m.doc.Clamp(textbuf.LineEnd(m.sel.Active.Row)), false)
	case key.Matches(msg, m.keys.PageUp):
		m.moveVertical(-m.pageSize(), false)
	case key.Matches(msg, m.keys.PageDown):
		m.moveVertical(m.pageSize(), false)
	}
	return m, nil
}

func (m Model) changed() tea.Cmd {
	text := m.doc.Text()
	return func() tea.Msg {
		return ChangedMsg{Text: text}
	}
}

// ============================================================================
// Accessors
// ============================================================================

// Document returns the buffer. Callers must not mutate it outside Update.
func (m Model) Document() *textbuf.Document { return m.doc }

// Selection returns the current selection.
func (m Model) Selection() textbuf.Selection { return m.sel }

// ChordState returns the dispatcher's remembered key.
func (m Model) ChordState() keyseq.ChordState { return m.chord }

// Path returns the backing file, empty for a scratch buffer.
func (m Model) Path() string { return m.path }

// Status returns the transient status message.
func (m Model) Status() string { return m.status }

// Modified reports whether the buffer differs from the file.
func (m Model) Modified() bool { return m.doc.Text() != m.saved }

// SetSelection moves the selection, clamping both ends into the document.
func (m *Model) SetSelection(sel textbuf.Selection) {
	m.setSelection(textbuf.Select(m.doc.Clamp(sel.Anchor), m.doc.Clamp(sel.Active)))
}

package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/codebrowser/internal/log"
	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// setSelection stores sel with both ends resolved and remembers the column
// for later vertical movement.
func (m *Model) setSelection(sel textbuf.Selection) {
	m.sel = textbuf.Select(m.doc.Clamp(sel.Anchor), m.doc.Clamp(sel.Active))
	m.preferredCol = m.sel.Active.Col
}

// moveTo places the cursor at p. With extend the anchor stays put.
func (m *Model) moveTo(p textbuf.Position, extend bool) {
	if extend {
		m.setSelection(textbuf.Select(m.sel.Anchor, p))
		return
	}
	m.setSelection(textbuf.Collapsed(p))
}

func (m *Model) moveVertical(rows int, extend bool) {
	active := m.sel.Active
	row := min(max(active.Row+rows, 0), m.doc.LineCount()-1)
	if row == active.Row {
		// first or last line: go to the line edge
		if rows < 0 {
			m.moveTo(textbuf.At(row, 0), extend)
		} else {
			m.moveTo(m.doc.Clamp(textbuf.LineEnd(row)), extend)
		}
		return
	}

	col := m.preferredCol
	target := m.doc.Clamp(textbuf.At(row, col))
	if extend {
		m.sel = textbuf.Select(m.sel.Anchor, target)
	} else {
		m.sel = textbuf.Collapsed(target)
	}
	m.preferredCol = col
}

func (m *Model) moveLeft(extend bool) {
	if !extend && !m.sel.IsEmpty() {
		m.moveTo(m.sel.Start(), false)
		return
	}
	p := m.sel.Active
	switch {
	case p.Col > 0:
		p.Col--
	case p.Row > 0:
		p = m.doc.Clamp(textbuf.LineEnd(p.Row - 1))
	}
	m.moveTo(p, extend)
}

func (m *Model) moveRight(extend bool) {
	if !extend && !m.sel.IsEmpty() {
		m.moveTo(m.sel.End(), false)
		return
	}
	p := m.sel.Active
	end, _ := m.doc.LineEndColumn(p.Row)
	switch {
	case p.Col < end:
		p.Col++
	case p.Row < m.doc.LineCount()-1:
		p = textbuf.At(p.Row+1, 0)
	}
	m.moveTo(p, extend)
}

// insert replaces the selection with text and leaves the cursor after it.
func (m Model) insert(text string) (Model, tea.Cmd) {
	return m.replace(text, m.sel.Start(), m.sel.End())
}

func (m Model) deleteBackward() (Model, tea.Cmd) {
	if !m.sel.IsEmpty() {
		return m.insert("")
	}
	p := m.sel.Active
	switch {
	case p.Col > 0:
		return m.replace("", textbuf.At(p.Row, p.Col-1), p)
	case p.Row > 0:
		return m.replace("", textbuf.LineEnd(p.Row-1), p)
	}
	return m, nil
}

func (m Model) deleteForward() (Model, tea.Cmd) {
	if !m.sel.IsEmpty() {
		return m.insert("")
	}
	p := m.sel.Active
	end, _ := m.doc.LineEndColumn(p.Row)
	switch {
	case p.Col < end:
		return m.replace("", p, textbuf.At(p.Row, p.Col+1))
	case p.Row < m.doc.LineCount()-1:
		return m.replace("", p, textbuf.At(p.Row+1, 0))
	}
	return m, nil
}

func (m Model) replace(text string, start, end textbuf.Position) (Model, tea.Cmd) {
	next, err := m.doc.ReplaceRange(text, start, end)
	if err != nil {
		log.ErrorErr(log.CatEditor, "edit failed", err, "start", start, "end", end)
		m.status = err.Error()
		return m, nil
	}
	m.setSelection(textbuf.Collapsed(next))
	return m, m.changed()
}

// ============================================================================
// Scrolling
// ============================================================================

// textHeight is the number of rows available for buffer lines. Zero means
// the height is unknown and every line is shown.
func (m Model) textHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height
	if m.showStatusBar {
		h--
	}
	if m.showHelp {
		h -= strings.Count(m.help.View(m.keys), "\n") + 1
	}
	return max(h, 1)
}

func (m Model) pageSize() int {
	if h := m.textHeight(); h > 0 {
		return h
	}
	return 1
}

func (m *Model) ensureCursorVisible() {
	row := m.sel.Active.Row
	if row < m.offset {
		m.offset = row
	}
	if h := m.textHeight(); h > 0 && row >= m.offset+h {
		m.offset = row - h + 1
	}
	m.offset = min(m.offset, max(m.doc.LineCount()-1, 0))
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

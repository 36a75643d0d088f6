package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/codebrowser/internal/keys"
	"github.com/zjrosen/codebrowser/internal/textbuf"
)

var (
	// Semantic colors
	textMutedColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
	textAccentColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	selectionBg     = lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#444444"}
	statusBg        = lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#2D3436"}
	modifiedColor   = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}

	cursorStyle        = lipgloss.NewStyle().Reverse(true)
	selectionStyle     = lipgloss.NewStyle().Background(selectionBg)
	gutterStyle        = lipgloss.NewStyle().Foreground(textMutedColor)
	gutterCurrentStyle = lipgloss.NewStyle().Foreground(textAccentColor).Bold(true)
	statusStyle        = lipgloss.NewStyle().Background(statusBg)
	modifiedStyle      = lipgloss.NewStyle().Foreground(modifiedColor).Background(statusBg).Bold(true)
)

// View renders the visible lines, the status line and the help panel.
func (m Model) View() string {
	var sb strings.Builder

	lines := m.doc.Lines()
	gutterWidth := 0
	if m.showLineNumbers {
		gutterWidth = len(strconv.Itoa(len(lines))) + 1
	}

	start := m.doc.Clamp(m.sel.Start())
	end := m.doc.Clamp(m.sel.End())

	last := len(lines)
	if h := m.textHeight(); h > 0 {
		last = min(last, m.offset+h)
	}
	for row := m.offset; row < last; row++ {
		if row > m.offset {
			sb.WriteByte('\n')
		}
		if m.showLineNumbers {
			sb.WriteString(m.renderGutter(row, gutterWidth))
		}
		line := m.renderLine(row, lines[row], start, end)
		if m.width > 0 {
			line = ansi.Truncate(line, max(m.width-gutterWidth, 1), "")
		}
		sb.WriteString(line)
	}

	if m.showStatusBar {
		sb.WriteByte('\n')
		sb.WriteString(m.renderStatus())
	}
	if m.showHelp {
		sb.WriteByte('\n')
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

func (m Model) renderGutter(row, width int) string {
	num := fmt.Sprintf("%*d ", width-1, row+1)
	if row == m.sel.Active.Row {
		return gutterCurrentStyle.Render(num)
	}
	return gutterStyle.Render(num)
}

// renderLine draws one line with the cursor and the selected range. Tabs
// expand to tabWidth spaces.
func (m Model) renderLine(row int, line string, start, end textbuf.Position) string {
	var sb strings.Builder
	cursor := m.sel.Active

	inSelection := func(col int) bool {
		if m.sel.IsEmpty() {
			return false
		}
		p := textbuf.At(row, col)
		return textbuf.ComparePos(start, p) <= 0 && textbuf.ComparePos(p, end) < 0
	}

	graphemes := textbuf.Graphemes(line)
	for col, g := range graphemes {
		if g == "\t" {
			g = spaces(m.tabWidth)
		}
		switch {
		case row == cursor.Row && col == cursor.Col:
			sb.WriteString(cursorStyle.Render(g))
		case inSelection(col):
			sb.WriteString(selectionStyle.Render(g))
		default:
			sb.WriteString(g)
		}
	}

	// The line break itself: the cursor at line end, or a selected newline.
	eol := len(graphemes)
	switch {
	case row == cursor.Row && eol == cursor.Col:
		sb.WriteString(cursorStyle.Render(" "))
	case inSelection(eol):
		sb.WriteString(selectionStyle.Render(" "))
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	language := m.doc.Language()
	if language == "" {
		language = "plain"
	}

	left := statusStyle.Render(" " + name + " ")
	if m.Modified() {
		left += modifiedStyle.Render("[+] ")
	}
	left += statusStyle.Render(language)

	right := fmt.Sprintf("Ln %d, Col %d ", m.sel.Active.Row+1, m.sel.Active.Col+1)
	if !m.sel.IsEmpty() {
		top, bottom := m.sel.Block()
		right = fmt.Sprintf("%d lines selected  ", bottom-top+1) + right
	}
	if !m.chord.IsIdle() {
		right = keys.TranslateToDisplay(m.chord.Key()) + "-  " + right
	}
	if m.status != "" {
		right = m.status + "  " + right
	}
	right = statusStyle.Render(right)

	gap := 1
	if m.width > 0 {
		gap = max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	line := left + statusStyle.Render(spaces(gap)) + right
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "")
	}
	return line
}

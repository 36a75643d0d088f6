package lineops

import (
	"strings"

	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// commentMarkers is the closed set of languages that have a line comment
// marker. Every marker is a single grapheme.
var commentMarkers = map[string]string{
	"python":     "#",
	"yaml":       "#",
	"shell":      "#",
	"toml":       "#",
	"ruby":       "#",
	"perl":       "#",
	"r":          "#",
	"makefile":   "#",
	"dockerfile": "#",
}

// CommentMarker returns the line comment marker for language.
func CommentMarker(language string) (string, bool) {
	m, ok := commentMarkers[strings.ToLower(language)]
	return m, ok
}

// ToggleComment comments or uncomments every row of the selected block.
//
// A row whose first grapheme is the marker is treated as commented and loses
// its first two graphemes (or the whole row when shorter). Any other row gets
// marker + " " inserted at column 0, empty rows included.
type ToggleComment struct{ EditBase }

func (*ToggleComment) ID() string { return "line.toggle_comment" }

func (*ToggleComment) Execute(s *State) (ExecuteResult, error) {
	marker, ok := CommentMarker(s.Doc.Language())
	if !ok {
		return Skipped, nil
	}
	prefix := marker + " "
	prefixLen := textbuf.GraphemeCount(prefix)

	top, bottom := s.Sel.Block()
	rows := make([]string, 0, bottom-top+1)
	delta := make(map[int]int, bottom-top+1)
	for row := top; row <= bottom; row++ {
		line, err := s.Doc.Line(row)
		if err != nil {
			return Skipped, err
		}
		if textbuf.GraphemeAt(line, 0) == marker {
			n := textbuf.GraphemeCount(line)
			removed := min(prefixLen, n)
			rows = append(rows, textbuf.SliceByGraphemes(line, removed, n))
			delta[row] = -removed
			continue
		}
		rows = append(rows, prefix+line)
		delta[row] = prefixLen
	}

	if _, err := s.Doc.ReplaceRange(strings.Join(rows, "\n"), textbuf.At(top, 0), textbuf.LineEnd(bottom)); err != nil {
		return Skipped, err
	}

	s.Sel = textbuf.Select(shiftCol(s.Sel.Anchor, delta), shiftCol(s.Sel.Active, delta))
	return Executed, nil
}

// shiftCol moves p's column by the change applied to its row, never below 0.
// Line end markers follow the line on their own.
func shiftCol(p textbuf.Position, delta map[int]int) textbuf.Position {
	if p.IsMarker() {
		return p
	}
	d, ok := delta[p.Row]
	if !ok {
		return p
	}
	p.Col = max(0, p.Col+d)
	return p
}

// Package textbuf is the coordinate model shared by the line operations and
// the key dispatcher: a line-addressed Document, grapheme-indexed Positions and
// direction-aware Selections.
//
// Out-of-range addresses are programmer errors and are reported as
// ErrOutOfRange rather than clamped. Clamp exists for host cursor motion only.
package textbuf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a position addresses a row or column the
	// document does not have.
	ErrOutOfRange = errors.New("position out of range")
	// ErrInvalidRange is returned when a range starts after it ends.
	ErrInvalidRange = errors.New("range start is after range end")
)

// Document is an ordered list of lines. It always holds at least one line and
// no line contains a line terminator.
type Document struct {
	lines    []string
	language string
}

// New creates a document from text, splitting on "\n" (and "\r\n").
func New(text string) *Document {
	return NewWithLanguage(text, "")
}

// NewWithLanguage creates a document tagged with a language label.
func NewWithLanguage(text, language string) *Document {
	return &Document{
		lines:    splitLines(text),
		language: language,
	}
}

// Language returns the declared language label ("" when unknown).
func (d *Document) Language() string { return d.language }

// SetLanguage changes the declared language label.
func (d *Document) SetLanguage(language string) { d.language = language }

// SetText replaces the whole content.
func (d *Document) SetText(text string) {
	d.lines = splitLines(text)
}

// Text returns the content joined with "\n".
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines, always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Lines returns a copy of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Line returns the content of row.
func (d *Document) Line(row int) (string, error) {
	if err := d.checkRow(row); err != nil {
		return "", err
	}
	return d.lines[row], nil
}

// LineEndColumn returns the grapheme length of row.
func (d *Document) LineEndColumn(row int) (int, error) {
	if err := d.checkRow(row); err != nil {
		return 0, err
	}
	return GraphemeCount(d.lines[row]), nil
}

// Resolve turns markers into concrete positions and validates the result.
func (d *Document) Resolve(p Position) (Position, error) {
	switch p.Mark {
	case MarkLineEnd:
		end, err := d.LineEndColumn(p.Row)
		if err != nil {
			return Position{}, err
		}
		return At(p.Row, end), nil
	case MarkDocumentEnd:
		last := len(d.lines) - 1
		return At(last, GraphemeCount(d.lines[last])), nil
	}

	end, err := d.LineEndColumn(p.Row)
	if err != nil {
		return Position{}, err
	}
	if p.Col < 0 || p.Col > end {
		return Position{}, fmt.Errorf("%w: column %d on row %d (length %d)", ErrOutOfRange, p.Col, p.Row, end)
	}
	return p, nil
}

// Clamp resolves p and pulls it inside the document instead of failing.
func (d *Document) Clamp(p Position) Position {
	switch p.Mark {
	case MarkDocumentEnd:
		last := len(d.lines) - 1
		return At(last, GraphemeCount(d.lines[last]))
	case MarkLineEnd:
		row := clampInt(p.Row, 0, len(d.lines)-1)
		return At(row, GraphemeCount(d.lines[row]))
	}
	row := clampInt(p.Row, 0, len(d.lines)-1)
	col := clampInt(p.Col, 0, GraphemeCount(d.lines[row]))
	return At(row, col)
}

// ReadRange returns the text between start and end in document order.
func (d *Document) ReadRange(start, end Position) (string, error) {
	s, e, err := d.resolveRange(start, end)
	if err != nil {
		return "", err
	}

	if s.Row == e.Row {
		return SliceByGraphemes(d.lines[s.Row], s.Col, e.Col), nil
	}

	var sb strings.Builder
	for row := s.Row; row <= e.Row; row++ {
		line := d.lines[row]
		from, to := 0, len(line)
		if row == s.Row {
			from = GraphemeToByteOffset(line, s.Col)
		}
		if row == e.Row {
			to = GraphemeToByteOffset(line, e.Col)
		}
		if row > s.Row {
			sb.WriteByte('\n')
		}
		sb.WriteString(line[from:to])
	}
	return sb.String(), nil
}

// ReplaceRange deletes [start, end) and inserts text at start. It returns the
// position just past the inserted text. Rows after the range shift by the
// number of line breaks added or removed.
func (d *Document) ReplaceRange(text string, start, end Position) (Position, error) {
	s, e, err := d.resolveRange(start, end)
	if err != nil {
		return Position{}, err
	}

	first := d.lines[s.Row]
	last := d.lines[e.Row]
	prefix := first[:GraphemeToByteOffset(first, s.Col)]
	suffix := last[GraphemeToByteOffset(last, e.Col):]

	parts := splitLines(text)
	repl := make([]string, len(parts))
	copy(repl, parts)
	repl[0] = prefix + repl[0]
	tail := repl[len(repl)-1]
	repl[len(repl)-1] = tail + suffix

	next := make([]string, 0, len(d.lines)-(e.Row-s.Row)+len(repl)-1)
	next = append(next, d.lines[:s.Row]...)
	next = append(next, repl...)
	next = append(next, d.lines[e.Row+1:]...)
	d.lines = next

	row := s.Row + len(parts) - 1
	if len(parts) == 1 {
		return At(row, GraphemeCount(prefix+parts[0])), nil
	}
	return At(row, GraphemeCount(tail)), nil
}

// Insert inserts text at the given position.
func (d *Document) Insert(text string, at Position) (Position, error) {
	return d.ReplaceRange(text, at, at)
}

func (d *Document) resolveRange(start, end Position) (Position, Position, error) {
	s, err := d.Resolve(start)
	if err != nil {
		return Position{}, Position{}, err
	}
	e, err := d.Resolve(end)
	if err != nil {
		return Position{}, Position{}, err
	}
	if ComparePos(s, e) > 0 {
		return Position{}, Position{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, s, e)
	}
	return s, e, nil
}

func (d *Document) checkRow(row int) error {
	if row < 0 || row >= len(d.lines) {
		return fmt.Errorf("%w: row %d (line count %d)", ErrOutOfRange, row, len(d.lines))
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

package textbuf

import (
	"fmt"
	"math"
)

// Mark tags a Position whose column (and for DocumentEnd, row) is only known
// once it is resolved against a Document.
type Mark int

const (
	// MarkNone is a plain (Row, Col) position.
	MarkNone Mark = iota
	// MarkLineEnd addresses the end of Row, whatever its length.
	MarkLineEnd
	// MarkDocumentEnd addresses the end of the last line.
	MarkDocumentEnd
)

// Position addresses a point in a Document. Row and Col are 0-based; Col is a
// grapheme index. The type does not check Col against the line length.
type Position struct {
	Row  int
	Col  int
	Mark Mark
}

// At returns the concrete position (row, col).
func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// LineEnd returns a marker for the end of row.
func LineEnd(row int) Position {
	return Position{Row: row, Mark: MarkLineEnd}
}

// DocumentEnd returns a marker for the end of the document.
func DocumentEnd() Position {
	return Position{Mark: MarkDocumentEnd}
}

// IsMarker reports whether p must be resolved before use.
func (p Position) IsMarker() bool {
	return p.Mark != MarkNone
}

func (p Position) String() string {
	switch p.Mark {
	case MarkLineEnd:
		return fmt.Sprintf("(%d, $)", p.Row)
	case MarkDocumentEnd:
		return "($, $)"
	default:
		return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
	}
}

// orderKey maps markers onto coordinates that sort after every real column
// of their row. Only used for ordering, never for arithmetic.
func (p Position) orderKey() (int, int) {
	switch p.Mark {
	case MarkLineEnd:
		return p.Row, math.MaxInt
	case MarkDocumentEnd:
		return math.MaxInt, math.MaxInt
	default:
		return p.Row, p.Col
	}
}

// ComparePos orders two positions in document order, returning -1, 0 or 1.
func ComparePos(a, b Position) int {
	ar, ac := a.orderKey()
	br, bc := b.orderKey()
	switch {
	case ar < br:
		return -1
	case ar > br:
		return 1
	case ac < bc:
		return -1
	case ac > bc:
		return 1
	default:
		return 0
	}
}

// Direction tells which end of a selection the cursor is on.
type Direction int

const (
	// Forward means the anchor is at or before the active end.
	Forward Direction = iota
	// Backward means the active end is before the anchor.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Selection is an anchor and an active end (the cursor). It owns no text and
// must be re-derived after any mutation that shifts rows.
type Selection struct {
	Anchor Position
	Active Position
}

// Collapsed returns an empty selection (a plain cursor) at p.
func Collapsed(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// Select returns the selection from anchor to active.
func Select(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// IsEmpty reports whether the selection is a collapsed cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Direction is derived from the order of the two ends.
func (s Selection) Direction() Direction {
	if ComparePos(s.Anchor, s.Active) <= 0 {
		return Forward
	}
	return Backward
}

// Start returns the end of the selection that comes first in the document.
func (s Selection) Start() Position {
	if s.Direction() == Forward {
		return s.Anchor
	}
	return s.Active
}

// End returns the end of the selection that comes last in the document.
func (s Selection) End() Position {
	if s.Direction() == Forward {
		return s.Active
	}
	return s.Anchor
}

// Block returns the first and last rows the selection touches, regardless of
// the columns inside those rows. Markers must be resolved first.
func (s Selection) Block() (top, bottom int) {
	top, bottom = s.Anchor.Row, s.Active.Row
	if top > bottom {
		top, bottom = bottom, top
	}
	return top, bottom
}

// Shift moves both ends by rows, keeping columns and therefore direction.
func (s Selection) Shift(rows int) Selection {
	s.Anchor.Row += rows
	s.Active.Row += rows
	return s
}

// Collapse drops the anchor and keeps the cursor where it is.
func (s Selection) Collapse() Selection {
	return Collapsed(s.Active)
}

package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// readBlock returns the full text of rows [top, bottom].
func readBlock(doc *textbuf.Document, top, bottom int) (string, error) {
	return doc.ReadRange(textbuf.At(top, 0), textbuf.LineEnd(bottom))
}

// ============================================================================
// MoveLineDown
// ============================================================================

// MoveLineDown swaps the selected block with the line below it.
type MoveLineDown struct{ EditBase }

func (*MoveLineDown) ID() string { return "line.move_down" }

// Execute rewrites rows [top, bottom+1] as neighbour + block.
func (*MoveLineDown) Execute(s *State) (ExecuteResult, error) {
	top, bottom := s.Sel.Block()
	if bottom >= s.Doc.LineCount()-1 {
		return Skipped, nil
	}

	block, err := readBlock(s.Doc, top, bottom)
	if err != nil {
		return Skipped, err
	}
	below, err := s.Doc.Line(bottom + 1)
	if err != nil {
		return Skipped, err
	}

	if _, err := s.Doc.ReplaceRange(below+"\n"+block, textbuf.At(top, 0), textbuf.LineEnd(bottom+1)); err != nil {
		return Skipped, err
	}
	s.Sel = s.Sel.Shift(1)
	return Executed, nil
}

// ============================================================================
// MoveLineUp
// ============================================================================

// MoveLineUp swaps the selected block with the line above it.
type MoveLineUp struct{ EditBase }

func (*MoveLineUp) ID() string { return "line.move_up" }

// Execute rewrites rows [top-1, bottom] as block + neighbour.
func (*MoveLineUp) Execute(s *State) (ExecuteResult, error) {
	top, bottom := s.Sel.Block()
	if top <= 0 {
		return Skipped, nil
	}

	block, err := readBlock(s.Doc, top, bottom)
	if err != nil {
		return Skipped, err
	}
	above, err := s.Doc.Line(top - 1)
	if err != nil {
		return Skipped, err
	}

	if _, err := s.Doc.ReplaceRange(block+"\n"+above, textbuf.At(top-1, 0), textbuf.LineEnd(bottom)); err != nil {
		return Skipped, err
	}
	s.Sel = s.Sel.Shift(-1)
	return Executed, nil
}

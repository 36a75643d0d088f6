package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// DuplicateBelow inserts a copy of the selected block after it and moves the
// selection onto the copy.
type DuplicateBelow struct{ EditBase }

func (*DuplicateBelow) ID() string { return "line.duplicate_below" }

func (*DuplicateBelow) Execute(s *State) (ExecuteResult, error) {
	top, bottom := s.Sel.Block()
	block, err := readBlock(s.Doc, top, bottom)
	if err != nil {
		return Skipped, err
	}
	if _, err := s.Doc.Insert("\n"+block, textbuf.LineEnd(bottom)); err != nil {
		return Skipped, err
	}
	s.Sel = s.Sel.Shift(bottom - top + 1)
	return Executed, nil
}

// DuplicateAbove inserts a copy of the selected block before it. The
// selection keeps its rows, which now hold the copy.
type DuplicateAbove struct{ EditBase }

func (*DuplicateAbove) ID() string { return "line.duplicate_above" }

func (*DuplicateAbove) Execute(s *State) (ExecuteResult, error) {
	top, bottom := s.Sel.Block()
	block, err := readBlock(s.Doc, top, bottom)
	if err != nil {
		return Skipped, err
	}
	if _, err := s.Doc.Insert(block+"\n", textbuf.At(top, 0)); err != nil {
		return Skipped, err
	}
	return Executed, nil
}

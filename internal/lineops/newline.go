package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// AddNewlineBelow opens a blank line after the cursor's line, like vim's 'o'
// without leaving the current mode.
type AddNewlineBelow struct{ EditBase }

func (*AddNewlineBelow) ID() string { return "line.newline_below" }

func (*AddNewlineBelow) Execute(s *State) (ExecuteResult, error) {
	row := s.Sel.Active.Row
	if _, err := s.Doc.Insert("\n", textbuf.LineEnd(row)); err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(textbuf.At(row+1, 0))
	return Executed, nil
}

// AddNewlineAbove opens a blank line before the cursor's line. The original
// content moves down one row and the cursor stays on the new blank line.
type AddNewlineAbove struct{ EditBase }

func (*AddNewlineAbove) ID() string { return "line.newline_above" }

func (*AddNewlineAbove) Execute(s *State) (ExecuteResult, error) {
	row := s.Sel.Active.Row
	if _, err := s.Doc.Insert("\n", textbuf.At(row, 0)); err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(textbuf.At(row, 0))
	return Executed, nil
}

package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// GotoDocumentStart collapses the selection at (0, 0).
type GotoDocumentStart struct{ MotionBase }

func (*GotoDocumentStart) ID() string { return "document.goto_start" }

func (*GotoDocumentStart) Execute(s *State) (ExecuteResult, error) {
	s.Sel = textbuf.Collapsed(textbuf.At(0, 0))
	return Executed, nil
}

// GotoDocumentEnd collapses the selection at the end of the last line.
type GotoDocumentEnd struct{ MotionBase }

func (*GotoDocumentEnd) ID() string { return "document.goto_end" }

func (*GotoDocumentEnd) Execute(s *State) (ExecuteResult, error) {
	end, err := s.Doc.Resolve(textbuf.DocumentEnd())
	if err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(end)
	return Executed, nil
}

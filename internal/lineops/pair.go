package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// DefaultPairs are the brackets closed automatically when typed.
var DefaultPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// InsertPair inserts Open+Close at the cursor and leaves the cursor between
// them. Selected text is kept; the selection collapses inside the pair.
type InsertPair struct {
	EditBase
	Open  string
	Close string
}

// NewInsertPair returns the operation for one bracket pair.
func NewInsertPair(open, closing string) *InsertPair {
	return &InsertPair{Open: open, Close: closing}
}

func (*InsertPair) ID() string { return "insert.pair" }

func (op *InsertPair) Execute(s *State) (ExecuteResult, error) {
	end, err := s.Doc.Insert(op.Open+op.Close, s.Sel.Active)
	if err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(textbuf.At(end.Row, end.Col-textbuf.GraphemeCount(op.Close)))
	return Executed, nil
}

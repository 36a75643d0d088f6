package lineops

import "github.com/zjrosen/codebrowser/internal/textbuf"

// deleteSelection removes a non-empty selection and collapses at its start.
func deleteSelection(s *State) (ExecuteResult, error) {
	start, err := s.Doc.Resolve(s.Sel.Start())
	if err != nil {
		return Skipped, err
	}
	if _, err := s.Doc.ReplaceRange("", start, s.Sel.End()); err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(start)
	return Executed, nil
}

// wordStartBefore returns the grapheme index where the word ending at col
// begins: trailing whitespace is skipped, then one run of a single class.
func wordStartBefore(clusters []string, col int) int {
	i := col
	for i > 0 && textbuf.ClassOf(clusters[i-1]) == textbuf.ClassSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	class := textbuf.ClassOf(clusters[i-1])
	for i > 0 && textbuf.ClassOf(clusters[i-1]) == class {
		i--
	}
	return i
}

// wordEndAfter mirrors wordStartBefore going right.
func wordEndAfter(clusters []string, col int) int {
	i := col
	n := len(clusters)
	for i < n && textbuf.ClassOf(clusters[i]) == textbuf.ClassSpace {
		i++
	}
	if i == n {
		return n
	}
	class := textbuf.ClassOf(clusters[i])
	for i < n && textbuf.ClassOf(clusters[i]) == class {
		i++
	}
	return i
}

// ============================================================================
// DeleteWordLeft
// ============================================================================

// DeleteWordLeft deletes the selection, or the word before the cursor. At
// column 0 it joins the line with the one above.
type DeleteWordLeft struct{ EditBase }

func (*DeleteWordLeft) ID() string { return "word.delete_left" }

func (*DeleteWordLeft) Execute(s *State) (ExecuteResult, error) {
	if !s.Sel.IsEmpty() {
		return deleteSelection(s)
	}

	cur, err := s.Doc.Resolve(s.Sel.Active)
	if err != nil {
		return Skipped, err
	}
	if cur.Col == 0 {
		if cur.Row == 0 {
			return Skipped, nil
		}
		join, err := s.Doc.Resolve(textbuf.LineEnd(cur.Row - 1))
		if err != nil {
			return Skipped, err
		}
		if _, err := s.Doc.ReplaceRange("", join, cur); err != nil {
			return Skipped, err
		}
		s.Sel = textbuf.Collapsed(join)
		return Executed, nil
	}

	line, err := s.Doc.Line(cur.Row)
	if err != nil {
		return Skipped, err
	}
	from := textbuf.At(cur.Row, wordStartBefore(textbuf.Graphemes(line), cur.Col))
	if _, err := s.Doc.ReplaceRange("", from, cur); err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(from)
	return Executed, nil
}

// ============================================================================
// DeleteWordRight
// ============================================================================

// DeleteWordRight deletes the selection, or the word after the cursor. At the
// end of a line it joins the line below.
type DeleteWordRight struct{ EditBase }

func (*DeleteWordRight) ID() string { return "word.delete_right" }

func (*DeleteWordRight) Execute(s *State) (ExecuteResult, error) {
	if !s.Sel.IsEmpty() {
		return deleteSelection(s)
	}

	cur, err := s.Doc.Resolve(s.Sel.Active)
	if err != nil {
		return Skipped, err
	}
	line, err := s.Doc.Line(cur.Row)
	if err != nil {
		return Skipped, err
	}
	clusters := textbuf.Graphemes(line)

	if cur.Col >= len(clusters) {
		if cur.Row >= s.Doc.LineCount()-1 {
			return Skipped, nil
		}
		if _, err := s.Doc.ReplaceRange("", cur, textbuf.At(cur.Row+1, 0)); err != nil {
			return Skipped, err
		}
		s.Sel = textbuf.Collapsed(cur)
		return Executed, nil
	}

	to := textbuf.At(cur.Row, wordEndAfter(clusters, cur.Col))
	if _, err := s.Doc.ReplaceRange("", cur, to); err != nil {
		return Skipped, err
	}
	s.Sel = textbuf.Collapsed(cur)
	return Executed, nil
}

package lineops

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/codebrowser/internal/textbuf"
)

var (
	at        = textbuf.At
	collapsed = textbuf.Collapsed
	sel       = textbuf.Select
)

func doc(lines ...string) *textbuf.Document {
	return textbuf.New(strings.Join(lines, "\n"))
}

func pyDoc(lines ...string) *textbuf.Document {
	return textbuf.NewWithLanguage(strings.Join(lines, "\n"), "python")
}

// run applies op and fails the test on error.
func run(t *testing.T, op Operation, d *textbuf.Document, s textbuf.Selection) (textbuf.Selection, ExecuteResult) {
	t.Helper()
	got, res, err := Apply(op, d, s)
	require.NoError(t, err)
	return got, res
}

// ============================================================================
// Apply and Registry
// ============================================================================

type failingOp struct{ EditBase }

func (failingOp) ID() string { return "test.fail" }
func (failingOp) Execute(s *State) (ExecuteResult, error) {
	s.Sel = collapsed(at(9, 9))
	return Executed, textbuf.ErrOutOfRange
}

func TestApply_ErrorKeepsSelectionAndWrapsID(t *testing.T) {
	d := doc("a")
	orig := collapsed(at(0, 1))
	got, res, err := Apply(failingOp{}, d, orig)
	require.Error(t, err)
	require.True(t, errors.Is(err, textbuf.ErrOutOfRange))
	require.Contains(t, err.Error(), "test.fail")
	require.Equal(t, Skipped, res)
	require.Equal(t, orig, got)
}

func TestApply_OutOfRangeSelectionFailsFast(t *testing.T) {
	d := doc("a", "b")
	_, _, err := Apply(&DuplicateBelow{}, d, collapsed(at(5, 0)))
	require.ErrorIs(t, err, textbuf.ErrOutOfRange)
	require.Equal(t, []string{"a", "b"}, d.Lines())
}

func TestApply_ResolvesMarkersBeforeExecute(t *testing.T) {
	d := doc("a", "b", "c")
	got, res := run(t, &MoveLineUp{}, d, collapsed(textbuf.DocumentEnd()))
	require.Equal(t, Executed, res)
	require.Equal(t, "a\nc\nb", d.Text())
	require.Equal(t, collapsed(at(1, 1)), got)
}

func TestApply_LineEndMarkerSelectsItsRow(t *testing.T) {
	d := doc("a", "bc", "d")
	got, res := run(t, &DuplicateBelow{}, d, sel(at(0, 0), textbuf.LineEnd(1)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"a", "bc", "a", "bc", "d"}, d.Lines())
	require.Equal(t, sel(at(2, 0), at(3, 2)), got)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.Equal(t, []string{
		"document.goto_end",
		"document.goto_start",
		"line.duplicate_above",
		"line.duplicate_below",
		"line.move_down",
		"line.move_up",
		"line.newline_above",
		"line.newline_below",
		"line.toggle_comment",
		"word.delete_left",
		"word.delete_right",
	}, r.IDs())

	op, ok := r.Get("line.move_down")
	require.True(t, ok)
	require.True(t, op.ChangesContent())

	op, ok = r.Get("document.goto_end")
	require.True(t, ok)
	require.False(t, op.ChangesContent())

	_, ok = r.Get("insert.pair")
	require.False(t, ok)
}

func TestExecuteResult_String(t *testing.T) {
	require.Equal(t, "executed", Executed.String())
	require.Equal(t, "skipped", Skipped.String())
}

// ============================================================================
// Goto
// ============================================================================

func TestGotoDocumentStart(t *testing.T) {
	d := doc("abc", "de")
	got, res := run(t, &GotoDocumentStart{}, d, sel(at(1, 0), at(1, 2)))
	require.Equal(t, Executed, res)
	require.Equal(t, collapsed(at(0, 0)), got)
}

func TestGotoDocumentEnd(t *testing.T) {
	d := doc("abc", "de", "fghij")
	got, res := run(t, &GotoDocumentEnd{}, d, collapsed(at(0, 0)))
	require.Equal(t, Executed, res)
	require.Equal(t, collapsed(at(2, 5)), got)
}

func TestGotoDocumentEnd_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,200}`), 1, 50).Draw(t, "lines")
		d := doc(lines...)
		row := rapid.IntRange(0, d.LineCount()-1).Draw(t, "row")
		end, _ := d.LineEndColumn(row)
		col := rapid.IntRange(0, end).Draw(t, "col")

		got, _, err := Apply(&GotoDocumentEnd{}, d, collapsed(at(row, col)))
		if err != nil {
			t.Fatalf("goto end: %v", err)
		}
		last := d.LineCount() - 1
		lastEnd, _ := d.LineEndColumn(last)
		if got != collapsed(at(last, lastEnd)) {
			t.Fatalf("cursor at %v, want (%d, %d)", got.Active, last, lastEnd)
		}
	})
}

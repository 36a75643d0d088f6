package lineops

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/codebrowser/internal/textbuf"
)

func TestMoveLineDown_Cursor(t *testing.T) {
	d := doc("one", "two", "three")
	got, res := run(t, &MoveLineDown{}, d, collapsed(at(0, 2)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"two", "one", "three"}, d.Lines())
	require.Equal(t, collapsed(at(1, 2)), got)
}

func TestMoveLineUp_Cursor(t *testing.T) {
	d := doc("one", "two", "three")
	got, res := run(t, &MoveLineUp{}, d, collapsed(at(2, 4)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"one", "three", "two"}, d.Lines())
	require.Equal(t, collapsed(at(1, 4)), got)
}

func TestMoveLineDown_ForwardSelectionBlock(t *testing.T) {
	d := doc("a", "b", "c", "d")
	got, res := run(t, &MoveLineDown{}, d, sel(at(0, 1), at(1, 0)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"c", "a", "b", "d"}, d.Lines())
	require.Equal(t, sel(at(1, 1), at(2, 0)), got)
	require.Equal(t, textbuf.Forward, got.Direction())
}

func TestMoveLineUp_BackwardSelectionBlock(t *testing.T) {
	d := doc("a", "bb", "cc", "d")
	got, res := run(t, &MoveLineUp{}, d, sel(at(2, 2), at(1, 1)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"bb", "cc", "a", "d"}, d.Lines())
	require.Equal(t, sel(at(1, 2), at(0, 1)), got)
	require.Equal(t, textbuf.Backward, got.Direction())
}

func TestMoveLine_BoundariesAreSkipped(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		sel  textbuf.Selection
	}{
		{"down from last line", &MoveLineDown{}, collapsed(at(2, 0))},
		{"up from first line", &MoveLineUp{}, collapsed(at(0, 1))},
		{"down with block touching end", &MoveLineDown{}, sel(at(1, 0), at(2, 1))},
		{"up with block touching start", &MoveLineUp{}, sel(at(1, 1), at(0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc("x", "y", "z")
			got, res := run(t, tt.op, d, tt.sel)
			require.Equal(t, Skipped, res)
			require.Equal(t, tt.sel, got)
			require.Equal(t, []string{"x", "y", "z"}, d.Lines())
		})
	}
}

func TestMoveLine_SingleLineDocument(t *testing.T) {
	d := doc("only")
	_, res := run(t, &MoveLineDown{}, d, collapsed(at(0, 0)))
	require.Equal(t, Skipped, res)
	_, res = run(t, &MoveLineUp{}, d, collapsed(at(0, 0)))
	require.Equal(t, Skipped, res)
}

func TestMoveLineDown_KeepsGraphemes(t *testing.T) {
	d := doc("h😀llo", "wörld")
	got, res := run(t, &MoveLineDown{}, d, collapsed(at(0, 3)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"wörld", "h😀llo"}, d.Lines())
	require.Equal(t, collapsed(at(1, 3)), got)
}

// drawSelection draws a selection inside d.
func drawSelection(t *rapid.T, d *textbuf.Document) textbuf.Selection {
	pos := func(label string) textbuf.Position {
		row := rapid.IntRange(0, d.LineCount()-1).Draw(t, label+"Row")
		end, _ := d.LineEndColumn(row)
		return at(row, rapid.IntRange(0, end).Draw(t, label+"Col"))
	}
	return sel(pos("anchor"), pos("active"))
}

// Moving a block down and back up restores both document and selection.
func TestMoveDownThenUp_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z #]{0,6}`), 1, 8).Draw(t, "lines")
		d := doc(lines...)
		before := d.Lines()
		s := drawSelection(t, d)

		moved, res, err := Apply(&MoveLineDown{}, d, s)
		if err != nil {
			t.Fatalf("move down: %v", err)
		}
		if res == Skipped {
			_, bottom := s.Block()
			if bottom != d.LineCount()-1 {
				t.Fatalf("skipped with block ending at row %d of %d", bottom, d.LineCount())
			}
			return
		}

		back, res, err := Apply(&MoveLineUp{}, d, moved)
		if err != nil {
			t.Fatalf("move up: %v", err)
		}
		if res != Executed {
			t.Fatalf("move up after move down was skipped")
		}
		if got := d.Lines(); !equalLines(got, before) {
			t.Fatalf("document %q, want %q", got, before)
		}
		if back != s {
			t.Fatalf("selection %v -> %v, want %v", s, back, s)
		}
	})
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

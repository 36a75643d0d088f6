package lineops

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codebrowser/internal/textbuf"
)

func TestDeleteWordLeft(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		col     int
		want    string
		wantCol int
	}{
		{"word", "foo bar", 7, "foo ", 4},
		{"trailing spaces", "foo bar   ", 10, "foo ", 4},
		{"mid word", "foobar", 3, "bar", 0},
		{"punctuation run", "call(x)", 5, "callx)", 4},
		{"only spaces", "    x", 4, "x", 0},
		{"unicode word", "naïve café", 10, "naïve ", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc(tt.line)
			got, res := run(t, &DeleteWordLeft{}, d, collapsed(at(0, tt.col)))
			require.Equal(t, Executed, res)
			require.Equal(t, tt.want, d.Text())
			require.Equal(t, collapsed(at(0, tt.wantCol)), got)
		})
	}
}

func TestDeleteWordLeft_JoinsAtColumnZero(t *testing.T) {
	d := doc("abc", "def")
	got, res := run(t, &DeleteWordLeft{}, d, collapsed(at(1, 0)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"abcdef"}, d.Lines())
	require.Equal(t, collapsed(at(0, 3)), got)
}

func TestDeleteWordLeft_DocumentStartIsSkipped(t *testing.T) {
	d := doc("abc")
	_, res := run(t, &DeleteWordLeft{}, d, collapsed(at(0, 0)))
	require.Equal(t, Skipped, res)
	require.Equal(t, "abc", d.Text())
}

func TestDeleteWordLeft_DeletesSelection(t *testing.T) {
	d := doc("hello", "world")
	got, res := run(t, &DeleteWordLeft{}, d, sel(at(1, 2), at(0, 3)))
	require.Equal(t, Executed, res)
	require.Equal(t, "helrld", d.Text())
	require.Equal(t, collapsed(at(0, 3)), got)
}

func TestDeleteWordRight(t *testing.T) {
	tests := []struct {
		name string
		line string
		col  int
		want string
	}{
		{"word", "foo bar", 0, " bar"},
		{"leading spaces", "foo   bar baz", 3, "foo baz"},
		{"punctuation run", "x := y", 1, "x y"},
		{"to line end", "abc   ", 3, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc(tt.line)
			got, res := run(t, &DeleteWordRight{}, d, collapsed(at(0, tt.col)))
			require.Equal(t, Executed, res)
			require.Equal(t, tt.want, d.Text())
			require.Equal(t, collapsed(at(0, tt.col)), got)
		})
	}
}

func TestDeleteWordRight_JoinsAtLineEnd(t *testing.T) {
	d := doc("abc", "def")
	got, res := run(t, &DeleteWordRight{}, d, collapsed(at(0, 3)))
	require.Equal(t, Executed, res)
	require.Equal(t, []string{"abcdef"}, d.Lines())
	require.Equal(t, collapsed(at(0, 3)), got)
}

func TestDeleteWordRight_DocumentEndIsSkipped(t *testing.T) {
	d := doc("abc", "de")
	orig := collapsed(at(1, 2))
	got, res := run(t, &DeleteWordRight{}, d, orig)
	require.Equal(t, Skipped, res)
	require.Equal(t, orig, got)
}

func TestDeleteWordRight_CursorAtLineEndMarker(t *testing.T) {
	d := doc("ab", "cd")
	got, res := run(t, &DeleteWordRight{}, d, collapsed(textbuf.LineEnd(0)))
	require.Equal(t, Executed, res)
	require.Equal(t, "abcd", d.Text())
	require.Equal(t, collapsed(at(0, 2)), got)
}

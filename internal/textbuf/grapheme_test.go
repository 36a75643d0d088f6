package textbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var graphemeCases = []struct {
	name      string
	input     string
	graphemes int
	display   int
}{
	{"ascii", "hello", 5, 5},
	{"combining accent", "héllo", 5, 5},
	{"emoji", "h😀llo", 5, 6},
	{"zwj family", "👨‍👩‍👧‍👦", 1, -1},
	{"cjk", "日本", 2, 4},
	{"empty", "", 0, 0},
}

func TestGraphemeCount(t *testing.T) {
	for _, tt := range graphemeCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.graphemes, GraphemeCount(tt.input))
			require.Len(t, Graphemes(tt.input), tt.graphemes)
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	for _, tt := range graphemeCases {
		if tt.display < 0 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.display, DisplayWidth(tt.input))
		})
	}
}

func TestGraphemeAt(t *testing.T) {
	require.Equal(t, "😀", GraphemeAt("h😀llo", 1))
	require.Equal(t, "é", GraphemeAt("héllo", 1))
	require.Equal(t, "", GraphemeAt("abc", 3))
	require.Equal(t, "", GraphemeAt("abc", -1))
}

func TestGraphemeToByteOffset(t *testing.T) {
	s := "a😀b"
	require.Equal(t, 0, GraphemeToByteOffset(s, 0))
	require.Equal(t, 1, GraphemeToByteOffset(s, 1))
	require.Equal(t, 5, GraphemeToByteOffset(s, 2))
	require.Equal(t, 6, GraphemeToByteOffset(s, 3))
	require.Equal(t, 6, GraphemeToByteOffset(s, 10))
}

func TestSliceByGraphemes(t *testing.T) {
	require.Equal(t, "😀b", SliceByGraphemes("a😀bc", 1, 3))
	require.Equal(t, "", SliceByGraphemes("abc", 2, 1))
	require.Equal(t, "abc", SliceByGraphemes("abc", -3, 9))
}

func TestClassOf(t *testing.T) {
	require.Equal(t, ClassSpace, ClassOf(" "))
	require.Equal(t, ClassSpace, ClassOf("\t"))
	require.Equal(t, ClassWord, ClassOf("a"))
	require.Equal(t, ClassWord, ClassOf("_"))
	require.Equal(t, ClassWord, ClassOf("é"))
	require.Equal(t, ClassWord, ClassOf("7"))
	require.Equal(t, ClassPunct, ClassOf("("))
	require.Equal(t, ClassPunct, ClassOf("😀"))
}

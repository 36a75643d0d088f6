package textbuf

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Columns in this package count grapheme clusters, the unit a user perceives
// as one character. A cluster can be several runes and many bytes
// ("e" + combining acute is one column, a ZWJ emoji family is one column).
// Display width in terminal cells is a third, separate unit.

// Class groups grapheme clusters for word boundary detection.
type Class int

const (
	ClassSpace Class = iota
	ClassWord
	ClassPunct
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		out = append(out, cluster)
	}
	return out
}

// GraphemeAt returns the cluster at grapheme index idx, or "" when idx is
// outside s.
func GraphemeAt(s string, idx int) string {
	if idx < 0 {
		return ""
	}
	i := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		if i == idx {
			return cluster
		}
		i++
	}
	return ""
}

// GraphemeToByteOffset converts a grapheme index into a byte offset.
// Indices past the end map to len(s).
func GraphemeToByteOffset(s string, idx int) int {
	if idx <= 0 {
		return 0
	}
	i := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		_, rest, _, state = uniseg.StepString(rest, state)
		i++
		if i == idx {
			return len(s) - len(rest)
		}
	}
	return len(s)
}

// SliceByGraphemes returns the clusters of s in [start, end).
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}
	return s[GraphemeToByteOffset(s, start):GraphemeToByteOffset(s, end)]
}

// DisplayWidth returns the width of s in terminal cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ClassOf classifies a cluster by its first rune. Letters, digits and
// underscore are word characters in any script; emoji count as punctuation.
func ClassOf(cluster string) Class {
	for _, r := range cluster {
		switch {
		case r == ' ' || r == '\t':
			return ClassSpace
		case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
			return ClassWord
		default:
			return ClassPunct
		}
	}
	return ClassSpace
}

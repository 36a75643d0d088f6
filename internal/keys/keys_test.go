package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestEditorKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultEditorKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "GotoStart", binding: km.GotoStart, expected: []string{"ctrl+home"}},
		{name: "GotoEnd", binding: km.GotoEnd, expected: []string{"ctrl+end"}},
		{name: "NewlineBelow", binding: km.NewlineBelow, expected: []string{"ctrl+j"}},
		{name: "NewlineAbove", binding: km.NewlineAbove, expected: []string{"ctrl+e"}},
		{name: "DuplicateBelow", binding: km.DuplicateBelow, expected: []string{"ctrl+down"}},
		{name: "DuplicateAbove", binding: km.DuplicateAbove, expected: []string{"ctrl+up"}},
		{name: "Save", binding: km.Save, expected: []string{"ctrl+s"}},
		{name: "Quit uses ctrl+q and ctrl+c", binding: km.Quit, expected: []string{"ctrl+q", "ctrl+c"}},
		{name: "SelectUp", binding: km.SelectUp, expected: []string{"shift+up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestEditorKeyMap_HelpTextDefined(t *testing.T) {
	km := DefaultEditorKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key, "binding %v has no help key", b.Keys())
			require.NotEmpty(t, b.Help().Desc, "binding %v has no help desc", b.Keys())
		}
	}
}

func TestEditorKeyMap_NoDuplicateKeys(t *testing.T) {
	km := DefaultEditorKeyMap()
	seen := map[string]string{}

	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				prev, dup := seen[k]
				require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestEditorKeyMap_ShortHelp(t *testing.T) {
	help := DefaultEditorKeyMap().ShortHelp()
	require.NotEmpty(t, help)
	require.Equal(t, "ctrl+s", help[0].Help().Key)
}

func TestEditorKeyMap_Operations(t *testing.T) {
	ops := DefaultEditorKeyMap().Operations()
	require.Len(t, ops, 6)

	ids := map[string]bool{}
	for _, ob := range ops {
		require.NotEmpty(t, ob.Binding.Keys())
		ids[ob.OperationID] = true
	}
	require.True(t, ids["document.goto_start"])
	require.True(t, ids["line.duplicate_above"])
}

func TestTranslateToTerminal_CtrlSpace(t *testing.T) {
	require.Equal(t, "ctrl+@", TranslateToTerminal("ctrl+space"))
}

func TestTranslateToTerminal_CaseAndWhitespace(t *testing.T) {
	require.Equal(t, "ctrl+@", TranslateToTerminal("  Ctrl+Space "))
	require.Equal(t, "alt+down", TranslateToTerminal("Alt+Down"))
}

func TestTranslateToDisplay(t *testing.T) {
	require.Equal(t, "ctrl+space", TranslateToDisplay("ctrl+@"))
	require.Equal(t, "esc", TranslateToDisplay("esc"))
}

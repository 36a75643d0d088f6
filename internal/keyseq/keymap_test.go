package keyseq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/codebrowser/internal/lineops"
)

func TestKeymap_BindUnknownOperation(t *testing.T) {
	km := NewKeymap(lineops.DefaultRegistry())

	err := km.BindChord("esc", "left", "line.teleport")
	require.ErrorIs(t, err, ErrUnknownOperation)

	err = km.BindKey("ctrl+k", "nope")
	require.ErrorIs(t, err, ErrUnknownOperation)
	require.Contains(t, err.Error(), `"nope"`)
}

func TestKeymap_BindInvalidNames(t *testing.T) {
	km := NewKeymap(lineops.DefaultRegistry())

	require.ErrorIs(t, km.BindKey("", "line.move_up"), ErrInvalidBinding)
	require.ErrorIs(t, km.BindKey("ctrl k", "line.move_up"), ErrInvalidBinding)
	require.ErrorIs(t, km.BindChord("esc", " ", "line.move_up"), ErrInvalidBinding)
}

func TestKeymap_BindPair(t *testing.T) {
	km := NewKeymap(lineops.DefaultRegistry())

	require.NoError(t, km.BindPair("<", ">"))
	op, ok := km.Pair("<")
	require.True(t, ok)
	require.Equal(t, "<", op.Open)
	require.Equal(t, ">", op.Close)

	require.ErrorIs(t, km.BindPair("((", ")"), ErrInvalidBinding)
	require.ErrorIs(t, km.BindPair("(", ""), ErrInvalidBinding)
}

func TestKeymap_Rebind(t *testing.T) {
	km := NewKeymap(lineops.DefaultRegistry())
	require.NoError(t, km.BindKey("ctrl+k", "line.move_up"))
	require.NoError(t, km.BindKey("ctrl+k", "line.move_down"))

	op, ok := km.Key("ctrl+k")
	require.True(t, ok)
	require.Equal(t, "line.move_down", op.ID())
}

func TestDefaultKeymap_EveryBuiltinResolves(t *testing.T) {
	km, err := buildDefaultKeymap()
	require.NoError(t, err)
	require.Len(t, km.Bindings(), len(DefaultChords)+len(DefaultKeys)+len(lineops.DefaultPairs))
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	op, ok := km.Chord("esc", "down")
	require.True(t, ok)
	require.Equal(t, "line.move_down", op.ID())

	op, ok = km.Chord("esc", "up")
	require.True(t, ok)
	require.Equal(t, "line.move_up", op.ID())

	op, ok = km.Chord("ctrl+@", "backspace")
	require.True(t, ok)
	require.Equal(t, "word.delete_left", op.ID())

	_, ok = km.Chord("down", "esc")
	require.False(t, ok)

	for name, id := range DefaultKeys {
		op, ok := km.Key(name)
		require.True(t, ok, name)
		require.Equal(t, id, op.ID())
	}

	for _, open := range []string{"(", "[", "{"} {
		_, ok := km.Pair(open)
		require.True(t, ok, open)
	}
}

func TestKeymap_Bindings(t *testing.T) {
	km := NewKeymap(lineops.DefaultRegistry())
	require.NoError(t, km.BindChord("esc", "up", "line.move_up"))
	require.NoError(t, km.BindChord("esc", "down", "line.move_down"))
	require.NoError(t, km.BindKey("ctrl+w", "word.delete_left"))
	require.NoError(t, km.BindPair("(", ")"))

	require.Equal(t, []Binding{
		{Keys: "esc down", OperationID: "line.move_down", Kind: KindChord},
		{Keys: "esc up", OperationID: "line.move_up", Kind: KindChord},
		{Keys: "ctrl+w", OperationID: "word.delete_left", Kind: KindKey},
		{Keys: "(", OperationID: "insert.pair ()", Kind: KindPair},
	}, km.Bindings())
}

func TestChordState(t *testing.T) {
	require.True(t, Idle().IsIdle())
	require.Equal(t, "", Idle().Key())
	require.Equal(t, "idle", Idle().String())

	s := ArmedBy("esc")
	require.False(t, s.IsIdle())
	require.Equal(t, "esc", s.Key())
	require.Equal(t, "armed(esc)", s.String())
}

func TestKeyEvent_String(t *testing.T) {
	require.Equal(t, `"("`, Printable("(").String())
	require.Equal(t, "<esc>", Named("esc").String())
}

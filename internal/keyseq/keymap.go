package keyseq

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zjrosen/codebrowser/internal/lineops"
	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// ErrUnknownOperation is returned when a binding names an operation ID the
// registry does not hold.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInvalidBinding is returned for malformed key names or pairs.
var ErrInvalidBinding = errors.New("invalid binding")

// Keymap maps chords, single keys and bracket characters to operations.
type Keymap struct {
	registry *lineops.Registry
	chords   map[Chord]lineops.Operation
	keys     map[string]lineops.Operation
	pairs    map[string]*lineops.InsertPair
}

// NewKeymap creates an empty keymap resolving operation IDs through reg.
func NewKeymap(reg *lineops.Registry) *Keymap {
	return &Keymap{
		registry: reg,
		chords:   make(map[Chord]lineops.Operation),
		keys:     make(map[string]lineops.Operation),
		pairs:    make(map[string]*lineops.InsertPair),
	}
}

func (k *Keymap) lookup(opID string) (lineops.Operation, error) {
	op, ok := k.registry.Get(opID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, opID)
	}
	return op, nil
}

func checkKeyName(name string) error {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("%w: key name %q", ErrInvalidBinding, name)
	}
	return nil
}

// BindChord binds the two-key sequence (first, second) to opID.
func (k *Keymap) BindChord(first, second, opID string) error {
	if err := checkKeyName(first); err != nil {
		return err
	}
	if err := checkKeyName(second); err != nil {
		return err
	}
	op, err := k.lookup(opID)
	if err != nil {
		return err
	}
	k.chords[Chord{First: first, Second: second}] = op
	return nil
}

// BindKey binds a single non-printable key to opID.
func (k *Keymap) BindKey(name, opID string) error {
	if err := checkKeyName(name); err != nil {
		return err
	}
	op, err := k.lookup(opID)
	if err != nil {
		return err
	}
	k.keys[name] = op
	return nil
}

// BindPair makes typing open insert open+closing. Both must be one grapheme.
func (k *Keymap) BindPair(open, closing string) error {
	if textbuf.GraphemeCount(open) != 1 || textbuf.GraphemeCount(closing) != 1 {
		return fmt.Errorf("%w: pair %q%q must be two single characters", ErrInvalidBinding, open, closing)
	}
	k.pairs[open] = lineops.NewInsertPair(open, closing)
	return nil
}

// Chord returns the operation bound to (first, second).
func (k *Keymap) Chord(first, second string) (lineops.Operation, bool) {
	op, ok := k.chords[Chord{First: first, Second: second}]
	return op, ok
}

// Key returns the operation bound to a single key.
func (k *Keymap) Key(name string) (lineops.Operation, bool) {
	op, ok := k.keys[name]
	return op, ok
}

// Pair returns the bracket insertion for an opening character.
func (k *Keymap) Pair(open string) (*lineops.InsertPair, bool) {
	op, ok := k.pairs[open]
	return op, ok
}

// BindingKind tells which table a Binding came from.
type BindingKind int

const (
	KindChord BindingKind = iota
	KindKey
	KindPair
)

func (k BindingKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindPair:
		return "pair"
	default:
		return "chord"
	}
}

// Binding describes one keymap entry for help output.
type Binding struct {
	Keys        string
	OperationID string
	Kind        BindingKind
}

// Bindings lists chords then single keys then pairs, each group sorted.
func (k *Keymap) Bindings() []Binding {
	var chords, keys, pairs []Binding
	for c, op := range k.chords {
		chords = append(chords, Binding{Keys: c.String(), OperationID: op.ID(), Kind: KindChord})
	}
	for name, op := range k.keys {
		keys = append(keys, Binding{Keys: name, OperationID: op.ID(), Kind: KindKey})
	}
	for open, op := range k.pairs {
		pairs = append(pairs, Binding{Keys: open, OperationID: op.ID() + " " + op.Open + op.Close, Kind: KindPair})
	}
	out := make([]Binding, 0, len(chords)+len(keys)+len(pairs))
	for _, group := range [][]Binding{chords, keys, pairs} {
		sort.Slice(group, func(i, j int) bool { return group[i].Keys < group[j].Keys })
		out = append(out, group...)
	}
	return out
}

// DefaultChords are the built-in two-key sequences.
var DefaultChords = []struct {
	Chord       Chord
	OperationID string
}{
	{Chord{First: "esc", Second: "down"}, "line.move_down"},
	{Chord{First: "esc", Second: "up"}, "line.move_up"},
	{Chord{First: "ctrl+@", Second: "backspace"}, "word.delete_left"},
}

// DefaultKeys are the built-in single-key bindings.
var DefaultKeys = map[string]string{
	"ctrl+w":   "word.delete_left",
	"alt+d":    "word.delete_right",
	"ctrl+_":   "line.toggle_comment",
	"alt+down": "line.move_down",
	"alt+up":   "line.move_up",
}

// DefaultKeymap returns the built-in keymap over lineops.DefaultRegistry.
// It panics if a built-in binding no longer resolves.
func DefaultKeymap() *Keymap {
	k, err := buildDefaultKeymap()
	if err != nil {
		panic(fmt.Sprintf("keyseq: built-in keymap: %v", err))
	}
	return k
}

func buildDefaultKeymap() (*Keymap, error) {
	k := NewKeymap(lineops.DefaultRegistry())
	var errs []error
	for _, c := range DefaultChords {
		if err := k.BindChord(c.Chord.First, c.Chord.Second, c.OperationID); err != nil {
			errs = append(errs, err)
		}
	}
	for name, id := range DefaultKeys {
		if err := k.BindKey(name, id); err != nil {
			errs = append(errs, err)
		}
	}
	for open, closing := range lineops.DefaultPairs {
		if err := k.BindPair(open, closing); err != nil {
			errs = append(errs, err)
		}
	}
	return k, errors.Join(errs...)
}

// Package keyseq interprets raw key events for the editing surface. It owns a
// two-state chord automaton, a configurable keymap from chords and single
// keys to line operations, and the dispatcher that ties them to lineops.
//
// The package knows nothing about any terminal toolkit: hosts translate their
// native key messages into KeyEvent values.
package keyseq

import "fmt"

// KeyEvent is one key press as seen by the dispatcher.
//
// Printable events carry the typed text in Character. Name identifies the
// key in the host's vocabulary ("esc", "down", "ctrl+w", "alt+d") and is
// what chords and bindings match against.
type KeyEvent struct {
	Character string
	Name      string
	Printable bool
}

// Printable returns a printable event for ch.
func Printable(ch string) KeyEvent {
	return KeyEvent{Character: ch, Name: ch, Printable: true}
}

// Named returns a non-printable event.
func Named(name string) KeyEvent {
	return KeyEvent{Name: name}
}

func (e KeyEvent) String() string {
	if e.Printable {
		return fmt.Sprintf("%q", e.Character)
	}
	return "<" + e.Name + ">"
}

// ChordState is the dispatcher's memory between events. It is either Idle or
// armed by the name of the last non-printable key that was not consumed.
// Values are immutable and passed in and out of Dispatch.
type ChordState struct {
	key string
}

// Idle returns the empty state.
func Idle() ChordState { return ChordState{} }

// ArmedBy returns the state remembering key.
func ArmedBy(key string) ChordState { return ChordState{key: key} }

// IsIdle reports whether no key is remembered.
func (s ChordState) IsIdle() bool { return s.key == "" }

// Key returns the remembered key, "" when idle.
func (s ChordState) Key() string { return s.key }

func (s ChordState) String() string {
	if s.IsIdle() {
		return "idle"
	}
	return "armed(" + s.key + ")"
}

// Chord is an ordered pair of key names.
type Chord struct {
	First  string
	Second string
}

func (c Chord) String() string {
	return c.First + " " + c.Second
}

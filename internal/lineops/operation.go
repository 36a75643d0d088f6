// Package lineops implements the structural line operations of the editing
// surface: moving, duplicating, commenting and opening lines, jumping to the
// ends of the document and the word and bracket edits the keymap binds.
//
// Every operation reads and mutates a textbuf.Document through range
// read/replace only and reports the new selection through State. Boundary
// conditions (moving the first line up, deleting before the document start)
// are Skipped and leave both the document and the selection untouched.
package lineops

import (
	"fmt"
	"sort"

	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// ExecuteResult indicates the outcome of operation execution.
type ExecuteResult int

const (
	// Executed means the operation ran and may have changed document and selection.
	Executed ExecuteResult = iota
	// Skipped means pre-conditions weren't met (e.g. moving the last line down).
	Skipped
)

func (r ExecuteResult) String() string {
	if r == Skipped {
		return "skipped"
	}
	return "executed"
}

// State is what an operation works on: the document and the selection over it.
type State struct {
	Doc *textbuf.Document
	Sel textbuf.Selection
}

// Operation is a single structural edit or motion.
type Operation interface {
	// Execute applies the operation to s. Errors are reserved for addressing
	// faults; a no-op at a boundary is Skipped with a nil error.
	Execute(s *State) (ExecuteResult, error)

	// ID returns a hierarchical identifier such as "line.move_down".
	// Used for keymap configuration, logging and registry lookup.
	ID() string

	// ChangesContent reports whether the operation modifies the text.
	ChangesContent() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Operation implementations
// ============================================================================

// EditBase is embedded by operations that change the text.
type EditBase struct{}

func (EditBase) ChangesContent() bool { return true }

// MotionBase is embedded by operations that only move the selection.
type MotionBase struct{}

func (MotionBase) ChangesContent() bool { return false }

// Apply runs op against doc with sel and returns the resulting selection.
// Markers in sel are resolved first so operations only see concrete rows.
// When the operation is skipped or fails the original selection is returned.
func Apply(op Operation, doc *textbuf.Document, sel textbuf.Selection) (textbuf.Selection, ExecuteResult, error) {
	anchor, err := doc.Resolve(sel.Anchor)
	if err != nil {
		return sel, Skipped, fmt.Errorf("%s: %w", op.ID(), err)
	}
	active, err := doc.Resolve(sel.Active)
	if err != nil {
		return sel, Skipped, fmt.Errorf("%s: %w", op.ID(), err)
	}

	s := &State{Doc: doc, Sel: textbuf.Select(anchor, active)}
	res, err := op.Execute(s)
	if err != nil {
		return sel, Skipped, fmt.Errorf("%s: %w", op.ID(), err)
	}
	if res == Skipped {
		return sel, Skipped, nil
	}
	return s.Sel, Executed, nil
}

// ============================================================================
// Registry
// ============================================================================

// Registry maps operation IDs to operations. Operations carry no per-call
// state, so the registered value is shared by every caller.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op under its ID, replacing any previous registration.
func (r *Registry) Register(op Operation) {
	r.ops[op.ID()] = op
}

// Get returns the operation registered under id.
func (r *Registry) Get(id string) (Operation, bool) {
	op, ok := r.ops[id]
	return op, ok
}

// IDs returns every registered ID in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.ops))
	for id := range r.ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultRegistry returns a registry holding every parameterless operation.
// Bracket insertion is parameterised by its pair and is built with NewInsertPair.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, op := range []Operation{
		&MoveLineDown{},
		&MoveLineUp{},
		&AddNewlineBelow{},
		&AddNewlineAbove{},
		&ToggleComment{},
		&DuplicateAbove{},
		&DuplicateBelow{},
		&GotoDocumentStart{},
		&GotoDocumentEnd{},
		&DeleteWordLeft{},
		&DeleteWordRight{},
	} {
		r.Register(op)
	}
	return r
}

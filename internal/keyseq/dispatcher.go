package keyseq

import (
	"github.com/zjrosen/codebrowser/internal/lineops"
	"github.com/zjrosen/codebrowser/internal/log"
	"github.com/zjrosen/codebrowser/internal/textbuf"
)

// Result reports what Dispatch did with one event.
type Result struct {
	// Consumed is true when the host must not process the event further.
	Consumed bool
	// State is the chord state to pass to the next Dispatch call.
	State ChordState
	// Selection is the selection after any operation ran.
	Selection textbuf.Selection
	// Operation is the operation that was invoked, nil when none was.
	Operation lineops.Operation
	// Outcome is meaningful only when Operation is non-nil.
	Outcome lineops.ExecuteResult
}

// Changed reports whether an operation ran and modified the document.
func (r Result) Changed() bool {
	return r.Operation != nil && r.Outcome == lineops.Executed && r.Operation.ChangesContent()
}

// Dispatcher routes key events to operations through a Keymap.
type Dispatcher struct {
	keymap *Keymap
}

// NewDispatcher creates a dispatcher over km.
func NewDispatcher(km *Keymap) *Dispatcher {
	return &Dispatcher{keymap: km}
}

// Keymap returns the dispatcher's keymap.
func (d *Dispatcher) Keymap() *Keymap { return d.keymap }

// Dispatch handles one event. Rules are tried in order:
//
//  1. A printable opening bracket inserts its pair. The chord state is kept.
//  2. A non-printable key completing a chord with the remembered key runs the
//     chord's operation. The state is returned unchanged, so the remembered
//     key stays armed.
//  3. A non-printable key with a single binding runs it. The state is kept.
//  4. Any other non-printable key is not consumed and arms the state.
//
// Other printable keys are not consumed and leave the state alone. A skipped
// operation still consumes its event. Errors only come from operations
// addressing rows or columns the document lacks.
func (d *Dispatcher) Dispatch(ev KeyEvent, state ChordState, doc *textbuf.Document, sel textbuf.Selection) (Result, error) {
	if ev.Printable {
		pair, ok := d.keymap.Pair(ev.Character)
		if !ok {
			return Result{State: state, Selection: sel}, nil
		}
		return d.run(pair, state, doc, sel)
	}

	if !state.IsIdle() {
		if op, ok := d.keymap.Chord(state.Key(), ev.Name); ok {
			log.Debug(log.CatKeys, "chord matched", "first", state.Key(), "second", ev.Name, "op", op.ID())
			return d.run(op, state, doc, sel)
		}
	}

	if op, ok := d.keymap.Key(ev.Name); ok {
		return d.run(op, state, doc, sel)
	}

	return Result{State: ArmedBy(ev.Name), Selection: sel}, nil
}

func (d *Dispatcher) run(op lineops.Operation, state ChordState, doc *textbuf.Document, sel textbuf.Selection) (Result, error) {
	next, outcome, err := lineops.Apply(op, doc, sel)
	res := Result{
		Consumed:  true,
		State:     state,
		Selection: next,
		Operation: op,
		Outcome:   outcome,
	}
	if err != nil {
		log.ErrorErr(log.CatOps, "operation failed", err, "op", op.ID())
		return res, err
	}
	log.Debug(log.CatOps, "operation applied", "op", op.ID(), "outcome", outcome, "selection", next.Active)
	return res, nil
}

package engines

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/bfe/tapes"
)

// State is a copy of everything an engine needs to resume execution
type State struct {
	Cells   []byte `cbor:"1,keyasint"`
	Cursor  int    `cbor:"2,keyasint"`
	Program []byte `cbor:"3,keyasint"`
	PC      int    `cbor:"4,keyasint"`
	Returns []int  `cbor:"5,keyasint"`
	Steps   int    `cbor:"6,keyasint"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("engines: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

func (e *Engine) State() State {
	if e == nil {
		return State{}
	}
	return State{
		Cells:   e.data.Bytes(),
		Cursor:  e.data.Position(),
		Program: e.program.Bytes(),
		PC:      e.program.Position(),
		Returns: e.returns.Positions(),
		Steps:   e.steps,
	}
}

func (e *Engine) Snapshot(w io.Writer) error {
	if e == nil {
		return ErrNotInitialized
	}
	if err := cborEncMode.NewEncoder(w).Encode(e.State()); err != nil {
		return fmt.Errorf("engines: encode state: %w", err)
	}
	return nil
}

// Restore replaces the tapes and return stack with a snapshot.
// The data tape takes the snapshot's size.
func (e *Engine) Restore(r io.Reader) error {
	if e == nil {
		return ErrNotInitialized
	}
	var state State
	if err := cbor.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("engines: decode state: %w", err)
	}

	data, err := tapes.Restore(state.Cells, state.Cursor, true)
	if err != nil {
		return fmt.Errorf("engines: restore data tape: %w", err)
	}
	program, err := tapes.Restore(state.Program, state.PC, false)
	if err != nil {
		return fmt.Errorf("engines: restore program: %w", err)
	}
	for _, pos := range state.Returns {
		if pos < 0 || pos >= program.Len() {
			return fmt.Errorf("engines: restore return stack: %w: %d", tapes.ErrOutOfRange, pos)
		}
	}

	previous := e.returns.Positions()
	e.returns.Reset()
	for _, pos := range state.Returns {
		if err := e.returns.Push(pos); err != nil {
			e.returns.Reset()
			for _, pos := range previous {
				_ = e.returns.Push(pos)
			}
			return fmt.Errorf("engines: restore return stack: %w", err)
		}
	}
	e.data = data
	e.program = program
	e.steps = state.Steps
	return nil
}

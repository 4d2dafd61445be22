package engines

import (
	"fmt"
)

// Run executes until the program counter runs off the program.
// Breaks and periodic yields are reported as interrupts; an error stops the run.
func (e *Engine) Run(yield func(*Interrupt, error) bool) {
	if e == nil {
		yield(nil, ErrNotInitialized)
		return
	}
	if e.program == nil {
		yield(nil, ErrNoProgram)
		return
	}
	defer e.out.Flush()

	for !e.Done() {
		intr, err := e.Step()
		if err != nil {
			if flushErr := e.out.Flush(); flushErr != nil {
				err = fmt.Errorf("%w (flush: %v)", err, flushErr)
			}
			yield(nil, err)
			return
		}
		if intr == nil && e.steps%yieldInterval == 0 {
			intr = InterruptYield
		}
		if intr != nil {
			if intr.Break {
				// let the caller observe output produced before the break
				if err := e.out.Flush(); err != nil {
					yield(nil, err)
					return
				}
			}
			if !yield(intr, nil) {
				return
			}
		}
	}

	if err := e.out.Flush(); err != nil {
		yield(nil, err)
	}
}

// Step executes the instruction under the program counter
func (e *Engine) Step() (*Interrupt, error) {
	if e == nil {
		return nil, ErrNotInitialized
	}
	if e.program == nil {
		return nil, ErrNoProgram
	}
	if e.Done() {
		return nil, nil
	}
	if e.maxSteps > 0 && e.steps >= e.maxSteps {
		return nil, fmt.Errorf("%w: %d", ErrStepLimit, e.maxSteps)
	}
	e.steps++

	var intr *Interrupt
	jumped := false

	switch e.program.Read() {

	case '>':
		e.data.Advance()

	case '<':
		e.data.Retreat()

	case '+':
		e.data.Increment()

	case '-':
		e.data.Decrement()

	case '.':
		if err := e.output(); err != nil {
			return nil, err
		}

	case ',':
		if err := e.input(); err != nil {
			return nil, err
		}

	case '[':
		if err := e.loopEnter(); err != nil {
			return nil, err
		}

	case ']':
		var err error
		jumped, err = e.loopExit()
		if err != nil {
			return nil, err
		}

	case '/':
		e.comment()

	case '?':
		if err := e.dump(); err != nil {
			return nil, err
		}

	case '^':
		intr = InterruptBreak

	}

	if !jumped {
		e.program.Advance()
	}
	return intr, nil
}

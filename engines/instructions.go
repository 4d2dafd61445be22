package engines

import (
	"errors"
	"fmt"
	"io"
)

const (
	printableMin = 32
	printableMax = 176

	maxNumberDigits = 9
)

// output writes the current cell as text
func (e *Engine) output() error {
	v := e.data.Read()
	var err error
	switch {
	case v == '\n' || v == '\r':
		err = e.out.WriteByte('\n')
	case v >= printableMin && v <= printableMax:
		_, err = e.out.WriteRune(rune(v))
	default:
		_, err = fmt.Fprintf(e.out, `\x%02x`, v)
	}
	return err
}

// input reads one raw byte into the current cell
func (e *Engine) input() error {
	// prompts must be visible before blocking
	if err := e.out.Flush(); err != nil {
		return err
	}
	b, err := e.in.ReadByte()
	if errors.Is(err, io.EOF) {
		switch e.eof {
		case EOFZero:
			e.data.Write(0)
		case EOFError:
			return fmt.Errorf("input at %d: %w", e.program.Position(), io.ErrUnexpectedEOF)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("input at %d: %w", e.program.Position(), err)
	}
	e.data.Write(b)
	return nil
}

// loopEnter records the loop position when the current cell is nonzero,
// otherwise leaves the program counter on the matching ]
func (e *Engine) loopEnter() error {
	if e.data.Read() != 0 {
		return e.returns.Push(e.program.Position())
	}

	start := e.program.Position()
	depth := -1
	for !e.program.AtEnd() {
		switch e.program.Read() {
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return nil
			}
			depth--
		}
		e.program.Advance()
	}
	return fmt.Errorf("%w: [ at %d", ErrUnterminatedLoop, start)
}

// loopExit jumps back to the innermost entered [ so its condition is evaluated again
func (e *Engine) loopExit() (jumped bool, err error) {
	if e.returns.Empty() {
		return false, nil
	}
	pos, err := e.returns.Pop()
	if err != nil {
		return false, err
	}
	if err := e.program.Seek(pos); err != nil {
		return false, err
	}
	return true, nil
}

// comment skips // line comments up to the newline and /* */ block comments.
// The byte after a lone / is skipped.
func (e *Engine) comment() {
	e.program.Advance()
	switch e.program.Read() {

	case '/':
		for !e.program.AtEnd() && e.program.Read() != '\n' {
			e.program.Advance()
		}

	case '*':
		e.program.Advance()
		for !e.program.AtEnd() && e.program.Read() != '*' {
			e.program.Advance()
		}
		e.program.Advance()

	}
}

// dump prints data cells [start, end) parsed from ?<start><sep><end>
func (e *Engine) dump() error {
	e.program.Advance()
	start := e.pullNumber()
	e.program.Advance()
	end := min(e.pullNumber(), e.data.Len())

	if _, err := io.WriteString(e.out, "\n***** MEMORY *****\n\n"); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		if _, err := fmt.Fprintf(e.out, "%d\t", i); err != nil {
			return err
		}
	}
	if err := e.out.WriteByte('\n'); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		v, _ := e.data.At(i)
		if _, err := fmt.Fprintf(e.out, "%d\t", v); err != nil {
			return err
		}
	}
	return e.out.WriteByte('\n')
}

func (e *Engine) pullNumber() int {
	n := 0
	for range maxNumberDigits {
		if e.program.AtEnd() {
			break
		}
		c := e.program.Read()
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		e.program.Advance()
	}
	return n
}

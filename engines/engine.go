package engines

import (
	"bufio"
	"io"

	"github.com/reusee/bfe/stacks"
	"github.com/reusee/bfe/tapes"
)

// ReturnStack holds the program positions of entered loops
type ReturnStack interface {
	Push(pos int) error
	Pop() (int, error)
	Empty() bool
	Depth() int
	Reset()
	Positions() []int
}

var _ ReturnStack = new(stacks.Stack)

type Engine struct {
	data    *tapes.Tape
	program *tapes.Tape
	returns ReturnStack

	in  io.ByteReader
	out *bufio.Writer

	eof      EOFMode
	maxSteps int
	steps    int
}

type Option func(*Engine)

func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

func WithEOF(mode EOFMode) Option {
	return func(e *Engine) {
		e.eof = mode
	}
}

func WithReturnStack(s ReturnStack) Option {
	return func(e *Engine) {
		e.returns = s
	}
}

// New creates an engine with a wrapping data tape of size cells.
// A nil in behaves as an exhausted input device, a nil out discards output.
func New(size int, in io.Reader, out io.Writer, options ...Option) (*Engine, error) {
	data, err := tapes.New(size, true)
	if err != nil {
		return nil, err
	}

	if in == nil {
		in = eofReader{}
	}
	byteReader, ok := in.(io.ByteReader)
	if !ok {
		byteReader = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}

	e := &Engine{
		data: data,
		in:   byteReader,
		out:  bufio.NewWriter(out),
	}
	for _, option := range options {
		option(e)
	}
	if e.returns == nil {
		e.returns = stacks.New()
	}
	return e, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (eofReader) ReadByte() (byte, error) {
	return 0, io.EOF
}

// Load replaces the program and rewinds execution. The data tape is kept.
func (e *Engine) Load(program *tapes.Tape) error {
	if e == nil {
		return ErrNotInitialized
	}
	if program == nil {
		return ErrNoProgram
	}
	if program.Wraps() {
		// the program counter must stop at the end
		p, err := tapes.FromBytes(program.Bytes())
		if err != nil {
			return err
		}
		program = p
	}
	if err := program.Seek(0); err != nil {
		return err
	}
	e.program = program
	e.returns.Reset()
	e.steps = 0
	return nil
}

func (e *Engine) LoadFile(path string) error {
	if e == nil {
		return ErrNotInitialized
	}
	program, err := tapes.Load(path)
	if err != nil {
		return err
	}
	return e.Load(program)
}

// Done reports whether the program counter ran off the program
func (e *Engine) Done() bool {
	if e == nil {
		return true
	}
	return e.program.AtEnd()
}

func (e *Engine) Data() *tapes.Tape {
	if e == nil {
		return nil
	}
	return e.data
}

func (e *Engine) Program() *tapes.Tape {
	if e == nil {
		return nil
	}
	return e.program
}

func (e *Engine) Depth() int {
	if e == nil {
		return 0
	}
	return e.returns.Depth()
}

func (e *Engine) Steps() int {
	if e == nil {
		return 0
	}
	return e.steps
}

// Flush writes buffered output to the output device
func (e *Engine) Flush() error {
	if e == nil {
		return nil
	}
	return e.out.Flush()
}

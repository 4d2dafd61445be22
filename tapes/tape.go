package tapes

import (
	"errors"
	"fmt"
)

var (
	ErrZeroSize     = errors.New("zero sized tape")
	ErrEmptyProgram = errors.New("empty program")
	ErrOutOfRange   = errors.New("position out of range")
)

// Tape is a fixed length byte array with a movable cursor.
// A wrapping tape moves the cursor modulo its length. A non-wrapping tape
// stops at the END position, which equals Len().
type Tape struct {
	cells  []byte
	cursor int
	wrap   bool
}

func New(size int, wrap bool) (*Tape, error) {
	if size <= 0 {
		return nil, ErrZeroSize
	}
	return &Tape{
		cells: make([]byte, size),
		wrap:  wrap,
	}, nil
}

// FromBytes returns a non-wrapping tape holding a copy of data
func FromBytes(data []byte) (*Tape, error) {
	if len(data) == 0 {
		return nil, ErrEmptyProgram
	}
	cells := make([]byte, len(data))
	copy(cells, data)
	return &Tape{
		cells: cells,
	}, nil
}

func (t *Tape) Wraps() bool {
	if t == nil {
		return false
	}
	return t.wrap
}

func (t *Tape) Advance() bool {
	if t == nil {
		return false
	}
	if t.wrap {
		t.cursor++
		if t.cursor >= len(t.cells) {
			t.cursor = 0
		}
		return true
	}
	if t.cursor >= len(t.cells) {
		return false
	}
	t.cursor++
	return true
}

func (t *Tape) Retreat() bool {
	if t == nil {
		return false
	}
	if t.cursor == 0 {
		if !t.wrap {
			return false
		}
		t.cursor = len(t.cells) - 1
		return true
	}
	t.cursor--
	return true
}

func (t *Tape) Read() byte {
	if t == nil || t.cursor >= len(t.cells) {
		return 0
	}
	return t.cells[t.cursor]
}

func (t *Tape) Write(b byte) bool {
	if t == nil || t.cursor >= len(t.cells) {
		return false
	}
	t.cells[t.cursor] = b
	return true
}

func (t *Tape) Increment() {
	if t == nil || t.cursor >= len(t.cells) {
		return
	}
	t.cells[t.cursor]++
}

func (t *Tape) Decrement() {
	if t == nil || t.cursor >= len(t.cells) {
		return
	}
	t.cells[t.cursor]--
}

func (t *Tape) Seek(pos int) error {
	if t == nil {
		return ErrOutOfRange
	}
	if pos < 0 || pos >= len(t.cells) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, pos, len(t.cells))
	}
	t.cursor = pos
	return nil
}

func (t *Tape) Position() int {
	if t == nil {
		return 0
	}
	return t.cursor
}

func (t *Tape) Len() int {
	if t == nil {
		return 0
	}
	return len(t.cells)
}

// AtEnd reports whether a non-wrapping tape has run off its last cell.
// A nil tape is always at its end.
func (t *Tape) AtEnd() bool {
	if t == nil {
		return true
	}
	return t.cursor >= len(t.cells)
}

func (t *Tape) At(i int) (byte, bool) {
	if t == nil || i < 0 || i >= len(t.cells) {
		return 0, false
	}
	return t.cells[i], true
}

func (t *Tape) SetAt(i int, v byte) bool {
	if t == nil || i < 0 || i >= len(t.cells) {
		return false
	}
	t.cells[i] = v
	return true
}

func (t *Tape) Bytes() []byte {
	if t == nil {
		return nil
	}
	ret := make([]byte, len(t.cells))
	copy(ret, t.cells)
	return ret
}

// Restore rebuilds a tape from its cells and cursor.
// A non-wrapping tape may be restored at its END position.
func Restore(cells []byte, cursor int, wrap bool) (*Tape, error) {
	if len(cells) == 0 {
		return nil, ErrZeroSize
	}
	limit := len(cells)
	if !wrap {
		limit++
	}
	if cursor < 0 || cursor >= limit {
		return nil, fmt.Errorf("%w: cursor %d", ErrOutOfRange, cursor)
	}
	t := &Tape{
		cells:  make([]byte, len(cells)),
		cursor: cursor,
		wrap:   wrap,
	}
	copy(t.cells, cells)
	return t, nil
}

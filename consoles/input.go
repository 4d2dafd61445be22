package consoles

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Input is a byte-at-a-time input device.
// On a terminal every byte is read in raw mode, so a keypress is delivered
// without waiting for a newline and without echo.
type Input struct {
	file     *os.File
	terminal bool
	reader   *bufio.Reader
}

var _ io.ByteReader = new(Input)
var _ io.Reader = new(Input)

func NewInput(file *os.File) *Input {
	terminal := term.IsTerminal(int(file.Fd()))
	input := &Input{
		file:     file,
		terminal: terminal,
	}
	if !terminal {
		input.reader = bufio.NewReader(file)
	}
	return input
}

func (i *Input) Terminal() bool {
	return i.terminal
}

func (i *Input) ReadByte() (byte, error) {
	if !i.terminal {
		return i.reader.ReadByte()
	}

	fd := int(i.file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("consoles: raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	var buf [1]byte
	if _, err := io.ReadFull(i.file, buf[:]); err != nil {
		return 0, err
	}
	switch buf[0] {
	case 0x04: // ctrl-d
		return 0, io.EOF
	case 0x03: // ctrl-c
		return 0, ErrInterrupted
	}
	return buf[0], nil
}

func (i *Input) Read(p []byte) (n int, err error) {
	if !i.terminal {
		return i.reader.Read(p)
	}
	for n < len(p) {
		var b byte
		b, err = i.ReadByte()
		if err != nil {
			return
		}
		p[n] = b
		n++
		if b == '\r' || b == '\n' {
			break
		}
	}
	return
}

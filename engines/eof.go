package engines

import "fmt"

// EOFMode decides what the input instruction does when the input device is exhausted
type EOFMode uint8

const (
	EOFKeep EOFMode = iota
	EOFZero
	EOFError
)

func ParseEOFMode(str string) (EOFMode, error) {
	switch str {
	case "", "keep":
		return EOFKeep, nil
	case "zero":
		return EOFZero, nil
	case "error":
		return EOFError, nil
	}
	return 0, fmt.Errorf("unknown eof mode: %s", str)
}

func (m EOFMode) String() string {
	switch m {
	case EOFKeep:
		return "keep"
	case EOFZero:
		return "zero"
	case EOFError:
		return "error"
	}
	return fmt.Sprintf("EOFMode(%d)", m)
}

package tapes

import (
	"fmt"
	"os"
)

// Load reads a program file as raw bytes
func Load(path string) (*Tape, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	tape, err := FromBytes(content)
	if err != nil {
		return nil, fmt.Errorf("load program %s: %w", path, err)
	}
	return tape, nil
}

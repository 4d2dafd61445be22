package stacks

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty           = errors.New("stack is empty")
	ErrInvalidPosition = errors.New("invalid position")
	ErrNilStack        = errors.New("nil stack")
)

// Stack is a LIFO of program positions. Zero is a valid position.
type Stack struct {
	positions []int
}

func New() *Stack {
	return &Stack{
		positions: make([]int, 0, 64),
	}
}

func (s *Stack) Push(pos int) error {
	if s == nil {
		return ErrNilStack
	}
	if pos < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	s.positions = append(s.positions, pos)
	return nil
}

func (s *Stack) Pop() (int, error) {
	if s == nil || len(s.positions) == 0 {
		return 0, ErrEmpty
	}
	pos := s.positions[len(s.positions)-1]
	s.positions = s.positions[:len(s.positions)-1]
	return pos, nil
}

func (s *Stack) Peek() (int, error) {
	if s == nil || len(s.positions) == 0 {
		return 0, ErrEmpty
	}
	return s.positions[len(s.positions)-1], nil
}

func (s *Stack) Empty() bool {
	return s == nil || len(s.positions) == 0
}

func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.positions)
}

func (s *Stack) Reset() {
	if s == nil {
		return
	}
	s.positions = s.positions[:0]
}

// Positions returns a copy, bottom first
func (s *Stack) Positions() []int {
	if s == nil {
		return nil
	}
	ret := make([]int, len(s.positions))
	copy(ret, s.positions)
	return ret
}

package stacks

import (
	"errors"
	"fmt"
	"testing"
)

func TestStack(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Fatal()
	}

	// zero is a legal position
	for _, pos := range []int{0, 5, 42} {
		if err := s.Push(pos); err != nil {
			t.Fatal(err)
		}
	}
	if s.Depth() != 3 {
		t.Fatalf("got %d", s.Depth())
	}
	if str := fmt.Sprintf("%v", s.Positions()); str != "[0 5 42]" {
		t.Fatalf("got %s", str)
	}
	if pos, err := s.Peek(); err != nil || pos != 42 {
		t.Fatalf("got %v %v", pos, err)
	}

	for _, expected := range []int{42, 5, 0} {
		pos, err := s.Pop()
		if err != nil {
			t.Fatal(err)
		}
		if pos != expected {
			t.Fatalf("expected %d, got %d", expected, pos)
		}
	}
	if !s.Empty() {
		t.Fatal()
	}

	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("got %v", err)
	}
}

func TestInvalidPosition(t *testing.T) {
	s := New()
	err := s.Push(-1)
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("got %v", err)
	}
	if !s.Empty() {
		t.Fatal("failed push should not change the stack")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Reset()
	if !s.Empty() || s.Depth() != 0 {
		t.Fatal()
	}
}

func TestNilStack(t *testing.T) {
	var s *Stack
	if err := s.Push(1); !errors.Is(err, ErrNilStack) {
		t.Fatalf("got %v", err)
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("got %v", err)
	}
	if !s.Empty() || s.Depth() != 0 || s.Positions() != nil {
		t.Fatal()
	}
	s.Reset()
}

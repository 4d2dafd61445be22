package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var size int
	executor.Define("-small", Func(func() {
		size = 30000
	}))
	executor.Define("-tape-size", Func(func(i int) {
		size = i
	}))

	if err := executor.Execute([]string{
		"-small",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 30000 {
		t.Fatalf("got %d", size)
	}

	if err := executor.Execute([]string{
		"-tape-size", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 1 {
		t.Fatalf("got %d", size)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-tape-size", "big",
	})
	if err == nil || !strings.Contains(err.Error(), "convert big to int") {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var debug bool
	executor.Define("-debug", Func(func() {
		debug = true
	}))
	var paths []string
	executor.Positional(func(arg string) error {
		if arg == "bad.bfe" {
			return fmt.Errorf("bad path")
		}
		paths = append(paths, arg)
		return nil
	})

	if err := executor.Execute([]string{
		"a.bfe", "-debug", "b.bfe",
	}); err != nil {
		t.Fatal(err)
	}
	if !debug {
		t.Fatal()
	}
	if str := fmt.Sprintf("%v", paths); str != "[a.bfe b.bfe]" {
		t.Fatalf("got %s", str)
	}

	// flag-like arguments are never positional
	err := executor.Execute([]string{"-nope"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"bad.bfe"})
	if err == nil || err.Error() != "bad path" {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var trace, limit int
	executor.Define("run", Sub(map[string]*Command{
		"trace": Func(func() {
			trace = 1
		}),
		"limit": Func(func(i int) {
			limit = i
		}),
	}))

	if err := executor.Execute([]string{
		"run",
		"trace",
		"limit", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if trace != 1 {
		t.Fatal()
	}
	if limit != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("dump", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"dump", "42", "out"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "out" {
		t.Fatal()
	}

	err = executor.Execute([]string{"dump", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"dump"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}

func TestErrorReturningCommand(t *testing.T) {
	executor := NewExecutor()
	var eof string
	executor.Define("-eof", Func(func(mode string) error {
		if mode != "keep" && mode != "zero" {
			return fmt.Errorf("bad eof mode: %s", mode)
		}
		eof = mode
		return nil
	}))

	if err := executor.Execute([]string{"-eof", "zero"}); err != nil {
		t.Fatal(err)
	}
	if eof != "zero" {
		t.Fatalf("got %s", eof)
	}

	err := executor.Execute([]string{"-eof", "255"})
	if err == nil || err.Error() != "bad eof mode: 255" {
		t.Fatalf("got %v", err)
	}
}

package consoles

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("ab\x00\xff"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	input := NewInput(f)
	if input.Terminal() {
		t.Fatal("file is not a terminal")
	}
	for _, expected := range []byte("ab\x00\xff") {
		b, err := input.ReadByte()
		if err != nil {
			t.Fatal(err)
		}
		if b != expected {
			t.Fatalf("got %v, expected %v", b, expected)
		}
	}
	if _, err := input.ReadByte(); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}
}

func TestPipeInput(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	go func() {
		defer w.Close()
		w.Write([]byte("xyz"))
	}()

	input := NewInput(r)
	if input.Terminal() {
		t.Fatal("pipe is not a terminal")
	}
	b, err := input.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 'x' {
		t.Fatalf("got %v", b)
	}
	rest, err := io.ReadAll(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "yz" {
		t.Fatalf("got %q", rest)
	}
}

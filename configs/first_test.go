package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bfe.cue", `eof: "keep"`),
	}, testSchema)

	eof := First[string](loader, "eof")
	if eof != "keep" {
		t.Fatalf("got %v", eof)
	}

	size := First[int](loader, "tape_size")
	if size != 0 {
		t.Fatalf("got %v", size)
	}
}

func TestFirstPanicsOnBadConfig(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bfe.cue", `tape_size: "big"`),
	}, "")
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "tape_size")
}

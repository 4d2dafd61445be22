package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
tape_size?: int & >0
eof?: "keep" | "zero" | "error"
`

func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bfe.cue", `tape_size: 30000`),
	}, testSchema)

	var size int
	err := loader.AssignFirst("tape_size", &size)
	if err != nil {
		t.Fatal(err)
	}
	if size != 30000 {
		t.Fatalf("got %v", size)
	}

	var eof string
	err = loader.AssignFirst("eof", &eof)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	local := writeConfig(t, "bfe.cue", `eof: "zero"`)
	global := writeConfig(t, "global.cue", `
eof: "error"
tape_size: 16
`)
	loader := NewLoader([]string{local, global}, testSchema)

	if eof := First[string](loader, "eof"); eof != "zero" {
		t.Fatalf("got %q", eof)
	}
	if size := First[int](loader, "tape_size"); size != 16 {
		t.Fatalf("got %v", size)
	}
	if len(loader.Paths()) != 2 {
		t.Fatalf("got %v", loader.Paths())
	}
}

func TestSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bad.cue", `eof: "maybe"`),
	}, testSchema)
	var eof string
	err := loader.AssignFirst("eof", &eof)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeConfig(t, "bad.cue", `unknown_field: 1`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestEmptyLoader(t *testing.T) {
	var size int
	if err := NewLoader(nil, testSchema).AssignFirst("tape_size", &size); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
	if err := (Loader{}).AssignFirst("tape_size", &size); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

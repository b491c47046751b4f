package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeLines(t *testing.T) {
	in := "CRANE\n  allot \n\nto\nbanana\ncr4ne\nlolly\n"
	want := []string{"crane", "allot", "lolly"}
	if got := normalizeLines(in); !reflect.DeepEqual(got, want) {
		t.Errorf("normalizeLines = %v, want %v", got, want)
	}
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("Crane\nnot-a-word\nALLOT\nxx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := readWordFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"crane", "allot"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readWordFile = %v, want %v", got, want)
	}

	if _, err := readWordFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

// Init runs once per process, so the embedded-default path is exercised
// here and everything after asserts against that loaded state.
func TestInitEmbeddedDefaults(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Count() == 0 {
		t.Fatal("no words loaded")
	}
	if !IsAllowed("crane") {
		t.Error("crane missing from default list")
	}
	if !IsAllowed("CRANE") {
		t.Error("IsAllowed should be case-insensitive")
	}
	if IsAllowed("zzzzz") {
		t.Error("zzzzz should not be allowed")
	}

	for i := 0; i < 20; i++ {
		if w := RandomAnswer(); !IsAllowed(w) {
			t.Fatalf("RandomAnswer returned %q, not in list", w)
		}
	}
}

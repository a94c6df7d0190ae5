package validate

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
	return path
}

func TestBuiltinsSkipPathLookup(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // nothing executable on PATH

	v := NewPathValidator(nil)
	for _, candidate := range []string{"cd ..", "cursor .", "code .", "xdg-open ."} {
		if ok, reason := v.LooksValid(candidate); !ok {
			t.Errorf("LooksValid(%q) = false (%s), want true", candidate, reason)
		}
	}
}

func TestEmptyAndFlagCandidatesAreInvalid(t *testing.T) {
	v := NewPathValidator(nil)

	tests := []string{"", "   ", "```\n```", "-rf /tmp/x", "--help"}
	for _, candidate := range tests {
		if ok, _ := v.LooksValid(candidate); ok {
			t.Errorf("LooksValid(%q) = true, want false", candidate)
		}
	}
}

func TestPathLookupFindsExecutable(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "mytool")
	t.Setenv("PATH", dir)

	v := NewPathValidator(nil)
	if ok, reason := v.LooksValid("mytool --verbose input.txt"); !ok {
		t.Fatalf("LooksValid() = false (%s), want true", reason)
	}
	if ok, _ := v.LooksValid("banana"); ok {
		t.Fatal("LooksValid(banana) = true, want false")
	}
}

func TestPathLookupRejectsNonExecutableFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not modeled on windows")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes"), []byte("text"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("PATH", dir)

	v := NewPathValidator(nil)
	if ok, _ := v.LooksValid("notes"); ok {
		t.Fatal("LooksValid() = true for non-executable file")
	}
}

func TestExplicitPathCandidate(t *testing.T) {
	dir := t.TempDir()
	path := writeExecutable(t, dir, "runme")
	t.Setenv("PATH", "")

	v := NewPathValidator(nil)
	if ok, reason := v.LooksValid(path + " arg"); !ok {
		t.Fatalf("LooksValid() = false (%s), want true", reason)
	}
	if ok, _ := v.LooksValid(filepath.Join(dir, "missing")); ok {
		t.Fatal("LooksValid() = true for missing path")
	}
}

func TestFencedCandidate(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "mytool")
	t.Setenv("PATH", dir)

	v := NewPathValidator(nil)
	if ok, reason := v.LooksValid("```bash\nmytool run\n```"); !ok {
		t.Fatalf("LooksValid() = false (%s), want fences stripped", reason)
	}
}

func TestLooksValidIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "mytool")
	t.Setenv("PATH", dir)

	v := NewPathValidator(nil)
	for _, candidate := range []string{"mytool", "banana", "cd /", "-x"} {
		first, _ := v.LooksValid(candidate)
		second, _ := v.LooksValid(candidate)
		if first != second {
			t.Errorf("LooksValid(%q) not stable: %v then %v", candidate, first, second)
		}
	}
}

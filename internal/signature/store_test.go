package signature

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAsset(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_IndexesImagesByBaseName(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "Alice Wu.png")
	writeAsset(t, dir, "Brian Keller.jpg")
	writeAsset(t, dir, "notes.txt") // not an image, ignored

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("indexed %d assets, want 2", s.Len())
	}

	path, ok := s.Lookup("Alice Wu")
	if !ok {
		t.Fatal("Alice Wu not found")
	}
	if filepath.Base(path) != "Alice Wu.png" {
		t.Errorf("path = %q", path)
	}
}

func TestLookup_ExactCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "Alice Wu.png")

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := s.Lookup("alice wu"); ok {
		t.Error("lookup should be case-sensitive")
	}
	if _, ok := s.Lookup("Alice"); ok {
		t.Error("lookup should be exact, not prefix")
	}
}

func TestLoad_EmptyDirConfig(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if _, ok := s.Lookup("Anyone"); ok {
		t.Error("empty store should miss every lookup")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing configured dir")
	}
}

package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	prevFS, prevInit := dataFS, initialized
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})
	dataFS, initialized = nil, false
}

func TestReadFile_EmbeddedFirst(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/emitters.yaml": &fstest.MapFile{Data: []byte("emitters: []")},
	})

	if !IsInitialized() {
		t.Fatal("Init should mark the package initialised")
	}

	data, err := ReadFile("./data/emitters.yaml")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if string(data) != "emitters: []" {
		t.Errorf("ReadFile: got %q", data)
	}
	if !Exists("data/emitters.yaml") {
		t.Error("Exists should find the embedded file")
	}
}

func TestReadFile_FallsBackToDisk(t *testing.T) {
	resetForTest(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	if err := os.WriteFile(path, []byte("pool_size: 8"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if string(data) != "pool_size: 8" {
		t.Errorf("ReadFile: got %q", data)
	}

	matches, err := Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		t.Fatalf("Glob returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Glob: got %d matches, want 1", len(matches))
	}
}

func TestReadFile_Missing(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{})

	if _, err := ReadFile("data/does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
	if Exists("data/does-not-exist.yaml") {
		t.Error("Exists should be false for a missing file")
	}
}

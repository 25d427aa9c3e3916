package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWrite_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloud.png")

	if err := AtomicWrite(path, []byte("first"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWrite(path, []byte("second"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "wcgen-") && strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leaked temp file: %s", e.Name())
		}
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cloud.png")
	if err := AtomicWrite(path, []byte("x"), 0644); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestAtomicWrite_EmptyPath(t *testing.T) {
	if err := AtomicWrite("  ", []byte("x"), 0644); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

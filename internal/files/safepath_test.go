package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSafePath_NoChange(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cloud.png")
	got, changed, err := SafePath(path)
	if err != nil {
		t.Fatalf("SafePath failed: %v", err)
	}
	if changed {
		t.Fatalf("expected unchanged path")
	}
	if got != path {
		t.Fatalf("expected %q, got %q", path, got)
	}
}

func TestSafePath_WithCollision(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cloud.png")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	got, changed, err := SafePath(path)
	if err != nil {
		t.Fatalf("SafePath failed: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed path")
	}
	if got == path {
		t.Fatalf("expected different path")
	}
}

func TestSafePath_NumberedCandidatesExhausted(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cloud.png")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 1; i <= maxNumberedCandidates; i++ {
		p := filepath.Join(tmpDir, "cloud_"+string(rune('0'+i))+".png")
		if err := os.WriteFile(p, []byte("x"), 0600); err != nil {
			t.Fatalf("create %s: %v", p, err)
		}
	}

	got, changed, err := SafePath(path)
	if err != nil {
		t.Fatalf("SafePath failed: %v", err)
	}
	if !changed {
		t.Fatalf("expected changed path")
	}
	if filepath.Ext(got) != ".png" {
		t.Fatalf("extension not preserved: %q", got)
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Fatalf("expected free path, stat err = %v", err)
	}
}

func TestSafePath_Empty(t *testing.T) {
	if _, _, err := SafePath(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

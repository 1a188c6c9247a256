package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestTerminalCandidates_PreferredFirst(t *testing.T) {
	candidates := terminalCandidates("/work", "kitty")
	if len(candidates) < 2 {
		t.Fatalf("expected preferred plus platform defaults, got %v", candidates)
	}
	if candidates[0][0] != "kitty" {
		t.Errorf("first candidate = %v, want preferred kitty", candidates[0])
	}
}

func TestTerminalCandidates_NoPreferred(t *testing.T) {
	candidates := terminalCandidates("/work", "")
	if len(candidates) == 0 {
		t.Fatal("expected at least one platform default")
	}
	if runtime.GOOS == "linux" && candidates[0][0] != "x-terminal-emulator" {
		t.Errorf("first linux candidate = %v, want x-terminal-emulator", candidates[0])
	}
}

func TestChmod_DoesNotFailOnExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod() error: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("perm = %o, want 0600", info.Mode().Perm())
		}
	}
}

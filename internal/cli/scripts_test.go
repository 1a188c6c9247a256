package cli

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installNpmShim puts a fake npm first on PATH that logs every invocation to
// logFile and exits 0 for `npm run start`, 1 for `npm run dev`.
func installNpmShim(t *testing.T, logFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell shim not portable to windows")
	}

	binDir := t.TempDir()
	shim := "#!/bin/sh\n" +
		"echo \"$@\" >> " + logFile + "\n" +
		"case \"$2\" in dev) exit 1;; *) exit 0;; esac\n"
	if err := os.WriteFile(filepath.Join(binDir, "npm"), []byte(shim), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeProjectManifest(t *testing.T, dir, scripts string) {
	t.Helper()
	content := `{"name":"p","version":"1.0.0","scripts":{` + scripts + `}}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func shimLog(t *testing.T, logFile string) []string {
	t.Helper()
	data, err := os.ReadFile(logFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRunGoAt_FailingPrimaryTriggersFallbackOnce(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "calls.log")
	installNpmShim(t, logFile)
	writeProjectManifest(t, dir, `"dev":"x","start":"y"`)

	if err := runGoAt(context.Background(), dir); err != nil {
		t.Fatalf("runGoAt() error: %v", err)
	}

	calls := shimLog(t, logFile)
	if len(calls) != 2 {
		t.Fatalf("npm invoked %d times, want 2 (dev then start): %v", len(calls), calls)
	}
	if calls[0] != "run dev" || calls[1] != "run start" {
		t.Errorf("calls = %v, want [run dev, run start]", calls)
	}
}

func TestRunGoAt_SucceedingPrimarySkipsFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell shim not portable to windows")
	}
	dir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "calls.log")
	writeProjectManifest(t, dir, `"dev":"x","start":"y"`)

	// Shim that succeeds for every script.
	binDir := t.TempDir()
	shim := "#!/bin/sh\necho \"$@\" >> " + logFile + "\nexit 0\n"
	if err := os.WriteFile(filepath.Join(binDir, "npm"), []byte(shim), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	if err := runGoAt(context.Background(), dir); err != nil {
		t.Fatalf("runGoAt() error: %v", err)
	}

	calls := shimLog(t, logFile)
	if len(calls) != 1 || calls[0] != "run dev" {
		t.Errorf("calls = %v, want exactly [run dev]", calls)
	}
}

func TestRunGoAt_MissingPrimaryRunsFallback(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "calls.log")
	installNpmShim(t, logFile)
	writeProjectManifest(t, dir, `"start":"y"`)

	if err := runGoAt(context.Background(), dir); err != nil {
		t.Fatalf("runGoAt() error: %v", err)
	}

	calls := shimLog(t, logFile)
	if len(calls) != 1 || calls[0] != "run start" {
		t.Errorf("calls = %v, want exactly [run start]", calls)
	}
}

func TestRunGoAt_NoManifestWarnsWithoutInvocation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "calls.log")
	installNpmShim(t, logFile)

	if err := runGoAt(context.Background(), dir); err != nil {
		t.Fatalf("runGoAt() error: %v", err)
	}
	if calls := shimLog(t, logFile); len(calls) != 0 {
		t.Errorf("no invocation expected, got %v", calls)
	}
}

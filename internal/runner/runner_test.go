package runner

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell tools")
	}
}

func TestRunVisible_ZeroExit(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.RunVisible(context.Background(), "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunVisible_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.RunVisible(context.Background(), "false")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error, got: %v", err)
	}
	if code == 0 {
		t.Error("expected non-zero exit code")
	}
}

func TestRunVisible_MissingBinaryIsLaunchError(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	_, err := r.RunVisible(context.Background(), "definitely-not-a-real-binary-1b2c3")
	if err == nil {
		t.Fatal("expected launch error for missing binary")
	}
	var le *LaunchError
	if !errors.As(err, &le) {
		t.Errorf("expected *LaunchError, got %T: %v", err, err)
	}
}

func TestRunVisibleAt_SetsWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	var out bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &out}

	code, err := r.RunVisibleAt(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	// macOS tempdirs resolve through /private; compare suffix only.
	got := out.String()
	if !bytes.Contains([]byte(got), []byte(dir[len(dir)-8:])) {
		t.Errorf("pwd output %q does not mention %q", got, dir)
	}
}

func TestRunCapture_ReturnsTrimmedStdout(t *testing.T) {
	skipOnWindows(t)

	r := New()
	got := r.RunCapture(context.Background(), "echo", "hello")
	if got != "hello" {
		t.Errorf("RunCapture = %q, want %q", got, "hello")
	}
}

func TestRunCapture_FailuresYieldEmptyString(t *testing.T) {
	r := New()

	if got := r.RunCapture(context.Background(), "definitely-not-a-real-binary-1b2c3"); got != "" {
		t.Errorf("missing binary: got %q, want empty", got)
	}
	if runtime.GOOS != "windows" {
		if got := r.RunCapture(context.Background(), "false"); got != "" {
			t.Errorf("non-zero exit: got %q, want empty", got)
		}
	}
}

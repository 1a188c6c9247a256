// Package runner executes external commands on behalf of the CLI. Interactive
// tools (editors, terminals, installers) run with inherited stdio via
// RunVisible; read-only OS probes run via RunCapture, which swallows every
// failure so call sites can treat an empty string as "no answer".
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner invokes external commands. Stdout, Stderr, and Stdin default to the
// process streams and can be replaced for tests.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// New returns a Runner wired to the process stdio.
func New() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

// LaunchError reports that a command could not be spawned at all, as opposed
// to running and exiting non-zero.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// RunVisible runs a command with inherited stdio and blocks until it exits.
// It returns the child's exit code. A spawn failure (executable missing,
// permission denied) returns a *LaunchError; a non-zero exit is not an error.
func (r *Runner) RunVisible(ctx context.Context, name string, args ...string) (int, error) {
	return r.RunVisibleAt(ctx, "", name, args...)
}

// RunVisibleAt is RunVisible with an explicit working directory. An empty dir
// means the current directory.
func (r *Runner) RunVisibleAt(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	cmd.Stdin = r.stdin()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, &LaunchError{Name: name, Err: err}
}

// RunCapture runs a command, captures its stdout, and returns it trimmed.
// Any failure (missing binary, non-zero exit) yields "". Probe call sites
// never need error handling.
func (r *Runner) RunCapture(ctx context.Context, name string, args ...string) string {
	cmd := exec.CommandContext(ctx, name, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(out.String())
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

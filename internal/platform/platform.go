// Package platform provides GOOS-specific glue for launching the OS file
// browser and terminal emulator and for finding processes bound to TCP ports.
// Everything here shells out to external tools; callers treat the invoked
// programs as opaque collaborators.
package platform

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/decode-labs/decode/internal/runner"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// OpenFileBrowser opens the OS file browser at dir.
func OpenFileBrowser(ctx context.Context, r *runner.Runner, dir string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name, args = "open", []string{dir}
	case "windows":
		name, args = "explorer", []string{dir}
	default:
		name, args = "xdg-open", []string{dir}
	}

	code, err := r.RunVisible(ctx, name, args...)
	if err != nil {
		return err
	}
	// explorer.exe exits 1 even on success; only report on other platforms.
	if code != 0 && runtime.GOOS != "windows" {
		return fmt.Errorf("%s exited with code %d", name, code)
	}
	return nil
}

// OpenTerminal launches a terminal emulator with dir as its working
// directory. preferred, when non-empty, is tried first; on Linux a list of
// common emulators is probed with exec.LookPath-equivalent fallbacks.
func OpenTerminal(ctx context.Context, r *runner.Runner, dir, preferred string) error {
	candidates := terminalCandidates(dir, preferred)

	var lastErr error
	for _, c := range candidates {
		code, err := r.RunVisibleAt(ctx, dir, c[0], c[1:]...)
		if err != nil {
			lastErr = err
			continue // launcher missing, try the next candidate
		}
		if code == 0 {
			return nil
		}
		lastErr = fmt.Errorf("%s exited with code %d", c[0], code)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no terminal emulator found")
	}
	return lastErr
}

// terminalCandidates returns launcher argvs in preference order.
func terminalCandidates(dir, preferred string) [][]string {
	var candidates [][]string
	if preferred != "" {
		candidates = append(candidates, []string{preferred})
	}

	switch runtime.GOOS {
	case "darwin":
		candidates = append(candidates, []string{"open", "-a", "Terminal", dir})
	case "windows":
		candidates = append(candidates, []string{"cmd", "/c", "start", "cmd"})
	default:
		candidates = append(candidates,
			[]string{"x-terminal-emulator"},
			[]string{"gnome-terminal", "--working-directory", dir},
			[]string{"konsole", "--workdir", dir},
			[]string{"xterm"},
		)
	}
	return candidates
}

// ListeningPIDs returns the PIDs of processes listening on the given TCP
// port. An empty slice means nothing found or the probe tool is unavailable.
func ListeningPIDs(ctx context.Context, r *runner.Runner, port string) []string {
	if runtime.GOOS == "windows" {
		return windowsListeningPIDs(ctx, r, port)
	}

	out := r.RunCapture(ctx, "lsof", "-ti", "tcp:"+port)
	if out == "" {
		return nil
	}
	return strings.Fields(out)
}

// windowsListeningPIDs parses `netstat -ano` output for LISTENING rows on
// the port. Last column is the PID.
func windowsListeningPIDs(ctx context.Context, r *runner.Runner, port string) []string {
	out := r.RunCapture(ctx, "netstat", "-ano")
	if out == "" {
		return nil
	}

	seen := make(map[string]bool)
	var pids []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 || !strings.EqualFold(fields[3], "LISTENING") {
			continue
		}
		if !strings.HasSuffix(fields[1], ":"+port) {
			continue
		}
		pid := fields[4]
		if !seen[pid] {
			seen[pid] = true
			pids = append(pids, pid)
		}
	}
	return pids
}

// KillPID terminates the process with the given PID.
func KillPID(ctx context.Context, r *runner.Runner, pid string) error {
	var name string
	var args []string

	if runtime.GOOS == "windows" {
		name, args = "taskkill", []string{"/F", "/PID", pid}
	} else {
		name, args = "kill", []string{"-9", pid}
	}

	code, err := r.RunVisible(ctx, name, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("killing pid %s: %s exited with code %d", pid, name, code)
	}
	return nil
}

// OpenEditor launches the editor command on target (a file or directory).
// Editor launchers like `code` background themselves; blocking ends when the
// launcher returns, not when the editor closes.
func OpenEditor(ctx context.Context, r *runner.Runner, editor, target string) error {
	code, err := r.RunVisible(ctx, editor, target)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d", editor, code)
	}
	return nil
}

package detect

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/decode-labs/decode/internal/runner"
)

// newProvider picks the window-query implementation for the current GOOS.
// Unsupported platforms get the no-op provider so the detection chain
// degrades straight to the working-directory fallback.
func newProvider() Provider {
	r := runner.New()
	switch runtime.GOOS {
	case "darwin":
		return &darwinProvider{r: r}
	case "linux":
		return &linuxProvider{r: r}
	case "windows":
		return &windowsProvider{r: r}
	default:
		return noopProvider{}
	}
}

// noopProvider answers every query with "no answer".
type noopProvider struct{}

func (noopProvider) FocusedBrowserPath(context.Context) string { return "" }
func (noopProvider) EditorWindowTitle(context.Context) string  { return "" }

// darwinProvider queries Finder and the frontmost app via osascript.
type darwinProvider struct {
	r *runner.Runner
}

func (p *darwinProvider) FocusedBrowserPath(ctx context.Context) string {
	return p.r.RunCapture(ctx, "osascript", "-e",
		`tell application "Finder" to if (count of windows) > 0 then get POSIX path of (target of front window as alias)`)
}

func (p *darwinProvider) EditorWindowTitle(ctx context.Context) string {
	return p.r.RunCapture(ctx, "osascript", "-e",
		`tell application "System Events" to get name of front window of (first application process whose frontmost is true)`)
}

// linuxProvider reads the active X11 window title via xdotool, falling back
// to wmctrl. File managers on Linux put the folder path or name in the
// title, so the browser-path probe reuses the title and keeps it only when
// it is an absolute path.
type linuxProvider struct {
	r *runner.Runner
}

func (p *linuxProvider) activeWindowTitle(ctx context.Context) string {
	if title := p.r.RunCapture(ctx, "xdotool", "getactivewindow", "getwindowname"); title != "" {
		return title
	}
	// wmctrl marks the active window with an asterisk in the state column.
	out := p.r.RunCapture(ctx, "wmctrl", "-l")
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, " ", 4)
		if len(fields) == 4 && strings.Contains(fields[1], "*") {
			return strings.TrimSpace(fields[3])
		}
	}
	return ""
}

func (p *linuxProvider) FocusedBrowserPath(ctx context.Context) string {
	title := p.activeWindowTitle(ctx)
	if title == "" {
		return ""
	}
	if strings.HasPrefix(title, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			title = home + title[1:]
		}
	}
	if strings.HasPrefix(title, "/") {
		return title
	}
	return ""
}

func (p *linuxProvider) EditorWindowTitle(ctx context.Context) string {
	return p.activeWindowTitle(ctx)
}

// windowsProvider asks PowerShell for main window titles of running editor
// processes. The first non-empty title wins.
type windowsProvider struct {
	r *runner.Runner
}

// editorProcessNames are probed in order on Windows.
var editorProcessNames = []string{"Code", "Code - Insiders", "Cursor", "sublime_text", "webstorm64"}

func (p *windowsProvider) FocusedBrowserPath(ctx context.Context) string {
	// Explorer exposes the open folder through its window title only when
	// "display full path" is enabled; accept it when it looks like a path.
	title := p.r.RunCapture(ctx, "powershell", "-NoProfile", "-Command",
		`(Get-Process explorer -ErrorAction SilentlyContinue | Where-Object {$_.MainWindowTitle} | Select-Object -First 1).MainWindowTitle`)
	if len(title) > 2 && title[1] == ':' {
		return title
	}
	return ""
}

func (p *windowsProvider) EditorWindowTitle(ctx context.Context) string {
	for _, proc := range editorProcessNames {
		title := p.r.RunCapture(ctx, "powershell", "-NoProfile", "-Command",
			`(Get-Process "`+proc+`" -ErrorAction SilentlyContinue | Where-Object {$_.MainWindowTitle} | Select-Object -First 1).MainWindowTitle`)
		if title != "" {
			return title
		}
	}
	return ""
}

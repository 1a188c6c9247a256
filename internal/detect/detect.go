// Package detect resolves the "active path": the project folder the user is
// most plausibly working in right now. It chains best-effort OS window
// probes (focused file-browser folder, then foreground editor title matched
// against configured project roots) and always degrades to the process
// working directory. Nothing in this package returns an error.
package detect

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"github.com/decode-labs/decode/internal/logging"
	"go.uber.org/zap"
)

// Provider answers platform-specific window queries. Implementations are
// best-effort: an empty string means "no answer" and is never an error.
type Provider interface {
	// FocusedBrowserPath returns the folder shown in the focused file-browser
	// window, or "".
	FocusedBrowserPath(ctx context.Context) string
	// EditorWindowTitle returns the foreground editor window title, or "".
	EditorWindowTitle(ctx context.Context) string
}

// Detector resolves the active path from a Provider and configured roots.
type Detector struct {
	Provider Provider
	Roots    []string

	// Getwd is the final fallback; defaults to os.Getwd.
	Getwd func() (string, error)
}

// New returns a Detector using the platform provider for the current GOOS.
func New(roots []string) *Detector {
	return &Detector{Provider: newProvider(), Roots: roots}
}

// Detect returns the single most plausible active project path. It never
// fails: every probe failure falls through to the next stage, ending at the
// process working directory (or "." if even that is unavailable).
func (d *Detector) Detect(ctx context.Context) string {
	// Stage 1: focused file-browser window.
	if d.Provider != nil {
		if p := d.Provider.FocusedBrowserPath(ctx); p != "" {
			if info, err := os.Stat(p); err == nil && info.IsDir() {
				logging.L().Debug("active path from file browser", zap.String("path", p))
				return p
			}
		}

		// Stage 2+3: editor window title resolved against roots.
		if title := d.Provider.EditorWindowTitle(ctx); title != "" {
			if name := ProjectName(title); name != "" {
				if p := ResolveName(d.Roots, name); p != "" {
					logging.L().Debug("active path from editor title",
						zap.String("title", title), zap.String("path", p))
					return p
				}
			}
		}
	}

	// Stage 4: working directory.
	getwd := d.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	if cwd, err := getwd(); err == nil {
		return cwd
	}
	return "."
}

// editorSuffixes are trailing branding segments stripped from window titles,
// longest first.
var editorSuffixes = []string{
	" - Visual Studio Code - Insiders",
	" - Visual Studio Code",
	" — Visual Studio Code",
	" - VSCodium",
	" - Cursor",
	" - Sublime Text",
	" - WebStorm",
	" - IntelliJ IDEA",
	" - Zed",
}

// ProjectName recovers a bare project name from an editor window title.
// Titles look like "server.js - my-api - Visual Studio Code"; the branding
// suffix is stripped, then the last " - " segment is the folder name.
func ProjectName(title string) string {
	title = strings.TrimSpace(title)
	for _, suffix := range editorSuffixes {
		if strings.HasSuffix(title, suffix) {
			title = strings.TrimSuffix(title, suffix)
			break
		}
	}

	if idx := strings.LastIndex(title, " - "); idx >= 0 {
		title = title[idx+3:]
	}

	// Unsaved-changes markers that editors prepend to titles.
	title = strings.TrimLeft(title, "●*• ")
	return strings.TrimSpace(title)
}

var foldCaser = cases.Fold()

// ResolveName matches a bare folder name against the immediate subdirectories
// of the roots, case-insensitively. A single match wins outright; with
// multiple matches an exact (case-folded) name match is preferred, otherwise
// the first match in root-iteration order. Returns "" when nothing matches.
func ResolveName(roots []string, name string) string {
	target := foldCaser.String(name)
	if target == "" {
		return ""
	}

	var matches []string
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			folded := foldCaser.String(entry.Name())
			if folded == target || strings.Contains(folded, target) {
				matches = append(matches, filepath.Join(root, entry.Name()))
			}
		}
	}

	switch len(matches) {
	case 0:
		return ""
	case 1:
		return matches[0]
	}

	for _, m := range matches {
		if foldCaser.String(filepath.Base(m)) == target {
			return m
		}
	}
	return matches[0]
}

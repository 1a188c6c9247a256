// Package plugin resolves user-provided scripts from the plugins directories.
// A project-local plugins/ directory takes precedence over the install-local
// one under ~/.decode/plugins/.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that no plugin script matched the requested name in any
// search location.
var ErrNotFound = errors.New("plugin not found")

// DirName is the name of the project-local plugins directory.
const DirName = "plugins"

// extensions tried after the exact name, in order.
var extensions = []string{"", ".sh", ".js", ".mjs"}

// Plugin is a resolved plugin script.
type Plugin struct {
	Name string
	Path string
}

// Resolve locates the plugin script for name, searching the project-local
// directory before the install-local one. Within a directory the exact file
// name is tried first, then well-known extensions.
func Resolve(name string, projectDir, installDir string) (*Plugin, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("plugin name %q must not contain path separators", name)
	}

	for _, dir := range []string{filepath.Join(projectDir, DirName), installDir} {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}
			return &Plugin{Name: name, Path: candidate}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Argv returns the command line to execute the plugin with the given extra
// arguments. Script files run through their interpreter; anything else is
// invoked directly.
func (p *Plugin) Argv(args ...string) []string {
	var argv []string
	switch filepath.Ext(p.Path) {
	case ".js", ".mjs":
		argv = []string{"node", p.Path}
	case ".sh":
		argv = []string{"sh", p.Path}
	default:
		argv = []string{p.Path}
	}
	return append(argv, args...)
}

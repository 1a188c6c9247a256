// Package pkgmanager picks the JavaScript package manager for a project by
// checking which lock file is present. The lock file is never parsed, only
// stat'ed.
package pkgmanager

import (
	"os"
	"path/filepath"
)

// Manager identifies a package manager and how to invoke it.
type Manager struct {
	Name       string
	InstallCmd []string // argv prefix for installing named packages
	RunCmd     []string // argv prefix for running a manifest script
}

var (
	npm  = Manager{Name: "npm", InstallCmd: []string{"npm", "install"}, RunCmd: []string{"npm", "run"}}
	yarn = Manager{Name: "yarn", InstallCmd: []string{"yarn", "add"}, RunCmd: []string{"yarn", "run"}}
	pnpm = Manager{Name: "pnpm", InstallCmd: []string{"pnpm", "add"}, RunCmd: []string{"pnpm", "run"}}
	bun  = Manager{Name: "bun", InstallCmd: []string{"bun", "add"}, RunCmd: []string{"bun", "run"}}
)

// lockFiles maps lock file names to managers, in precedence order.
var lockFiles = []struct {
	file    string
	manager Manager
}{
	{"pnpm-lock.yaml", pnpm},
	{"yarn.lock", yarn},
	{"bun.lockb", bun},
	{"bun.lock", bun},
	{"package-lock.json", npm},
}

// Detect returns the package manager for dir based on lock file presence.
// Without any lock file it defaults to npm.
func Detect(dir string) Manager {
	for _, lf := range lockFiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager
		}
	}
	return npm
}

// Install returns the full argv to install the given packages in dir.
func (m Manager) Install(pkgs ...string) []string {
	return append(append([]string{}, m.InstallCmd...), pkgs...)
}

// Run returns the full argv to run a manifest script in dir.
func (m Manager) Run(script string) []string {
	return append(append([]string{}, m.RunCmd...), script)
}

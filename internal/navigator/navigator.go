// Package navigator implements the interactive directory picker: a
// turn-based loop over numbered stdin menus that descends from the
// configured project roots and ends in a caller-supplied action on the
// chosen folder. Children are re-listed from disk on every step, never
// cached.
package navigator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Action is invoked with the selected directory when the user picks
// "Open Here".
type Action func(path string) error

// Navigator drives the directory picker. In and Out default to the process
// stdio and are injectable for tests.
type Navigator struct {
	Roots []string
	In    io.Reader
	Out   io.Writer
}

// New returns a Navigator over the given roots wired to the process stdio.
func New(roots []string) *Navigator {
	return &Navigator{Roots: roots, In: os.Stdin, Out: os.Stdout}
}

// Control menu entries appended after the directory choices.
const (
	labelOpenHere = "Open Here"
	labelGoBack   = "Go Back"
	labelExit     = "Exit"
)

// Run loops the prompt until the user opens a folder, goes back past the
// top, or exits. It returns the action's error, or nil when the navigator
// exits without invoking the action.
func (n *Navigator) Run(action Action) error {
	reader := bufio.NewReader(n.In)
	current := "" // empty means the roots listing

	for {
		choices := n.choicesFor(current)
		n.printMenu(current, choices)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil // input closed, same as Exit
			}
			return fmt.Errorf("reading selection: %w", err)
		}

		sel, ok := parseSelection(line, len(choices))
		if !ok {
			fmt.Fprintf(n.Out, "Invalid selection %q, choose 1-%d.\n", strings.TrimSpace(line), len(choices)+3)
			continue
		}

		switch {
		case sel < len(choices):
			next := choices[sel]
			// The directory may have vanished between listing and
			// selection; recover by re-listing the current level.
			if info, statErr := os.Stat(next); statErr != nil || !info.IsDir() {
				fmt.Fprintf(n.Out, "Warning: %s is no longer available.\n", next)
				continue
			}
			current = next

		case sel == len(choices): // Open Here
			if current == "" {
				fmt.Fprintln(n.Out, "Warning: no folder selected yet.")
				return nil
			}
			return action(current)

		case sel == len(choices)+1: // Go Back
			if current == "" {
				return nil
			}
			current = filepath.Dir(current)

		default: // Exit
			return nil
		}
	}
}

// choicesFor returns the live directory listing for the current state:
// existing roots at the top level, immediate subdirectories otherwise.
// An empty slice is a valid state with only the control entries.
func (n *Navigator) choicesFor(current string) []string {
	if current == "" {
		var roots []string
		for _, root := range n.Roots {
			if info, err := os.Stat(root); err == nil && info.IsDir() {
				roots = append(roots, root)
			}
		}
		return roots
	}

	entries, err := os.ReadDir(current)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			dirs = append(dirs, filepath.Join(current, entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs
}

func (n *Navigator) printMenu(current string, choices []string) {
	if current == "" {
		fmt.Fprintf(n.Out, "\nSelect a project root:\n")
	} else {
		fmt.Fprintf(n.Out, "\n%s\n", current)
	}

	for i, choice := range choices {
		fmt.Fprintf(n.Out, "  %d) %s\n", i+1, filepath.Base(choice))
	}
	fmt.Fprintf(n.Out, "  %d) %s\n", len(choices)+1, labelOpenHere)
	fmt.Fprintf(n.Out, "  %d) %s\n", len(choices)+2, labelGoBack)
	fmt.Fprintf(n.Out, "  %d) %s\n", len(choices)+3, labelExit)
	fmt.Fprintf(n.Out, "Enter number [1-%d]: ", len(choices)+3)
}

// parseSelection converts a menu line to a zero-based index over the
// directory choices plus the three controls.
func parseSelection(line string, choiceCount int) (int, bool) {
	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > choiceCount+3 {
		return 0, false
	}
	return num - 1, true
}

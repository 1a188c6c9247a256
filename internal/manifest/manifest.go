// Package manifest reads package.json project manifests: script listings for
// the run commands, engine constraints, and advisory schema validation of
// generated manifests.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FileName is the manifest file name looked up in a project directory.
const FileName = "package.json"

// Manifest is the subset of package.json this tool consumes.
type Manifest struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Scripts map[string]string `json:"scripts"`
	Engines map[string]string `json:"engines"`
}

// Load reads and parses the manifest in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// ScriptNames returns the manifest's script names in stable sorted order, so
// numbered prompts are deterministic across runs.
func (m *Manifest) ScriptNames() []string {
	names := make([]string, 0, len(m.Scripts))
	for name := range m.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasScript reports whether the manifest defines the named script.
func (m *Manifest) HasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}

// CheckEngines compares the manifest's engines.node constraint against a
// probed node version string (e.g. "v20.11.1"). It returns a human-readable
// warning when the constraint is not satisfied, or "" when it is satisfied,
// absent, or unparseable. Engine mismatches are advisory only.
func (m *Manifest) CheckEngines(nodeVersion string) string {
	constraintStr, ok := m.Engines["node"]
	if !ok || constraintStr == "" || nodeVersion == "" {
		return ""
	}

	constraint, err := semver.NewConstraint(constraintStr)
	if err != nil {
		return ""
	}
	version, err := semver.NewVersion(strings.TrimPrefix(nodeVersion, "v"))
	if err != nil {
		return ""
	}

	if !constraint.Check(version) {
		return fmt.Sprintf("node %s does not satisfy engines.node %q", nodeVersion, constraintStr)
	}
	return ""
}

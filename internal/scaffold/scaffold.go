package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/decode-labs/decode/internal/manifest"
)

//go:embed all:templates
var scaffoldFS embed.FS

// Template set names.
const (
	SetSubCLI    = "subcli"
	SetBackend   = "backend"
	SetEnv       = "env"
	SetGitignore = "gitignore"
)

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name           string // project or CLI name, e.g. "my-api"
	Description    string // human-readable description
	Version        string // semver, e.g. "0.1.0"
	PackageManager string // npm, yarn, pnpm, bun
	Year           int    // current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string // created this run
	Skipped   []string // already existed, left untouched
	Warnings  []string
}

// NewData creates a Data with derived fields populated.
func NewData(name, typeName, packageManager string) *Data {
	return &Data{
		Name:           name,
		Description:    fmt.Sprintf("A %s project scaffolded with decode", typeName),
		Version:        "0.1.0",
		PackageManager: packageManager,
		Year:           time.Now().Year(),
	}
}

// Generate renders a template set into outputDir. Files that already exist
// are skipped, never overwritten, so re-running is a no-op for anything
// present. A generated package.json is validated against the manifest
// schema; issues become warnings, not failures.
func Generate(setName string, data *Data, outputDir string) (*Result, error) {
	templatesDir := "templates/" + setName

	if _, err := fs.ReadDir(scaffoldFS, templatesDir); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	err := fs.WalkDir(scaffoldFS, templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(templatesDir, path)
		if err != nil {
			return err
		}
		outName := strings.TrimSuffix(filepath.FromSlash(rel), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		if _, statErr := os.Stat(outPath); statErr == nil {
			result.Skipped = append(result.Skipped, outName)
			return nil
		}

		tmplBytes, err := fs.ReadFile(scaffoldFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		tmpl, err := template.New(d.Name()).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Validate the generated manifest shape, advisory only.
	manifestFile := filepath.Join(outputDir, manifest.FileName)
	if _, err := os.Stat(manifestFile); err == nil {
		valResult, valErr := manifest.ValidateFile(manifestFile)
		if valErr != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not validate manifest: %v", valErr))
		} else if !valResult.Valid {
			for _, issue := range valResult.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}

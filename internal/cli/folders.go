package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// defaultFolders is created when no names are given.
var defaultFolders = []string{"src", "public", "tests"}

// folderPresets maps preset tokens to ordered folder lists.
var folderPresets = map[string][]string{
	"-mrcs": {"models", "controllers", "routes", "services"},
	"-mvc":  {"models", "views", "controllers"},
	"-full": {"models", "controllers", "routes", "services", "middleware", "utils", "config"},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(filesCmd)
}

var foldersCmd = &cobra.Command{
	Use:   "folders [-preset|names...]",
	Short: "Create a set of named directories",
	Long: `Create directories in the current folder. With no arguments a default set
(src, public, tests) is created. Preset tokens expand to fixed layouts:

  -mrcs   models, controllers, routes, services
  -mvc    models, views, controllers
  -full   the -mrcs set plus middleware, utils, config

Existing directories are left untouched.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, ok := expandFolderArgs(args)
		if !ok {
			return nil
		}

		created, err := createDirs(names)
		if err != nil {
			return err
		}
		if len(created) == 0 {
			warnf("all folders already exist")
			return nil
		}
		successf("Created: %s", strings.Join(names, ", "))
		return nil
	},
}

// expandFolderArgs resolves preset tokens and literal names into the ordered
// folder list. An unknown preset aborts with a warning.
func expandFolderArgs(args []string) ([]string, bool) {
	if len(args) == 0 {
		return defaultFolders, true
	}

	var names []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			preset, ok := folderPresets[arg]
			if !ok {
				warnf("unknown folder preset %s", arg)
				return nil, false
			}
			names = append(names, preset...)
			continue
		}
		names = append(names, arg)
	}
	return names, true
}

// createDirs makes each named directory if absent and returns the ones it
// actually created. Existing directories are never touched.
func createDirs(names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			continue
		}
		if err := os.MkdirAll(name, 0755); err != nil {
			return created, err
		}
		created = append(created, name)
	}
	return created, nil
}

var filesCmd = &cobra.Command{
	Use:   "files <names...>",
	Short: "Create empty files if absent",
	Long: `Create each named file as an empty file. Files that already exist are left
byte-identical; re-running with the same arguments is a no-op.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			warnf("no file names given")
			return nil
		}

		var created []string
		for _, name := range args {
			if _, err := os.Stat(name); err == nil {
				continue
			}
			if err := os.WriteFile(name, nil, 0644); err != nil {
				return err
			}
			created = append(created, name)
		}

		if len(created) == 0 {
			warnf("all files already exist")
			return nil
		}
		successf("Created: %s", strings.Join(created, ", "))
		return nil
	},
}

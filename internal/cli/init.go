package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decode-labs/decode/internal/pkgmanager"
	"github.com/decode-labs/decode/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new minimal CLI project",
	Long: `Generate a new, smaller CLI of the same shape as this one: a manifest and
a dispatcher script covering the package-install, folder, and file commands.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			warnf("init needs a project name")
			return nil
		}
		name := args[0]

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		outDir := filepath.Join(cwd, name)
		if _, err := os.Stat(outDir); err == nil {
			warnf("folder %s already exists", name)
			return nil
		}

		pm := pkgmanager.Detect(cwd)
		data := scaffold.NewData(name, "CLI", pm.Name)
		result, err := scaffold.Generate(scaffold.SetSubCLI, data, outDir)
		if err != nil {
			return fmt.Errorf("scaffolding %s: %w", name, err)
		}

		for _, w := range result.Warnings {
			warnf("%s", w)
		}
		successf("Created %s with %d files", name, len(result.Files))
		fmt.Printf("Next: cd %s && node cli.js -h\n", name)
		return nil
	},
}

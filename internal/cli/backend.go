package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decode-labs/decode/internal/pkgmanager"
	"github.com/decode-labs/decode/internal/scaffold"
	"github.com/spf13/cobra"
)

// backendDeps are installed into every scaffolded backend.
var backendDeps = []string{"express", "cors", "dotenv"}

func init() {
	rootCmd.AddCommand(backendCmd)
}

var backendCmd = &cobra.Command{
	Use:   "backend [name]",
	Short: "Scaffold a backend project and install its base dependencies",
	Long: `Create a backend folder with a manifest, a src/server.js entry file, env
templates, and an ignore file, then install express, cors, and dotenv.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "backend"
		if len(args) == 1 {
			name = args[0]
		}

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
		data := scaffold.NewData(name, "backend", pm.Name)
		result, err := scaffold.Generate(scaffold.SetBackend, data, outDir)
		if err != nil {
			return fmt.Errorf("scaffolding %s: %w", name, err)
		}
		for _, w := range result.Warnings {
			warnf("%s", w)
		}
		successf("Created %s with %d files", name, len(result.Files))

		argv := pm.Install(backendDeps...)
		fmt.Printf("Installing %v with %s...\n", backendDeps, pm.Name)
		code, err := sess.runner.RunVisibleAt(cmd.Context(), outDir, argv[0], argv[1:]...)
		if err != nil {
			return err
		}
		if code != 0 {
			warnf("dependency install exited with code %d", code)
			return nil
		}
		successf("Backend ready: cd %s && %s run dev", name, pm.Name)
		return nil
	},
}

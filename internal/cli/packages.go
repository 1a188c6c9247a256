package cli

import (
	"fmt"
	"os"

	"github.com/decode-labs/decode/internal/pkgmanager"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(packagesCmd)
	rootCmd.AddCommand(frontendCmd)
}

var packagesCmd = &cobra.Command{
	Use:     "packages <pkgs...>",
	Aliases: []string{"install"},
	Short:   "Install packages with the detected package manager",
	Long: `Install the named packages using whichever package manager the current
project's lock file indicates (pnpm, yarn, bun, or npm).`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			warnf("no packages given")
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		pm := pkgmanager.Detect(cwd)
		argv := pm.Install(args...)

		fmt.Printf("Installing with %s: %v\n", pm.Name, args)
		code, err := sess.runner.RunVisible(cmd.Context(), argv[0], argv[1:]...)
		if err != nil {
			return err
		}
		if code != 0 {
			warnf("%s install exited with code %d", pm.Name, code)
			return nil
		}
		successf("Installed %d package(s)", len(args))
		return nil
	},
}

var frontendCmd = &cobra.Command{
	Use:   "frontend",
	Short: "Scaffold a frontend project with Vite",
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := sess.runner.RunVisible(cmd.Context(), "npm", "create", "vite@latest")
		if err != nil {
			return err
		}
		if code != 0 {
			warnf("frontend scaffolding exited with code %d", code)
		}
		return nil
	},
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decode-labs/decode/internal/config"
	"github.com/decode-labs/decode/internal/detect"
	"github.com/decode-labs/decode/internal/navigator"
	"github.com/decode-labs/decode/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(navCmd)
	rootCmd.AddCommand(compassCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(cwdCmd)
	rootCmd.AddCommand(devautoCmd)
	rootCmd.AddCommand(explorerCmd)
	rootCmd.AddCommand(terminalCmd)
	rootCmd.AddCommand(killportCmd)
}

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Navigate the project roots and open a folder in the editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := navigator.New(rootsOrCwd())
		return n.Run(func(path string) error {
			return platform.OpenEditor(cmd.Context(), sess.runner, config.Editor(), path)
		})
	},
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Navigate the project roots and open a terminal there",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := navigator.New(rootsOrCwd())
		return n.Run(func(path string) error {
			return platform.OpenTerminal(cmd.Context(), sess.runner, path, config.Terminal())
		})
	},
}

var compassCmd = &cobra.Command{
	Use:   "compass",
	Short: "Navigate the project roots and open a folder in the file browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := navigator.New(rootsOrCwd())
		return n.Run(func(path string) error {
			return platform.OpenFileBrowser(cmd.Context(), sess.runner, path)
		})
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the configured project roots and their projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		roots := config.ProjectRoots()
		if len(roots) == 0 {
			warnf("no project roots configured; set %s in %s", config.KeyProjectRoots, config.FilePath())
			return nil
		}

		for _, root := range roots {
			fmt.Println(root)
			entries, err := os.ReadDir(root)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() && entry.Name()[0] != '.' {
					fmt.Printf("  %s\n", entry.Name())
				}
			}
		}
		return nil
	},
}

var cwdCmd = &cobra.Command{
	Use:   "cwd",
	Short: "Print the detected active project path",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := detect.New(config.ProjectRoots())
		fmt.Println(d.Detect(cmd.Context()))
		return nil
	},
}

var devautoCmd = &cobra.Command{
	Use:   "devauto",
	Short: "Detect the active project, open it in the editor, and run its dev script",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := detect.New(config.ProjectRoots())
		path := d.Detect(cmd.Context())
		fmt.Printf("Active project: %s\n", path)

		if err := platform.OpenEditor(cmd.Context(), sess.runner, config.Editor(), path); err != nil {
			return err
		}
		return runGoAt(cmd.Context(), path)
	},
}

var explorerCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Open the file browser at the detected active path",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := detect.New(config.ProjectRoots())
		return platform.OpenFileBrowser(cmd.Context(), sess.runner, d.Detect(cmd.Context()))
	},
}

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Open a terminal at the detected active path",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := detect.New(config.ProjectRoots())
		return platform.OpenTerminal(cmd.Context(), sess.runner, d.Detect(cmd.Context()), config.Terminal())
	},
}

var killportCmd = &cobra.Command{
	Use:                "killport [ports...]",
	Short:              "Kill processes listening on the given ports (default 3000)",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports := args
		if len(ports) == 0 {
			ports = []string{"3000"}
		}

		for _, port := range ports {
			pids := platform.ListeningPIDs(cmd.Context(), sess.runner, port)
			if len(pids) == 0 {
				warnf("nothing listening on port %s", port)
				continue
			}
			for _, pid := range pids {
				if err := platform.KillPID(cmd.Context(), sess.runner, pid); err != nil {
					warnf("%v", err)
					continue
				}
				successf("Killed %s (port %s)", pid, port)
			}
		}
		return nil
	},
}

// rootsOrCwd returns the configured roots, or the working directory when
// nothing is configured, so the navigator always has somewhere to start.
func rootsOrCwd() []string {
	roots := config.ProjectRoots()
	if len(roots) > 0 {
		return roots
	}
	if cwd, err := os.Getwd(); err == nil {
		return []string{filepath.Dir(cwd)}
	}
	return nil
}

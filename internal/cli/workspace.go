package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/decode-labs/decode/internal/config"
	"github.com/decode-labs/decode/internal/platform"
	"github.com/decode-labs/decode/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(gitCmd)
	rootCmd.AddCommand(envCmd)
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Launch the editor on the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return platform.OpenEditor(cmd.Context(), sess.runner, config.Editor(), ".")
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Launch a terminal at the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		return platform.OpenTerminal(cmd.Context(), sess.runner, cwd, config.Terminal())
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "List current directory entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		entries, err := os.ReadDir(cwd)
		if err != nil {
			return fmt.Errorf("reading %s: %w", cwd, err)
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].IsDir() != entries[j].IsDir() {
				return entries[i].IsDir()
			}
			return entries[i].Name() < entries[j].Name()
		})

		fmt.Println(cwd)
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				name += "/"
			}
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Initialize version control with an ignore file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		if _, err := os.Stat(filepath.Join(cwd, ".git")); err == nil {
			warnf("git repository already initialized")
			return nil
		}

		code, err := sess.runner.RunVisible(cmd.Context(), "git", "init")
		if err != nil {
			return err
		}
		if code != 0 {
			warnf("git init exited with code %d", code)
			return nil
		}

		result, err := scaffold.Generate(scaffold.SetGitignore, scaffold.NewData(filepath.Base(cwd), "project", ""), cwd)
		if err != nil {
			return fmt.Errorf("writing ignore file: %w", err)
		}
		if len(result.Files) > 0 {
			successf("Initialized repository with .gitignore")
		} else {
			successf("Initialized repository (.gitignore already present)")
		}
		return nil
	},
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Write environment-variable template files if absent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		result, err := scaffold.Generate(scaffold.SetEnv, scaffold.NewData(filepath.Base(cwd), "project", ""), cwd)
		if err != nil {
			return fmt.Errorf("writing env templates: %w", err)
		}

		// .env holds secrets eventually; keep it owner-only.
		_ = platform.Chmod(filepath.Join(cwd, ".env"), 0600)

		if len(result.Files) == 0 {
			warnf("env files already exist")
			return nil
		}
		successf("Created: %v", result.Files)
		return nil
	},
}

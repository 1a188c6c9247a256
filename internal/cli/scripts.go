package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/decode-labs/decode/internal/logging"
	"github.com/decode-labs/decode/internal/manifest"
	"github.com/decode-labs/decode/internal/pkgmanager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(goCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pick and run a script from the project manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		m, err := manifest.Load(cwd)
		if err != nil {
			warnf("no readable %s here", manifest.FileName)
			return nil
		}
		names := m.ScriptNames()
		if len(names) == 0 {
			warnf("manifest has no scripts")
			return nil
		}

		script, ok := selectScript(cmd, names)
		if !ok {
			return nil
		}

		warnEngines(cmd.Context(), m)

		pm := pkgmanager.Detect(cwd)
		argv := pm.Run(script)
		code, err := sess.runner.RunVisible(cmd.Context(), argv[0], argv[1:]...)
		if err != nil {
			return err
		}
		if code != 0 {
			warnf("script %s exited with code %d", script, code)
		}
		return nil
	},
}

// selectScript presents a numbered list of script names on stdin/stdout.
func selectScript(cmd *cobra.Command, names []string) (string, bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nSelect a script:\n")
	for i, name := range names {
		fmt.Fprintf(out, "  %d) %s\n", i+1, name)
	}
	fmt.Fprintf(out, "Enter number [1-%d]: ", len(names))

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(names) {
		warnf("invalid selection %q", strings.TrimSpace(line))
		return "", false
	}
	return names[num-1], true
}

// warnEngines probes the node version and reports an engines mismatch.
// Advisory only; a failed probe stays silent.
func warnEngines(ctx context.Context, m *manifest.Manifest) {
	nodeVersion := sess.runner.RunCapture(ctx, "node", "--version")
	if w := m.CheckEngines(nodeVersion); w != "" {
		warnf("%s", w)
	}
}

// Primary and fallback scripts for the go command.
const (
	primaryScript  = "dev"
	fallbackScript = "start"
)

var goCmd = &cobra.Command{
	Use:   "go",
	Short: "Run the dev script, falling back to start on failure",
	Long: `Run the manifest's dev script. If it is missing, fails to launch, or exits
non-zero, the start script is tried exactly once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		return runGoAt(cmd.Context(), cwd)
	},
}

// runGoAt applies the primary/fallback script policy in dir.
func runGoAt(ctx context.Context, dir string) error {
	m, err := manifest.Load(dir)
	if err != nil {
		warnf("no readable %s in %s", manifest.FileName, dir)
		return nil
	}

	warnEngines(ctx, m)
	pm := pkgmanager.Detect(dir)

	if m.HasScript(primaryScript) {
		argv := pm.Run(primaryScript)
		code, err := sess.runner.RunVisibleAt(ctx, dir, argv[0], argv[1:]...)
		if err == nil && code == 0 {
			return nil
		}
		logging.L().Debug("primary script failed, trying fallback",
			zap.Int("code", code), zap.Error(err))
		warnf("%s failed, trying %s", primaryScript, fallbackScript)
	} else {
		warnf("no %s script, trying %s", primaryScript, fallbackScript)
	}

	if !m.HasScript(fallbackScript) {
		warnf("no %s script either", fallbackScript)
		return nil
	}
	argv := pm.Run(fallbackScript)
	code, err := sess.runner.RunVisibleAt(ctx, dir, argv[0], argv[1:]...)
	if err != nil {
		return err
	}
	if code != 0 {
		warnf("%s exited with code %d", fallbackScript, code)
	}
	return nil
}

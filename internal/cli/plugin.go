package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/decode-labs/decode/internal/config"
	"github.com/decode-labs/decode/internal/plugin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pluginCmd)
}

var pluginCmd = &cobra.Command{
	Use:   "plugin <name> [args...]",
	Short: "Run a script from a plugins directory",
	Long: `Execute a script named <name> from the project-local plugins/ directory,
falling back to ` + config.PluginsDir() + `. Remaining arguments are passed
through to the script.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			warnf("plugin needs a name")
			return nil
		}
		name := args[0]

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		p, err := plugin.Resolve(name, cwd, config.PluginsDir())
		if errors.Is(err, plugin.ErrNotFound) {
			warnf("plugin %s not found", name)
			return nil
		}
		if err != nil {
			warnf("%v", err)
			return nil
		}

		argv := p.Argv(args[1:]...)
		code, runErr := sess.runner.RunVisible(cmd.Context(), argv[0], argv[1:]...)
		if runErr != nil {
			return runErr
		}
		if code != 0 {
			warnf("plugin %s exited with code %d", name, code)
		}
		return nil
	},
}

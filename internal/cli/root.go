package cli

import (
	"fmt"
	"os"

	"github.com/decode-labs/decode/internal/branding"
	"github.com/decode-labs/decode/internal/config"
	"github.com/decode-labs/decode/internal/logging"
	"github.com/decode-labs/decode/internal/runner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// session carries per-invocation state shared by the command handlers: the
// process runner and the banner-once guard.
type session struct {
	runner      *runner.Runner
	bannerShown bool
}

var sess = &session{runner: runner.New()}

var (
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

// warnf reports a handled problem. Handled problems never change the exit
// code.
func warnf(format string, a ...any) {
	warnColor.Fprintf(os.Stderr, "Warning: "+format+"\n", a...)
}

func successf(format string, a ...any) {
	successColor.Printf(format+"\n", a...)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds project folders and files, wraps package-manager and
git invocations, and finds or navigates to the project you are working on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if sess.bannerShown {
			return
		}
		sess.bannerShown = true
		if cmd.Name() != "help" && cmd.Name() != "version" {
			fmt.Fprintf(os.Stderr, "%s %s\n", branding.DisplayName(), buildVersion)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// legacyTokens maps the historical dash-flag surface onto command names.
// The table is closed: anything not listed here is not a command.
var legacyTokens = map[string]string{
	"-p":         "packages",
	"-frontend":  "frontend",
	"-backend":   "backend",
	"-folders":   "folders",
	"-files":     "files",
	"-run":       "run",
	"-go":        "go",
	"-plugin":    "plugin",
	"-open":      "open",
	"-term":      "term",
	"-info":      "info",
	"-git":       "git",
	"-env":       "env",
	"-choose":    "choose",
	"-projects":  "projects",
	"-cwd":       "cwd",
	"-devauto":   "devauto",
	"-explorer":  "explorer",
	"-terminal":  "terminal",
	"-nav":       "nav",
	"-killport":  "killport",
	"-compass":   "compass",
	"-v":         "version",
	"--version":  "version",
	"-h":         "help",
	"--help":     "help",
}

// normalizeArgs rewrites a legacy dash token in first position to its command
// name. Only the first token is dispatched; later arguments pass through
// untouched.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	if name, ok := legacyTokens[args[0]]; ok {
		rewritten := append([]string{name}, args[1:]...)
		return rewritten
	}
	return args
}

// knownCommand reports whether the first token resolves to a registered
// command.
func knownCommand(args []string) bool {
	if len(args) == 0 {
		return true // bare invocation shows help
	}
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == args[0] || cmd.HasAlias(args[0]) {
			return true
		}
	}
	return args[0] == "help"
}

// Execute runs the root command with build info injected via ldflags.
// Unknown tokens print usage and succeed; only unexpected runtime failures
// produce a non-nil return (and exit code 1 in main).
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()
	logging.Init(config.LogDir())
	defer logging.Sync()

	args := normalizeArgs(os.Args[1:])
	if !knownCommand(args) {
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n\n", args[0])
		_ = rootCmd.Help()
		return nil
	}
	rootCmd.SetArgs(args)

	logging.L().Debug("dispatch", zap.Strings("args", args))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.L().Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

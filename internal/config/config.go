package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decode-labs/decode/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the config file.
const (
	KeyProjectRoots = "project_roots"
	KeyEditor       = "editor"
	KeyTerminal     = "terminal"
)

// Dir returns the path to the config directory (~/.decode/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.decode/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// LogDir returns the directory for debug log files (~/.decode/logs/).
func LogDir() string {
	return filepath.Join(Dir(), "logs")
}

// PluginsDir returns the install-local plugins directory (~/.decode/plugins/).
func PluginsDir() string {
	return filepath.Join(Dir(), "plugins")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ProjectRoots returns the configured search bases for project folders.
// When none are configured, it falls back to ~/Projects, ~/dev, and ~,
// keeping only directories that exist.
func ProjectRoots() []string {
	roots := viper.GetStringSlice(KeyProjectRoots)
	if len(roots) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		roots = []string{
			filepath.Join(home, "Projects"),
			filepath.Join(home, "dev"),
			home,
		}
	}

	var existing []string
	for _, root := range roots {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			existing = append(existing, root)
		}
	}
	return existing
}

// Editor returns the configured editor command, falling back to $EDITOR and
// finally to "code" (the most common graphical editor this tool targets).
func Editor() string {
	if ed := Get(KeyEditor); ed != "" {
		return ed
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return "code"
}

// Terminal returns the configured terminal emulator command, or "" to let the
// platform layer pick its default.
func Terminal() string {
	return Get(KeyTerminal)
}

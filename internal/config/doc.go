// Package config manages user-level settings stored at ~/.decode/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the project root directories searched by active-path detection and the
// preferred editor and terminal commands.
package config

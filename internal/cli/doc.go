// Package cli defines the Cobra command tree for the decode CLI. Each file
// in this package registers one or more top-level commands (folders, run,
// choose, etc.) with the root command, and the root normalizes the historical
// dash-token surface (-folders, -p, -v) onto those command names. Command
// implementations delegate to internal packages for business logic and only
// handle argument checking, I/O formatting, and user interaction.
package cli

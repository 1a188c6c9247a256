// Package scaffold generates new project skeletons from embedded templates.
// It powers the init and backend commands, producing the manifest, entry
// script, env files, and ignore file for each project type. Existing files
// are always left untouched, so every set can be re-applied safely.
package scaffold

// flags.go defines constants for CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-default-excludes" -> FlagNoDefaultExcludes).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagCount             = "count"               // Output match count per file
	FlagDryRun            = "dry-run"             // Preview without making changes
	FlagFailed            = "failed"              // Only failed operations
	FlagFilesWithMatch    = "files-with-matches"  // Output matching file paths only
	FlagIgnoreCase        = "ignore-case"         // Case-insensitive matching
	FlagLocal             = "local"               // Use local config (.ffind/config.yaml)
	FlagNoDefaultExcludes = "no-default-excludes" // Drop the built-in exclude list
	FlagPathsOnly         = "paths-only"          // Output paths only
	FlagRegex             = "regex"               // Treat the pattern as a regular expression
	FlagTree              = "tree"                // Tree view output
	FlagUnset             = "unset"               // Remove a config key

	// String flags

	FlagDir       = "dir"        // Directory to search
	FlagExclude   = "exclude"    // Extra exclude glob (repeatable)
	FlagExt       = "ext"        // Comma-separated extension allow-list
	FlagOlderThan = "older-than" // Retention age (e.g. 30d)
	FlagSource    = "source"     // Audit source prefix filter

	// Integer flags

	FlagLimit   = "limit"   // Limit number of results
	FlagThreads = "threads" // Content search worker count
)

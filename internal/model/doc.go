// Package model defines the domain types and value objects for the
// gendict CLI.
//
// This package contains pure data structures with no external dependencies.
// Entry is the record that flows through the parse, normalize, dedup and
// rank stages; Stats collects the per-stage counters.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model

// Package model defines the domain types for the gendict CLI.
//
// These types are shared by every pipeline stage: the parser produces
// Entry values, the normalizer rewrites their names, the deduplicator and
// ranker consume them read-only. Stats carries the counters the pipeline
// gathers along the way.
package model

import (
	"fmt"
	"unicode/utf8"
)

// Entry is one parsed name-frequency record.
//
// Entry is a comparable value type so that the full (Name, Count) pair can
// be used directly as a map key by the deduplicator.
type Entry struct {
	// Name is the human-readable name, possibly containing spaces and
	// punctuation. It is rewritten by the normalizer before dedup.
	Name string `json:"name"`

	// Count is the frequency taken from the trailing numeric token of the
	// input line, or DefaultCount when the line carried none.
	Count int `json:"count"`
}

// DefaultCount is the count assigned to lines without a trailing number.
const DefaultCount = 1

// Len returns the length of the name in Unicode code points.
// The minimum-length filter is defined in characters, not bytes, so names
// containing accented letters are measured the same way a reader counts them.
func (e Entry) Len() int {
	return utf8.RuneCountInString(e.Name)
}

// String returns a compact "name (count)" form for logs and error messages.
func (e Entry) String() string {
	return fmt.Sprintf("%s (%d)", e.Name, e.Count)
}

// Validate checks the Entry invariants: a non-empty name and a count of
// at least one.
func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry name must not be empty")
	}
	if e.Count < DefaultCount {
		return fmt.Errorf("entry %q: count must be >= %d, got %d", e.Name, DefaultCount, e.Count)
	}
	return nil
}

// Stats holds the counters gathered while running the pipeline.
// They are reported by the stats command and logged at debug level.
type Stats struct {
	// Lines is the number of raw lines read from the input.
	Lines int `json:"lines"`

	// Blank is the number of lines skipped because they were empty
	// after trimming whitespace.
	Blank int `json:"blank"`

	// Parsed is the number of entries produced by the line parser.
	Parsed int `json:"parsed"`

	// TooShort is the number of entries dropped by the minimum-length filter.
	TooShort int `json:"tooShort"`

	// Duplicates is the number of exact (name, count) repeats collapsed
	// by the deduplicator.
	Duplicates int `json:"duplicates"`

	// Emitted is the number of names in the final output list.
	Emitted int `json:"emitted"`
}

// ExitCode defines the CLI exit codes. Scripts that regenerate the
// dictionary as part of a build can branch on these values.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputNotFound indicates the raw input file (or a measure sample)
	// could not be opened.
	ExitInputNotFound ExitCode = 2

	// ExitInvalidCorrections indicates the corrections file could not be
	// parsed or contained an invalid pair.
	ExitInvalidCorrections ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// Package main is the entry point for the gendict CLI.
//
// gendict reads a raw name-frequency list and prints the normalized,
// frequency-ordered word list used as a DEFLATE preset dictionary. All
// functionality lives in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during release builds. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/gendict/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}

// Package cli — stats.go implements the "gendict stats" command.
//
// The stats command runs the same pipeline as the root command but,
// instead of printing the dictionary line, shows the ranked entries as a
// table together with the per-stage counters and the effective correction
// table. With --json the same information is emitted as one JSON object.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/gendict/internal/corrections"
	"github.com/shinji-kodama/gendict/internal/model"
	"github.com/shinji-kodama/gendict/internal/normalize"
	"github.com/shinji-kodama/gendict/internal/pipeline"
)

// statsFlags holds the flag values for the stats command.
type statsFlags struct {
	// top limits the table to the N most frequent entries. The ranking
	// puts those last, so this keeps the tail of the list. Zero shows all.
	top int
}

// NewStatsCommand creates the "stats" cobra command.
func NewStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the ranked entries and pipeline counters",
		Long: `Show the ranked dictionary entries with their counts and lengths,
followed by how many lines were read, skipped, dropped and deduplicated.

Examples:
  gendict stats
  gendict stats --top 20
  gendict stats --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.top, "top", 0, "Only show the N most frequent entries (0 shows all)")

	return cmd
}

func runStats(out io.Writer, flags *statsFlags) error {
	if flags.top < 0 {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid --top value %d: must be >= 0", flags.top))
	}

	res, table, err := buildResult()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return printStatsJSON(out, res, table, flags.top)
	}
	return printStatsText(out, res, table, flags.top)
}

// rankedRow pairs an entry with its 1-based position in the full list.
type rankedRow struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Length int    `json:"length"`
}

// tail returns the last top ranked rows, or all rows when top is zero.
func tail(entries []model.Entry, top int) []rankedRow {
	start := 0
	if top > 0 && top < len(entries) {
		start = len(entries) - top
	}
	rows := make([]rankedRow, 0, len(entries)-start)
	for i := start; i < len(entries); i++ {
		rows = append(rows, rankedRow{
			Rank:   i + 1,
			Name:   entries[i].Name,
			Count:  entries[i].Count,
			Length: entries[i].Len(),
		})
	}
	return rows
}

func printStatsJSON(out io.Writer, res *pipeline.Result, table normalize.Table, top int) error {
	type resultJSON struct {
		Stats       model.Stats     `json:"stats"`
		Bytes       int             `json:"bytes"`
		Entries     []rankedRow     `json:"entries"`
		Corrections normalize.Table `json:"corrections"`
	}

	result := resultJSON{
		Stats:       res.Stats,
		Bytes:       len(res.Dictionary()),
		Entries:     tail(res.Entries, top),
		Corrections: table,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// printStatsText prints the entry table, then the counters, then the
// correction table as YAML.
//
//	RANK  NAME            COUNT  LENGTH
//	1     Carafa              2       6
//	2     Carl the Great    500      14
func printStatsText(out io.Writer, res *pipeline.Result, table normalize.Table, top int) error {
	rows := tail(res.Entries, top)
	if len(rows) == 0 {
		fmt.Fprintln(out, "No dictionary entries.")
	} else {
		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			cells = append(cells, []string{
				strconv.Itoa(r.Rank),
				r.Name,
				strconv.Itoa(r.Count),
				strconv.Itoa(r.Length),
			})
		}
		fmt.Fprintln(out, renderTable(out,
			[]string{"RANK", "NAME", "COUNT", "LENGTH"},
			cells,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignRight}))
	}

	s := res.Stats
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Lines read:         %d\n", s.Lines)
	fmt.Fprintf(out, "Blank lines:        %d\n", s.Blank)
	fmt.Fprintf(out, "Entries parsed:     %d\n", s.Parsed)
	fmt.Fprintf(out, "Too short (<%d):     %d\n", normalize.MinLength, s.TooShort)
	fmt.Fprintf(out, "Duplicates removed: %d\n", s.Duplicates)
	fmt.Fprintf(out, "Names emitted:      %d\n", s.Emitted)
	fmt.Fprintf(out, "Dictionary bytes:   %d\n", len(res.Dictionary()))

	data, err := corrections.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode corrections: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, string(data))
	return nil
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

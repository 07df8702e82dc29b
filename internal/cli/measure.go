// Package cli — measure.go implements the "gendict measure" command.
//
// The measure command builds the dictionary in memory and compresses each
// sample file with raw DEFLATE at the best level, once without and once
// with the dictionary as preset. It reports the sizes so a change to the
// raw list or the correction table can be judged by its effect on real
// payloads.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/gendict/internal/measure"
	"github.com/shinji-kodama/gendict/internal/model"
)

// NewMeasureCommand creates the "measure" cobra command.
func NewMeasureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure SAMPLE...",
		Short: "Measure DEFLATE savings of the dictionary on sample files",
		Long: `Compress each sample with raw DEFLATE (best compression), with and
without the generated dictionary as preset, and report the sizes.

Only the last 32 KiB of a preset dictionary are usable by DEFLATE; a
warning is logged when the generated list is longer.

Examples:
  gendict measure payload1.bin payload2.bin
  gendict measure --json samples/*`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd.OutOrStdout(), args)
		},
	}
}

func runMeasure(out io.Writer, samples []string) error {
	res, _, err := buildResult()
	if err != nil {
		return err
	}

	dict, truncated := measure.Usable(res.Dictionary())
	if truncated {
		logger.Warn("dictionary exceeds the DEFLATE window; only the tail is usable",
			zap.Int("bytes", len(res.Dictionary())),
			zap.Int("window", measure.WindowSize))
	}

	reports := make([]measure.Report, 0, len(samples))
	for _, path := range samples {
		data, err := os.ReadFile(path)
		if err != nil {
			return model.WrapCLIError(model.ExitInputNotFound,
				fmt.Sprintf("cannot read sample: %s", path), err)
		}
		r, err := measure.Sample(path, dict, data)
		if err != nil {
			return err
		}
		logger.Debug("measured sample",
			zap.String("sample", path),
			zap.Int("plain", r.Plain),
			zap.Int("with_dict", r.WithDict))
		reports = append(reports, r)
	}

	if IsJSONOutput() {
		return printMeasureJSON(out, len(dict), reports)
	}
	printMeasureText(out, reports)
	return nil
}

func printMeasureJSON(out io.Writer, dictBytes int, reports []measure.Report) error {
	type sampleJSON struct {
		measure.Report
		Saved int `json:"saved"`
	}
	type resultJSON struct {
		DictionaryBytes int          `json:"dictionaryBytes"`
		Samples         []sampleJSON `json:"samples"`
	}

	result := resultJSON{
		DictionaryBytes: dictBytes,
		Samples:         make([]sampleJSON, 0, len(reports)),
	}
	for _, r := range reports {
		result.Samples = append(result.Samples, sampleJSON{Report: r, Saved: r.Saved()})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode measurements: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func printMeasureText(out io.Writer, reports []measure.Report) {
	var totalPlain, totalDict int
	rows := make([][]string, 0, len(reports)+1)
	for _, r := range reports {
		totalPlain += r.Plain
		totalDict += r.WithDict
		rows = append(rows, []string{
			r.Sample,
			strconv.Itoa(r.Raw),
			strconv.Itoa(r.Plain),
			strconv.Itoa(r.WithDict),
			strconv.Itoa(r.Saved()),
			fmt.Sprintf("%.1f%%", r.Ratio()*100),
		})
	}
	if len(reports) > 1 {
		total := measure.Report{Sample: "TOTAL", Plain: totalPlain, WithDict: totalDict}
		rows = append(rows, []string{
			total.Sample, "", strconv.Itoa(total.Plain), strconv.Itoa(total.WithDict),
			strconv.Itoa(total.Saved()), fmt.Sprintf("%.1f%%", total.Ratio()*100),
		})
	}

	fmt.Fprintln(out, renderTable(out,
		[]string{"SAMPLE", "RAW", "DEFLATE", "WITH DICT", "SAVED", "RATIO"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}))
}

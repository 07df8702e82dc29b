// Package cli implements the cobra-based CLI commands for gendict.
//
// The root command itself runs the dictionary pipeline: it reads the raw
// name list, normalizes, deduplicates and ranks it, and prints the result
// as one space-separated line. The stats and measure subcommands are
// defined in their own files and reuse the same pipeline setup.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/gendict/internal/corrections"
	"github.com/shinji-kodama/gendict/internal/logging"
	"github.com/shinji-kodama/gendict/internal/model"
	"github.com/shinji-kodama/gendict/internal/normalize"
	"github.com/shinji-kodama/gendict/internal/pipeline"
)

// DefaultInput is the raw list the tool reads when --input is not given.
// It is looked up relative to the working directory, next to the
// generated dictionary it feeds.
const DefaultInput = "dict-raw.txt"

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether errors and subcommand reports are
	// formatted as JSON. The dictionary line itself is never wrapped.
	jsonOutput bool

	// verbose enables debug logging to stderr.
	verbose bool

	// inputPath is the raw name list to read.
	inputPath string

	// correctionsPath optionally points at a YAML or JSONC file with
	// extra name corrections.
	correctionsPath string

	// logger is built in PersistentPreRunE once flags are parsed.
	logger = zap.NewNop()
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Running it without a subcommand generates the dictionary.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gendict",
		Short: "Build a compression dictionary from a raw name-frequency list",
		Long: `gendict turns a loosely formatted list of names, one per line and
optionally followed by a count, into a normalized, deduplicated word list
ordered by ascending frequency. The list is printed as a single line and is
meant to be embedded as a raw DEFLATE preset dictionary.

Examples:
  gendict > dict.txt
  gendict --input names.txt --corrections fixes.yaml
  gendict stats --top 20
  gendict measure recipes/*.bin`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.NewLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync errors on stderr are harmless (EINVAL on some terminals).
			_ = logger.Sync()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output reports and errors in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", DefaultInput, "Raw name list to read")
	rootCmd.PersistentFlags().StringVar(&correctionsPath, "corrections", "",
		"YAML or JSONC file with extra name corrections")

	rootCmd.AddCommand(NewStatsCommand())
	rootCmd.AddCommand(NewMeasureCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// runGenerate is the default action: run the pipeline over the input
// and write the dictionary line to out.
func runGenerate(out io.Writer) error {
	p, _, err := newPipeline()
	if err != nil {
		return err
	}

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	res, err := p.Generate(in, out)
	if err != nil {
		return pipelineError(fmt.Sprintf("failed to generate dictionary from %s", inputPath), err)
	}

	logger.Debug("dictionary written",
		zap.String("input", inputPath),
		zap.Int("names", res.Stats.Emitted))
	return nil
}

// buildResult runs the pipeline without writing the dictionary. It is
// shared by the stats and measure subcommands.
func buildResult() (*pipeline.Result, normalize.Table, error) {
	p, table, err := newPipeline()
	if err != nil {
		return nil, nil, err
	}

	in, err := openInput(inputPath)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = in.Close() }()

	res, err := p.Run(in)
	if err != nil {
		return nil, nil, pipelineError(fmt.Sprintf("failed to read %s", inputPath), err)
	}
	return res, table, nil
}

func newPipeline() (*pipeline.Pipeline, normalize.Table, error) {
	table, err := loadTable()
	if err != nil {
		return nil, nil, err
	}
	return pipeline.New(pipeline.WithCorrections(table), pipeline.WithLogger(logger)), table, nil
}

// loadTable returns the default correction table, extended with the
// pairs from --corrections when given.
func loadTable() (normalize.Table, error) {
	if correctionsPath == "" {
		return normalize.DefaultTable, nil
	}
	extra, err := corrections.Load(correctionsPath)
	if err != nil {
		return nil, err
	}
	table := normalize.DefaultTable.With(extra)
	if err := table.Validate(); err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidCorrections,
			fmt.Sprintf("invalid corrections file %s", correctionsPath), err)
	}
	logger.Debug("loaded corrections",
		zap.String("path", correctionsPath),
		zap.Int("pairs", len(extra)))
	return table, nil
}

// pipelineError maps a pipeline failure to its exit code. A correction
// table that never settles is a corrections problem, not an input one.
func pipelineError(message string, err error) error {
	if errors.Is(err, normalize.ErrUnstable) {
		return model.WrapCLIError(model.ExitInvalidCorrections, message, err)
	}
	return model.WrapCLIError(model.ExitGeneralError, message, err)
}

// openInput opens path for reading. Any failure to open is fatal and is
// reported with the path so the user knows which resource is missing.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitInputNotFound,
				fmt.Sprintf("input not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitInputNotFound,
			fmt.Sprintf("cannot open input: %s", path), err)
	}
	return f, nil
}

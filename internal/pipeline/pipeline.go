// Package pipeline runs the parse, normalize, dedup and rank stages over
// one input stream.
//
// Data moves strictly forward: the whole input is parsed into memory,
// names are cleaned and filtered, exact repeats are collapsed, and the
// survivors are sorted. Output is rendered into a buffer and only written
// once every stage has succeeded.
package pipeline

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shinji-kodama/gendict/internal/dedup"
	"github.com/shinji-kodama/gendict/internal/model"
	"github.com/shinji-kodama/gendict/internal/normalize"
	"github.com/shinji-kodama/gendict/internal/parse"
	"github.com/shinji-kodama/gendict/internal/rank"
)

// Result is the ranked entry list together with the stage counters.
type Result struct {
	Entries []model.Entry
	Stats   model.Stats
}

// Pipeline holds the stage configuration.
type Pipeline struct {
	table  normalize.Table
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCorrections replaces the correction table used by the normalizer.
func WithCorrections(table normalize.Table) Option {
	return func(p *Pipeline) {
		p.table = table
	}
}

// WithLogger sets a logger for stage-level debug events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Pipeline using normalize.DefaultTable unless overridden.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		table:  normalize.DefaultTable,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads every line of r and returns the ranked entries.
func (p *Pipeline) Run(r io.Reader) (*Result, error) {
	entries, stats, err := parse.Reader(r)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("parsed input",
		zap.Int("lines", stats.Lines),
		zap.Int("blank", stats.Blank),
		zap.Int("entries", stats.Parsed))

	entries, stats.TooShort, err = normalize.New(p.table, normalize.WithLogger(p.logger)).Apply(entries)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("normalized entry violates invariant: %w", err)
		}
	}
	p.logger.Debug("normalized names",
		zap.Int("kept", len(entries)),
		zap.Int("too_short", stats.TooShort))

	unique := dedup.Entries(entries)
	stats.Duplicates = len(entries) - len(unique)
	p.logger.Debug("removed duplicates", zap.Int("duplicates", stats.Duplicates))

	rank.Sort(unique)
	stats.Emitted = len(unique)

	return &Result{Entries: unique, Stats: stats}, nil
}

// Generate runs the pipeline over r and writes the dictionary line to w.
// Nothing is written to w if any stage fails.
func (p *Pipeline) Generate(r io.Reader, w io.Writer) (*Result, error) {
	res, err := p.Run(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := rank.Emit(&buf, res.Entries); err != nil {
		return nil, err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("failed to write dictionary: %w", err)
	}
	return res, nil
}

// Dictionary renders the result as the dictionary bytes, exactly as
// Generate writes them.
func (r *Result) Dictionary() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = rank.Emit(&buf, r.Entries)
	return buf.Bytes()
}

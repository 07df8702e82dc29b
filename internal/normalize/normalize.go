// Package normalize cleans cosmetic artifacts out of parsed names and
// applies the minimum-length filter.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/shinji-kodama/gendict/internal/model"
)

// MinLength is the shortest name kept in the dictionary. A DEFLATE
// back-reference costs about three bytes, so names of three characters
// or fewer never save anything.
const MinLength = 4

// middleDot is the " ·" separator artifact left in the source list.
const middleDot = " ·"

// maxPasses bounds the fixed-point loop in Clean. Validated tables settle
// in one or two passes.
const maxPasses = 8

// Normalizer rewrites names. It is not safe for concurrent use because
// the underlying transformer keeps state between calls.
type Normalizer struct {
	table  Table
	xform  transform.Transformer
	logger *zap.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets a logger for dropped-entry debug events.
func WithLogger(l *zap.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// New returns a Normalizer using table for the correction step.
func New(table Table, opts ...Option) *Normalizer {
	n := &Normalizer{
		table: table,
		xform: transform.Chain(
			runes.Remove(runes.Predicate(isParen)),
			runes.Map(enDashToHyphen),
		),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

func enDashToHyphen(r rune) rune {
	if r == '–' {
		return '-'
	}
	return r
}

// ErrUnstable is returned by Clean when the correction table keeps
// rewriting a name past maxPasses.
var ErrUnstable = errors.New("corrections do not settle")

// Clean returns the normalized form of name: parentheses removed with
// their contents kept, the " ·" artifact removed, en-dashes turned into
// hyphens and the correction table applied. Clean repeats until the name
// stops changing, so Clean(Clean(s)) == Clean(s). A name that is still
// changing after maxPasses yields ErrUnstable.
func (n *Normalizer) Clean(name string) (string, error) {
	for i := 0; i < maxPasses; i++ {
		next := n.pass(name)
		if next == name {
			return name, nil
		}
		name = next
	}
	return "", fmt.Errorf("%w after %d passes: %q", ErrUnstable, maxPasses, name)
}

func (n *Normalizer) pass(s string) string {
	s = n.runeFixes(s)
	s = strings.ReplaceAll(s, middleDot, "")
	return n.table.apply(s)
}

// runeFixes drops parentheses and maps en-dashes. The x/text transformer
// replaces invalid UTF-8 with U+FFFD, so names carrying stray bytes take
// the byte-level path and keep those bytes as they are.
func (n *Normalizer) runeFixes(s string) string {
	if utf8.ValidString(s) {
		out, _, err := transform.String(n.xform, s)
		if err == nil {
			return out
		}
		n.logger.Debug("rune transform failed, using byte replacement",
			zap.String("name", s), zap.Error(err))
	}
	return byteFixes.Replace(s)
}

var byteFixes = strings.NewReplacer("(", "", ")", "", "–", "-")

// Keep reports whether a cleaned name is long enough to be worth a
// dictionary slot.
func Keep(name string) bool {
	return model.Entry{Name: name}.Len() >= MinLength
}

// Apply cleans every entry name and drops the ones failing Keep. The
// surviving entries are rewritten in place in entries' backing array and
// returned along with the number dropped.
func (n *Normalizer) Apply(entries []model.Entry) ([]model.Entry, int, error) {
	kept := entries[:0]
	for _, e := range entries {
		name, err := n.Clean(e.Name)
		if err != nil {
			return nil, 0, err
		}
		e.Name = name
		if !Keep(e.Name) {
			n.logger.Debug("dropping short name", zap.Stringer("entry", e))
			continue
		}
		kept = append(kept, e)
	}
	return kept, len(entries) - len(kept), nil
}

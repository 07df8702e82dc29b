// Package parse turns raw dictionary lines into model.Entry values.
//
// The expected line format is
//
//	<name tokens...> [<count>]
//
// where count is an optional trailing integer that may use commas as
// thousands separators ("12,345"). Parsing is permissive: a line is never
// rejected, only skipped when it is blank.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shinji-kodama/gendict/internal/model"
)

// maxLineSize bounds a single input line. Source lists are one short name
// per line, so this only guards against binary garbage.
const maxLineSize = 1024 * 1024

// Line parses one raw line. It returns ok == false when the line is empty
// after trimming surrounding whitespace.
func Line(raw string) (model.Entry, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.Entry{}, false
	}

	// Split on single spaces so that joining restores the original
	// spacing of multi-word names.
	tokens := strings.Split(trimmed, " ")

	count := model.DefaultCount
	if n, ok := Count(tokens[len(tokens)-1]); ok {
		count = n
		tokens = tokens[:len(tokens)-1]
	}

	return model.Entry{Name: strings.Join(tokens, " "), Count: count}, true
}

// Count interprets tok as a frequency. Commas are removed first; what
// remains must be a non-empty run of ASCII digits that fits in an int.
// Zero is accepted as a count token but reported as DefaultCount so the
// Entry invariant (count >= 1) holds.
func Count(tok string) (int, bool) {
	digits := strings.ReplaceAll(tok, ",", "")
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Out of range for int; fold the token into the name.
		return 0, false
	}
	if n < model.DefaultCount {
		n = model.DefaultCount
	}
	return n, true
}

// Reader parses every line of r in order. The returned stats have Lines,
// Blank and Parsed filled in. The only error is a read error from r.
func Reader(r io.Reader) ([]model.Entry, model.Stats, error) {
	var (
		entries []model.Entry
		stats   model.Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		entry, ok := Line(scanner.Text())
		if !ok {
			stats.Blank++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read input at line %d: %w", stats.Lines+1, err)
	}

	stats.Parsed = len(entries)
	return entries, stats, nil
}

// Package rank orders entries and writes the final dictionary line.
package rank

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/shinji-kodama/gendict/internal/model"
)

// Compare orders entries by ascending count, then by name byte order.
// Counts are compared as integers, so 1000000 sorts after 999999.
func Compare(a, b model.Entry) int {
	if c := cmp.Compare(a.Count, b.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Sort orders entries in place using Compare. The most frequent names end
// up last, closest to the data when the list is used as a DEFLATE preset
// dictionary.
func Sort(entries []model.Entry) {
	slices.SortStableFunc(entries, Compare)
}

// Emit writes every name followed by a single space, including after the
// last one. Nothing is written for an empty list.
func Emit(w io.Writer, entries []model.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.Name); err != nil {
			return err
		}
		if err := bw.WriteByte(' '); err != nil {
			return err
		}
	}
	return bw.Flush()
}

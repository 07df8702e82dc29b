// Package dedup collapses repeated entries while keeping first-seen order.
package dedup

import "github.com/shinji-kodama/gendict/internal/model"

// Entries returns entries with exact (name, count) repeats removed. The
// first occurrence of each pair keeps its position. Entries sharing a name
// but not a count are distinct and both survive.
//
// The input slice is not modified.
func Entries(entries []model.Entry) []model.Entry {
	seen := make(map[model.Entry]struct{}, len(entries))
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

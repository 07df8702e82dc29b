package normalize

import (
	"fmt"
	"strings"
)

// Correction replaces every occurrence of From with To.
type Correction struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// Table is an ordered list of corrections, applied first to last.
type Table []Correction

// DefaultTable holds the known-bad transliterations of the source list.
var DefaultTable = Table{
	{From: "CaraFa", To: "Carafa"},
}

// Validate rejects pairs that can never settle: an empty From matches
// everywhere, and a To that contains any From in the table (its own or
// another pair's) feeds the next pass with fresh input, which is how
// cycles such as ab→c, c→abab grow without bound.
func (t Table) Validate() error {
	for i, c := range t {
		if c.From == "" {
			return fmt.Errorf("correction %d: from must not be empty", i)
		}
	}
	for i, c := range t {
		for j, other := range t {
			if strings.Contains(c.To, other.From) {
				return fmt.Errorf("correction %d: to %q contains from %q of correction %d", i, c.To, other.From, j)
			}
		}
	}
	return nil
}

// With returns a new table with extra appended after t.
func (t Table) With(extra Table) Table {
	out := make(Table, 0, len(t)+len(extra))
	out = append(out, t...)
	return append(out, extra...)
}

func (t Table) apply(s string) string {
	for _, c := range t {
		s = strings.ReplaceAll(s, c.From, c.To)
	}
	return s
}

package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/gendict/internal/model"
)

// TestLine covers the trailing-count rules and the whitespace handling.
func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   model.Entry
		wantOK bool
	}{
		{
			name:   "comma grouped count",
			input:  "Maria Theresa 1,234",
			want:   model.Entry{Name: "Maria Theresa", Count: 1234},
			wantOK: true,
		},
		{
			name:   "no count defaults to one",
			input:  "Otto",
			want:   model.Entry{Name: "Otto", Count: 1},
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			input:  "\t  Carl (the Great) 500  \r",
			want:   model.Entry{Name: "Carl (the Great)", Count: 500},
			wantOK: true,
		},
		{
			name:   "non numeric trailing token stays in name",
			input:  "Louis XIV",
			want:   model.Entry{Name: "Louis XIV", Count: 1},
			wantOK: true,
		},
		{
			name:   "mixed digits and letters stay in name",
			input:  "Agent 007b",
			want:   model.Entry{Name: "Agent 007b", Count: 1},
			wantOK: true,
		},
		{
			name:   "lone comma is not a count",
			input:  "Anna ,",
			want:   model.Entry{Name: "Anna ,", Count: 1},
			wantOK: true,
		},
		{
			name:   "double spaces preserved",
			input:  "Anna  Maria 3",
			want:   model.Entry{Name: "Anna  Maria", Count: 3},
			wantOK: true,
		},
		{
			name:   "only a count leaves an empty name",
			input:  "42",
			want:   model.Entry{Name: "", Count: 42},
			wantOK: true,
		},
		{
			name:   "empty line skipped",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only line skipped",
			input:  " \t ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Line(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// TestCount checks which trailing tokens are accepted as frequencies.
func TestCount(t *testing.T) {
	tests := []struct {
		tok    string
		want   int
		wantOK bool
	}{
		{"500", 500, true},
		{"12,345", 12345, true},
		{"1,2,3", 123, true},
		{"0", 1, true},
		{"", 0, false},
		{",", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"٣", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := Count(tt.tok)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestReader verifies order, blank-line accounting and stats.
func TestReader(t *testing.T) {
	input := "Carl (the Great) 500\n\nCaraFa · 2\n   \nCat\n"

	entries, stats, err := Reader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []model.Entry{
		{Name: "Carl (the Great)", Count: 500},
		{Name: "CaraFa ·", Count: 2},
		{Name: "Cat", Count: 1},
	}, entries)
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 2, stats.Blank)
	assert.Equal(t, 3, stats.Parsed)
}

// TestReader_Empty verifies that an empty input yields no entries and no error.
func TestReader_Empty(t *testing.T) {
	entries, stats, err := Reader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, model.Stats{}, stats)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestReader_ReadError verifies that I/O errors are surfaced.
func TestReader_ReadError(t *testing.T) {
	_, _, err := Reader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

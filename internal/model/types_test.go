package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntry_Len verifies that names are measured in code points, so the
// minimum-length filter treats "Éva" as three characters, not four bytes.
func TestEntry_Len(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Cat", 3},
		{"Carl", 4},
		{"Éva", 3},
		{"Jean-Luc", 8},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entry{Name: tt.name, Count: 1}.Len())
		})
	}
}

// TestEntry_String checks the compact log representation.
func TestEntry_String(t *testing.T) {
	assert.Equal(t, "Maria Theresa (1234)", Entry{Name: "Maria Theresa", Count: 1234}.String())
}

// TestEntry_Validate checks the name and count invariants.
func TestEntry_Validate(t *testing.T) {
	require.NoError(t, Entry{Name: "Otto", Count: 1}.Validate())

	err := Entry{Name: "", Count: 1}.Validate()
	assert.Error(t, err)

	err = Entry{Name: "Otto", Count: 0}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be >= 1")
}

// TestEntry_Comparable verifies that the full pair works as a map key,
// which the deduplicator relies on.
func TestEntry_Comparable(t *testing.T) {
	seen := map[Entry]bool{{Name: "Anna", Count: 2}: true}
	assert.True(t, seen[Entry{Name: "Anna", Count: 2}])
	assert.False(t, seen[Entry{Name: "Anna", Count: 3}])
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitInputNotFound, "input not found: dict-raw.txt")
		assert.Equal(t, ExitInputNotFound, err.Code)
		assert.Equal(t, "input not found: dict-raw.txt", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitInputNotFound, "cannot open input", inner)
		assert.Equal(t, ExitInputNotFound, err.Code)
		assert.Contains(t, err.Error(), "permission denied")
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("bad yaml")
		err := WrapCLIError(ExitInvalidCorrections, "invalid corrections file", inner)
		assert.True(t, errors.Is(err, inner))
	})
}

package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrimUpper(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "single element",
			input:    []string{"de"},
			expected: []string{"DE"},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  de  ", "us-ca  ", "  CHE"},
			expected: []string{"DE", "US-CA", "CHE"},
		},
		{
			name:     "removes case-insensitive duplicates preserving order",
			input:    []string{"de", "US", "DE", "fr", "us"},
			expected: []string{"DE", "US", "FR"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"de", "", "  ", "fr"},
			expected: []string{"DE", "FR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrimUpper(tt.input))
		})
	}
}

func TestSplitCodes(t *testing.T) {
	assert.Nil(t, SplitCodes(""))
	assert.Nil(t, SplitCodes("   "))
	assert.Equal(t, []string{"DE", "US-CA"}, SplitCodes("DE,us-ca"))
	assert.Equal(t, []string{"DE"}, SplitCodes("de, DE ,,"))
	assert.Empty(t, SplitCodes(",,"))
}

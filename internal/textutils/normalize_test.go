package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDescription(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and trims",
			input:    "  STARBUCKS COFFEE  ",
			expected: "starbucks coffee",
		},
		{
			name:     "strips long digit runs",
			input:    "AMAZON MKTP US*2K4XY18R0 1234567890",
			expected: "amazon mktp us*2k4xy18r0",
		},
		{
			name:     "keeps short digit runs",
			input:    "7-Eleven Store 42",
			expected: "7-eleven store 42",
		},
		{
			name:     "collapses whitespace",
			input:    "shell   oil\t station",
			expected: "shell oil station",
		},
		{
			name:     "empty input",
			input:    "   ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDescription(tc.input))
		})
	}
}

func TestExtractMerchantName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips processor prefix",
			input:    "pos starbucks coffee",
			expected: "Starbucks Coffee",
		},
		{
			name:     "strips stacked prefixes",
			input:    "ach payment to city utilities",
			expected: "City Utilities",
		},
		{
			name:     "drops trailing reference tokens",
			input:    "walmart supercenter 4421",
			expected: "Walmart Supercenter",
		},
		{
			name:     "caps at three words",
			input:    "whole foods market downtown branch",
			expected: "Whole Foods Market",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractMerchantName(tc.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Starbucks Coffee", TitleCase("STARBUCKS COFFEE"))
	assert.Equal(t, "Shell Oil", TitleCase("shell oil"))
}

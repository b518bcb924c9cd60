package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "42.50", expected: "42.5"},
		{name: "negative", input: "-12.00", expected: "-12"},
		{name: "parenthesized negative", input: "(100.00)", expected: "-100"},
		{name: "dollar symbol", input: "$1,234.56", expected: "1234.56"},
		{name: "euro symbol", input: "€99.90", expected: "99.9"},
		{name: "currency code", input: "CHF 1'250.00", expected: "1250"},
		{name: "spaces as separators", input: "1 000 000", expected: "1000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dec.String())
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "12.3.4"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

func TestTransactionHelpers(t *testing.T) {
	tx := Transaction{Amount: " ", Category: CategoryUncategorized}
	assert.False(t, tx.HasAmount())
	assert.False(t, tx.IsCategorized())

	tx = Transaction{Amount: "10.00", Category: CategoryFoodDining}
	assert.True(t, tx.HasAmount())
	assert.True(t, tx.IsCategorized())

	value, err := tx.AmountValue()
	require.NoError(t, err)
	assert.Equal(t, "10", value.String())
}

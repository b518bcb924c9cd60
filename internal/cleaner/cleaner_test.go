package cleaner

import (
	"testing"

	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCleanDate(t *testing.T) {
	c := New(logging.NewMockLogger())

	assert.Equal(t, "2024-03-15", c.CleanDate("15.03.2024"))
	assert.Equal(t, "2024-03-15", c.CleanDate("2024-03-15"))
	assert.Equal(t, "garbage", c.CleanDate(" garbage "))
	assert.Equal(t, "", c.CleanDate("   "))
}

func TestCleanDescription(t *testing.T) {
	c := New(logging.NewMockLogger())

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "processor prefix", input: "POS STARBUCKS COFFEE", expected: "Starbucks Coffee"},
		{name: "stacked prefixes", input: "ACH DC CITY UTILITIES", expected: "City Utilities"},
		{name: "hash reference suffix", input: "WALMART #4421", expected: "Walmart"},
		{name: "star reference suffix", input: "NETFLIX *8842", expected: "Netflix"},
		{name: "whitespace collapse", input: "  shell   oil  ", expected: "Shell Oil"},
		{name: "empty", input: "  ", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.CleanDescription(tc.input))
		})
	}
}

func TestCleanAmount(t *testing.T) {
	c := New(logging.NewMockLogger())

	assert.Equal(t, "1234.56", c.CleanAmount("$1,234.56"))
	assert.Equal(t, "-100", c.CleanAmount("(100.00)"))
	assert.Equal(t, "not-a-number", c.CleanAmount(" not-a-number "))
	assert.Equal(t, "", c.CleanAmount(""))
}

func TestCleanRow(t *testing.T) {
	c := New(logging.NewMockLogger())

	tx := models.Transaction{
		Date:        "15.03.2024",
		Description: "POS STARBUCKS #4421",
		Amount:      "$4.50",
	}
	c.CleanRow(&tx)

	assert.Equal(t, "2024-03-15", tx.Date)
	assert.Equal(t, "Starbucks", tx.Description)
	assert.Equal(t, "4.5", tx.Amount)
}

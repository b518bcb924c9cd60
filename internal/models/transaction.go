// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction represents a single normalized transaction row. The Date,
// Description and Amount fields come from the caller; the remaining fields
// are appended by the validation and classification engines. Rows are never
// dropped: invalid or uncategorized rows keep their annotations instead.
type Transaction struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"` // raw value, may be blank or malformed

	Category             string  `csv:"Category"`
	ClassificationMethod string  `csv:"ClassificationMethod"`
	ConfidenceScore      float64 `csv:"ConfidenceScore"`
	ValidationError      string  `csv:"ValidationError"`
	ErrorType            string  `csv:"ErrorType"`
}

// AmountValue parses the raw amount into a decimal for range checks.
func (t *Transaction) AmountValue() (decimal.Decimal, error) {
	return ParseAmount(t.Amount)
}

// HasAmount reports whether the raw amount field is non-blank.
func (t *Transaction) HasAmount() bool {
	return strings.TrimSpace(t.Amount) != ""
}

// IsCategorized reports whether the classification engine assigned a real category.
func (t *Transaction) IsCategorized() bool {
	return t.Category != "" && t.Category != CategoryUncategorized
}

// ParseAmount converts a raw amount string to a decimal. It tolerates the
// formats commonly seen in exported statements: currency symbols and codes,
// thousand separators, and parenthesized negatives like (100.00).
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	// Parenthesized negative, e.g. (100.00) -> -100.00
	if strings.HasPrefix(amount, "(") && strings.HasSuffix(amount, ")") {
		amount = "-" + amount[1:len(amount)-1]
	}

	for _, symbol := range []string{"$", "€", "£", "CHF", "USD", "EUR"} {
		amount = strings.ReplaceAll(amount, symbol, "")
	}
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, "'", "")
	amount = strings.ReplaceAll(amount, " ", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return dec, nil
}

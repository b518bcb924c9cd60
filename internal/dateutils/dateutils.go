// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// statementFormats lists the date formats commonly found in exported
// financial data, tried in order.
var statementFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutEuropean,
	DateLayoutUS,
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
	"2.1.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// CleanDateString trims and normalizes whitespace in a date string.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString attempts to parse a date string using multiple common formats.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range statementFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

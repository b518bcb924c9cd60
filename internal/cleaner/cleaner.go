// Package cleaner normalizes raw statement rows before classification:
// dates to ISO form, descriptions stripped of processor noise, amounts
// reduced to a plain decimal string.
package cleaner

import (
	"regexp"
	"strings"

	"dmeyer/txn-classify/internal/dateutils"
	"dmeyer/txn-classify/internal/logging"
	"dmeyer/txn-classify/internal/models"
	"dmeyer/txn-classify/internal/textutils"
)

var (
	processorPrefixRe = regexp.MustCompile(`(?i)^(POS|ACH|DC|CC)\s+`)
	refSuffixRe       = regexp.MustCompile(`(#\d+|\*\d+)$`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
)

// Cleaner applies in-place normalization to transaction rows.
type Cleaner struct {
	logger logging.Logger
}

// New creates a cleaner.
func New(logger logging.Logger) *Cleaner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Cleaner{logger: logger}
}

// CleanRow normalizes the date, description, and amount of a row in place.
// Fields that cannot be normalized are left untouched so validation can
// still report on the raw value.
func (c *Cleaner) CleanRow(row *models.Transaction) {
	row.Date = c.CleanDate(row.Date)
	row.Description = c.CleanDescription(row.Description)
	row.Amount = c.CleanAmount(row.Amount)
}

// CleanDate converts a recognized date string to ISO yyyy-mm-dd. An
// unrecognized date is returned trimmed but otherwise unchanged.
func (c *Cleaner) CleanDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	parsed, err := dateutils.ParseDateString(trimmed)
	if err != nil {
		c.logger.Debug("Date left unnormalized", logging.Field{Key: "date", Value: trimmed})
		return trimmed
	}
	return dateutils.ToISODate(parsed)
}

// CleanDescription strips processor prefixes and trailing reference
// numbers, collapses whitespace, and title-cases the result.
func (c *Cleaner) CleanDescription(raw string) string {
	desc := strings.TrimSpace(raw)
	if desc == "" {
		return desc
	}
	for processorPrefixRe.MatchString(desc) {
		desc = processorPrefixRe.ReplaceAllString(desc, "")
	}
	desc = refSuffixRe.ReplaceAllString(desc, "")
	desc = whitespaceRe.ReplaceAllString(desc, " ")
	desc = strings.TrimSpace(desc)
	return textutils.TitleCase(desc)
}

// CleanAmount reduces a raw amount to a plain decimal string, stripping
// currency symbols and thousands separators. Unparseable amounts are
// returned trimmed.
func (c *Cleaner) CleanAmount(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	value, err := models.ParseAmount(trimmed)
	if err != nil {
		return trimmed
	}
	return value.String()
}

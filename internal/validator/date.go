package validator

import (
	"fmt"
	"strings"
	"time"

	"dmeyer/txn-classify/internal/dateutils"
	"dmeyer/txn-classify/internal/models"
)

// DateCheck flags rows whose date cannot be parsed, lies in the future, or
// falls outside the accepted historical window.
type DateCheck struct {
	rangeYears int
	now        func() time.Time
}

// NewDateCheck creates a date check with the given historical window in
// years. A non-positive value falls back to five years.
func NewDateCheck(rangeYears int) *DateCheck {
	if rangeYears <= 0 {
		rangeYears = 5
	}
	return &DateCheck{rangeYears: rangeYears, now: time.Now}
}

// Name returns the name of this check for logging and debugging.
func (c *DateCheck) Name() string {
	return "Date"
}

// Check validates the row date. Missing dates are the presence check's
// concern and are skipped here.
func (c *DateCheck) Check(row *models.Transaction) []models.Finding {
	raw := strings.TrimSpace(row.Date)
	if raw == "" {
		return nil
	}

	parsed, err := dateutils.ParseDateString(raw)
	if err != nil {
		return []models.Finding{{
			Message: fmt.Sprintf("Unparseable date %q", raw),
			Kind:    models.KindInvalidDate,
		}}
	}

	now := c.now()
	if parsed.After(now) {
		return []models.Finding{{
			Message: fmt.Sprintf("Date %s lies in the future", parsed.Format(dateutils.DateLayoutISO)),
			Kind:    models.KindFutureDate,
		}}
	}

	oldest := now.AddDate(-c.rangeYears, 0, 0)
	if parsed.Before(oldest) {
		return []models.Finding{{
			Message: fmt.Sprintf("Date %s older than %d years", parsed.Format(dateutils.DateLayoutISO), c.rangeYears),
			Kind:    models.KindAncientDate,
		}}
	}
	return nil
}

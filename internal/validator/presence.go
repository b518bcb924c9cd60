package validator

import (
	"strings"

	"dmeyer/txn-classify/internal/models"
)

// PresenceCheck flags rows with missing or blank date, description, or
// amount fields, one finding per missing field.
type PresenceCheck struct{}

// NewPresenceCheck creates the presence check.
func NewPresenceCheck() *PresenceCheck {
	return &PresenceCheck{}
}

// Name returns the name of this check for logging and debugging.
func (c *PresenceCheck) Name() string {
	return "Presence"
}

// Check reports each missing field.
func (c *PresenceCheck) Check(row *models.Transaction) []models.Finding {
	var findings []models.Finding

	if strings.TrimSpace(row.Date) == "" {
		findings = append(findings, models.Finding{
			Message: "Missing date",
			Kind:    models.KindMissingDate,
		})
	}
	if strings.TrimSpace(row.Description) == "" {
		findings = append(findings, models.Finding{
			Message: "Missing description",
			Kind:    models.KindMissingDescription,
		})
	}
	if !row.HasAmount() {
		findings = append(findings, models.Finding{
			Message: "Missing amount",
			Kind:    models.KindMissingAmount,
		})
	}

	return findings
}

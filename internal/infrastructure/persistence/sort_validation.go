package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC.
// Anything that is not ASC becomes DESC.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks the sort field against a whitelist. Fields
// outside the whitelist fall back to the default; the column name is
// interpolated into the ORDER BY clause and must never come from the
// caller unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// PersonSortFields contains allowed sort fields for persons
var PersonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"document":   true,
	"kind":       true,
	"email":      true,
	"active":     true,
}

// AccountPayableSortFields contains allowed sort fields for accounts payable
var AccountPayableSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"description":      true,
	"amount":           true,
	"issue_date":       true,
	"due_date":         true,
	"status":           true,
	"pay_method":       true,
	"related_party_id": true,
	"payment_date":     true,
}

// AccountReceivableSortFields contains allowed sort fields for accounts receivable
var AccountReceivableSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"description":      true,
	"amount":           true,
	"issue_date":       true,
	"due_date":         true,
	"status":           true,
	"pay_method":       true,
	"related_party_id": true,
	"invoice_number":   true,
	"received_date":    true,
}

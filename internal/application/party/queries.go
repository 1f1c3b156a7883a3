package party

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// GetPersonQuery fetches one person by ID
type GetPersonQuery struct {
	TenantID uuid.UUID
	PersonID uuid.UUID
}

// ListPersonsQuery lists a tenant's persons with paging
type ListPersonsQuery struct {
	TenantID uuid.UUID
	Filter   party.PersonFilter
}

// PersonResponse is the application-level view of a person of either kind
type PersonResponse struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	Name          string     `json:"name"`
	Document      string     `json:"document"`
	Type          string     `json:"type"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Active        bool       `json:"active"`
	MaritalStatus *string    `json:"marital_status,omitempty"`
	LegalName     *string    `json:"legal_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Version       int        `json:"version"`
}

// PersonListResponse is a paginated list of persons
type PersonListResponse = shared.Paginated[PersonResponse]

func toPersonResponse(record *party.PersonRecord) *PersonResponse {
	resp := &PersonResponse{
		ID:        record.ID,
		TenantID:  record.TenantID,
		Name:      record.Name,
		Document:  record.Document,
		Type:      record.Type.String(),
		Email:     record.Email,
		Phone:     record.Phone,
		Active:    record.Active,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		Version:   record.Version,
	}
	if record.MaritalStatus != nil {
		status := record.MaritalStatus.String()
		resp.MaritalStatus = &status
	}
	if record.LegalName != nil {
		legalName := *record.LegalName
		resp.LegalName = &legalName
	}
	return resp
}

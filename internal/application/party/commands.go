package party

import (
	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/party"
)

// CreateIndividualPersonCommand registers a new natural person
type CreateIndividualPersonCommand struct {
	TenantID      uuid.UUID
	Name          string
	Document      string
	Email         string
	Phone         string
	MaritalStatus party.MaritalStatus
}

// CreateLegalPersonCommand registers a new company
type CreateLegalPersonCommand struct {
	TenantID  uuid.UUID
	Name      string
	LegalName string
	Document  string
	Email     string
	Phone     string
}

// UpdatePersonContactCommand changes a person's contact data. Empty fields
// are left untouched.
type UpdatePersonContactCommand struct {
	TenantID uuid.UUID
	PersonID uuid.UUID
	Name     string
	Document string
	Email    string
	Phone    string
}

// ChangeMaritalStatusCommand changes an individual's civil status
type ChangeMaritalStatusCommand struct {
	TenantID      uuid.UUID
	PersonID      uuid.UUID
	MaritalStatus party.MaritalStatus
}

// ChangeLegalNameCommand changes a company's registered name
type ChangeLegalNameCommand struct {
	TenantID  uuid.UUID
	PersonID  uuid.UUID
	LegalName string
}

// SetPersonActivationCommand activates or deactivates a person
type SetPersonActivationCommand struct {
	TenantID uuid.UUID
	PersonID uuid.UUID
	Active   bool
}

// DeletePersonCommand removes a person
type DeletePersonCommand struct {
	TenantID uuid.UUID
	PersonID uuid.UUID
}

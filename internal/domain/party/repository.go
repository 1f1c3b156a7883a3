package party

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// PersonFilter defines filtering options for person queries
type PersonFilter struct {
	shared.Filter
	Type   *PersonType // Filter by kind
	Active *bool       // Filter by activation flag
}

// PersonRecord is a read view covering both person kinds. Kind-specific
// fields are nil when they do not apply.
type PersonRecord struct {
	Person
	MaritalStatus *MaritalStatus
	LegalName     *string
}

// PersonRepository defines the interface for person persistence. Not found
// is represented as a nil record, never as an error.
type PersonRepository interface {
	// FindByIDForTenant finds a person of either kind by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PersonRecord, error)

	// FindIndividualByID finds an individual person by ID for a tenant
	FindIndividualByID(ctx context.Context, tenantID, id uuid.UUID) (*IndividualPerson, error)

	// FindLegalByID finds a legal person by ID for a tenant
	FindLegalByID(ctx context.Context, tenantID, id uuid.UUID) (*LegalPerson, error)

	// FindAllForTenant finds all persons for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter PersonFilter) ([]PersonRecord, error)

	// CountForTenant counts persons for a tenant with filtering
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter PersonFilter) (int64, error)

	// SaveIndividual creates or updates an individual person
	SaveIndividual(ctx context.Context, person *IndividualPerson) error

	// SaveLegal creates or updates a legal person
	SaveLegal(ctx context.Context, person *LegalPerson) error

	// DeleteForTenant deletes a person for a tenant; shared.ErrNotFound when absent
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

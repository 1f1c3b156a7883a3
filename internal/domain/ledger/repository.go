package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountPayableFilter defines filtering options for payable queries
type AccountPayableFilter struct {
	shared.Filter
	RelatedPartyID *uuid.UUID     // Filter by supplier
	Status         *AccountStatus // Filter by status
	DueFrom        *time.Time     // Filter by due date range start
	DueTo          *time.Time     // Filter by due date range end
	Overdue        *bool          // Filter only overdue payables
}

// AccountPayableRepository defines the interface for payable persistence.
// Not found is a nil aggregate, never an error.
type AccountPayableRepository interface {
	// FindByIDForTenant finds a payable by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AccountPayable, error)

	// FindAllForTenant finds all payables for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter AccountPayableFilter) ([]AccountPayable, error)

	// CountForTenant counts payables for a tenant with filtering
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter AccountPayableFilter) (int64, error)

	// Save creates or updates a payable with its installment schedule
	Save(ctx context.Context, payable *AccountPayable) error

	// DeleteForTenant deletes a payable; shared.ErrNotFound when absent
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

// AccountReceivableFilter defines filtering options for receivable queries
type AccountReceivableFilter struct {
	shared.Filter
	RelatedPartyID *uuid.UUID     // Filter by customer
	Status         *AccountStatus // Filter by status
	DueFrom        *time.Time     // Filter by due date range start
	DueTo          *time.Time     // Filter by due date range end
	Overdue        *bool          // Filter only overdue receivables
}

// AccountReceivableRepository defines the interface for receivable
// persistence. The invoice number is unique per tenant; Save surfaces a
// violation as shared.ErrAlreadyExists.
type AccountReceivableRepository interface {
	// FindByIDForTenant finds a receivable by ID for a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AccountReceivable, error)

	// FindByInvoiceNumber finds a receivable by invoice number for a tenant
	FindByInvoiceNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (*AccountReceivable, error)

	// FindAllForTenant finds all receivables for a tenant with filtering
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter AccountReceivableFilter) ([]AccountReceivable, error)

	// CountForTenant counts receivables for a tenant with filtering
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter AccountReceivableFilter) (int64, error)

	// Save creates or updates a receivable with its installment schedule
	Save(ctx context.Context, receivable *AccountReceivable) error

	// DeleteForTenant deletes a receivable; shared.ErrNotFound when absent
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}

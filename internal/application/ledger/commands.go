package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/ledger"
)

// CreateAccountPayableCommand opens a new account payable
type CreateAccountPayableCommand struct {
	TenantID       uuid.UUID
	Description    string
	Amount         decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	Status         ledger.AccountStatus
	RelatedPartyID uuid.UUID
	PayMethod      ledger.PaymentMethod
	PaymentDate    *time.Time
}

// CreateAccountReceivableCommand opens a new account receivable
type CreateAccountReceivableCommand struct {
	TenantID       uuid.UUID
	Description    string
	Amount         decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	Status         ledger.AccountStatus
	RelatedPartyID uuid.UUID
	PayMethod      ledger.PaymentMethod
	InvoiceNumber  string
	ReceivedDate   *time.Time
}

// UpdateAccountPayableCommand changes the mutable fields of a payable.
// Nil fields are left untouched.
type UpdateAccountPayableCommand struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	Description *string
	DueDate     *time.Time
	PayMethod   *ledger.PaymentMethod
}

// UpdateAccountReceivableCommand changes the mutable fields of a receivable
type UpdateAccountReceivableCommand struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	Description *string
	DueDate     *time.Time
	PayMethod   *ledger.PaymentMethod
}

// ChangeAccountPayableStatusCommand moves a payable to another status
type ChangeAccountPayableStatusCommand struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
	Status    ledger.AccountStatus
}

// ChangeAccountReceivableStatusCommand moves a receivable to another status
type ChangeAccountReceivableStatusCommand struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
	Status    ledger.AccountStatus
}

// RegisterPayablePaymentCommand settles a payable on the given date
type RegisterPayablePaymentCommand struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	PaymentDate time.Time
}

// RegisterReceivableReceiptCommand settles a receivable on the given date
type RegisterReceivableReceiptCommand struct {
	TenantID     uuid.UUID
	AccountID    uuid.UUID
	ReceivedDate time.Time
}

// AddPayableInstallmentCommand appends an installment to a payable
type AddPayableInstallmentCommand struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	Number      int
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      ledger.AccountStatus
	PaymentDate *time.Time
}

// AddReceivableInstallmentCommand appends an installment to a receivable
type AddReceivableInstallmentCommand struct {
	TenantID    uuid.UUID
	AccountID   uuid.UUID
	Number      int
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      ledger.AccountStatus
	PaymentDate *time.Time
}

// DeleteAccountPayableCommand removes a payable
type DeleteAccountPayableCommand struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountReceivableCommand removes a receivable
type DeleteAccountReceivableCommand struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
}

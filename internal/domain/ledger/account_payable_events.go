package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountPayableCreatedEvent is raised when a new account payable is created
type AccountPayableCreatedEvent struct {
	shared.BaseDomainEvent
	AccountID      uuid.UUID       `json:"account_id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	Status         AccountStatus   `json:"status"`
	RelatedPartyID uuid.UUID       `json:"related_party_id"`
}

// EventType returns the event type name
func (e *AccountPayableCreatedEvent) EventType() string {
	return "AccountPayableCreated"
}

// NewAccountPayableCreatedEvent creates a new AccountPayableCreatedEvent
func NewAccountPayableCreatedEvent(ap *AccountPayable) *AccountPayableCreatedEvent {
	return &AccountPayableCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AccountPayableCreated", "AccountPayable", ap.ID, ap.TenantID),
		AccountID:       ap.ID,
		Description:     ap.Description,
		Amount:          ap.Amount,
		IssueDate:       ap.IssueDate,
		DueDate:         ap.DueDate,
		Status:          ap.Status,
		RelatedPartyID:  ap.RelatedPartyID,
	}
}

// AccountPayablePaidEvent is raised when a payable is settled
type AccountPayablePaidEvent struct {
	shared.BaseDomainEvent
	AccountID   uuid.UUID       `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
}

// EventType returns the event type name
func (e *AccountPayablePaidEvent) EventType() string {
	return "AccountPayablePaid"
}

// NewAccountPayablePaidEvent creates a new AccountPayablePaidEvent
func NewAccountPayablePaidEvent(ap *AccountPayable) *AccountPayablePaidEvent {
	paidAt := time.Now()
	if ap.PaymentDate != nil {
		paidAt = *ap.PaymentDate
	}
	return &AccountPayablePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AccountPayablePaid", "AccountPayable", ap.ID, ap.TenantID),
		AccountID:       ap.ID,
		Amount:          ap.Amount,
		PaymentDate:     paidAt,
	}
}

// PayableInstallmentAddedEvent is raised when an installment joins a payable
type PayableInstallmentAddedEvent struct {
	shared.BaseDomainEvent
	AccountID         uuid.UUID       `json:"account_id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"due_date"`
}

// EventType returns the event type name
func (e *PayableInstallmentAddedEvent) EventType() string {
	return "PayableInstallmentAdded"
}

// NewPayableInstallmentAddedEvent creates a new PayableInstallmentAddedEvent
func NewPayableInstallmentAddedEvent(ap *AccountPayable, installment *Installment) *PayableInstallmentAddedEvent {
	return &PayableInstallmentAddedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent("PayableInstallmentAdded", "AccountPayable", ap.ID, ap.TenantID),
		AccountID:         ap.ID,
		InstallmentNumber: installment.Number,
		Amount:            installment.Amount,
		DueDate:           installment.DueDate,
	}
}

package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountReceivableCreatedEvent is raised when a new account receivable is created
type AccountReceivableCreatedEvent struct {
	shared.BaseDomainEvent
	AccountID      uuid.UUID       `json:"account_id"`
	InvoiceNumber  string          `json:"invoice_number"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	Status         AccountStatus   `json:"status"`
	RelatedPartyID uuid.UUID       `json:"related_party_id"`
}

// EventType returns the event type name
func (e *AccountReceivableCreatedEvent) EventType() string {
	return "AccountReceivableCreated"
}

// NewAccountReceivableCreatedEvent creates a new AccountReceivableCreatedEvent
func NewAccountReceivableCreatedEvent(ar *AccountReceivable) *AccountReceivableCreatedEvent {
	return &AccountReceivableCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AccountReceivableCreated", "AccountReceivable", ar.ID, ar.TenantID),
		AccountID:       ar.ID,
		InvoiceNumber:   ar.InvoiceNumber,
		Description:     ar.Description,
		Amount:          ar.Amount,
		IssueDate:       ar.IssueDate,
		DueDate:         ar.DueDate,
		Status:          ar.Status,
		RelatedPartyID:  ar.RelatedPartyID,
	}
}

// AccountReceivableReceivedEvent is raised when a receivable is settled
type AccountReceivableReceivedEvent struct {
	shared.BaseDomainEvent
	AccountID     uuid.UUID       `json:"account_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	ReceivedDate  time.Time       `json:"received_date"`
}

// EventType returns the event type name
func (e *AccountReceivableReceivedEvent) EventType() string {
	return "AccountReceivableReceived"
}

// NewAccountReceivableReceivedEvent creates a new AccountReceivableReceivedEvent
func NewAccountReceivableReceivedEvent(ar *AccountReceivable) *AccountReceivableReceivedEvent {
	receivedAt := time.Now()
	if ar.ReceivedDate != nil {
		receivedAt = *ar.ReceivedDate
	}
	return &AccountReceivableReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("AccountReceivableReceived", "AccountReceivable", ar.ID, ar.TenantID),
		AccountID:       ar.ID,
		InvoiceNumber:   ar.InvoiceNumber,
		Amount:          ar.Amount,
		ReceivedDate:    receivedAt,
	}
}

// ReceivableInstallmentAddedEvent is raised when an installment joins a receivable
type ReceivableInstallmentAddedEvent struct {
	shared.BaseDomainEvent
	AccountID         uuid.UUID       `json:"account_id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"due_date"`
}

// EventType returns the event type name
func (e *ReceivableInstallmentAddedEvent) EventType() string {
	return "ReceivableInstallmentAdded"
}

// NewReceivableInstallmentAddedEvent creates a new ReceivableInstallmentAddedEvent
func NewReceivableInstallmentAddedEvent(ar *AccountReceivable, installment *Installment) *ReceivableInstallmentAddedEvent {
	return &ReceivableInstallmentAddedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent("ReceivableInstallmentAdded", "AccountReceivable", ar.ID, ar.TenantID),
		AccountID:         ar.ID,
		InstallmentNumber: installment.Number,
		Amount:            installment.Amount,
		DueDate:           installment.DueDate,
	}
}

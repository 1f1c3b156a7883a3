package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountReceivable is money owed by a customer. Besides the shared account
// core it carries the fiscal invoice number, unique per tenant at the
// persistence layer.
type AccountReceivable struct {
	Account
	InvoiceNumber string
	ReceivedDate  *time.Time
}

// NewAccountReceivable creates a new account receivable
func NewAccountReceivable(tenantID uuid.UUID, description string, amount decimal.Decimal, issueDate, dueDate time.Time, status AccountStatus, relatedParty *party.Person, payMethod PaymentMethod, invoiceNumber string, receivedDate *time.Time) shared.DomainResult[*AccountReceivable] {
	core, res := newAccount(tenantID, description, amount, issueDate, dueDate, status, relatedParty, payMethod)
	if res.IsFailure() {
		return shared.Fail[*AccountReceivable](res.FailureMessage())
	}
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return shared.Fail[*AccountReceivable]("O número da nota fiscal é obrigatório")
	}
	if receivedDate != nil {
		if status != AccountStatusReceived {
			return shared.Fail[*AccountReceivable]("A data de recebimento só pode ser informada quando a conta estiver recebida")
		}
		if receivedDate.After(time.Now()) {
			return shared.Fail[*AccountReceivable]("A data de recebimento não pode estar no futuro")
		}
	}

	ar := &AccountReceivable{
		Account:       core,
		InvoiceNumber: invoiceNumber,
		ReceivedDate:  receivedDate,
	}
	ar.AddDomainEvent(NewAccountReceivableCreatedEvent(ar))

	return shared.Ok(ar)
}

// AddInstallment appends an installment to the receivable's schedule
func (ar *AccountReceivable) AddInstallment(installment *Installment) shared.Result {
	res := ar.addInstallment(installment)
	if res.IsFailure() {
		return res
	}
	ar.AddDomainEvent(NewReceivableInstallmentAddedEvent(ar, installment))
	return res
}

// RegisterReceipt settles the receivable: status becomes received and the
// receipt date is recorded. The date must not be in the future.
func (ar *AccountReceivable) RegisterReceipt(receivedDate time.Time) shared.Result {
	if receivedDate.After(time.Now()) {
		return shared.FailResult("A data de recebimento não pode estar no futuro")
	}
	ar.Status = AccountStatusReceived
	ar.ReceivedDate = &receivedDate
	ar.touch()
	ar.AddDomainEvent(NewAccountReceivableReceivedEvent(ar))
	return shared.OkResult()
}

// ReopenReceipt clears the received date when the account leaves the
// received status.
func (ar *AccountReceivable) ReopenReceipt() shared.Result {
	res := ar.ChangeStatus(AccountStatusPending)
	if res.IsFailure() {
		return res
	}
	ar.ReceivedDate = nil
	return shared.OkResult()
}

package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountPayable is money owed to a supplier. It owns its installment
// schedule and couples the payment date to the paid status.
type AccountPayable struct {
	Account
	PaymentDate *time.Time
}

// NewAccountPayable creates a new account payable
func NewAccountPayable(tenantID uuid.UUID, description string, amount decimal.Decimal, issueDate, dueDate time.Time, status AccountStatus, relatedParty *party.Person, payMethod PaymentMethod, paymentDate *time.Time) shared.DomainResult[*AccountPayable] {
	core, res := newAccount(tenantID, description, amount, issueDate, dueDate, status, relatedParty, payMethod)
	if res.IsFailure() {
		return shared.Fail[*AccountPayable](res.FailureMessage())
	}
	if paymentDate != nil {
		if status != AccountStatusPaid {
			return shared.Fail[*AccountPayable]("A data de pagamento só pode ser informada quando a conta estiver paga")
		}
		if paymentDate.After(time.Now()) {
			return shared.Fail[*AccountPayable]("A data de pagamento não pode estar no futuro")
		}
	}

	ap := &AccountPayable{
		Account:     core,
		PaymentDate: paymentDate,
	}
	ap.AddDomainEvent(NewAccountPayableCreatedEvent(ap))

	return shared.Ok(ap)
}

// AddInstallment appends an installment to the payable's schedule
func (ap *AccountPayable) AddInstallment(installment *Installment) shared.Result {
	res := ap.addInstallment(installment)
	if res.IsFailure() {
		return res
	}
	ap.AddDomainEvent(NewPayableInstallmentAddedEvent(ap, installment))
	return res
}

// RegisterPayment settles the payable: status becomes paid and the payment
// date is recorded. The date must not be in the future.
func (ap *AccountPayable) RegisterPayment(paymentDate time.Time) shared.Result {
	if paymentDate.After(time.Now()) {
		return shared.FailResult("A data de pagamento não pode estar no futuro")
	}
	ap.Status = AccountStatusPaid
	ap.PaymentDate = &paymentDate
	ap.touch()
	ap.AddDomainEvent(NewAccountPayablePaidEvent(ap))
	return shared.OkResult()
}

// ReopenPayment clears the payment date when the account leaves the paid
// status. Moving back to pending is allowed; the domain enforces no
// transition graph.
func (ap *AccountPayable) ReopenPayment() shared.Result {
	res := ap.ChangeStatus(AccountStatusPending)
	if res.IsFailure() {
		return res
	}
	ap.PaymentDate = nil
	return shared.OkResult()
}

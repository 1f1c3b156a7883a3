package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// EntryType is the accounting direction of an installment: debit entries
// belong to payables, credit entries to receivables.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// IsValid checks if the entry type is a valid EntryType
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeDebit, EntryTypeCredit:
		return true
	}
	return false
}

// String returns the string representation of EntryType
func (t EntryType) String() string {
	return string(t)
}

// Installment is one scheduled cash movement inside an account. It is a
// value object: it has no identity of its own and lives only inside the
// owning account's collection.
type Installment struct {
	Number      int
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      AccountStatus
	PaymentDate *time.Time
	EntryType   EntryType
}

// NewInstallment creates a new installment. The paid-status/payment-date
// coupling is checked by the owning account, not here.
func NewInstallment(number int, amount decimal.Decimal, dueDate time.Time, status AccountStatus, entryType EntryType, paymentDate *time.Time) shared.DomainResult[Installment] {
	if number <= 0 {
		return shared.Fail[Installment]("O número da parcela deve ser maior que zero")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.Fail[Installment]("O valor da parcela deve ser maior que zero")
	}
	if !status.IsValid() {
		return shared.Fail[Installment]("O status informado é inválido")
	}
	if !entryType.IsValid() {
		return shared.Fail[Installment]("O tipo de lançamento informado é inválido")
	}
	if paymentDate != nil && paymentDate.After(time.Now()) {
		return shared.Fail[Installment]("A data de pagamento não pode estar no futuro")
	}

	return shared.Ok(Installment{
		Number:      number,
		Amount:      amount,
		DueDate:     dueDate,
		Status:      status,
		PaymentDate: paymentDate,
		EntryType:   entryType,
	})
}

// ChangeStatus updates the installment status and payment date. Only the
// future-date rule is re-checked; transitions between statuses are free.
func (i *Installment) ChangeStatus(status AccountStatus, paymentDate *time.Time) shared.Result {
	if !status.IsValid() {
		return shared.FailResult("O status informado é inválido")
	}
	if paymentDate != nil && paymentDate.After(time.Now()) {
		return shared.FailResult("A data de pagamento não pode estar no futuro")
	}
	i.Status = status
	i.PaymentDate = paymentDate
	return shared.OkResult()
}

// IsPaid reports whether the installment has been settled
func (i Installment) IsPaid() bool {
	return i.Status == AccountStatusPaid || i.Status == AccountStatusReceived
}

// IsOverdue reports whether the installment is unsettled past its due date
func (i Installment) IsOverdue() bool {
	return !i.IsPaid() && i.DueDate.Before(time.Now())
}

// Equals compares installments structurally over number, amount, due date,
// status and entry type.
func (i Installment) Equals(other Installment) bool {
	return i.Number == other.Number &&
		i.Amount.Equal(other.Amount) &&
		i.DueDate.Equal(other.DueDate) &&
		i.Status == other.Status &&
		i.EntryType == other.EntryType
}

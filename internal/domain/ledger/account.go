package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// AccountStatus is the settlement state shared by accounts and installments
type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusPaid      AccountStatus = "paid"
	AccountStatusReceived  AccountStatus = "received"
	AccountStatusCancelled AccountStatus = "cancelled"
)

// IsValid checks if the status is a valid AccountStatus
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusPaid, AccountStatusReceived, AccountStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of AccountStatus
func (s AccountStatus) String() string {
	return string(s)
}

// PaymentMethod is the means of settlement for an account
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodBankSlip     PaymentMethod = "bank_slip"
	PaymentMethodCheck        PaymentMethod = "check"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCreditCard,
		PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodBankSlip, PaymentMethodCheck:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Account holds the fields shared by payables and receivables. It is
// embedded by value in the two concrete aggregates. Identity, tenant,
// issue date and related party never change after construction.
type Account struct {
	shared.TenantAggregateRoot
	Description    string
	Amount         decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	Status         AccountStatus
	PayMethod      PaymentMethod
	RelatedPartyID uuid.UUID
	RelatedParty   *party.Person
	installments   []Installment
}

// newAccount validates and builds the shared account core. Rules run in
// order and the first violation wins. A nil related party is a programming
// error and panics; everything else is an expected failure.
func newAccount(tenantID uuid.UUID, description string, amount decimal.Decimal, issueDate, dueDate time.Time, status AccountStatus, relatedParty *party.Person, payMethod PaymentMethod) (Account, shared.Result) {
	description = strings.TrimSpace(description)

	if tenantID == uuid.Nil {
		return Account{}, shared.FailResult("O identificador do locatário é obrigatório")
	}
	if description == "" {
		return Account{}, shared.FailResult("A descrição é obrigatória")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Account{}, shared.FailResult("O valor deve ser maior que zero")
	}
	if issueDate.After(dueDate) {
		return Account{}, shared.FailResult("A data de emissão não pode ser posterior à data de vencimento")
	}
	if relatedParty == nil {
		panic("ledger: related party must not be nil")
	}
	if relatedParty.TenantID != tenantID {
		return Account{}, shared.FailResult("A pessoa relacionada deve pertencer ao mesmo locatário da conta")
	}
	if !status.IsValid() {
		return Account{}, shared.FailResult("O status informado é inválido")
	}
	if !payMethod.IsValid() {
		return Account{}, shared.FailResult("A forma de pagamento informada é inválida")
	}

	return Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Description:         description,
		Amount:              amount,
		IssueDate:           issueDate,
		DueDate:             dueDate,
		Status:              status,
		PayMethod:           payMethod,
		RelatedPartyID:      relatedParty.ID,
		RelatedParty:        relatedParty,
	}, shared.OkResult()
}

// Installments returns a snapshot of the installment collection in
// insertion order. Mutation happens only through AddInstallment.
func (a *Account) Installments() []Installment {
	out := make([]Installment, len(a.installments))
	copy(out, a.installments)
	return out
}

// InstallmentCount returns the number of installments
func (a *Account) InstallmentCount() int {
	return len(a.installments)
}

// addInstallment appends an installment after checking account-level
// consistency. Due date boundaries are inclusive on both ends.
func (a *Account) addInstallment(installment *Installment) shared.Result {
	if installment == nil {
		return shared.FailResult("A parcela é obrigatória")
	}
	for _, existing := range a.installments {
		if existing.Number == installment.Number {
			return shared.FailResultf("Já existe uma parcela com o número %d", installment.Number)
		}
	}
	if installment.DueDate.Before(a.IssueDate) {
		return shared.FailResult("O vencimento da parcela não pode ser anterior à data de emissão da conta")
	}
	if installment.DueDate.After(a.DueDate) {
		return shared.FailResult("O vencimento da parcela não pode ser posterior à data de vencimento da conta")
	}

	a.installments = append(a.installments, *installment)
	a.touch()
	return shared.OkResult()
}

// ChangeStatus updates the account status. No transition graph is
// enforced; settlement dates are coupled at the concrete aggregates.
func (a *Account) ChangeStatus(status AccountStatus) shared.Result {
	if !status.IsValid() {
		return shared.FailResult("O status informado é inválido")
	}
	a.Status = status
	a.touch()
	return shared.OkResult()
}

// ChangeDescription updates the account description
func (a *Account) ChangeDescription(description string) shared.Result {
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.FailResult("A descrição é obrigatória")
	}
	a.Description = description
	a.touch()
	return shared.OkResult()
}

// ChangePaymentMethod updates the payment method
func (a *Account) ChangePaymentMethod(method PaymentMethod) shared.Result {
	if !method.IsValid() {
		return shared.FailResult("A forma de pagamento informada é inválida")
	}
	a.PayMethod = method
	a.touch()
	return shared.OkResult()
}

// ChangeDueDate updates the due date, keeping issue/due ordering
func (a *Account) ChangeDueDate(dueDate time.Time) shared.Result {
	if a.IssueDate.After(dueDate) {
		return shared.FailResult("A data de emissão não pode ser posterior à data de vencimento")
	}
	a.DueDate = dueDate
	a.touch()
	return shared.OkResult()
}

// IsOverdue reports whether the account is unsettled past its due date
func (a *Account) IsOverdue() bool {
	if a.Status != AccountStatusPending {
		return false
	}
	return a.DueDate.Before(time.Now())
}

func (a *Account) touch() {
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// restoreInstallments replaces the collection when rehydrating from
// persistence. Not part of the aggregate's public surface.
func (a *Account) restoreInstallments(installments []Installment) {
	a.installments = installments
}

// RestoreInstallments rehydrates the installment collection from storage,
// bypassing the add-time invariants that were already enforced on write.
func RestoreInstallments(a *Account, installments []Installment) {
	a.restoreInstallments(installments)
}

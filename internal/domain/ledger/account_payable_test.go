package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerhub/backend/internal/domain/party"
)

func newTestParty(t *testing.T, tenantID uuid.UUID) *party.Person {
	t.Helper()
	result := party.NewLegalPerson(tenantID, "Imobiliária Central", "Imobiliária Central Ltda", "12.345.678/0001-00", "contato@central.com", "1133334444")
	require.True(t, result.IsSuccess())
	return &result.Value().Person
}

func TestNewAccountPayable(t *testing.T) {
	tenantID := uuid.New()
	supplier := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("creates a pending payable", func(t *testing.T) {
		result := NewAccountPayable(tenantID, "Aluguel de janeiro", decimal.NewFromInt(1500),
			issueDate, dueDate, AccountStatusPending, supplier, PaymentMethodBankSlip, nil)
		require.True(t, result.IsSuccess())

		payable := result.Value()
		assert.Equal(t, "Aluguel de janeiro", payable.Description)
		assert.True(t, payable.Amount.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, AccountStatusPending, payable.Status)
		assert.Equal(t, supplier.ID, payable.RelatedPartyID)
		assert.Nil(t, payable.PaymentDate)
		assert.Zero(t, payable.InstallmentCount())
	})

	t.Run("records a created event", func(t *testing.T) {
		result := NewAccountPayable(tenantID, "Energia", decimal.NewFromInt(320),
			issueDate, dueDate, AccountStatusPending, supplier, PaymentMethodPix, nil)
		require.True(t, result.IsSuccess())

		events := result.Value().GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "AccountPayableCreated", events[0].EventType())
	})

	t.Run("accepts a paid account with a past payment date", func(t *testing.T) {
		paidAt := time.Now().Add(-48 * time.Hour)
		result := NewAccountPayable(tenantID, "Internet", decimal.NewFromInt(99),
			issueDate, dueDate, AccountStatusPaid, supplier, PaymentMethodCreditCard, &paidAt)
		require.True(t, result.IsSuccess())
		require.NotNil(t, result.Value().PaymentDate)
	})

	t.Run("rejects a payment date on an unpaid account", func(t *testing.T) {
		paidAt := time.Now().Add(-time.Hour)
		result := NewAccountPayable(tenantID, "Internet", decimal.NewFromInt(99),
			issueDate, dueDate, AccountStatusPending, supplier, PaymentMethodCreditCard, &paidAt)
		require.True(t, result.IsFailure())
		assert.Equal(t, "A data de pagamento só pode ser informada quando a conta estiver paga", result.FailureMessage())
	})

	t.Run("rejects a future payment date", func(t *testing.T) {
		paidAt := time.Now().Add(24 * time.Hour)
		result := NewAccountPayable(tenantID, "Internet", decimal.NewFromInt(99),
			issueDate, dueDate, AccountStatusPaid, supplier, PaymentMethodCreditCard, &paidAt)
		require.True(t, result.IsFailure())
		assert.Contains(t, result.FailureMessage(), "futuro")
	})

	t.Run("panics on a nil related party", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAccountPayable(tenantID, "Energia", decimal.NewFromInt(100),
				issueDate, dueDate, AccountStatusPending, nil, PaymentMethodCash, nil)
		})
	})

	t.Run("rejects a related party from another tenant", func(t *testing.T) {
		stranger := newTestParty(t, uuid.New())
		result := NewAccountPayable(tenantID, "Energia", decimal.NewFromInt(100),
			issueDate, dueDate, AccountStatusPending, stranger, PaymentMethodCash, nil)
		require.True(t, result.IsFailure())
		assert.Equal(t, "A pessoa relacionada deve pertencer ao mesmo locatário da conta", result.FailureMessage())
	})

	tests := []struct {
		name        string
		description string
		amount      decimal.Decimal
		issueDate   time.Time
		dueDate     time.Time
		status      AccountStatus
		payMethod   PaymentMethod
		wantMessage string
	}{
		{"blank description", "   ", decimal.NewFromInt(100), issueDate, dueDate, AccountStatusPending, PaymentMethodCash, "A descrição é obrigatória"},
		{"zero amount", "Energia", decimal.Zero, issueDate, dueDate, AccountStatusPending, PaymentMethodCash, "O valor deve ser maior que zero"},
		{"negative amount", "Energia", decimal.NewFromInt(-10), issueDate, dueDate, AccountStatusPending, PaymentMethodCash, "O valor deve ser maior que zero"},
		{"issue after due", "Energia", decimal.NewFromInt(100), dueDate, issueDate, AccountStatusPending, PaymentMethodCash, "A data de emissão não pode ser posterior à data de vencimento"},
		{"invalid status", "Energia", decimal.NewFromInt(100), issueDate, dueDate, AccountStatus("limbo"), PaymentMethodCash, "O status informado é inválido"},
		{"invalid payment method", "Energia", decimal.NewFromInt(100), issueDate, dueDate, AccountStatusPending, PaymentMethod("barter"), "A forma de pagamento informada é inválida"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewAccountPayable(tenantID, tt.description, tt.amount, tt.issueDate, tt.dueDate, tt.status, supplier, tt.payMethod, nil)
			require.True(t, result.IsFailure())
			assert.Equal(t, tt.wantMessage, result.FailureMessage())
		})
	}
}

func TestAccountPayableAddInstallment(t *testing.T) {
	tenantID := uuid.New()
	supplier := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	newPayable := func(t *testing.T) *AccountPayable {
		t.Helper()
		result := NewAccountPayable(tenantID, "Compra parcelada", decimal.NewFromInt(3000),
			issueDate, dueDate, AccountStatusPending, supplier, PaymentMethodCreditCard, nil)
		require.True(t, result.IsSuccess())
		payable := result.Value()
		payable.ClearDomainEvents()
		return payable
	}

	mustInstallment := func(t *testing.T, number int, dueDate time.Time) Installment {
		t.Helper()
		result := NewInstallment(number, decimal.NewFromInt(1000), dueDate, AccountStatusPending, EntryTypeDebit, nil)
		require.True(t, result.IsSuccess())
		return result.Value()
	}

	t.Run("appends installments in order", func(t *testing.T) {
		payable := newPayable(t)
		first := mustInstallment(t, 1, issueDate.AddDate(0, 1, 0))
		second := mustInstallment(t, 2, issueDate.AddDate(0, 2, 0))

		require.True(t, payable.AddInstallment(&first).IsSuccess())
		require.True(t, payable.AddInstallment(&second).IsSuccess())

		installments := payable.Installments()
		require.Len(t, installments, 2)
		assert.Equal(t, 1, installments[0].Number)
		assert.Equal(t, 2, installments[1].Number)

		events := payable.GetDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "PayableInstallmentAdded", events[0].EventType())
	})

	t.Run("rejects a duplicate number and keeps the first entry", func(t *testing.T) {
		payable := newPayable(t)
		first := mustInstallment(t, 1, issueDate.AddDate(0, 1, 0))
		require.True(t, payable.AddInstallment(&first).IsSuccess())

		duplicate := mustInstallment(t, 1, issueDate.AddDate(0, 2, 0))
		res := payable.AddInstallment(&duplicate)
		require.True(t, res.IsFailure())
		assert.Equal(t, "Já existe uma parcela com o número 1", res.FailureMessage())

		installments := payable.Installments()
		require.Len(t, installments, 1)
		assert.True(t, installments[0].DueDate.Equal(issueDate.AddDate(0, 1, 0)))
	})

	t.Run("due date boundaries are inclusive", func(t *testing.T) {
		payable := newPayable(t)
		onIssue := mustInstallment(t, 1, issueDate)
		onDue := mustInstallment(t, 2, dueDate)

		assert.True(t, payable.AddInstallment(&onIssue).IsSuccess())
		assert.True(t, payable.AddInstallment(&onDue).IsSuccess())
	})

	t.Run("rejects a due date before the account issue date", func(t *testing.T) {
		payable := newPayable(t)
		early := mustInstallment(t, 1, issueDate.AddDate(0, 0, -1))

		res := payable.AddInstallment(&early)
		require.True(t, res.IsFailure())
		assert.Equal(t, "O vencimento da parcela não pode ser anterior à data de emissão da conta", res.FailureMessage())
	})

	t.Run("rejects a due date after the account due date", func(t *testing.T) {
		payable := newPayable(t)
		late := mustInstallment(t, 1, dueDate.AddDate(0, 0, 1))

		res := payable.AddInstallment(&late)
		require.True(t, res.IsFailure())
		assert.Equal(t, "O vencimento da parcela não pode ser posterior à data de vencimento da conta", res.FailureMessage())
	})

	t.Run("rejects a nil installment", func(t *testing.T) {
		payable := newPayable(t)
		res := payable.AddInstallment(nil)
		require.True(t, res.IsFailure())
		assert.Equal(t, "A parcela é obrigatória", res.FailureMessage())
	})

	t.Run("snapshot is detached from the aggregate", func(t *testing.T) {
		payable := newPayable(t)
		first := mustInstallment(t, 1, issueDate.AddDate(0, 1, 0))
		require.True(t, payable.AddInstallment(&first).IsSuccess())

		snapshot := payable.Installments()
		snapshot[0].Number = 99
		assert.Equal(t, 1, payable.Installments()[0].Number)
	})
}

func TestAccountPayableSettlement(t *testing.T) {
	tenantID := uuid.New()
	supplier := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	newPayable := func(t *testing.T) *AccountPayable {
		t.Helper()
		result := NewAccountPayable(tenantID, "Aluguel", decimal.NewFromInt(1500),
			issueDate, dueDate, AccountStatusPending, supplier, PaymentMethodBankSlip, nil)
		require.True(t, result.IsSuccess())
		payable := result.Value()
		payable.ClearDomainEvents()
		return payable
	}

	t.Run("register payment settles the account", func(t *testing.T) {
		payable := newPayable(t)
		paidAt := time.Now().Add(-time.Hour)

		res := payable.RegisterPayment(paidAt)
		require.True(t, res.IsSuccess())
		assert.Equal(t, AccountStatusPaid, payable.Status)
		require.NotNil(t, payable.PaymentDate)
		assert.True(t, payable.PaymentDate.Equal(paidAt))

		events := payable.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "AccountPayablePaid", events[0].EventType())
	})

	t.Run("register payment rejects a future date", func(t *testing.T) {
		payable := newPayable(t)
		res := payable.RegisterPayment(time.Now().Add(time.Hour))
		require.True(t, res.IsFailure())
		assert.Contains(t, res.FailureMessage(), "futuro")
		assert.Equal(t, AccountStatusPending, payable.Status)
		assert.Nil(t, payable.PaymentDate)
	})

	t.Run("reopen clears the payment date", func(t *testing.T) {
		payable := newPayable(t)
		require.True(t, payable.RegisterPayment(time.Now().Add(-time.Hour)).IsSuccess())

		res := payable.ReopenPayment()
		require.True(t, res.IsSuccess())
		assert.Equal(t, AccountStatusPending, payable.Status)
		assert.Nil(t, payable.PaymentDate)
	})
}

func TestAccountPayableIsOverdue(t *testing.T) {
	tenantID := uuid.New()
	supplier := newTestParty(t, tenantID)

	t.Run("pending past due is overdue", func(t *testing.T) {
		result := NewAccountPayable(tenantID, "Atrasada", decimal.NewFromInt(100),
			time.Now().AddDate(0, -2, 0), time.Now().AddDate(0, -1, 0),
			AccountStatusPending, supplier, PaymentMethodCash, nil)
		require.True(t, result.IsSuccess())
		assert.True(t, result.Value().IsOverdue())
	})

	t.Run("paid past due is not overdue", func(t *testing.T) {
		paidAt := time.Now().Add(-time.Hour)
		result := NewAccountPayable(tenantID, "Quitada", decimal.NewFromInt(100),
			time.Now().AddDate(0, -2, 0), time.Now().AddDate(0, -1, 0),
			AccountStatusPaid, supplier, PaymentMethodCash, &paidAt)
		require.True(t, result.IsSuccess())
		assert.False(t, result.Value().IsOverdue())
	})
}

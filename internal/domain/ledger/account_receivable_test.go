package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountReceivable(t *testing.T) {
	tenantID := uuid.New()
	customer := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates a pending receivable with an invoice", func(t *testing.T) {
		result := NewAccountReceivable(tenantID, "Venda de serviços", decimal.NewFromInt(2500),
			issueDate, dueDate, AccountStatusPending, customer, PaymentMethodPix, "NF-2026-0001", nil)
		require.True(t, result.IsSuccess())

		receivable := result.Value()
		assert.Equal(t, "NF-2026-0001", receivable.InvoiceNumber)
		assert.Nil(t, receivable.ReceivedDate)

		events := receivable.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "AccountReceivableCreated", events[0].EventType())
	})

	t.Run("trims the invoice number", func(t *testing.T) {
		result := NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(100),
			issueDate, dueDate, AccountStatusPending, customer, PaymentMethodPix, "  NF-42  ", nil)
		require.True(t, result.IsSuccess())
		assert.Equal(t, "NF-42", result.Value().InvoiceNumber)
	})

	t.Run("requires the invoice number", func(t *testing.T) {
		result := NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(100),
			issueDate, dueDate, AccountStatusPending, customer, PaymentMethodPix, "   ", nil)
		require.True(t, result.IsFailure())
		assert.Equal(t, "O número da nota fiscal é obrigatório", result.FailureMessage())
	})

	t.Run("rejects a received date on an unreceived account", func(t *testing.T) {
		receivedAt := time.Now().Add(-time.Hour)
		result := NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(100),
			issueDate, dueDate, AccountStatusPending, customer, PaymentMethodPix, "NF-1", &receivedAt)
		require.True(t, result.IsFailure())
		assert.Equal(t, "A data de recebimento só pode ser informada quando a conta estiver recebida", result.FailureMessage())
	})

	t.Run("rejects a future received date", func(t *testing.T) {
		receivedAt := time.Now().Add(24 * time.Hour)
		result := NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(100),
			issueDate, dueDate, AccountStatusReceived, customer, PaymentMethodPix, "NF-1", &receivedAt)
		require.True(t, result.IsFailure())
		assert.Contains(t, result.FailureMessage(), "futuro")
	})

	t.Run("panics on a nil related party", func(t *testing.T) {
		assert.Panics(t, func() {
			NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(100),
				issueDate, dueDate, AccountStatusPending, nil, PaymentMethodPix, "NF-1", nil)
		})
	})
}

func TestAccountReceivableSettlement(t *testing.T) {
	tenantID := uuid.New()
	customer := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	newReceivable := func(t *testing.T) *AccountReceivable {
		t.Helper()
		result := NewAccountReceivable(tenantID, "Venda", decimal.NewFromInt(2500),
			issueDate, dueDate, AccountStatusPending, customer, PaymentMethodPix, "NF-2026-0001", nil)
		require.True(t, result.IsSuccess())
		receivable := result.Value()
		receivable.ClearDomainEvents()
		return receivable
	}

	t.Run("register receipt settles the account", func(t *testing.T) {
		receivable := newReceivable(t)
		receivedAt := time.Now().Add(-time.Hour)

		res := receivable.RegisterReceipt(receivedAt)
		require.True(t, res.IsSuccess())
		assert.Equal(t, AccountStatusReceived, receivable.Status)
		require.NotNil(t, receivable.ReceivedDate)

		events := receivable.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "AccountReceivableReceived", events[0].EventType())
	})

	t.Run("register receipt rejects a future date", func(t *testing.T) {
		receivable := newReceivable(t)
		res := receivable.RegisterReceipt(time.Now().Add(time.Hour))
		require.True(t, res.IsFailure())
		assert.Contains(t, res.FailureMessage(), "futuro")
		assert.Nil(t, receivable.ReceivedDate)
	})

	t.Run("reopen clears the received date", func(t *testing.T) {
		receivable := newReceivable(t)
		require.True(t, receivable.RegisterReceipt(time.Now().Add(-time.Hour)).IsSuccess())

		res := receivable.ReopenReceipt()
		require.True(t, res.IsSuccess())
		assert.Equal(t, AccountStatusPending, receivable.Status)
		assert.Nil(t, receivable.ReceivedDate)
	})
}

func TestAccountReceivableInstallments(t *testing.T) {
	tenantID := uuid.New()
	customer := newTestParty(t, tenantID)
	issueDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	result := NewAccountReceivable(tenantID, "Venda parcelada", decimal.NewFromInt(3000),
		issueDate, dueDate, AccountStatusPending, customer, PaymentMethodCreditCard, "NF-77", nil)
	require.True(t, result.IsSuccess())
	receivable := result.Value()
	receivable.ClearDomainEvents()

	instResult := NewInstallment(1, decimal.NewFromInt(1000), issueDate.AddDate(0, 1, 0), AccountStatusPending, EntryTypeCredit, nil)
	require.True(t, instResult.IsSuccess())
	installment := instResult.Value()

	require.True(t, receivable.AddInstallment(&installment).IsSuccess())
	require.Len(t, receivable.Installments(), 1)
	assert.Equal(t, EntryTypeCredit, receivable.Installments()[0].EntryType)

	events := receivable.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "ReceivableInstallmentAdded", events[0].EventType())
}

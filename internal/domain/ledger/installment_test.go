package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstallment(t *testing.T) {
	dueDate := time.Now().AddDate(0, 1, 0)

	t.Run("creates a valid installment", func(t *testing.T) {
		result := NewInstallment(1, decimal.NewFromInt(500), dueDate, AccountStatusPending, EntryTypeDebit, nil)
		require.True(t, result.IsSuccess())

		inst := result.Value()
		assert.Equal(t, 1, inst.Number)
		assert.True(t, inst.Amount.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, EntryTypeDebit, inst.EntryType)
		assert.Nil(t, inst.PaymentDate)
	})

	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name        string
		number      int
		amount      decimal.Decimal
		status      AccountStatus
		entryType   EntryType
		paymentDate *time.Time
		wantMessage string
	}{
		{"zero number", 0, decimal.NewFromInt(10), AccountStatusPending, EntryTypeDebit, nil, "O número da parcela deve ser maior que zero"},
		{"negative number", -1, decimal.NewFromInt(10), AccountStatusPending, EntryTypeDebit, nil, "O número da parcela deve ser maior que zero"},
		{"zero amount", 1, decimal.Zero, AccountStatusPending, EntryTypeDebit, nil, "O valor da parcela deve ser maior que zero"},
		{"negative amount", 1, decimal.NewFromInt(-5), AccountStatusPending, EntryTypeCredit, nil, "O valor da parcela deve ser maior que zero"},
		{"invalid status", 1, decimal.NewFromInt(10), AccountStatus("bogus"), EntryTypeDebit, nil, "O status informado é inválido"},
		{"invalid entry type", 1, decimal.NewFromInt(10), AccountStatusPending, EntryType("sideways"), nil, "O tipo de lançamento informado é inválido"},
		{"future payment date", 1, decimal.NewFromInt(10), AccountStatusPaid, EntryTypeDebit, &future, "A data de pagamento não pode estar no futuro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewInstallment(tt.number, tt.amount, dueDate, tt.status, tt.entryType, tt.paymentDate)
			require.True(t, result.IsFailure())
			assert.Equal(t, tt.wantMessage, result.FailureMessage())
		})
	}
}

func TestInstallmentChangeStatus(t *testing.T) {
	newInstallment := func(t *testing.T) Installment {
		t.Helper()
		result := NewInstallment(1, decimal.NewFromInt(100), time.Now().AddDate(0, 1, 0), AccountStatusPending, EntryTypeCredit, nil)
		require.True(t, result.IsSuccess())
		return result.Value()
	}

	t.Run("settles with a past payment date", func(t *testing.T) {
		inst := newInstallment(t)
		paidAt := time.Now().Add(-time.Hour)

		res := inst.ChangeStatus(AccountStatusReceived, &paidAt)
		require.True(t, res.IsSuccess())
		assert.Equal(t, AccountStatusReceived, inst.Status)
		require.NotNil(t, inst.PaymentDate)
		assert.True(t, inst.IsPaid())
	})

	t.Run("rejects a future payment date", func(t *testing.T) {
		inst := newInstallment(t)
		future := time.Now().Add(time.Hour)

		res := inst.ChangeStatus(AccountStatusPaid, &future)
		require.True(t, res.IsFailure())
		assert.Contains(t, res.FailureMessage(), "futuro")
		assert.Equal(t, AccountStatusPending, inst.Status)
	})
}

func TestInstallmentIsOverdue(t *testing.T) {
	past := time.Now().AddDate(0, 0, -3)
	future := time.Now().AddDate(0, 0, 3)

	tests := []struct {
		name    string
		dueDate time.Time
		status  AccountStatus
		want    bool
	}{
		{"pending past due", past, AccountStatusPending, true},
		{"pending not yet due", future, AccountStatusPending, false},
		{"paid past due", past, AccountStatusPaid, false},
		{"received past due", past, AccountStatusReceived, false},
		{"cancelled past due", past, AccountStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := Installment{Number: 1, Amount: decimal.NewFromInt(10), DueDate: tt.dueDate, Status: tt.status, EntryType: EntryTypeDebit}
			assert.Equal(t, tt.want, inst.IsOverdue())
		})
	}
}

func TestInstallmentEquals(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	base := Installment{Number: 1, Amount: decimal.NewFromInt(100), DueDate: due, Status: AccountStatusPending, EntryType: EntryTypeDebit}

	t.Run("equal on the five structural fields", func(t *testing.T) {
		paidAt := time.Now()
		other := base
		other.PaymentDate = &paidAt
		assert.True(t, base.Equals(other))
	})

	t.Run("different amount", func(t *testing.T) {
		other := base
		other.Amount = decimal.NewFromInt(200)
		assert.False(t, base.Equals(other))
	})

	t.Run("different entry type", func(t *testing.T) {
		other := base
		other.EntryType = EntryTypeCredit
		assert.False(t, base.Equals(other))
	})
}

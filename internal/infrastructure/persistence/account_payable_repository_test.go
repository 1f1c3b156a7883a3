package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

func TestGormAccountPayableRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountPayableRepository(db)
	personRepo := NewGormPersonRepository(db)
	tenantID := uuid.New()

	supplier := newTestCompany(t, tenantID, "Fornecedora")
	require.NoError(t, personRepo.SaveLegal(ctx, supplier))

	t.Run("round-trips a payable with its schedule", func(t *testing.T) {
		dueDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		payable := newTestPayable(t, tenantID, &supplier.Person, "Aluguel", dueDate)

		instResult := ledger.NewInstallment(1, decimal.NewFromInt(750), dueDate.AddDate(0, 0, -15), ledger.AccountStatusPending, ledger.EntryTypeDebit, nil)
		require.True(t, instResult.IsSuccess())
		installment := instResult.Value()
		require.True(t, payable.AddInstallment(&installment).IsSuccess())

		require.NoError(t, repo.Save(ctx, payable))

		found, err := repo.FindByIDForTenant(ctx, tenantID, payable.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Aluguel", found.Description)
		assert.True(t, found.Amount.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, supplier.ID, found.RelatedPartyID)

		installments := found.Installments()
		require.Len(t, installments, 1)
		assert.Equal(t, 1, installments[0].Number)
		assert.True(t, installments[0].Amount.Equal(decimal.NewFromInt(750)))
		assert.Equal(t, ledger.EntryTypeDebit, installments[0].EntryType)
	})

	t.Run("missing payable is nil not error", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("save persists settlement changes", func(t *testing.T) {
		payable := newTestPayable(t, tenantID, &supplier.Person, "Energia", time.Now().AddDate(0, 1, 0))
		require.NoError(t, repo.Save(ctx, payable))

		require.True(t, payable.RegisterPayment(time.Now().Add(-time.Hour)).IsSuccess())
		require.NoError(t, repo.Save(ctx, payable))

		found, err := repo.FindByIDForTenant(ctx, tenantID, payable.ID)
		require.NoError(t, err)
		assert.Equal(t, ledger.AccountStatusPaid, found.Status)
		require.NotNil(t, found.PaymentDate)
	})
}

func TestGormAccountPayableRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountPayableRepository(db)
	tenantID := uuid.New()

	supplier := newTestCompany(t, tenantID, "Fornecedora")
	require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, supplier))

	overdue := newTestPayable(t, tenantID, &supplier.Person, "Atrasada", time.Now().AddDate(0, -1, 0))
	upcoming := newTestPayable(t, tenantID, &supplier.Person, "Futura", time.Now().AddDate(0, 1, 0))
	paid := newTestPayable(t, tenantID, &supplier.Person, "Quitada", time.Now().AddDate(0, -1, 0))
	require.True(t, paid.RegisterPayment(time.Now().Add(-time.Hour)).IsSuccess())

	for _, p := range []*ledger.AccountPayable{overdue, upcoming, paid} {
		require.NoError(t, repo.Save(ctx, p))
	}

	t.Run("filters by status", func(t *testing.T) {
		status := ledger.AccountStatusPaid
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountPayableFilter{Status: &status})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Quitada", found[0].Description)
	})

	t.Run("filters overdue accounts", func(t *testing.T) {
		flag := true
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountPayableFilter{Overdue: &flag})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Atrasada", found[0].Description)
	})

	t.Run("filters by due date range", func(t *testing.T) {
		from := time.Now()
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountPayableFilter{DueFrom: &from})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Futura", found[0].Description)
	})

	t.Run("filters by related party", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountPayableFilter{RelatedPartyID: &supplier.ID})
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("searches the description", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountPayableFilter{
			Filter: shared.Filter{Search: "Futura"},
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
	})

	t.Run("counts with the same filters", func(t *testing.T) {
		status := ledger.AccountStatusPending
		count, err := repo.CountForTenant(ctx, tenantID, ledger.AccountPayableFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormAccountPayableRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountPayableRepository(db)
	tenantID := uuid.New()

	supplier := newTestCompany(t, tenantID, "Fornecedora")
	require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, supplier))

	payable := newTestPayable(t, tenantID, &supplier.Person, "Temp", time.Now().AddDate(0, 1, 0))
	require.NoError(t, repo.Save(ctx, payable))

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, payable.ID))
	assert.ErrorIs(t, repo.DeleteForTenant(ctx, tenantID, payable.ID), shared.ErrNotFound)
}

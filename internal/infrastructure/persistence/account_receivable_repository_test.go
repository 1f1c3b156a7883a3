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

func TestGormAccountReceivableRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountReceivableRepository(db)
	tenantID := uuid.New()

	customer := newTestCompany(t, tenantID, "Cliente")
	require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, customer))

	t.Run("round-trips a receivable", func(t *testing.T) {
		dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		receivable := newTestReceivable(t, tenantID, &customer.Person, "NF-0001", dueDate)

		instResult := ledger.NewInstallment(1, decimal.NewFromInt(1250), dueDate.AddDate(0, 0, -10), ledger.AccountStatusPending, ledger.EntryTypeCredit, nil)
		require.True(t, instResult.IsSuccess())
		installment := instResult.Value()
		require.True(t, receivable.AddInstallment(&installment).IsSuccess())

		require.NoError(t, repo.Save(ctx, receivable))

		found, err := repo.FindByIDForTenant(ctx, tenantID, receivable.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "NF-0001", found.InvoiceNumber)

		installments := found.Installments()
		require.Len(t, installments, 1)
		assert.Equal(t, ledger.EntryTypeCredit, installments[0].EntryType)
	})

	t.Run("finds by invoice number inside the tenant", func(t *testing.T) {
		receivable := newTestReceivable(t, tenantID, &customer.Person, "NF-0002", time.Now().AddDate(0, 1, 0))
		require.NoError(t, repo.Save(ctx, receivable))

		found, err := repo.FindByInvoiceNumber(ctx, tenantID, "NF-0002")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, receivable.ID, found.ID)

		other, err := repo.FindByInvoiceNumber(ctx, uuid.New(), "NF-0002")
		require.NoError(t, err)
		assert.Nil(t, other)
	})

	t.Run("duplicate invoice in the same tenant is rejected", func(t *testing.T) {
		first := newTestReceivable(t, tenantID, &customer.Person, "NF-0003", time.Now().AddDate(0, 1, 0))
		require.NoError(t, repo.Save(ctx, first))

		duplicate := newTestReceivable(t, tenantID, &customer.Person, "NF-0003", time.Now().AddDate(0, 2, 0))
		err := repo.Save(ctx, duplicate)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("same invoice in another tenant is allowed", func(t *testing.T) {
		otherTenant := uuid.New()
		otherCustomer := newTestCompany(t, otherTenant, "OutroCliente")
		require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, otherCustomer))

		first := newTestReceivable(t, tenantID, &customer.Person, "NF-0004", time.Now().AddDate(0, 1, 0))
		require.NoError(t, repo.Save(ctx, first))

		second := newTestReceivable(t, otherTenant, &otherCustomer.Person, "NF-0004", time.Now().AddDate(0, 1, 0))
		require.NoError(t, repo.Save(ctx, second))
	})
}

func TestGormAccountReceivableRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountReceivableRepository(db)
	tenantID := uuid.New()

	customer := newTestCompany(t, tenantID, "Cliente")
	require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, customer))

	first := newTestReceivable(t, tenantID, &customer.Person, "NF-1001", time.Now().AddDate(0, 1, 0))
	second := newTestReceivable(t, tenantID, &customer.Person, "NF-1002", time.Now().AddDate(0, 2, 0))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("search matches the invoice number", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountReceivableFilter{
			Filter: shared.Filter{Search: "NF-1002"},
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "NF-1002", found[0].InvoiceNumber)
	})

	t.Run("default order is by due date", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, ledger.AccountReceivableFilter{})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "NF-1002", found[0].InvoiceNumber)
	})

	t.Run("count respects the tenant", func(t *testing.T) {
		count, err := repo.CountForTenant(ctx, uuid.New(), ledger.AccountReceivableFilter{})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestGormAccountReceivableRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormAccountReceivableRepository(db)
	tenantID := uuid.New()

	customer := newTestCompany(t, tenantID, "Cliente")
	require.NoError(t, NewGormPersonRepository(db).SaveLegal(ctx, customer))

	receivable := newTestReceivable(t, tenantID, &customer.Person, "NF-2001", time.Now().AddDate(0, 1, 0))
	require.NoError(t, repo.Save(ctx, receivable))

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, receivable.ID))
	assert.ErrorIs(t, repo.DeleteForTenant(ctx, tenantID, receivable.ID), shared.ErrNotFound)
}

package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/party"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func newTestIndividual(t *testing.T, tenantID uuid.UUID, name string) *party.IndividualPerson {
	t.Helper()
	result := party.NewIndividualPerson(tenantID, name, "doc-"+name, name+"@example.com", "11999990000", party.MaritalStatusSingle)
	require.True(t, result.IsSuccess())
	return result.Value()
}

func newTestCompany(t *testing.T, tenantID uuid.UUID, name string) *party.LegalPerson {
	t.Helper()
	result := party.NewLegalPerson(tenantID, name, name+" Ltda", "cnpj-"+name, name+"@example.com", "1133334444")
	require.True(t, result.IsSuccess())
	return result.Value()
}

func newTestPayable(t *testing.T, tenantID uuid.UUID, relatedParty *party.Person, description string, dueDate time.Time) *ledger.AccountPayable {
	t.Helper()
	result := ledger.NewAccountPayable(tenantID, description, decimal.NewFromInt(1500),
		dueDate.AddDate(0, -1, 0), dueDate, ledger.AccountStatusPending, relatedParty, ledger.PaymentMethodBankSlip, nil)
	require.True(t, result.IsSuccess())
	return result.Value()
}

func newTestReceivable(t *testing.T, tenantID uuid.UUID, relatedParty *party.Person, invoice string, dueDate time.Time) *ledger.AccountReceivable {
	t.Helper()
	result := ledger.NewAccountReceivable(tenantID, "Venda "+invoice, decimal.NewFromInt(2500),
		dueDate.AddDate(0, -1, 0), dueDate, ledger.AccountStatusPending, relatedParty, ledger.PaymentMethodPix, invoice, nil)
	require.True(t, result.IsSuccess())
	return result.Value()
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/ledger"
)

// InstallmentRecord is the serialized form of one installment
type InstallmentRecord struct {
	Number      int             `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	EntryType   string          `json:"entry_type"`
}

// InstallmentRecords is stored as a JSONB column. Installments are value
// objects owned by the account, so the whole schedule is written and read
// as one document instead of a child table.
type InstallmentRecords []InstallmentRecord

// Value implements driver.Valuer
func (r InstallmentRecords) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (r *InstallmentRecords) Scan(value interface{}) error {
	if value == nil {
		*r = InstallmentRecords{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into InstallmentRecords", value)
	}
	return json.Unmarshal(data, r)
}

// ToDomain converts the records to domain installments
func (r InstallmentRecords) ToDomain() []ledger.Installment {
	installments := make([]ledger.Installment, len(r))
	for i, record := range r {
		installments[i] = ledger.Installment{
			Number:      record.Number,
			Amount:      record.Amount,
			DueDate:     record.DueDate,
			Status:      ledger.AccountStatus(record.Status),
			PaymentDate: record.PaymentDate,
			EntryType:   ledger.EntryType(record.EntryType),
		}
	}
	return installments
}

// InstallmentRecordsFromDomain converts domain installments to records
func InstallmentRecordsFromDomain(installments []ledger.Installment) InstallmentRecords {
	records := make(InstallmentRecords, len(installments))
	for i, inst := range installments {
		records[i] = InstallmentRecord{
			Number:      inst.Number,
			Amount:      inst.Amount,
			DueDate:     inst.DueDate,
			Status:      inst.Status.String(),
			PaymentDate: inst.PaymentDate,
			EntryType:   inst.EntryType.String(),
		}
	}
	return records
}

// AccountPayableModel is the persistence model for the AccountPayable aggregate root.
type AccountPayableModel struct {
	TenantAggregateModel
	Description    string               `gorm:"type:varchar(500);not null"`
	Amount         decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	IssueDate      time.Time            `gorm:"not null"`
	DueDate        time.Time            `gorm:"not null;index"`
	Status         ledger.AccountStatus `gorm:"type:varchar(20);not null;index"`
	PayMethod      ledger.PaymentMethod `gorm:"type:varchar(30);not null"`
	RelatedPartyID uuid.UUID            `gorm:"type:uuid;not null;index"`
	PaymentDate    *time.Time
	Installments   InstallmentRecords `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for GORM
func (AccountPayableModel) TableName() string {
	return "account_payables"
}

// ToDomain converts the persistence model to a domain AccountPayable
func (m *AccountPayableModel) ToDomain() *ledger.AccountPayable {
	ap := &ledger.AccountPayable{
		Account: ledger.Account{
			TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
			Description:         m.Description,
			Amount:              m.Amount,
			IssueDate:           m.IssueDate,
			DueDate:             m.DueDate,
			Status:              m.Status,
			PayMethod:           m.PayMethod,
			RelatedPartyID:      m.RelatedPartyID,
		},
		PaymentDate: m.PaymentDate,
	}
	ledger.RestoreInstallments(&ap.Account, m.Installments.ToDomain())
	return ap
}

// FromDomain populates the persistence model from a domain AccountPayable
func (m *AccountPayableModel) FromDomain(ap *ledger.AccountPayable) {
	m.FromDomainTenantAggregateRoot(ap.TenantAggregateRoot)
	m.Description = ap.Description
	m.Amount = ap.Amount
	m.IssueDate = ap.IssueDate
	m.DueDate = ap.DueDate
	m.Status = ap.Status
	m.PayMethod = ap.PayMethod
	m.RelatedPartyID = ap.RelatedPartyID
	m.PaymentDate = ap.PaymentDate
	m.Installments = InstallmentRecordsFromDomain(ap.Installments())
}

// AccountPayableModelFromDomain creates a new persistence model from a domain AccountPayable
func AccountPayableModelFromDomain(ap *ledger.AccountPayable) *AccountPayableModel {
	m := &AccountPayableModel{}
	m.FromDomain(ap)
	return m
}

// AccountReceivableModel is the persistence model for the AccountReceivable
// aggregate root. The invoice number is unique per tenant.
type AccountReceivableModel struct {
	TenantAggregateModel
	Description    string               `gorm:"type:varchar(500);not null"`
	Amount         decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	IssueDate      time.Time            `gorm:"not null"`
	DueDate        time.Time            `gorm:"not null;index"`
	Status         ledger.AccountStatus `gorm:"type:varchar(20);not null;index"`
	PayMethod      ledger.PaymentMethod `gorm:"type:varchar(30);not null"`
	RelatedPartyID uuid.UUID            `gorm:"type:uuid;not null;index"`
	InvoiceNumber  string               `gorm:"type:varchar(50);not null;index"`
	ReceivedDate   *time.Time
	Installments   InstallmentRecords `gorm:"type:jsonb;default:'[]'"`
}

// TableName returns the table name for GORM
func (AccountReceivableModel) TableName() string {
	return "account_receivables"
}

// ToDomain converts the persistence model to a domain AccountReceivable
func (m *AccountReceivableModel) ToDomain() *ledger.AccountReceivable {
	ar := &ledger.AccountReceivable{
		Account: ledger.Account{
			TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
			Description:         m.Description,
			Amount:              m.Amount,
			IssueDate:           m.IssueDate,
			DueDate:             m.DueDate,
			Status:              m.Status,
			PayMethod:           m.PayMethod,
			RelatedPartyID:      m.RelatedPartyID,
		},
		InvoiceNumber: m.InvoiceNumber,
		ReceivedDate:  m.ReceivedDate,
	}
	ledger.RestoreInstallments(&ar.Account, m.Installments.ToDomain())
	return ar
}

// FromDomain populates the persistence model from a domain AccountReceivable
func (m *AccountReceivableModel) FromDomain(ar *ledger.AccountReceivable) {
	m.FromDomainTenantAggregateRoot(ar.TenantAggregateRoot)
	m.Description = ar.Description
	m.Amount = ar.Amount
	m.IssueDate = ar.IssueDate
	m.DueDate = ar.DueDate
	m.Status = ar.Status
	m.PayMethod = ar.PayMethod
	m.RelatedPartyID = ar.RelatedPartyID
	m.InvoiceNumber = ar.InvoiceNumber
	m.ReceivedDate = ar.ReceivedDate
	m.Installments = InstallmentRecordsFromDomain(ar.Installments())
}

// AccountReceivableModelFromDomain creates a new persistence model from a domain AccountReceivable
func AccountReceivableModelFromDomain(ar *ledger.AccountReceivable) *AccountReceivableModel {
	m := &AccountReceivableModel{}
	m.FromDomain(ar)
	return m
}

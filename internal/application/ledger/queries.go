package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// GetAccountPayableQuery fetches one payable by ID
type GetAccountPayableQuery struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
}

// ListAccountPayablesQuery lists a tenant's payables with filtering
type ListAccountPayablesQuery struct {
	TenantID uuid.UUID
	Filter   ledger.AccountPayableFilter
}

// GetAccountReceivableQuery fetches one receivable by ID
type GetAccountReceivableQuery struct {
	TenantID  uuid.UUID
	AccountID uuid.UUID
}

// GetReceivableByInvoiceQuery fetches a receivable by invoice number
type GetReceivableByInvoiceQuery struct {
	TenantID      uuid.UUID
	InvoiceNumber string
}

// ListAccountReceivablesQuery lists a tenant's receivables with filtering
type ListAccountReceivablesQuery struct {
	TenantID uuid.UUID
	Filter   ledger.AccountReceivableFilter
}

// InstallmentResponse is one installment in API responses
type InstallmentResponse struct {
	Number      int             `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	EntryType   string          `json:"entry_type"`
	Overdue     bool            `json:"overdue"`
}

// AccountPayableResponse is the application-level view of a payable
type AccountPayableResponse struct {
	ID             uuid.UUID             `json:"id"`
	TenantID       uuid.UUID             `json:"tenant_id"`
	Description    string                `json:"description"`
	Amount         decimal.Decimal       `json:"amount"`
	IssueDate      time.Time             `json:"issue_date"`
	DueDate        time.Time             `json:"due_date"`
	Status         string                `json:"status"`
	PayMethod      string                `json:"pay_method"`
	RelatedPartyID uuid.UUID             `json:"related_party_id"`
	PaymentDate    *time.Time            `json:"payment_date,omitempty"`
	Installments   []InstallmentResponse `json:"installments"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Version        int                   `json:"version"`
}

// AccountReceivableResponse is the application-level view of a receivable
type AccountReceivableResponse struct {
	ID             uuid.UUID             `json:"id"`
	TenantID       uuid.UUID             `json:"tenant_id"`
	Description    string                `json:"description"`
	Amount         decimal.Decimal       `json:"amount"`
	IssueDate      time.Time             `json:"issue_date"`
	DueDate        time.Time             `json:"due_date"`
	Status         string                `json:"status"`
	PayMethod      string                `json:"pay_method"`
	RelatedPartyID uuid.UUID             `json:"related_party_id"`
	InvoiceNumber  string                `json:"invoice_number"`
	ReceivedDate   *time.Time            `json:"received_date,omitempty"`
	Installments   []InstallmentResponse `json:"installments"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Version        int                   `json:"version"`
}

// PayableListResponse is a paginated list of payables
type PayableListResponse = shared.Paginated[AccountPayableResponse]

// ReceivableListResponse is a paginated list of receivables
type ReceivableListResponse = shared.Paginated[AccountReceivableResponse]

func toInstallmentResponses(installments []ledger.Installment) []InstallmentResponse {
	out := make([]InstallmentResponse, len(installments))
	for i, inst := range installments {
		out[i] = InstallmentResponse{
			Number:      inst.Number,
			Amount:      inst.Amount,
			DueDate:     inst.DueDate,
			Status:      inst.Status.String(),
			PaymentDate: inst.PaymentDate,
			EntryType:   inst.EntryType.String(),
			Overdue:     inst.IsOverdue(),
		}
	}
	return out
}

func toPayableResponse(ap *ledger.AccountPayable) *AccountPayableResponse {
	return &AccountPayableResponse{
		ID:             ap.ID,
		TenantID:       ap.TenantID,
		Description:    ap.Description,
		Amount:         ap.Amount,
		IssueDate:      ap.IssueDate,
		DueDate:        ap.DueDate,
		Status:         ap.Status.String(),
		PayMethod:      ap.PayMethod.String(),
		RelatedPartyID: ap.RelatedPartyID,
		PaymentDate:    ap.PaymentDate,
		Installments:   toInstallmentResponses(ap.Installments()),
		CreatedAt:      ap.CreatedAt,
		UpdatedAt:      ap.UpdatedAt,
		Version:        ap.Version,
	}
}

func toReceivableResponse(ar *ledger.AccountReceivable) *AccountReceivableResponse {
	return &AccountReceivableResponse{
		ID:             ar.ID,
		TenantID:       ar.TenantID,
		Description:    ar.Description,
		Amount:         ar.Amount,
		IssueDate:      ar.IssueDate,
		DueDate:        ar.DueDate,
		Status:         ar.Status.String(),
		PayMethod:      ar.PayMethod.String(),
		RelatedPartyID: ar.RelatedPartyID,
		InvoiceNumber:  ar.InvoiceNumber,
		ReceivedDate:   ar.ReceivedDate,
		Installments:   toInstallmentResponses(ar.Installments()),
		CreatedAt:      ar.CreatedAt,
		UpdatedAt:      ar.UpdatedAt,
		Version:        ar.Version,
	}
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/application/bus"
	ledgerapp "github.com/ledgerhub/backend/internal/application/ledger"
	"github.com/ledgerhub/backend/internal/domain/ledger"
)

// AccountReceivableHandler exposes the accounts receivable endpoints
type AccountReceivableHandler struct {
	BaseHandler
	bus *bus.Bus
}

// NewAccountReceivableHandler creates a receivable handler
func NewAccountReceivableHandler(b *bus.Bus) *AccountReceivableHandler {
	return &AccountReceivableHandler{bus: b}
}

type createReceivableRequest struct {
	Description    string          `json:"description" binding:"required,max=500"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IssueDate      time.Time       `json:"issue_date" binding:"required"`
	DueDate        time.Time       `json:"due_date" binding:"required"`
	Status         string          `json:"status" binding:"omitempty,oneof=pending received cancelled"`
	RelatedPartyID string          `json:"related_party_id" binding:"required,uuid"`
	PayMethod      string          `json:"pay_method" binding:"required,oneof=cash bank_transfer credit_card debit_card pix bank_slip check"`
	InvoiceNumber  string          `json:"invoice_number" binding:"required,max=50"`
	ReceivedDate   *time.Time      `json:"received_date"`
}

type registerReceiptRequest struct {
	ReceivedDate time.Time `json:"received_date" binding:"required"`
}

type invoiceNumberRequest struct {
	InvoiceNumber string `uri:"invoice" binding:"required,max=50"`
}

// Create handles POST /accounts-receivable
func (h *AccountReceivableHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req createReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := ledger.AccountStatusPending
	if req.Status != "" {
		status = ledger.AccountStatus(req.Status)
	}
	relatedPartyID, _ := uuid.Parse(req.RelatedPartyID)

	resp, err := bus.SendCommand[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.CreateAccountReceivableCommand{
		TenantID:       tenantID,
		Description:    req.Description,
		Amount:         req.Amount,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Status:         status,
		RelatedPartyID: relatedPartyID,
		PayMethod:      ledger.PaymentMethod(req.PayMethod),
		InvoiceNumber:  req.InvoiceNumber,
		ReceivedDate:   req.ReceivedDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update handles PUT /accounts-receivable/:id
func (h *AccountReceivableHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cmd := ledgerapp.UpdateAccountReceivableCommand{
		TenantID:    tenantID,
		AccountID:   id,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.PayMethod != nil {
		method := ledger.PaymentMethod(*req.PayMethod)
		cmd.PayMethod = &method
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeStatus handles PATCH /accounts-receivable/:id/status
func (h *AccountReceivableHandler) ChangeStatus(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.ChangeAccountReceivableStatusCommand{
		TenantID:  tenantID,
		AccountID: id,
		Status:    ledger.AccountStatus(req.Status),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterReceipt handles POST /accounts-receivable/:id/receipt
func (h *AccountReceivableHandler) RegisterReceipt(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req registerReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.RegisterReceivableReceiptCommand{
		TenantID:     tenantID,
		AccountID:    id,
		ReceivedDate: req.ReceivedDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddInstallment handles POST /accounts-receivable/:id/installments
func (h *AccountReceivableHandler) AddInstallment(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req addInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := ledger.AccountStatusPending
	if req.Status != "" {
		status = ledger.AccountStatus(req.Status)
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.AddReceivableInstallmentCommand{
		TenantID:    tenantID,
		AccountID:   id,
		Number:      req.Number,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      status,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /accounts-receivable/:id
func (h *AccountReceivableHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := bus.Send(c.Request.Context(), h.bus, ledgerapp.DeleteAccountReceivableCommand{
		TenantID:  tenantID,
		AccountID: id,
	}); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get handles GET /accounts-receivable/:id
func (h *AccountReceivableHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	resp, err := bus.SendQuery[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.GetAccountReceivableQuery{
		TenantID:  tenantID,
		AccountID: id,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByInvoice handles GET /accounts-receivable/invoice/:invoice
func (h *AccountReceivableHandler) GetByInvoice(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req invoiceNumberRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice number")
		return
	}

	resp, err := bus.SendQuery[*ledgerapp.AccountReceivableResponse](c.Request.Context(), h.bus, ledgerapp.GetReceivableByInvoiceQuery{
		TenantID:      tenantID,
		InvoiceNumber: req.InvoiceNumber,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /accounts-receivable
func (h *AccountReceivableHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req listAccountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := ledger.AccountReceivableFilter{Filter: toSharedFilter(req.ListRequest), Overdue: req.Overdue}
	applyAccountFilters(&filter.RelatedPartyID, &filter.Status, &filter.DueFrom, &filter.DueTo,
		req.RelatedPartyID, req.Status, req.DueFrom, req.DueTo)

	page, err := bus.SendQuery[*ledgerapp.ReceivableListResponse](c.Request.Context(), h.bus, ledgerapp.ListAccountReceivablesQuery{
		TenantID: tenantID,
		Filter:   filter,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

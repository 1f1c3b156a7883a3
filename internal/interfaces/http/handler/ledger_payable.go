package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerhub/backend/internal/application/bus"
	ledgerapp "github.com/ledgerhub/backend/internal/application/ledger"
	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/interfaces/http/dto"
)

// AccountPayableHandler exposes the accounts payable endpoints
type AccountPayableHandler struct {
	BaseHandler
	bus *bus.Bus
}

// NewAccountPayableHandler creates a payable handler
func NewAccountPayableHandler(b *bus.Bus) *AccountPayableHandler {
	return &AccountPayableHandler{bus: b}
}

type createPayableRequest struct {
	Description    string          `json:"description" binding:"required,max=500"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IssueDate      time.Time       `json:"issue_date" binding:"required"`
	DueDate        time.Time       `json:"due_date" binding:"required"`
	Status         string          `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	RelatedPartyID string          `json:"related_party_id" binding:"required,uuid"`
	PayMethod      string          `json:"pay_method" binding:"required,oneof=cash bank_transfer credit_card debit_card pix bank_slip check"`
	PaymentDate    *time.Time      `json:"payment_date"`
}

type updateAccountRequest struct {
	Description *string    `json:"description" binding:"omitempty,max=500"`
	DueDate     *time.Time `json:"due_date"`
	PayMethod   *string    `json:"pay_method" binding:"omitempty,oneof=cash bank_transfer credit_card debit_card pix bank_slip check"`
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid received cancelled"`
}

type registerPaymentRequest struct {
	PaymentDate time.Time `json:"payment_date" binding:"required"`
}

type addInstallmentRequest struct {
	Number      int             `json:"number" binding:"required,min=1"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending paid received cancelled"`
	PaymentDate *time.Time      `json:"payment_date"`
}

type listAccountsRequest struct {
	dto.ListRequest
	RelatedPartyID string `form:"related_party_id" binding:"omitempty,uuid"`
	Status         string `form:"status" binding:"omitempty,oneof=pending paid received cancelled"`
	DueFrom        string `form:"due_from" binding:"omitempty,datetime=2006-01-02"`
	DueTo          string `form:"due_to" binding:"omitempty,datetime=2006-01-02"`
	Overdue        *bool  `form:"overdue"`
}

// Create handles POST /accounts-payable
func (h *AccountPayableHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req createPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := ledger.AccountStatusPending
	if req.Status != "" {
		status = ledger.AccountStatus(req.Status)
	}
	relatedPartyID, _ := uuid.Parse(req.RelatedPartyID)

	resp, err := bus.SendCommand[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, ledgerapp.CreateAccountPayableCommand{
		TenantID:       tenantID,
		Description:    req.Description,
		Amount:         req.Amount,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Status:         status,
		RelatedPartyID: relatedPartyID,
		PayMethod:      ledger.PaymentMethod(req.PayMethod),
		PaymentDate:    req.PaymentDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update handles PUT /accounts-payable/:id
func (h *AccountPayableHandler) Update(c *gin.Context) {
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

	cmd := ledgerapp.UpdateAccountPayableCommand{
		TenantID:    tenantID,
		AccountID:   id,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.PayMethod != nil {
		method := ledger.PaymentMethod(*req.PayMethod)
		cmd.PayMethod = &method
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, cmd)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ChangeStatus handles PATCH /accounts-payable/:id/status
func (h *AccountPayableHandler) ChangeStatus(c *gin.Context) {
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

	resp, err := bus.SendCommand[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, ledgerapp.ChangeAccountPayableStatusCommand{
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

// RegisterPayment handles POST /accounts-payable/:id/payment
func (h *AccountPayableHandler) RegisterPayment(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req registerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := bus.SendCommand[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, ledgerapp.RegisterPayablePaymentCommand{
		TenantID:    tenantID,
		AccountID:   id,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddInstallment handles POST /accounts-payable/:id/installments
func (h *AccountPayableHandler) AddInstallment(c *gin.Context) {
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

	resp, err := bus.SendCommand[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, ledgerapp.AddPayableInstallmentCommand{
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

// Delete handles DELETE /accounts-payable/:id
func (h *AccountPayableHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := bus.Send(c.Request.Context(), h.bus, ledgerapp.DeleteAccountPayableCommand{
		TenantID:  tenantID,
		AccountID: id,
	}); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get handles GET /accounts-payable/:id
func (h *AccountPayableHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	resp, err := bus.SendQuery[*ledgerapp.AccountPayableResponse](c.Request.Context(), h.bus, ledgerapp.GetAccountPayableQuery{
		TenantID:  tenantID,
		AccountID: id,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List handles GET /accounts-payable
func (h *AccountPayableHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req listAccountsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := ledger.AccountPayableFilter{Filter: toSharedFilter(req.ListRequest), Overdue: req.Overdue}
	applyAccountFilters(&filter.RelatedPartyID, &filter.Status, &filter.DueFrom, &filter.DueTo,
		req.RelatedPartyID, req.Status, req.DueFrom, req.DueTo)

	page, err := bus.SendQuery[*ledgerapp.PayableListResponse](c.Request.Context(), h.bus, ledgerapp.ListAccountPayablesQuery{
		TenantID: tenantID,
		Filter:   filter,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// applyAccountFilters fills the optional account filter fields from their
// already-validated query string forms.
func applyAccountFilters(relatedPartyID **uuid.UUID, status **ledger.AccountStatus, dueFrom, dueTo **time.Time,
	rawParty, rawStatus, rawFrom, rawTo string) {
	if rawParty != "" {
		if id, err := uuid.Parse(rawParty); err == nil {
			*relatedPartyID = &id
		}
	}
	if rawStatus != "" {
		s := ledger.AccountStatus(rawStatus)
		*status = &s
	}
	if rawFrom != "" {
		if t, err := time.Parse("2006-01-02", rawFrom); err == nil {
			*dueFrom = &t
		}
	}
	if rawTo != "" {
		if t, err := time.Parse("2006-01-02", rawTo); err == nil {
			*dueTo = &t
		}
	}
}

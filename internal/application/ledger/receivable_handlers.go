package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

var (
	errReceivableNotFound = shared.NewDomainError("NOT_FOUND", "Conta a receber não encontrada")
	errDuplicateInvoice   = shared.NewDomainError("ALREADY_EXISTS", "Já existe uma conta a receber com o número de nota fiscal informado")
)

// ReceivableHandlers holds the command and query handlers for accounts receivable
type ReceivableHandlers struct {
	repo      ledger.AccountReceivableRepository
	persons   party.PersonRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewReceivableHandlers creates the receivable handlers
func NewReceivableHandlers(repo ledger.AccountReceivableRepository, persons party.PersonRepository, publisher shared.EventPublisher, logger *zap.Logger) *ReceivableHandlers {
	return &ReceivableHandlers{
		repo:      repo,
		persons:   persons,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterReceivable wires every receivable handler into the dispatcher
func RegisterReceivable(b *bus.Bus, h *ReceivableHandlers) {
	bus.RegisterCommandHandler(b, h.Create)
	bus.RegisterCommandHandler(b, h.Update)
	bus.RegisterCommandHandler(b, h.ChangeStatus)
	bus.RegisterCommandHandler(b, h.RegisterReceipt)
	bus.RegisterCommandHandler(b, h.AddInstallment)
	bus.RegisterCommandHandlerNoResult(b, h.Delete)
	bus.RegisterQueryHandler(b, h.Get)
	bus.RegisterQueryHandler(b, h.GetByInvoice)
	bus.RegisterQueryHandler(b, h.List)
}

// Create handles CreateAccountReceivableCommand. The invoice number must be
// unique inside the tenant.
func (h *ReceivableHandlers) Create(ctx context.Context, cmd CreateAccountReceivableCommand) (*AccountReceivableResponse, error) {
	existing, err := h.repo.FindByInvoiceNumber(ctx, cmd.TenantID, cmd.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errDuplicateInvoice
	}

	relatedParty, err := h.loadRelatedParty(ctx, cmd.TenantID, cmd.RelatedPartyID)
	if err != nil {
		return nil, err
	}

	result := ledger.NewAccountReceivable(cmd.TenantID, cmd.Description, cmd.Amount,
		cmd.IssueDate, cmd.DueDate, cmd.Status, relatedParty, cmd.PayMethod, cmd.InvoiceNumber, cmd.ReceivedDate)
	if result.IsFailure() {
		return nil, result.Err()
	}
	receivable := result.Value()

	if err := h.repo.Save(ctx, receivable); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, errDuplicateInvoice
		}
		return nil, err
	}
	if err := h.publishEvents(ctx, &receivable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toReceivableResponse(receivable), nil
}

// Update handles UpdateAccountReceivableCommand
func (h *ReceivableHandlers) Update(ctx context.Context, cmd UpdateAccountReceivableCommand) (*AccountReceivableResponse, error) {
	receivable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if cmd.Description != nil {
		if res := receivable.ChangeDescription(*cmd.Description); res.IsFailure() {
			return nil, res.Err()
		}
	}
	if cmd.DueDate != nil {
		if res := receivable.ChangeDueDate(*cmd.DueDate); res.IsFailure() {
			return nil, res.Err()
		}
	}
	if cmd.PayMethod != nil {
		if res := receivable.ChangePaymentMethod(*cmd.PayMethod); res.IsFailure() {
			return nil, res.Err()
		}
	}

	if err := h.repo.Save(ctx, receivable); err != nil {
		return nil, err
	}
	return toReceivableResponse(receivable), nil
}

// ChangeStatus handles ChangeAccountReceivableStatusCommand. Leaving the
// received status clears the received date.
func (h *ReceivableHandlers) ChangeStatus(ctx context.Context, cmd ChangeAccountReceivableStatusCommand) (*AccountReceivableResponse, error) {
	receivable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	var res shared.Result
	if cmd.Status == ledger.AccountStatusPending && receivable.ReceivedDate != nil {
		res = receivable.ReopenReceipt()
	} else {
		res = receivable.ChangeStatus(cmd.Status)
	}
	if res.IsFailure() {
		return nil, res.Err()
	}

	if err := h.repo.Save(ctx, receivable); err != nil {
		return nil, err
	}
	return toReceivableResponse(receivable), nil
}

// RegisterReceipt handles RegisterReceivableReceiptCommand
func (h *ReceivableHandlers) RegisterReceipt(ctx context.Context, cmd RegisterReceivableReceiptCommand) (*AccountReceivableResponse, error) {
	receivable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if res := receivable.RegisterReceipt(cmd.ReceivedDate); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.Save(ctx, receivable); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &receivable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toReceivableResponse(receivable), nil
}

// AddInstallment handles AddReceivableInstallmentCommand
func (h *ReceivableHandlers) AddInstallment(ctx context.Context, cmd AddReceivableInstallmentCommand) (*AccountReceivableResponse, error) {
	receivable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	result := ledger.NewInstallment(cmd.Number, cmd.Amount, cmd.DueDate, cmd.Status, ledger.EntryTypeCredit, cmd.PaymentDate)
	if result.IsFailure() {
		return nil, result.Err()
	}
	installment := result.Value()

	if res := receivable.AddInstallment(&installment); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.Save(ctx, receivable); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &receivable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toReceivableResponse(receivable), nil
}

// Delete handles DeleteAccountReceivableCommand
func (h *ReceivableHandlers) Delete(ctx context.Context, cmd DeleteAccountReceivableCommand) error {
	err := h.repo.DeleteForTenant(ctx, cmd.TenantID, cmd.AccountID)
	if err == shared.ErrNotFound {
		return errReceivableNotFound
	}
	return err
}

// Get handles GetAccountReceivableQuery
func (h *ReceivableHandlers) Get(ctx context.Context, query GetAccountReceivableQuery) (*AccountReceivableResponse, error) {
	receivable, err := h.load(ctx, query.TenantID, query.AccountID)
	if err != nil {
		return nil, err
	}
	return toReceivableResponse(receivable), nil
}

// GetByInvoice handles GetReceivableByInvoiceQuery
func (h *ReceivableHandlers) GetByInvoice(ctx context.Context, query GetReceivableByInvoiceQuery) (*AccountReceivableResponse, error) {
	receivable, err := h.repo.FindByInvoiceNumber(ctx, query.TenantID, query.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if receivable == nil {
		return nil, errReceivableNotFound
	}
	return toReceivableResponse(receivable), nil
}

// List handles ListAccountReceivablesQuery
func (h *ReceivableHandlers) List(ctx context.Context, query ListAccountReceivablesQuery) (*ReceivableListResponse, error) {
	filter := query.Filter
	filter.Normalize()

	receivables, err := h.repo.FindAllForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.CountForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]AccountReceivableResponse, len(receivables))
	for i := range receivables {
		items[i] = *toReceivableResponse(&receivables[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (h *ReceivableHandlers) load(ctx context.Context, tenantID, accountID uuid.UUID) (*ledger.AccountReceivable, error) {
	receivable, err := h.repo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if receivable == nil {
		return nil, errReceivableNotFound
	}
	return receivable, nil
}

func (h *ReceivableHandlers) loadRelatedParty(ctx context.Context, tenantID, partyID uuid.UUID) (*party.Person, error) {
	record, err := h.persons.FindByIDForTenant(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errPartyNotFound
	}
	return &record.Person, nil
}

func (h *ReceivableHandlers) publishEvents(ctx context.Context, root *shared.TenantAggregateRoot) error {
	events := root.GetDomainEvents()
	if len(events) == 0 {
		return nil
	}
	if err := h.publisher.Publish(ctx, events...); err != nil {
		h.logger.Error("failed to publish receivable events", zap.Error(err))
		return err
	}
	root.ClearDomainEvents()
	return nil
}

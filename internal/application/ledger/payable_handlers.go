package ledger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

var (
	errPayableNotFound = shared.NewDomainError("NOT_FOUND", "Conta a pagar não encontrada")
	errPartyNotFound   = shared.NewDomainError("NOT_FOUND", "Pessoa relacionada não encontrada")
)

// PayableHandlers holds the command and query handlers for accounts payable
type PayableHandlers struct {
	repo      ledger.AccountPayableRepository
	persons   party.PersonRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewPayableHandlers creates the payable handlers
func NewPayableHandlers(repo ledger.AccountPayableRepository, persons party.PersonRepository, publisher shared.EventPublisher, logger *zap.Logger) *PayableHandlers {
	return &PayableHandlers{
		repo:      repo,
		persons:   persons,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterPayable wires every payable handler into the dispatcher
func RegisterPayable(b *bus.Bus, h *PayableHandlers) {
	bus.RegisterCommandHandler(b, h.Create)
	bus.RegisterCommandHandler(b, h.Update)
	bus.RegisterCommandHandler(b, h.ChangeStatus)
	bus.RegisterCommandHandler(b, h.RegisterPayment)
	bus.RegisterCommandHandler(b, h.AddInstallment)
	bus.RegisterCommandHandlerNoResult(b, h.Delete)
	bus.RegisterQueryHandler(b, h.Get)
	bus.RegisterQueryHandler(b, h.List)
}

// Create handles CreateAccountPayableCommand
func (h *PayableHandlers) Create(ctx context.Context, cmd CreateAccountPayableCommand) (*AccountPayableResponse, error) {
	relatedParty, err := h.loadRelatedParty(ctx, cmd.TenantID, cmd.RelatedPartyID)
	if err != nil {
		return nil, err
	}

	result := ledger.NewAccountPayable(cmd.TenantID, cmd.Description, cmd.Amount,
		cmd.IssueDate, cmd.DueDate, cmd.Status, relatedParty, cmd.PayMethod, cmd.PaymentDate)
	if result.IsFailure() {
		return nil, result.Err()
	}
	payable := result.Value()

	if err := h.repo.Save(ctx, payable); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &payable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toPayableResponse(payable), nil
}

// Update handles UpdateAccountPayableCommand
func (h *PayableHandlers) Update(ctx context.Context, cmd UpdateAccountPayableCommand) (*AccountPayableResponse, error) {
	payable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if cmd.Description != nil {
		if res := payable.ChangeDescription(*cmd.Description); res.IsFailure() {
			return nil, res.Err()
		}
	}
	if cmd.DueDate != nil {
		if res := payable.ChangeDueDate(*cmd.DueDate); res.IsFailure() {
			return nil, res.Err()
		}
	}
	if cmd.PayMethod != nil {
		if res := payable.ChangePaymentMethod(*cmd.PayMethod); res.IsFailure() {
			return nil, res.Err()
		}
	}

	if err := h.repo.Save(ctx, payable); err != nil {
		return nil, err
	}
	return toPayableResponse(payable), nil
}

// ChangeStatus handles ChangeAccountPayableStatusCommand. Leaving the paid
// status clears the payment date.
func (h *PayableHandlers) ChangeStatus(ctx context.Context, cmd ChangeAccountPayableStatusCommand) (*AccountPayableResponse, error) {
	payable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	var res shared.Result
	if cmd.Status == ledger.AccountStatusPending && payable.PaymentDate != nil {
		res = payable.ReopenPayment()
	} else {
		res = payable.ChangeStatus(cmd.Status)
	}
	if res.IsFailure() {
		return nil, res.Err()
	}

	if err := h.repo.Save(ctx, payable); err != nil {
		return nil, err
	}
	return toPayableResponse(payable), nil
}

// RegisterPayment handles RegisterPayablePaymentCommand
func (h *PayableHandlers) RegisterPayment(ctx context.Context, cmd RegisterPayablePaymentCommand) (*AccountPayableResponse, error) {
	payable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	if res := payable.RegisterPayment(cmd.PaymentDate); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.Save(ctx, payable); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &payable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toPayableResponse(payable), nil
}

// AddInstallment handles AddPayableInstallmentCommand
func (h *PayableHandlers) AddInstallment(ctx context.Context, cmd AddPayableInstallmentCommand) (*AccountPayableResponse, error) {
	payable, err := h.load(ctx, cmd.TenantID, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	result := ledger.NewInstallment(cmd.Number, cmd.Amount, cmd.DueDate, cmd.Status, ledger.EntryTypeDebit, cmd.PaymentDate)
	if result.IsFailure() {
		return nil, result.Err()
	}
	installment := result.Value()

	if res := payable.AddInstallment(&installment); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.Save(ctx, payable); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &payable.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return toPayableResponse(payable), nil
}

// Delete handles DeleteAccountPayableCommand
func (h *PayableHandlers) Delete(ctx context.Context, cmd DeleteAccountPayableCommand) error {
	err := h.repo.DeleteForTenant(ctx, cmd.TenantID, cmd.AccountID)
	if err == shared.ErrNotFound {
		return errPayableNotFound
	}
	return err
}

// Get handles GetAccountPayableQuery
func (h *PayableHandlers) Get(ctx context.Context, query GetAccountPayableQuery) (*AccountPayableResponse, error) {
	payable, err := h.load(ctx, query.TenantID, query.AccountID)
	if err != nil {
		return nil, err
	}
	return toPayableResponse(payable), nil
}

// List handles ListAccountPayablesQuery
func (h *PayableHandlers) List(ctx context.Context, query ListAccountPayablesQuery) (*PayableListResponse, error) {
	filter := query.Filter
	filter.Normalize()

	payables, err := h.repo.FindAllForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.CountForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]AccountPayableResponse, len(payables))
	for i := range payables {
		items[i] = *toPayableResponse(&payables[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (h *PayableHandlers) load(ctx context.Context, tenantID, accountID uuid.UUID) (*ledger.AccountPayable, error) {
	payable, err := h.repo.FindByIDForTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if payable == nil {
		return nil, errPayableNotFound
	}
	return payable, nil
}

func (h *PayableHandlers) loadRelatedParty(ctx context.Context, tenantID, partyID uuid.UUID) (*party.Person, error) {
	record, err := h.persons.FindByIDForTenant(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errPartyNotFound
	}
	return &record.Person, nil
}

func (h *PayableHandlers) publishEvents(ctx context.Context, root *shared.TenantAggregateRoot) error {
	events := root.GetDomainEvents()
	if len(events) == 0 {
		return nil
	}
	if err := h.publisher.Publish(ctx, events...); err != nil {
		h.logger.Error("failed to publish payable events", zap.Error(err))
		return err
	}
	root.ClearDomainEvents()
	return nil
}

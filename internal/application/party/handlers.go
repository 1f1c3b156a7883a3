package party

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

var errPersonNotFound = shared.NewDomainError("NOT_FOUND", "Pessoa não encontrada")

// Handlers holds the command and query handlers for the party context
type Handlers struct {
	repo      party.PersonRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewHandlers creates the party handlers
func NewHandlers(repo party.PersonRepository, publisher shared.EventPublisher, logger *zap.Logger) *Handlers {
	return &Handlers{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Register wires every party handler into the dispatcher
func Register(b *bus.Bus, h *Handlers) {
	bus.RegisterCommandHandler(b, h.CreateIndividual)
	bus.RegisterCommandHandler(b, h.CreateLegal)
	bus.RegisterCommandHandler(b, h.UpdateContact)
	bus.RegisterCommandHandler(b, h.ChangeMaritalStatus)
	bus.RegisterCommandHandler(b, h.ChangeLegalName)
	bus.RegisterCommandHandler(b, h.SetActivation)
	bus.RegisterCommandHandlerNoResult(b, h.Delete)
	bus.RegisterQueryHandler(b, h.Get)
	bus.RegisterQueryHandler(b, h.List)
}

// CreateIndividual handles CreateIndividualPersonCommand
func (h *Handlers) CreateIndividual(ctx context.Context, cmd CreateIndividualPersonCommand) (*PersonResponse, error) {
	result := party.NewIndividualPerson(cmd.TenantID, cmd.Name, cmd.Document, cmd.Email, cmd.Phone, cmd.MaritalStatus)
	if result.IsFailure() {
		return nil, result.Err()
	}
	person := result.Value()

	if err := h.repo.SaveIndividual(ctx, person); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return h.findResponse(ctx, cmd.TenantID, person.ID)
}

// CreateLegal handles CreateLegalPersonCommand
func (h *Handlers) CreateLegal(ctx context.Context, cmd CreateLegalPersonCommand) (*PersonResponse, error) {
	result := party.NewLegalPerson(cmd.TenantID, cmd.Name, cmd.LegalName, cmd.Document, cmd.Email, cmd.Phone)
	if result.IsFailure() {
		return nil, result.Err()
	}
	person := result.Value()

	if err := h.repo.SaveLegal(ctx, person); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return h.findResponse(ctx, cmd.TenantID, person.ID)
}

// UpdateContact handles UpdatePersonContactCommand
func (h *Handlers) UpdateContact(ctx context.Context, cmd UpdatePersonContactCommand) (*PersonResponse, error) {
	record, err := h.repo.FindByIDForTenant(ctx, cmd.TenantID, cmd.PersonID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errPersonNotFound
	}

	apply := func(p *party.Person) error {
		mutations := []struct {
			value  string
			change func(string) shared.Result
		}{
			{cmd.Name, p.ChangeName},
			{cmd.Document, p.ChangeDocument},
			{cmd.Email, p.ChangeEmail},
			{cmd.Phone, p.ChangePhone},
		}
		for _, m := range mutations {
			if m.value == "" {
				continue
			}
			if res := m.change(m.value); res.IsFailure() {
				return res.Err()
			}
		}
		p.AddDomainEvent(party.NewPersonUpdatedEvent(p))
		return nil
	}

	switch record.Type {
	case party.PersonTypeIndividual:
		person, err := h.repo.FindIndividualByID(ctx, cmd.TenantID, cmd.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, errPersonNotFound
		}
		if err := apply(&person.Person); err != nil {
			return nil, err
		}
		if err := h.repo.SaveIndividual(ctx, person); err != nil {
			return nil, err
		}
		if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
			return nil, err
		}
	default:
		person, err := h.repo.FindLegalByID(ctx, cmd.TenantID, cmd.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, errPersonNotFound
		}
		if err := apply(&person.Person); err != nil {
			return nil, err
		}
		if err := h.repo.SaveLegal(ctx, person); err != nil {
			return nil, err
		}
		if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
			return nil, err
		}
	}

	return h.findResponse(ctx, cmd.TenantID, cmd.PersonID)
}

// ChangeMaritalStatus handles ChangeMaritalStatusCommand
func (h *Handlers) ChangeMaritalStatus(ctx context.Context, cmd ChangeMaritalStatusCommand) (*PersonResponse, error) {
	person, err := h.repo.FindIndividualByID(ctx, cmd.TenantID, cmd.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, errPersonNotFound
	}

	if res := person.ChangeMaritalStatus(cmd.MaritalStatus); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.SaveIndividual(ctx, person); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return h.findResponse(ctx, cmd.TenantID, cmd.PersonID)
}

// ChangeLegalName handles ChangeLegalNameCommand
func (h *Handlers) ChangeLegalName(ctx context.Context, cmd ChangeLegalNameCommand) (*PersonResponse, error) {
	person, err := h.repo.FindLegalByID(ctx, cmd.TenantID, cmd.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, errPersonNotFound
	}

	if res := person.ChangeLegalName(cmd.LegalName); res.IsFailure() {
		return nil, res.Err()
	}
	if err := h.repo.SaveLegal(ctx, person); err != nil {
		return nil, err
	}
	if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
		return nil, err
	}

	return h.findResponse(ctx, cmd.TenantID, cmd.PersonID)
}

// SetActivation handles SetPersonActivationCommand
func (h *Handlers) SetActivation(ctx context.Context, cmd SetPersonActivationCommand) (*PersonResponse, error) {
	record, err := h.repo.FindByIDForTenant(ctx, cmd.TenantID, cmd.PersonID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errPersonNotFound
	}

	toggle := func(p *party.Person) {
		if cmd.Active {
			p.Activate()
		} else {
			p.Deactivate()
		}
		p.AddDomainEvent(party.NewPersonActivationChangedEvent(p))
	}

	if record.Type == party.PersonTypeIndividual {
		person, err := h.repo.FindIndividualByID(ctx, cmd.TenantID, cmd.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, errPersonNotFound
		}
		toggle(&person.Person)
		if err := h.repo.SaveIndividual(ctx, person); err != nil {
			return nil, err
		}
		if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
			return nil, err
		}
	} else {
		person, err := h.repo.FindLegalByID(ctx, cmd.TenantID, cmd.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, errPersonNotFound
		}
		toggle(&person.Person)
		if err := h.repo.SaveLegal(ctx, person); err != nil {
			return nil, err
		}
		if err := h.publishEvents(ctx, &person.TenantAggregateRoot); err != nil {
			return nil, err
		}
	}

	return h.findResponse(ctx, cmd.TenantID, cmd.PersonID)
}

// Delete handles DeletePersonCommand
func (h *Handlers) Delete(ctx context.Context, cmd DeletePersonCommand) error {
	err := h.repo.DeleteForTenant(ctx, cmd.TenantID, cmd.PersonID)
	if err == shared.ErrNotFound {
		return errPersonNotFound
	}
	return err
}

// Get handles GetPersonQuery
func (h *Handlers) Get(ctx context.Context, query GetPersonQuery) (*PersonResponse, error) {
	return h.findResponse(ctx, query.TenantID, query.PersonID)
}

// List handles ListPersonsQuery
func (h *Handlers) List(ctx context.Context, query ListPersonsQuery) (*PersonListResponse, error) {
	filter := query.Filter
	filter.Normalize()

	records, err := h.repo.FindAllForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}
	total, err := h.repo.CountForTenant(ctx, query.TenantID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PersonResponse, len(records))
	for i := range records {
		items[i] = *toPersonResponse(&records[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (h *Handlers) findResponse(ctx context.Context, tenantID, personID uuid.UUID) (*PersonResponse, error) {
	record, err := h.repo.FindByIDForTenant(ctx, tenantID, personID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errPersonNotFound
	}
	return toPersonResponse(record), nil
}

// publishEvents drains the aggregate's pending events through the bus.
// Failures are logged and propagated unchanged.
func (h *Handlers) publishEvents(ctx context.Context, root *shared.TenantAggregateRoot) error {
	events := root.GetDomainEvents()
	if len(events) == 0 {
		return nil
	}
	if err := h.publisher.Publish(ctx, events...); err != nil {
		h.logger.Error("failed to publish person events", zap.Error(err))
		return err
	}
	root.ClearDomainEvents()
	return nil
}

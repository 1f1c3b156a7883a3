package party

import (
	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// PersonCreatedEvent is raised when a new person is registered
type PersonCreatedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID  `json:"person_id"`
	Name     string     `json:"name"`
	Document string     `json:"document"`
	Kind     PersonType `json:"kind"`
}

// EventType returns the event type name
func (e *PersonCreatedEvent) EventType() string {
	return "PersonCreated"
}

// NewPersonCreatedEvent creates a new PersonCreatedEvent
func NewPersonCreatedEvent(p *Person) *PersonCreatedEvent {
	return &PersonCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("PersonCreated", "Person", p.ID, p.TenantID),
		PersonID:        p.ID,
		Name:            p.Name,
		Document:        p.Document,
		Kind:            p.Type,
	}
}

// PersonUpdatedEvent is raised when a person's data changes
type PersonUpdatedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID `json:"person_id"`
	Name     string    `json:"name"`
}

// EventType returns the event type name
func (e *PersonUpdatedEvent) EventType() string {
	return "PersonUpdated"
}

// NewPersonUpdatedEvent creates a new PersonUpdatedEvent
func NewPersonUpdatedEvent(p *Person) *PersonUpdatedEvent {
	return &PersonUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("PersonUpdated", "Person", p.ID, p.TenantID),
		PersonID:        p.ID,
		Name:            p.Name,
	}
}

// PersonActivationChangedEvent is raised when a person is activated or deactivated
type PersonActivationChangedEvent struct {
	shared.BaseDomainEvent
	PersonID uuid.UUID `json:"person_id"`
	Active   bool      `json:"active"`
}

// EventType returns the event type name
func (e *PersonActivationChangedEvent) EventType() string {
	return "PersonActivationChanged"
}

// NewPersonActivationChangedEvent creates a new PersonActivationChangedEvent
func NewPersonActivationChangedEvent(p *Person) *PersonActivationChangedEvent {
	return &PersonActivationChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("PersonActivationChanged", "Person", p.ID, p.TenantID),
		PersonID:        p.ID,
		Active:          p.Active,
	}
}

package party

import (
	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// MaritalStatus is the civil status of an individual person
type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
	MaritalStatusOther    MaritalStatus = "other"
)

// IsValid checks if the status is a valid MaritalStatus
func (s MaritalStatus) IsValid() bool {
	switch s {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced,
		MaritalStatusWidowed, MaritalStatusOther:
		return true
	}
	return false
}

// String returns the string representation of MaritalStatus
func (s MaritalStatus) String() string {
	return string(s)
}

// IndividualPerson is a natural person party
type IndividualPerson struct {
	Person
	MaritalStatus MaritalStatus
}

// NewIndividualPerson creates a new individual person
func NewIndividualPerson(tenantID uuid.UUID, name, document, email, phone string, maritalStatus MaritalStatus) shared.DomainResult[*IndividualPerson] {
	core, res := newPerson(tenantID, PersonTypeIndividual, name, document, email, phone)
	if res.IsFailure() {
		return shared.Fail[*IndividualPerson](res.FailureMessage())
	}
	if !maritalStatus.IsValid() {
		return shared.Fail[*IndividualPerson]("O estado civil informado é inválido")
	}

	person := &IndividualPerson{
		Person:        core,
		MaritalStatus: maritalStatus,
	}
	person.AddDomainEvent(NewPersonCreatedEvent(&person.Person))

	return shared.Ok(person)
}

// ChangeMaritalStatus updates the marital status
func (p *IndividualPerson) ChangeMaritalStatus(status MaritalStatus) shared.Result {
	if !status.IsValid() {
		return shared.FailResult("O estado civil informado é inválido")
	}
	p.MaritalStatus = status
	p.touch()
	p.AddDomainEvent(NewPersonUpdatedEvent(&p.Person))
	return shared.OkResult()
}

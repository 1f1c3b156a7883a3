package party

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// LegalPerson is a company party. LegalName is the registered company name;
// Name remains the trade name shown on documents.
type LegalPerson struct {
	Person
	LegalName string
}

// NewLegalPerson creates a new legal person
func NewLegalPerson(tenantID uuid.UUID, name, legalName, document, email, phone string) shared.DomainResult[*LegalPerson] {
	core, res := newPerson(tenantID, PersonTypeCompany, name, document, email, phone)
	if res.IsFailure() {
		return shared.Fail[*LegalPerson](res.FailureMessage())
	}
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return shared.Fail[*LegalPerson]("A razão social é obrigatória")
	}

	person := &LegalPerson{
		Person:    core,
		LegalName: legalName,
	}
	person.AddDomainEvent(NewPersonCreatedEvent(&person.Person))

	return shared.Ok(person)
}

// ChangeLegalName updates the registered company name
func (p *LegalPerson) ChangeLegalName(legalName string) shared.Result {
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return shared.FailResult("A razão social é obrigatória")
	}
	p.LegalName = legalName
	p.touch()
	p.AddDomainEvent(NewPersonUpdatedEvent(&p.Person))
	return shared.OkResult()
}

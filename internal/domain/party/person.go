package party

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// PersonType distinguishes the two kinds of parties the ledger tracks
type PersonType string

const (
	PersonTypeIndividual PersonType = "individual"
	PersonTypeCompany    PersonType = "company"
)

// IsValid checks if the type is a valid PersonType
func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypeIndividual, PersonTypeCompany:
		return true
	}
	return false
}

// String returns the string representation of PersonType
func (t PersonType) String() string {
	return string(t)
}

// Person holds the fields shared by both party kinds. It is embedded by
// value in IndividualPerson and LegalPerson; it is never persisted on its
// own. A person belongs to exactly one tenant for its lifetime.
type Person struct {
	shared.TenantAggregateRoot
	Name     string
	Document string
	Type     PersonType
	Email    string
	Phone    string
	Active   bool
}

// newPerson validates and builds the shared person core. All textual fields
// are trimmed on write; tenant and the four contact fields are required.
func newPerson(tenantID uuid.UUID, personType PersonType, name, document, email, phone string) (Person, shared.Result) {
	name = strings.TrimSpace(name)
	document = strings.TrimSpace(document)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if tenantID == uuid.Nil {
		return Person{}, shared.FailResult("O identificador do locatário é obrigatório")
	}
	if name == "" {
		return Person{}, shared.FailResult("O nome é obrigatório")
	}
	if document == "" {
		return Person{}, shared.FailResult("O documento é obrigatório")
	}
	if email == "" {
		return Person{}, shared.FailResult("O e-mail é obrigatório")
	}
	if phone == "" {
		return Person{}, shared.FailResult("O telefone é obrigatório")
	}

	return Person{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Document:            document,
		Type:                personType,
		Email:               email,
		Phone:               phone,
		Active:              true,
	}, shared.OkResult()
}

// ChangeName updates the person's name
func (p *Person) ChangeName(name string) shared.Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.FailResult("O nome é obrigatório")
	}
	p.Name = name
	p.touch()
	return shared.OkResult()
}

// ChangeDocument updates the person's document
func (p *Person) ChangeDocument(document string) shared.Result {
	document = strings.TrimSpace(document)
	if document == "" {
		return shared.FailResult("O documento é obrigatório")
	}
	p.Document = document
	p.touch()
	return shared.OkResult()
}

// ChangeEmail updates the person's e-mail address
func (p *Person) ChangeEmail(email string) shared.Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.FailResult("O e-mail é obrigatório")
	}
	p.Email = email
	p.touch()
	return shared.OkResult()
}

// ChangePhone updates the person's phone number
func (p *Person) ChangePhone(phone string) shared.Result {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return shared.FailResult("O telefone é obrigatório")
	}
	p.Phone = phone
	p.touch()
	return shared.OkResult()
}

// Activate marks the person as active
func (p *Person) Activate() {
	p.Active = true
	p.touch()
}

// Deactivate marks the person as inactive
func (p *Person) Deactivate() {
	p.Active = false
	p.touch()
}

func (p *Person) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
